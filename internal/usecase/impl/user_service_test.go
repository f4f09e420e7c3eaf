package impl

import (
	"context"
	"testing"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserDetails_ReturnsOwnRecord(t *testing.T) {
	principal := testPrincipal()

	userRepo := &stubUserRepo{
		findByID: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			assert.Equal(t, principal.ID, id)

			return &entity.User{
				ID:        principal.ID,
				Email:     principal.Email,
				FirstName: "Jane",
				LastName:  "Doe",
				Image:     "users/jane.jpg",
			}, nil
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	details, err := svc.GetUserDetails(context.Background(), principal)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, details.ID)
	assert.Equal(t, "users/jane.jpg", details.Image)
}

func TestGetUserDetails_NotFound(t *testing.T) {
	userRepo := &stubUserRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	_, err := svc.GetUserDetails(context.Background(), testPrincipal())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFindUserByEmail_AbsenceIsNotAnError(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmail: func(context.Context, string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	details, err := svc.FindUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestSaveUserDetails_IdentityComesFromToken(t *testing.T) {
	principal := testPrincipal()

	var saved *entity.User
	userRepo := &stubUserRepo{
		save: func(_ context.Context, user *entity.User) error {
			saved = user

			return nil
		},
		findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
			return saved, nil
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	details, err := svc.SaveUserDetails(context.Background(), principal, &usecase.SaveUserDetailsInput{
		FirstName: "Janet",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, principal.ID, saved.ID)
	assert.Equal(t, principal.Email, saved.Email)
	assert.Equal(t, "Janet", saved.FirstName, "input overrides the claim value")
	assert.Equal(t, principal.LastName, saved.LastName, "claims fill the fields the input omits")
	assert.Equal(t, "Janet", details.FirstName)
}

func TestSaveUserDetails_NilInputUsesClaims(t *testing.T) {
	principal := testPrincipal()

	var saved *entity.User
	userRepo := &stubUserRepo{
		save: func(_ context.Context, user *entity.User) error {
			saved = user

			return nil
		},
		findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
			return saved, nil
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	_, err := svc.SaveUserDetails(context.Background(), principal, nil)
	require.NoError(t, err)
	assert.Equal(t, principal.FirstName, saved.FirstName)
	assert.Equal(t, principal.LastName, saved.LastName)
}

func TestSaveUserDetails_RepositoryFailure(t *testing.T) {
	userRepo := &stubUserRepo{
		save: func(context.Context, *entity.User) error {
			return errors.New("connection reset")
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	_, err := svc.SaveUserDetails(context.Background(), testPrincipal(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUserSaveFailed)
}

func TestUpdateProfileImage(t *testing.T) {
	principal := testPrincipal()

	var gotID uuid.UUID
	var gotPath string
	userRepo := &stubUserRepo{
		updateImage: func(_ context.Context, id uuid.UUID, path string) error {
			gotID, gotPath = id, path

			return nil
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	require.NoError(t, svc.UpdateProfileImage(context.Background(), principal, "users/jane.jpg"))
	assert.Equal(t, principal.ID, gotID)
	assert.Equal(t, "users/jane.jpg", gotPath)
}

func TestUpdateProfileImage_UnknownUser(t *testing.T) {
	userRepo := &stubUserRepo{
		updateImage: func(context.Context, uuid.UUID, string) error {
			return repository.ErrUserNotFound
		},
	}

	svc := NewUserService(testLogger(), userRepo)

	err := svc.UpdateProfileImage(context.Background(), testPrincipal(), "users/jane.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
