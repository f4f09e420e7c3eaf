// Package impl provides the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"
	"log/slog"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
)

// userService implements the usecase.UserUsecase interface.
type userService struct {
	logger *slog.Logger
	users  repository.UserRepository
}

// NewUserService is the constructor for userService.
func NewUserService(logger *slog.Logger, users repository.UserRepository) usecase.UserUsecase {
	return &userService{
		logger: logger,
		users:  users,
	}
}

// GetUserDetails returns the caller's own directory record.
func (srv *userService) GetUserDetails(ctx context.Context, principal *entity.Principal) (*usecase.UserDetails, error) {
	user, err := srv.users.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	return toUserDetails(user), nil
}

// GetUserByID resolves a directory record by id.
func (srv *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*usecase.UserDetails, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	return toUserDetails(user), nil
}

// FindUserByEmail returns (nil, nil) when no record exists. First-login checks
// treat absence as a normal answer, not an error.
func (srv *userService) FindUserByEmail(ctx context.Context, email string) (*usecase.UserDetails, error) {
	user, err := srv.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up user by email")
	}

	return toUserDetails(user), nil
}

// SaveUserDetails upserts the caller's record. Identity fields come from the
// verified token; the optional input only overrides the profile names.
func (srv *userService) SaveUserDetails(ctx context.Context, principal *entity.Principal, input *usecase.SaveUserDetailsInput) (*usecase.UserDetails, error) {
	user := &entity.User{
		ID:        principal.ID,
		Email:     principal.Email,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
	}
	if input != nil {
		if input.FirstName != "" {
			user.FirstName = input.FirstName
		}
		if input.LastName != "" {
			user.LastName = input.LastName
		}
	}

	if err := srv.users.Save(ctx, user); err != nil {
		srv.logger.ErrorContext(ctx, "failed to save user",
			slog.String("user_id", principal.ID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrUserSaveFailed.WrapMessage("failed to save user details")
	}

	saved, err := srv.users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reload saved user")
	}

	return toUserDetails(saved), nil
}

// UpdateProfileImage stores the caller's profile image path.
func (srv *userService) UpdateProfileImage(ctx context.Context, principal *entity.Principal, path string) error {
	if err := srv.users.UpdateImage(ctx, principal.ID, path); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile image")
	}

	return nil
}

func toUserDetails(user *entity.User) *usecase.UserDetails {
	return &usecase.UserDetails{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Image:     user.Image,
	}
}
