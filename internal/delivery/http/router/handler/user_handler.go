package handler

import (
	"log/slog"
	"net/http"

	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/response"
	domainerrors "booking/internal/domain/errors"
	interrors "booking/internal/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user directory handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// publicUserResponse is the profile DTO exposed to other users and services.
// The email stays private to the owner.
type publicUserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Image     string    `json:"image"`
}

// GetMe returns the caller's own record, provisioning it from the token
// claims on first login.
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	details, err := h.uc.GetUserDetails(c.Request().Context(), principal)
	if interrors.Is(err, domainerrors.ErrUserNotFound) {
		h.logger.InfoContext(c.Request().Context(), "provisioning user from token claims",
			slog.String("user_id", principal.ID.String()))
		details, err = h.uc.SaveUserDetails(c.Request().Context(), principal, nil)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "User retrieved successfully")
}

// SaveMe upserts the caller's record with the submitted profile fields.
func (h *UserHandler) SaveMe(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.SaveUserDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.uc.SaveUserDetails(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "User saved successfully")
}

// updateImageInput carries the new profile image path.
type updateImageInput struct {
	Image string `json:"image" validate:"required"`
}

// UpdateMyImage stores the caller's profile image path.
func (h *UserHandler) UpdateMyImage(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *updateImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProfileImage(c.Request().Context(), principal, input.Image); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile image updated successfully")
}

// GetUser resolves a user's public profile by id. The property catalog calls
// this route when assembling aggregates.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "userId must be a valid UUID")
	}

	details, err := h.uc.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, publicUserResponse{
		ID:        details.ID,
		FirstName: details.FirstName,
		LastName:  details.LastName,
		Image:     details.Image,
	}, "User retrieved successfully")
}
