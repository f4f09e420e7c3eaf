package handler

import (
	"log/slog"
	"net/http"

	"booking/internal/delivery/http/response"
	"booking/internal/domain/service"
	interrors "booking/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler serves image objects from the platform's blob bucket.
type ImageHandler struct {
	store  service.ImageStore
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(store service.ImageStore, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		store:  store,
		logger: logger,
	}
}

// GetImage streams the object at the wildcard path.
func (h *ImageHandler) GetImage(c echo.Context) error {
	path := c.Param("*")
	if path == "" {
		return response.BadRequest(c, "INVALID_INPUT", "image path is required")
	}

	data, err := h.store.Read(c.Request().Context(), path)
	if err != nil {
		if interrors.Is(err, service.ErrObjectNotFound) {
			return response.NotFound(c, "IMAGE_NOT_FOUND", "image not found")
		}

		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}
