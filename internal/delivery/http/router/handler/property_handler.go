// Package handler contains the HTTP handlers for the booking services.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/response"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for check-in and check-out dates.
const dateLayout = "2006-01-02"

// PropertyHandler holds dependencies for property catalog handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchProperties handles the public availability search.
func (h *PropertyHandler) SearchProperties(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return response.BadRequest(c, "INVALID_INPUT", "location is required")
	}

	checkIn, err := time.Parse(dateLayout, c.QueryParam("checkIn"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "checkIn must be a date in the form "+dateLayout)
	}
	checkOut, err := time.Parse(dateLayout, c.QueryParam("checkOut"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "checkOut must be a date in the form "+dateLayout)
	}

	guestNumber := 1
	if raw := c.QueryParam("guestNumber"); raw != "" {
		guestNumber, err = strconv.Atoi(raw)
		if err != nil || guestNumber < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "guestNumber must be a positive integer")
		}
	}

	page, err := pageParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "currentPage must be a non-negative integer")
	}

	output, err := h.uc.SearchProperties(c.Request().Context(), &usecase.SearchPropertiesInput{
		Location:    location,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestNumber: guestNumber,
		CurrentPage: page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Properties retrieved successfully")
}

// GetProperty handles the public property aggregate lookup.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "propertyId must be a valid UUID")
	}

	aggregate, err := h.uc.GetPropertyAggregate(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, aggregate, "Property retrieved successfully")
}

// GetOwnProperties lists the authenticated owner's properties.
func (h *PropertyHandler) GetOwnProperties(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	page, err := pageParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "currentPage must be a non-negative integer")
	}

	output, err := h.uc.GetPropertiesByOwner(c.Request().Context(), principal, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Properties retrieved successfully")
}

// CreateProperty lists a new property owned by the caller.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	aggregate, err := h.uc.CreateProperty(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, aggregate, "Property created successfully")
}

// DeleteProperty removes one of the caller's properties.
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "propertyId must be a valid UUID")
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), principal, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}

// GetCountries handles the public country prefix lookup.
func (h *PropertyHandler) GetCountries(c echo.Context) error {
	countries, err := h.uc.GetCountries(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "Countries retrieved successfully")
}

// pageParam reads the zero-based currentPage query parameter.
func pageParam(c echo.Context) (int, error) {
	raw := c.QueryParam("currentPage")
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, errors.New("invalid currentPage")
	}

	return page, nil
}
