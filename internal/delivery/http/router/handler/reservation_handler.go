package handler

import (
	"log/slog"
	"net/http"
	"time"

	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/response"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// createReservationRequest is the wire form of a booking request; dates are
// plain calendar days.
type createReservationRequest struct {
	PropertyID  string `json:"propertyId" validate:"required,uuid"`
	Location    string `json:"location" validate:"required"`
	CheckIn     string `json:"checkIn" validate:"required"`
	CheckOut    string `json:"checkOut" validate:"required"`
	GuestNumber int    `json:"guestNumber" validate:"required,min=1"`
}

// CreateReservation books a property for the caller.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var request *createReservationRequest
	if err := c.Bind(&request); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(request); err != nil {
		return errors.WithStack(err)
	}

	propertyID, err := uuid.Parse(request.PropertyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "propertyId must be a valid UUID")
	}
	checkIn, err := time.Parse(dateLayout, request.CheckIn)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "checkIn must be a date in the form "+dateLayout)
	}
	checkOut, err := time.Parse(dateLayout, request.CheckOut)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "checkOut must be a date in the form "+dateLayout)
	}

	reservation, err := h.uc.CreateReservation(c.Request().Context(), principal, &usecase.CreateReservationInput{
		PropertyID:  propertyID,
		Location:    request.Location,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestNumber: request.GuestNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// GetOccupiedProperties lists property ids booked in a location for an
// overlapping window. Internal route consumed by the property catalog.
func (h *ReservationHandler) GetOccupiedProperties(c echo.Context) error {
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

	ids, err := h.uc.GetOccupiedPropertyIDs(c.Request().Context(), location, checkIn, checkOut)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ids, "Occupied properties retrieved successfully")
}

// DeleteByProperty removes every reservation of a property. Internal route
// used as compensating cleanup after a property delete.
func (h *ReservationHandler) DeleteByProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "propertyId must be a valid UUID")
	}

	if err := h.uc.DeleteAllByPropertyID(c.Request().Context(), propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservations deleted successfully")
}
