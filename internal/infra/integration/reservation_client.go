package integration

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"booking/config"
	"booking/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dateLayout           = "2006-01-02"
	defaultClientTimeout = 5 * time.Second
)

// reservationClient implements service.ReservationClient over the
// reservation availability service's HTTP API.
type reservationClient struct {
	baseURL string
	client  *http.Client
}

// NewReservationClient is the constructor for reservationClient.
func NewReservationClient(cfg *config.Config) (service.ReservationClient, error) {
	if cfg.Services.ReservationURL == "" {
		return nil, errors.New("services.reservationUrl must be configured")
	}

	return &reservationClient{
		baseURL: cfg.Services.ReservationURL,
		client:  &http.Client{Timeout: defaultClientTimeout},
	}, nil
}

// OccupiedPropertyIDs fetches ids of properties already booked in the given
// location for a date window overlapping [checkIn, checkOut).
func (c *reservationClient) OccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	query := url.Values{}
	query.Set("location", location)
	query.Set("checkIn", checkIn.Format(dateLayout))
	query.Set("checkOut", checkOut.Format(dateLayout))

	endpoint := joinURL(c.baseURL, "internal", "reservations", "occupied") + "?" + query.Encode()

	var propertyIDs []uuid.UUID
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, &propertyIDs); err != nil {
		return nil, errors.Wrap(err, "occupied property lookup failed")
	}

	return propertyIDs, nil
}

// DeleteReservationsByProperty asks the reservation service to drop every
// reservation of the given property.
func (c *reservationClient) DeleteReservationsByProperty(ctx context.Context, propertyID uuid.UUID) error {
	endpoint := joinURL(c.baseURL, "internal", "reservations", "property", propertyID.String())

	if err := doJSON(ctx, c.client, http.MethodDelete, endpoint, nil); err != nil {
		return errors.Wrap(err, "reservation cleanup call failed")
	}

	return nil
}
