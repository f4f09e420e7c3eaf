package integration

import (
	"context"
	"net/http"

	"booking/config"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userClient implements service.UserClient over the user directory service's
// HTTP API.
type userClient struct {
	baseURL string
	client  *http.Client
}

// NewUserClient is the constructor for userClient.
func NewUserClient(cfg *config.Config) (service.UserClient, error) {
	if cfg.Services.UserURL == "" {
		return nil, errors.New("services.userUrl must be configured")
	}

	return &userClient{
		baseURL: cfg.Services.UserURL,
		client:  &http.Client{Timeout: defaultClientTimeout},
	}, nil
}

// userPayload is the public profile DTO served by the user directory.
type userPayload struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Image     string    `json:"image"`
}

// GetUserByID resolves the current user record for the given id. The result
// is never cached; aggregates must reflect the directory at request time.
func (c *userClient) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	endpoint := joinURL(c.baseURL, "booking", "api", "v1", "users", id.String())

	var payload userPayload
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, &payload); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "user lookup failed")
	}

	return &entity.User{
		ID:        payload.ID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Image:     payload.Image,
	}, nil
}
