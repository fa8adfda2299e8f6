package ports

import (
	"context"

	"github.com/tradeready/portal/internal/core/domain"
)

// PortalService is the account backend: directory, tokens and profiles.
type PortalService interface {
	Login(ctx context.Context, deviceID, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	// CurrentUser returns nil, nil when the device is not signed in.
	CurrentUser(ctx context.Context, deviceID string) (*domain.User, error)
	// UserForToken resolves a bearer token presented directly by a client.
	UserForToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, deviceID string) error
	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)
}
