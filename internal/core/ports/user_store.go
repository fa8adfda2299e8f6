package ports

import (
	"context"

	"github.com/tradeready/portal/internal/core/domain"
)

// UserStore persists the user directory. Implementations return
// domain.ErrUserNotFound for missing records and domain.ErrUserExists when an
// insert or update collides on email.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}
