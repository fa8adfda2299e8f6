package memory

import (
	"context"
	"sync"

	"github.com/tradeready/portal/internal/core/domain"
)

// UserStore is the in-process user directory used in demo mode and tests.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	emailID map[string]string
	latency Latency
}

func NewUserStore(latency Latency) *UserStore {
	return &UserStore{
		byID:    make(map[string]*domain.User),
		emailID: make(map[string]string),
		latency: latency,
	}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := s.latency.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailID[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(s.byID[id]), nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if err := s.latency.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (s *UserStore) Insert(ctx context.Context, user *domain.User) error {
	if err := s.latency.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emailID[user.Email]; exists {
		return domain.ErrUserExists
	}
	s.byID[user.ID] = clone(user)
	s.emailID[user.Email] = user.ID
	return nil
}

func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := s.latency.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if owner, taken := s.emailID[user.Email]; taken && owner != user.ID {
		return domain.ErrUserExists
	}
	delete(s.emailID, old.Email)
	s.byID[user.ID] = clone(user)
	s.emailID[user.Email] = user.ID
	return nil
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func clone(u *domain.User) *domain.User {
	c := *u
	return &c
}
