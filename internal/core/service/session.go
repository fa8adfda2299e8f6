package service

import (
	"context"
	"errors"
	"sync"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

// SessionState is the lifecycle of a Session.
type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session holds the signed-in user of one device for the duration of a
// request. It starts uninitialized, is loading while Resolve runs, and
// settles on authenticated or anonymous.
type Session struct {
	portal   ports.PortalService
	deviceID string
	bearer   string

	mu    sync.RWMutex
	state SessionState
	user  *domain.User
}

// NewSession creates a session for deviceID. A non-empty bearer token takes
// precedence over the device's stored token.
func NewSession(portal ports.PortalService, deviceID, bearer string) *Session {
	return &Session{
		portal:   portal,
		deviceID: deviceID,
		bearer:   bearer,
		state:    SessionUninitialized,
	}
}

// Resolve looks up the current user once.
func (s *Session) Resolve(ctx context.Context) error {
	s.set(SessionLoading, nil)

	var (
		user *domain.User
		err  error
	)
	if s.bearer != "" {
		user, err = s.portal.UserForToken(ctx, s.bearer)
		if errors.Is(err, domain.ErrUnauthenticated) {
			user, err = nil, nil
		}
	} else {
		user, err = s.portal.CurrentUser(ctx, s.deviceID)
	}
	if err != nil {
		s.set(SessionAnonymous, nil)
		return err
	}

	if user == nil {
		s.set(SessionAnonymous, nil)
	} else {
		s.set(SessionAuthenticated, user)
	}
	return nil
}

// SignIn authenticates and moves the session to authenticated.
func (s *Session) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	token, user, err := s.portal.Login(ctx, s.deviceID, email, password)
	if err != nil {
		return "", nil, err
	}
	s.set(SessionAuthenticated, user)
	return token, user, nil
}

// SignOut clears the device token and moves the session to anonymous.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.portal.Logout(ctx, s.deviceID); err != nil {
		return err
	}
	s.set(SessionAnonymous, nil)
	return nil
}

// Current returns the signed-in user or nil.
func (s *Session) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Replace swaps the cached user, e.g. after a profile update.
func (s *Session) Replace(user *domain.User) {
	s.set(SessionAuthenticated, user)
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Authenticated() bool {
	return s.State() == SessionAuthenticated
}

func (s *Session) set(state SessionState, user *domain.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}
