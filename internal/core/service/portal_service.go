package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

const avatarURLFormat = "https://ui-avatars.com/api/?name=%s&background=random"

// PortalService implements login, registration, session lookup and profile
// updates over a UserStore and a device TokenStore.
type PortalService struct {
	users    ports.UserStore
	tokens   ports.TokenStore
	codec    TokenCodec
	hasher   PasswordHasher
	activity ports.ActivityRecorder
	log      zerolog.Logger
	now      func() time.Time
}

func NewPortalService(
	users ports.UserStore,
	tokens ports.TokenStore,
	codec TokenCodec,
	hasher PasswordHasher,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *PortalService {
	if codec == nil {
		codec = OpaqueTokenCodec{}
	}
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	return &PortalService{
		users:    users,
		tokens:   tokens,
		codec:    codec,
		hasher:   hasher,
		activity: activity,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// avatarURL escapes name the way a browser's encodeURIComponent would.
func avatarURL(name string) string {
	return fmt.Sprintf(avatarURLFormat, strings.ReplaceAll(url.QueryEscape(name), "+", "%20"))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *PortalService) Login(ctx context.Context, deviceID, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !s.hasher.Matches(user.Password, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Encode(user.Email, s.now())
	if err != nil {
		return "", nil, fmt.Errorf("mint token: %w", err)
	}
	if err := s.tokens.SetToken(ctx, deviceID, token); err != nil {
		return "", nil, fmt.Errorf("persist token: %w", err)
	}

	s.record(user.Email, domain.ActivityLoggedIn, "")
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user.Sanitize(), nil
}

func (s *PortalService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		ID:                 uuid.NewString(),
		Name:               strings.TrimSpace(in.Name),
		Email:              email,
		Password:           hash,
		Company:            in.Company,
		RegistrationNumber: in.RegistrationNumber,
		Country:            in.Country,
		Industry:           in.Industry,
		Address:            in.Address,
		Phone:              in.Phone,
		TaxID:              in.TaxID,
		VAT:                in.VAT,
		AvatarURL:          avatarURL(in.Name),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.record(user.Email, domain.ActivityRegistered, user.Company)
	s.log.Info().Str("user_id", user.ID).Str("country", user.Country).Msg("user registered")
	return user.Sanitize(), nil
}

// SeedDefault registers domain.DefaultAccount unless its email is taken.
func (s *PortalService) SeedDefault(ctx context.Context) error {
	_, err := s.Register(ctx, domain.DefaultAccount)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed default account: %w", err)
	}
	s.log.Info().Str("email", domain.DefaultAccount.Email).Msg("seeded default account")
	return nil
}

func (s *PortalService) CurrentUser(ctx context.Context, deviceID string) (*domain.User, error) {
	token, err := s.tokens.Token(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	user, err := s.userForToken(ctx, token)
	if errors.Is(err, domain.ErrUnauthenticated) {
		// Stale or unreadable token: drop it so the device reads as signed out.
		if clearErr := s.tokens.ClearToken(ctx, deviceID); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear stale token")
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserForToken accepts a bearer token only while some device still holds it,
// so logout revokes it and tokens that were never issued are refused.
func (s *PortalService) UserForToken(ctx context.Context, token string) (*domain.User, error) {
	device, err := s.tokens.DeviceForToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if device == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.userForToken(ctx, token)
}

func (s *PortalService) userForToken(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.codec.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

func (s *PortalService) Logout(ctx context.Context, deviceID string) error {
	user, err := s.CurrentUser(ctx, deviceID)
	if err != nil {
		s.log.Warn().Err(err).Msg("logout: session lookup failed")
	}
	if err := s.tokens.ClearToken(ctx, deviceID); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if user != nil {
		s.record(user.Email, domain.ActivityLoggedOut, "")
	}
	return nil
}

func (s *PortalService) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	user.UpdatedAt = s.now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.record(user.Email, domain.ActivityProfileUpdated, "")
	return user.Sanitize(), nil
}

func (s *PortalService) record(email string, kind domain.ActivityKind, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		UserEmail: email,
		Kind:      kind,
		Detail:    detail,
		Timestamp: s.now(),
	})
}
