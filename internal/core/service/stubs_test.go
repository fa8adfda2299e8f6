package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// User store
// ---------------------------------------------------------------------------

type stubUserStore struct {
	byEmail   map[string]*domain.User
	insertErr error
	findErr   error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) Insert(_ context.Context, user *domain.User) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserExists
	}
	r.byEmail[user.Email] = cloneUser(user)
	return nil
}

func (r *stubUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; !ok {
		return domain.ErrUserNotFound
	}
	r.byEmail[user.Email] = cloneUser(user)
	return nil
}

// ---------------------------------------------------------------------------
// Device token store
// ---------------------------------------------------------------------------

type stubTokenStore struct {
	tokens  map[string]string
	cleared []string
}

func (s *stubTokenStore) DeviceForToken(_ context.Context, token string) (string, error) {
	for device, t := range s.tokens {
		if t == token {
			return device, nil
		}
	}
	return "", nil
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Token(_ context.Context, deviceID string) (string, error) {
	return s.tokens[deviceID], nil
}

func (s *stubTokenStore) SetToken(_ context.Context, deviceID, token string) error {
	s.tokens[deviceID] = token
	return nil
}

func (s *stubTokenStore) ClearToken(_ context.Context, deviceID string) error {
	delete(s.tokens, deviceID)
	s.cleared = append(s.cleared, deviceID)
	return nil
}

// ---------------------------------------------------------------------------
// Tab store
// ---------------------------------------------------------------------------

type stubTabStore struct {
	completion map[string]ports.Completion
	engines    map[string]*ports.EngineState
	drafts     map[string]*domain.RegistrationDraft
}

func newStubTabStore() *stubTabStore {
	return &stubTabStore{
		completion: make(map[string]ports.Completion),
		engines:    make(map[string]*ports.EngineState),
		drafts:     make(map[string]*domain.RegistrationDraft),
	}
}

func (s *stubTabStore) Completion(_ context.Context, tabID string) (ports.Completion, error) {
	return s.completion[tabID], nil
}

func (s *stubTabStore) SetCompletion(_ context.Context, tabID string, c ports.Completion) error {
	s.completion[tabID] = c
	return nil
}

func (s *stubTabStore) ClearCompletion(_ context.Context, tabID string) error {
	delete(s.completion, tabID)
	return nil
}

func (s *stubTabStore) Engine(_ context.Context, tabID string) (*ports.EngineState, error) {
	st, ok := s.engines[tabID]
	if !ok {
		return nil, nil
	}
	return &ports.EngineState{CurrentIndex: st.CurrentIndex, Answers: st.Answers.Clone()}, nil
}

func (s *stubTabStore) SaveEngine(_ context.Context, tabID string, st *ports.EngineState) error {
	s.engines[tabID] = &ports.EngineState{CurrentIndex: st.CurrentIndex, Answers: st.Answers.Clone()}
	return nil
}

func (s *stubTabStore) ClearEngine(_ context.Context, tabID string) error {
	delete(s.engines, tabID)
	return nil
}

func (s *stubTabStore) Draft(_ context.Context, tabID string) (*domain.RegistrationDraft, error) {
	d, ok := s.drafts[tabID]
	if !ok {
		return nil, nil
	}
	clone := *d
	return &clone, nil
}

func (s *stubTabStore) SaveDraft(_ context.Context, tabID string, d *domain.RegistrationDraft) error {
	clone := *d
	s.drafts[tabID] = &clone
	return nil
}

func (s *stubTabStore) ClearDraft(_ context.Context, tabID string) error {
	delete(s.drafts, tabID)
	return nil
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

type stubRecorder struct {
	mu     sync.Mutex
	events []ports.ActivityInput
}

func (r *stubRecorder) Enqueue(in ports.ActivityInput) {
	r.mu.Lock()
	r.events = append(r.events, in)
	r.mu.Unlock()
}

func (r *stubRecorder) kinds() []domain.ActivityKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

type stubActivityRepo struct {
	insertErr error
	inserted  []*domain.ActivityEvent
}

func (r *stubActivityRepo) Insert(_ context.Context, e *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, email string, limit int) ([]domain.ActivityEvent, error) {
	var out []domain.ActivityEvent
	for _, e := range r.inserted {
		if e.UserEmail == email {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, email, kind string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, email, kind string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, email+":"+kind)
	return nil
}

// ---------------------------------------------------------------------------
// Validator
// ---------------------------------------------------------------------------

type stubValidator struct {
	err error
}

func (v stubValidator) Struct(any) error { return v.err }

var errBoom = errors.New("boom")
