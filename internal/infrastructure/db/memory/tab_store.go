package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

type tabEntry struct {
	completion ports.Completion
	engine     *ports.EngineState
	draft      *domain.RegistrationDraft
	touched    time.Time
}

// sweepEvery bounds how often writes scan for idle tabs.
const sweepEvery = time.Minute

// TabStore keeps per-tab state in memory. A tab idle for longer than ttl is
// dropped on its next access, and abandoned tabs are swept out during
// writes; a ttl of zero keeps entries forever.
type TabStore struct {
	mu        sync.Mutex
	tabs      map[string]*tabEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewTabStore(ttl time.Duration) *TabStore {
	return &TabStore{tabs: make(map[string]*tabEntry), ttl: ttl, now: time.Now}
}

// Len reports the number of tabs held, expired or not.
func (s *TabStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tabs)
}

// sweep drops every idle tab. Callers must hold mu.
func (s *TabStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < min(s.ttl, sweepEvery) {
		return
	}
	s.lastSweep = now
	for id, e := range s.tabs {
		if now.Sub(e.touched) > s.ttl {
			delete(s.tabs, id)
		}
	}
}

// entry returns the live entry for tabID, creating it when create is set.
// Callers must hold mu.
func (s *TabStore) entry(tabID string, create bool) *tabEntry {
	now := s.now()
	e, ok := s.tabs[tabID]
	if ok && s.ttl > 0 && now.Sub(e.touched) > s.ttl {
		delete(s.tabs, tabID)
		ok = false
	}
	if !ok {
		if !create {
			return nil
		}
		s.sweep(now)
		e = &tabEntry{}
		s.tabs[tabID] = e
	}
	e.touched = now
	return e
}

func (s *TabStore) Completion(_ context.Context, tabID string) (ports.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entry(tabID, false); e != nil {
		return e.completion, nil
	}
	return ports.Completion{}, nil
}

func (s *TabStore) SetCompletion(_ context.Context, tabID string, c ports.Completion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(tabID, true).completion = c
	return nil
}

func (s *TabStore) ClearCompletion(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entry(tabID, false); e != nil {
		e.completion = ports.Completion{}
	}
	return nil
}

func (s *TabStore) Engine(_ context.Context, tabID string) (*ports.EngineState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(tabID, false)
	if e == nil || e.engine == nil {
		return nil, nil
	}
	return &ports.EngineState{CurrentIndex: e.engine.CurrentIndex, Answers: e.engine.Answers.Clone()}, nil
}

func (s *TabStore) SaveEngine(_ context.Context, tabID string, state *ports.EngineState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(tabID, true).engine = &ports.EngineState{CurrentIndex: state.CurrentIndex, Answers: state.Answers.Clone()}
	return nil
}

func (s *TabStore) ClearEngine(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entry(tabID, false); e != nil {
		e.engine = nil
	}
	return nil
}

func (s *TabStore) Draft(_ context.Context, tabID string) (*domain.RegistrationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(tabID, false)
	if e == nil || e.draft == nil {
		return nil, nil
	}
	return cloneDraft(e.draft), nil
}

func (s *TabStore) SaveDraft(_ context.Context, tabID string, d *domain.RegistrationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(tabID, true).draft = cloneDraft(d)
	return nil
}

func (s *TabStore) ClearDraft(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entry(tabID, false); e != nil {
		e.draft = nil
	}
	return nil
}

func cloneDraft(d *domain.RegistrationDraft) *domain.RegistrationDraft {
	c := &domain.RegistrationDraft{Step: d.Step}
	if d.Company != nil {
		v := *d.Company
		c.Company = &v
	}
	if d.Contact != nil {
		v := *d.Contact
		c.Contact = &v
	}
	if d.Documents != nil {
		v := *d.Documents
		c.Documents = &v
	}
	return c
}
