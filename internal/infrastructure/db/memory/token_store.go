package memory

import (
	"context"
	"sync"
)

// TokenStore keeps device tokens for the lifetime of the process, indexed
// both ways so a presented token can be traced back to its device.
type TokenStore struct {
	mu      sync.RWMutex
	tokens  map[string]string
	devices map[string]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]string), devices: make(map[string]string)}
}

func (s *TokenStore) Token(_ context.Context, deviceID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[deviceID], nil
}

func (s *TokenStore) DeviceForToken(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.devices[token], nil
}

func (s *TokenStore) SetToken(_ context.Context, deviceID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.tokens[deviceID]; ok {
		delete(s.devices, old)
	}
	s.tokens[deviceID] = token
	s.devices[token] = deviceID
	return nil
}

func (s *TokenStore) ClearToken(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.tokens[deviceID]; ok {
		delete(s.devices, old)
	}
	delete(s.tokens, deviceID)
	return nil
}
