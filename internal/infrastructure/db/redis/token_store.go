package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps device session tokens without expiry. Each token also has
// a reverse key so bearer tokens can be checked against the device holding them.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func tokenKey(deviceID string) string {
	return "portal:device:" + deviceID + ":token"
}

// holderKey hashes the token so signed tokens do not end up in key names.
func holderKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "portal:token:" + hex.EncodeToString(sum[:]) + ":device"
}

func (s *TokenStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *TokenStore) Token(ctx context.Context, deviceID string) (string, error) {
	tok, err := s.get(ctx, tokenKey(deviceID))
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return tok, nil
}

func (s *TokenStore) DeviceForToken(ctx context.Context, token string) (string, error) {
	device, err := s.get(ctx, holderKey(token))
	if err != nil {
		return "", fmt.Errorf("get token holder: %w", err)
	}
	return device, nil
}

func (s *TokenStore) SetToken(ctx context.Context, deviceID, token string) error {
	old, err := s.Token(ctx, deviceID)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if old != "" {
			pipe.Del(ctx, holderKey(old))
		}
		pipe.Set(ctx, tokenKey(deviceID), token, 0)
		pipe.Set(ctx, holderKey(token), deviceID, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (s *TokenStore) ClearToken(ctx context.Context, deviceID string) error {
	old, err := s.Token(ctx, deviceID)
	if err != nil {
		return err
	}
	keys := []string{tokenKey(deviceID)}
	if old != "" {
		keys = append(keys, holderKey(old))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
