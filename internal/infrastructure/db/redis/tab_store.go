package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

// TabStore keeps per-tab state under portal:tab:<id>:* keys. Every write
// refreshes the TTL so an idle tab expires as a whole.
type TabStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTabStore(client *redis.Client, ttl time.Duration) *TabStore {
	return &TabStore{client: client, ttl: ttl}
}

func tabKey(tabID, field string) string {
	return "portal:tab:" + tabID + ":" + field
}

func (s *TabStore) Completion(ctx context.Context, tabID string) (ports.Completion, error) {
	vals, err := s.client.MGet(ctx, tabKey(tabID, "complete"), tabKey(tabID, "score")).Result()
	if err != nil {
		return ports.Completion{}, fmt.Errorf("get completion: %w", err)
	}
	var c ports.Completion
	found := false
	if v, ok := vals[0].(string); ok {
		c.Complete = v == "true"
		found = true
	}
	if v, ok := vals[1].(string); ok {
		c.Score, _ = strconv.Atoi(v)
		found = true
	}
	if found {
		if err := s.touch(ctx, tabID); err != nil {
			return c, fmt.Errorf("touch tab: %w", err)
		}
	}
	return c, nil
}

func (s *TabStore) SetCompletion(ctx context.Context, tabID string, c ports.Completion) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, tabKey(tabID, "complete"), strconv.FormatBool(c.Complete), s.ttl)
		p.Set(ctx, tabKey(tabID, "score"), strconv.Itoa(c.Score), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set completion: %w", err)
	}
	return s.touch(ctx, tabID)
}

func (s *TabStore) ClearCompletion(ctx context.Context, tabID string) error {
	return s.client.Del(ctx, tabKey(tabID, "complete"), tabKey(tabID, "score")).Err()
}

func (s *TabStore) Engine(ctx context.Context, tabID string) (*ports.EngineState, error) {
	var st ports.EngineState
	found, err := s.getJSON(ctx, tabKey(tabID, "engine"), &st)
	if err != nil || !found {
		return nil, err
	}
	if err := s.touch(ctx, tabID); err != nil {
		return nil, fmt.Errorf("touch tab: %w", err)
	}
	return &st, nil
}

func (s *TabStore) SaveEngine(ctx context.Context, tabID string, state *ports.EngineState) error {
	return s.setJSON(ctx, tabID, "engine", state)
}

func (s *TabStore) ClearEngine(ctx context.Context, tabID string) error {
	return s.client.Del(ctx, tabKey(tabID, "engine")).Err()
}

func (s *TabStore) Draft(ctx context.Context, tabID string) (*domain.RegistrationDraft, error) {
	var d domain.RegistrationDraft
	found, err := s.getJSON(ctx, tabKey(tabID, "draft"), &d)
	if err != nil || !found {
		return nil, err
	}
	if err := s.touch(ctx, tabID); err != nil {
		return nil, fmt.Errorf("touch tab: %w", err)
	}
	return &d, nil
}

func (s *TabStore) SaveDraft(ctx context.Context, tabID string, d *domain.RegistrationDraft) error {
	return s.setJSON(ctx, tabID, "draft", d)
}

func (s *TabStore) ClearDraft(ctx context.Context, tabID string) error {
	return s.client.Del(ctx, tabKey(tabID, "draft")).Err()
}

func (s *TabStore) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *TabStore) setJSON(ctx context.Context, tabID, field string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", field, err)
	}
	if err := s.client.Set(ctx, tabKey(tabID, field), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	return s.touch(ctx, tabID)
}

// touch extends the TTL of every key of the tab.
func (s *TabStore) touch(ctx context.Context, tabID string) error {
	if s.ttl <= 0 {
		return nil
	}
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, f := range []string{"complete", "score", "engine", "draft"} {
			p.Expire(ctx, tabKey(tabID, f), s.ttl)
		}
		return nil
	})
	return err
}
