package ports

import (
	"context"

	"github.com/tradeready/portal/internal/core/domain"
)

// TokenStore keeps the session token of a device (durable, no expiry).
// Token returns "" with a nil error when the device has no token, and
// DeviceForToken returns "" when the token is not held by any device.
type TokenStore interface {
	Token(ctx context.Context, deviceID string) (string, error)
	DeviceForToken(ctx context.Context, token string) (string, error)
	SetToken(ctx context.Context, deviceID, token string) error
	ClearToken(ctx context.Context, deviceID string) error
}

// Completion is the tab-scoped assessment completion marker.
type Completion struct {
	Complete bool
	Score    int
}

// EngineState is the tab-scoped assessment walk.
type EngineState struct {
	CurrentIndex int              `json:"current_index"`
	Answers      domain.AnswerSet `json:"answers"`
}

// TabStore keeps ephemeral per-tab state. Entries disappear when the tab
// session expires. Missing entries are reported as zero values.
type TabStore interface {
	Completion(ctx context.Context, tabID string) (Completion, error)
	SetCompletion(ctx context.Context, tabID string, c Completion) error
	ClearCompletion(ctx context.Context, tabID string) error

	Engine(ctx context.Context, tabID string) (*EngineState, error)
	SaveEngine(ctx context.Context, tabID string, state *EngineState) error
	ClearEngine(ctx context.Context, tabID string) error

	Draft(ctx context.Context, tabID string) (*domain.RegistrationDraft, error)
	SaveDraft(ctx context.Context, tabID string, draft *domain.RegistrationDraft) error
	ClearDraft(ctx context.Context, tabID string) error
}
