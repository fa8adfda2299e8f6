package ports

import (
	"context"
	"time"

	"github.com/tradeready/portal/internal/core/domain"
)

// StepResult describes the wizard state after a step was accepted.
type StepResult struct {
	NextStep int
	// User and Redirect are set once the final step registered the account.
	User          *domain.User
	Redirect      string
	RedirectAfter time.Duration
}

// RegistrationService gates and drives the registration wizard.
type RegistrationService interface {
	Gate(ctx context.Context, tabID string) error
	Draft(ctx context.Context, tabID string) (*domain.RegistrationDraft, error)
	SubmitCompany(ctx context.Context, tabID string, step domain.CompanyStep) (*StepResult, error)
	SubmitContact(ctx context.Context, tabID string, step domain.ContactStep) (*StepResult, error)
	SubmitDocuments(ctx context.Context, tabID string, step domain.DocumentsStep) (*StepResult, error)
}
