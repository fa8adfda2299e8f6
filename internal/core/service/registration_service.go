package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

const defaultRedirectAfter = 5 * time.Second

// StructValidator validates a tagged struct, returning *domain.ValidationError
// for field failures.
type StructValidator interface {
	Struct(s any) error
}

// RegistrationService gates the wizard on the tab's assessment result and
// accumulates the typed steps until the account can be created.
type RegistrationService struct {
	tabs          ports.TabStore
	portal        ports.PortalService
	validate      StructValidator
	redirectAfter time.Duration
	log           zerolog.Logger
}

func NewRegistrationService(
	tabs ports.TabStore,
	portal ports.PortalService,
	validate StructValidator,
	redirectAfter time.Duration,
	log zerolog.Logger,
) *RegistrationService {
	if redirectAfter <= 0 {
		redirectAfter = defaultRedirectAfter
	}
	return &RegistrationService{
		tabs:          tabs,
		portal:        portal,
		validate:      validate,
		redirectAfter: redirectAfter,
		log:           log,
	}
}

// Gate checks that the tab finished the assessment with a passing score.
func (s *RegistrationService) Gate(ctx context.Context, tabID string) error {
	c, err := s.tabs.Completion(ctx, tabID)
	if err != nil {
		return fmt.Errorf("read completion: %w", err)
	}
	if !c.Complete {
		return domain.ErrAssessmentIncomplete
	}
	if c.Score < domain.PassingScore {
		return domain.ErrNotEligible
	}
	return nil
}

func (s *RegistrationService) Draft(ctx context.Context, tabID string) (*domain.RegistrationDraft, error) {
	d, err := s.tabs.Draft(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if d == nil {
		d = &domain.RegistrationDraft{}
	}
	return d, nil
}

func (s *RegistrationService) SubmitCompany(ctx context.Context, tabID string, step domain.CompanyStep) (*ports.StepResult, error) {
	d, err := s.begin(ctx, tabID, domain.StepCompany, &step)
	if err != nil {
		return nil, err
	}
	d.Company = &step
	return s.accept(ctx, tabID, d, domain.StepCompany)
}

func (s *RegistrationService) SubmitContact(ctx context.Context, tabID string, step domain.ContactStep) (*ports.StepResult, error) {
	d, err := s.begin(ctx, tabID, domain.StepContact, &step)
	if err != nil {
		return nil, err
	}
	d.Contact = &step
	return s.accept(ctx, tabID, d, domain.StepContact)
}

// SubmitDocuments completes the wizard and registers the account. The draft
// is kept when registration fails so earlier steps can be corrected.
func (s *RegistrationService) SubmitDocuments(ctx context.Context, tabID string, step domain.DocumentsStep) (*ports.StepResult, error) {
	d, err := s.begin(ctx, tabID, domain.StepDocuments, &step)
	if err != nil {
		return nil, err
	}
	d.Documents = &step
	if _, err := s.accept(ctx, tabID, d, domain.StepDocuments); err != nil {
		return nil, err
	}

	user, err := s.portal.Register(ctx, d.RegisterInput())
	if err != nil {
		return nil, err
	}

	if err := s.tabs.ClearDraft(ctx, tabID); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear registration draft")
	}

	return &ports.StepResult{
		NextStep:      domain.StepCount,
		User:          user,
		Redirect:      "/login",
		RedirectAfter: s.redirectAfter,
	}, nil
}

func (s *RegistrationService) begin(ctx context.Context, tabID string, step int, payload any) (*domain.RegistrationDraft, error) {
	if err := s.Gate(ctx, tabID); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, err
	}
	d, err := s.Draft(ctx, tabID)
	if err != nil {
		return nil, err
	}
	if step > d.NextStep() {
		return nil, domain.ErrStepOutOfOrder
	}
	return d, nil
}

func (s *RegistrationService) accept(ctx context.Context, tabID string, d *domain.RegistrationDraft, step int) (*ports.StepResult, error) {
	if step > d.Step {
		d.Step = step
	}
	if err := s.tabs.SaveDraft(ctx, tabID, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return &ports.StepResult{NextStep: d.NextStep()}, nil
}
