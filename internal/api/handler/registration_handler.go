package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/api/metrics"
	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

// RegistrationHandler serves the gated registration wizard.
type RegistrationHandler struct {
	service    ports.RegistrationService
	assessment ports.AssessmentService
}

func NewRegistrationHandler(svc ports.RegistrationService, assessment ports.AssessmentService) *RegistrationHandler {
	return &RegistrationHandler{service: svc, assessment: assessment}
}

// Gate reports whether the tab may open the wizard.
//
// @Summary      Registration gate
// @Tags         registration
// @Produce      json
// @Success      200  {object}  gateResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/register/gate [get]
func (h *RegistrationHandler) Gate(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.service.Gate(ctx, tab); err != nil {
		recordGate(err)
		return err
	}
	recordGate(nil)

	completion, err := h.assessment.Completion(ctx, tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gateResponse{Allowed: true, Score: completion.Score})
}

// Draft returns the steps submitted so far.
//
// @Summary      Registration draft
// @Tags         registration
// @Produce      json
// @Success      200  {object}  draftResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/register/draft [get]
func (h *RegistrationHandler) Draft(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.service.Gate(ctx, tab); err != nil {
		return err
	}
	d, err := h.service.Draft(ctx, tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDraftResponse(d))
}

// SubmitStep accepts one wizard step. The last step creates the account.
//
// @Summary      Submit a registration step
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        step  path      int  true  "Step number (1-3)"
// @Success      200   {object}  stepResponse
// @Success      201   {object}  stepResponse
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /api/register/steps/{step} [post]
func (h *RegistrationHandler) SubmitStep(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return domain.ErrUnknownStep
	}
	ctx := c.Request().Context()

	var result *ports.StepResult
	switch step {
	case domain.StepCompany:
		var req domain.CompanyStep
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		result, err = h.service.SubmitCompany(ctx, tab, req)
	case domain.StepContact:
		var req domain.ContactStep
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		result, err = h.service.SubmitContact(ctx, tab, req)
	case domain.StepDocuments:
		var req domain.DocumentsStep
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		result, err = h.service.SubmitDocuments(ctx, tab, req)
		recordRegistration(err)
	default:
		return domain.ErrUnknownStep
	}
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.User != nil {
		status = http.StatusCreated
	}
	return c.JSON(status, toStepResponse(result))
}

func recordGate(err error) {
	switch {
	case err == nil:
		metrics.RegistrationGateTotal.WithLabelValues("allowed").Inc()
	case errors.Is(err, domain.ErrAssessmentIncomplete):
		metrics.RegistrationGateTotal.WithLabelValues("incomplete").Inc()
	case errors.Is(err, domain.ErrNotEligible):
		metrics.RegistrationGateTotal.WithLabelValues("not_eligible").Inc()
	}
}

// recordRegistration counts final-step outcomes. Gate and validation
// failures never reached account creation and are not counted.
func recordRegistration(err error) {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrUserExists):
		metrics.RegistrationsTotal.WithLabelValues("exists").Inc()
	case errors.As(err, &ve),
		errors.Is(err, domain.ErrAssessmentIncomplete),
		errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrStepOutOfOrder):
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
	}
}
