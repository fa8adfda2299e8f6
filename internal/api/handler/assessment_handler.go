package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/api/metrics"
	"github.com/tradeready/portal/internal/api/middleware"
	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
	"github.com/tradeready/portal/internal/core/service"
)

// AssessmentHandler drives the readiness quiz of the requesting tab.
type AssessmentHandler struct {
	service ports.AssessmentService
	portal  ports.PortalService
	log     zerolog.Logger
}

func NewAssessmentHandler(svc ports.AssessmentService, portal ports.PortalService, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{service: svc, portal: portal, log: log}
}

// Questions lists the question catalog.
//
// @Summary      List assessment questions
// @Tags         assessment
// @Produce      json
// @Success      200  {object}  questionsResponse
// @Router       /api/assessment/questions [get]
func (h *AssessmentHandler) Questions(c echo.Context) error {
	qs := domain.Questions()
	return c.JSON(http.StatusOK, questionsResponse{Questions: qs, Total: len(qs)})
}

// Current returns the question the tab is on.
//
// @Summary      Current assessment question
// @Tags         assessment
// @Produce      json
// @Success      200  {object}  assessmentResponse
// @Router       /api/assessment [get]
func (h *AssessmentHandler) Current(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	v, err := h.service.Current(c.Request().Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssessmentResponse(v))
}

// Answer records the option chosen for the current question.
//
// @Summary      Answer the current question
// @Tags         assessment
// @Accept       json
// @Produce      json
// @Param        body  body      answerRequest  true  "Chosen option"
// @Success      200   {object}  assessmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /api/assessment/answer [put]
func (h *AssessmentHandler) Answer(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	v, err := h.service.Answer(c.Request().Context(), tab, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssessmentResponse(v))
}

// Next advances to the next question, or finalizes on the last one.
//
// @Summary      Advance the assessment
// @Tags         assessment
// @Produce      json
// @Success      200  {object}  nextResponse
// @Failure      422  {object}  map[string]string
// @Router       /api/assessment/next [post]
func (h *AssessmentHandler) Next(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	v, result, err := h.service.Next(c.Request().Context(), tab, h.signedInEmail(c))
	if err != nil {
		return err
	}

	resp := nextResponse{assessmentResponse: toAssessmentResponse(v)}
	if result != nil {
		score := result.Score
		resp.Completed = true
		resp.Score = &score
		resp.Redirect = result.Redirect
		metrics.AssessmentsCompletedTotal.WithLabelValues(string(domain.Classify(score))).Inc()
		metrics.AssessmentScore.Observe(float64(score))
	}
	return c.JSON(http.StatusOK, resp)
}

// Back returns to the previous question.
//
// @Summary      Go back one question
// @Tags         assessment
// @Produce      json
// @Success      200  {object}  assessmentResponse
// @Router       /api/assessment/back [post]
func (h *AssessmentHandler) Back(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	v, err := h.service.Back(c.Request().Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAssessmentResponse(v))
}

// Restart discards the tab's answers and completion so the quiz can be retaken.
//
// @Summary      Restart the assessment
// @Tags         assessment
// @Success      204
// @Router       /api/assessment [delete]
func (h *AssessmentHandler) Restart(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	if err := h.service.Restart(c.Request().Context(), tab); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// signedInEmail returns the email of the device's user, or "" for anonymous
// visitors. Lookup failures only cost the activity entry.
func (h *AssessmentHandler) signedInEmail(c echo.Context) string {
	if h.portal == nil {
		return ""
	}
	s := service.NewSession(h.portal, middleware.DeviceID(c), "")
	if err := s.Resolve(c.Request().Context()); err != nil {
		if !errors.Is(err, c.Request().Context().Err()) {
			h.log.Warn().Err(err).Msg("session lookup failed")
		}
		return ""
	}
	if u := s.Current(); u != nil {
		return u.Email
	}
	return ""
}
