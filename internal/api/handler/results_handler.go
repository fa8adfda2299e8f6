package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

type ResultsHandler struct {
	assessment ports.AssessmentService
}

func NewResultsHandler(assessment ports.AssessmentService) *ResultsHandler {
	return &ResultsHandler{assessment: assessment}
}

// Get derives status, checklist and registration eligibility for a score.
// The score comes from the query; only the completion flag is read from the
// tab.
//
// @Summary      Readiness results
// @Tags         results
// @Produce      json
// @Param        score  query     int  true  "Readiness score (0-100)"
// @Success      200    {object}  resultsResponse
// @Failure      400    {object}  map[string]string
// @Router       /api/results [get]
func (h *ResultsHandler) Get(c echo.Context) error {
	score, err := strconv.Atoi(c.QueryParam("score"))
	if err != nil || !domain.ValidScore(score) {
		return domain.ErrInvalidScore
	}

	tab, err := ctxTab(c)
	if err != nil {
		return err
	}
	completion, err := h.assessment.Completion(c.Request().Context(), tab)
	if err != nil {
		return err
	}

	detail := domain.Classify(score).Detail()
	return c.JSON(http.StatusOK, resultsResponse{
		Score:       score,
		Status:      detail.Status,
		Title:       detail.Title,
		Description: detail.Description,
		Icon:        detail.Icon,
		Checklist:   domain.Checklist(score),
		Completed:   completion.Complete,
		CanRegister: domain.CanRegister(score, completion.Complete),
	})
}
