package handler

import (
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

const dashboardActivityLimit = 10

// PortalHandler serves the signed-in area. Every route sits behind Guard.
type PortalHandler struct {
	portal     ports.PortalService
	assessment ports.AssessmentService
	activity   ports.ActivityService
	log        zerolog.Logger
}

func NewPortalHandler(
	portal ports.PortalService,
	assessment ports.AssessmentService,
	activity ports.ActivityService,
	log zerolog.Logger,
) *PortalHandler {
	return &PortalHandler{portal: portal, assessment: assessment, activity: activity, log: log}
}

// Me returns the signed-in user.
//
// @Summary      Current user
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/portal/me [get]
func (h *PortalHandler) Me(c echo.Context) error {
	_, user, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Dashboard returns the user, the tab's assessment summary and recent activity.
//
// @Summary      Dashboard
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/portal/dashboard [get]
func (h *PortalHandler) Dashboard(c echo.Context) error {
	_, user, err := ctxSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	resp := dashboardResponse{
		User:       user,
		Initials:   initials(user.Name),
		Stats:      dashboardStats{TotalProjects: 12, CompletedTasks: 87, ActiveHours: 156, TeamMembers: 8},
		Activity:   []domain.ActivityEvent{},
		ServerTime: time.Now().UTC(),
	}

	if tab, err := ctxTab(c); err == nil {
		if completion, err := h.assessment.Completion(ctx, tab); err == nil && completion.Complete {
			resp.Assessment = assessmentSummary{
				Completed: true,
				Score:     completion.Score,
				Status:    domain.Classify(completion.Score),
			}
		}
	}

	if h.activity != nil {
		events, err := h.activity.Recent(ctx, user.Email, dashboardActivityLimit)
		if err != nil {
			h.log.Warn().Err(err).Msg("dashboard: activity unavailable")
		} else if events != nil {
			resp.Activity = events
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateProfile applies a partial profile update.
//
// @Summary      Update profile
// @Tags         portal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /api/portal/profile [patch]
func (h *PortalHandler) UpdateProfile(c echo.Context) error {
	session, user, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.portal.UpdateProfile(c.Request().Context(), user.ID, req.toPatch())
	if err != nil {
		return err
	}
	session.Replace(updated)
	return c.JSON(http.StatusOK, updated)
}

// initials builds the avatar fallback from the first letter of each word.
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}
