package handler

import (
	"time"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
)

// --- Assessment ---

type answerRequest struct {
	Option string `json:"option" validate:"required,max=64"`
}

type assessmentResponse struct {
	Question     domain.Question `json:"question"`
	CurrentIndex int             `json:"current_index"`
	Total        int             `json:"total"`
	Progress     float64         `json:"progress"`
	Selected     string          `json:"selected,omitempty"`
	Answered     int             `json:"answered"`
	IsFirst      bool            `json:"is_first"`
	IsLast       bool            `json:"is_last"`
}

type nextResponse struct {
	assessmentResponse
	Completed bool   `json:"completed"`
	Score     *int   `json:"score,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
}

type questionsResponse struct {
	Questions []domain.Question `json:"questions"`
	Total     int               `json:"total"`
}

func toAssessmentResponse(v *ports.AssessmentView) assessmentResponse {
	return assessmentResponse{
		Question:     v.Question,
		CurrentIndex: v.CurrentIndex,
		Total:        v.Total,
		Progress:     v.Progress,
		Selected:     v.Selected,
		Answered:     v.Answered,
		IsFirst:      v.CurrentIndex == 0,
		IsLast:       v.CurrentIndex == v.Total-1,
	}
}

// --- Results ---

type resultsResponse struct {
	Score       int                       `json:"score"`
	Status      domain.ReadinessStatus    `json:"status"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Icon        string                    `json:"icon"`
	Checklist   []domain.RequirementCheck `json:"checklist"`
	Completed   bool                      `json:"completed"`
	CanRegister bool                      `json:"can_register"`
}

// --- Registration ---

type gateResponse struct {
	Allowed bool `json:"allowed"`
	Score   int  `json:"score"`
}

type draftResponse struct {
	NextStep  int                   `json:"next_step"`
	Company   *domain.CompanyStep   `json:"company,omitempty"`
	Contact   *domain.ContactStep   `json:"contact,omitempty"`
	Documents *domain.DocumentsStep `json:"documents,omitempty"`
}

// toDraftResponse never echoes the password back to the client.
func toDraftResponse(d *domain.RegistrationDraft) draftResponse {
	resp := draftResponse{
		NextStep:  d.NextStep(),
		Company:   d.Company,
		Documents: d.Documents,
	}
	if d.Contact != nil {
		contact := *d.Contact
		contact.Password = ""
		resp.Contact = &contact
	}
	return resp
}

type stepResponse struct {
	NextStep        int          `json:"next_step"`
	Completed       bool         `json:"completed"`
	User            *domain.User `json:"user,omitempty"`
	Redirect        string       `json:"redirect,omitempty"`
	RedirectAfterMs int64        `json:"redirect_after_ms,omitempty"`
}

func toStepResponse(r *ports.StepResult) stepResponse {
	return stepResponse{
		NextStep:        r.NextStep,
		Completed:       r.User != nil,
		User:            r.User,
		Redirect:        r.Redirect,
		RedirectAfterMs: r.RedirectAfter.Milliseconds(),
	}
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string       `json:"token,omitempty"`
	User     *domain.User `json:"user,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

type messageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// --- Portal ---

type profileRequest struct {
	Name               *string `json:"name"                validate:"omitempty,min=1,max=200"`
	Company            *string `json:"company"             validate:"omitempty,max=200"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=64"`
	Country            *string `json:"country"             validate:"omitempty,max=100"`
	Industry           *string `json:"industry"            validate:"omitempty,max=100"`
	Address            *string `json:"address"             validate:"omitempty,max=300"`
	Phone              *string `json:"phone"               validate:"omitempty,max=32"`
	TaxID              *string `json:"tax_id"              validate:"omitempty,max=64"`
	VAT                *string `json:"vat"                 validate:"omitempty,max=64"`
	AvatarURL          *string `json:"avatar_url"          validate:"omitempty,url"`
}

func (r profileRequest) toPatch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Name:               r.Name,
		Company:            r.Company,
		RegistrationNumber: r.RegistrationNumber,
		Country:            r.Country,
		Industry:           r.Industry,
		Address:            r.Address,
		Phone:              r.Phone,
		TaxID:              r.TaxID,
		VAT:                r.VAT,
		AvatarURL:          r.AvatarURL,
	}
}

type dashboardStats struct {
	TotalProjects  int `json:"total_projects"`
	CompletedTasks int `json:"completed_tasks"`
	ActiveHours    int `json:"active_hours"`
	TeamMembers    int `json:"team_members"`
}

type assessmentSummary struct {
	Completed bool                   `json:"completed"`
	Score     int                    `json:"score,omitempty"`
	Status    domain.ReadinessStatus `json:"status,omitempty"`
}

type dashboardResponse struct {
	User       *domain.User           `json:"user"`
	Initials   string                 `json:"initials"`
	Assessment assessmentSummary      `json:"assessment"`
	Stats      dashboardStats         `json:"stats"`
	Activity   []domain.ActivityEvent `json:"activity"`
	ServerTime time.Time              `json:"server_time"`
}
