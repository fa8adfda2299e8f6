package domain

// Answer labels shared by several questions. Only OptionYes counts toward
// the score.
const (
	OptionYes        = "Yes"
	OptionNo         = "No"
	OptionInProgress = "In Progress"
)

// Question is a single readiness question. The catalog is fixed at compile time.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func opts(third string) []string { return []string{OptionYes, OptionNo, third} }

var questions = []Question{
	{ID: 1, Prompt: "Does your business have a valid business registration certificate?", Options: opts(OptionInProgress)},
	{ID: 2, Prompt: "Do you have a Tax Identification Number (TIN)?", Options: opts(OptionInProgress)},
	{ID: 3, Prompt: "Is your business registered for VAT?", Options: opts("Not Applicable")},
	{ID: 4, Prompt: "Do you have an import/export license?", Options: opts(OptionInProgress)},
	{ID: 5, Prompt: "Are your products/services compliant with AfCFTA standards?", Options: opts("Under Review")},
	{ID: 6, Prompt: "Do you have a certificate of origin for your products?", Options: opts(OptionInProgress)},
	{ID: 7, Prompt: "Have you completed customs registration?", Options: opts(OptionInProgress)},
	{ID: 8, Prompt: "Do you have international payment processing capabilities?", Options: opts("Setting Up")},
	{ID: 9, Prompt: "Are your business documents translated into official AU languages (if required)?", Options: opts("Not Required")},
	{ID: 10, Prompt: "Do you have liability insurance for cross-border trade?", Options: opts(OptionInProgress)},
	{ID: 11, Prompt: "Have you identified target markets within AfCFTA member states?", Options: opts("Researching")},
	{ID: 12, Prompt: "Do you have a logistics partner for cross-border shipments?", Options: opts("In Negotiation")},
}

// QuestionCount is the number of questions in the assessment.
const QuestionCount = 12

// Questions returns a copy of the ordered question catalog.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// QuestionAt returns the question at zero-based position idx.
func QuestionAt(idx int) (Question, bool) {
	if idx < 0 || idx >= len(questions) {
		return Question{}, false
	}
	q := questions[idx]
	q.Options = append([]string(nil), q.Options...)
	return q, true
}

// HasOption reports whether label is one of the question's options.
func (q Question) HasOption(label string) bool {
	for _, o := range q.Options {
		if o == label {
			return true
		}
	}
	return false
}
