package domain

// ReadinessStatus is the classification of a readiness score.
type ReadinessStatus string

const (
	StatusPassed   ReadinessStatus = "passed"
	StatusNearMiss ReadinessStatus = "near_miss"
	StatusFailed   ReadinessStatus = "failed"
)

// Score cut points.
const (
	PassingScore  = 70
	NearMissScore = 60
)

// StatusDetail is the fixed copy shown for a classification.
type StatusDetail struct {
	Status      ReadinessStatus `json:"status"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
}

var statusDetails = map[ReadinessStatus]StatusDetail{
	StatusPassed: {
		Status:      StatusPassed,
		Title:       "Congratulations! You're Ready",
		Description: "Your business meets the requirements to participate in AfCFTA trade. You can proceed with registration to access your dashboard.",
		Icon:        "check-circle-2",
	},
	StatusNearMiss: {
		Status:      StatusNearMiss,
		Title:       "Almost There!",
		Description: "You're very close to meeting the requirements. Review the areas below and complete the missing items to achieve at least 70%.",
		Icon:        "alert-circle",
	},
	StatusFailed: {
		Status:      StatusFailed,
		Title:       "Additional Requirements Needed",
		Description: "Your business needs to complete several requirements before participating in AfCFTA trade. We'll guide you through each step.",
		Icon:        "x-circle",
	},
}

// Classify maps a score to exactly one readiness status.
func Classify(score int) ReadinessStatus {
	switch {
	case score >= PassingScore:
		return StatusPassed
	case score >= NearMissScore:
		return StatusNearMiss
	default:
		return StatusFailed
	}
}

// Detail returns the title, description and icon for a status.
func (s ReadinessStatus) Detail() StatusDetail {
	return statusDetails[s]
}

// RequirementCheck is one entry of the requirement checklist.
type RequirementCheck struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
	Complete  bool    `json:"complete"`
}

type requirement struct {
	name      string
	threshold float64
}

// Thresholds are the published program values. They are not exact multiples
// of 100/12 and the last entry demands a perfect score; keep them as-is until
// the program owners confirm otherwise.
var requirements = []requirement{
	{"Business Registration", 8.33},
	{"Tax Identification", 16.66},
	{"VAT Registration", 25},
	{"Import/Export License", 33.33},
	{"AfCFTA Compliance", 41.66},
	{"Certificate of Origin", 50},
	{"Customs Registration", 58.33},
	{"Payment Processing", 66.66},
	{"Document Translation", 75},
	{"Liability Insurance", 83.33},
	{"Market Research", 91.66},
	{"Logistics Partnership", 100},
}

// Checklist derives the requirement checklist for a score.
func Checklist(score int) []RequirementCheck {
	out := make([]RequirementCheck, len(requirements))
	last := len(requirements) - 1
	for i, r := range requirements {
		complete := float64(score) >= r.threshold
		if i == last {
			complete = score == 100
		}
		out[i] = RequirementCheck{
			Index:     i + 1,
			Name:      r.name,
			Threshold: r.threshold,
			Complete:  complete,
		}
	}
	return out
}

// CanRegister reports whether the registration action is offered: the score
// passes and the assessment was completed in the current tab.
func CanRegister(score int, completed bool) bool {
	return completed && score >= PassingScore
}

// ValidScore reports whether score is a percentage in [0,100].
func ValidScore(score int) bool {
	return score >= 0 && score <= 100
}
