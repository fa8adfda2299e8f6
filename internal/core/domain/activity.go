package domain

import "time"

// ActivityKind names a portal event recorded in the activity log.
type ActivityKind string

const (
	ActivityRegistered          ActivityKind = "registered"
	ActivityLoggedIn            ActivityKind = "logged_in"
	ActivityLoggedOut           ActivityKind = "logged_out"
	ActivityProfileUpdated      ActivityKind = "profile_updated"
	ActivityAssessmentCompleted ActivityKind = "assessment_completed"
)

// ActivityEvent is an entry of a user's activity log.
type ActivityEvent struct {
	UserEmail string       `json:"-"`
	Kind      ActivityKind `json:"kind"`
	Detail    string       `json:"detail,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// DedupWindow is the span within which repeated events of the kind for the
// same user collapse into one entry.
func (k ActivityKind) DedupWindow() time.Duration {
	switch k {
	case ActivityRegistered:
		return 24 * time.Hour
	case ActivityAssessmentCompleted:
		return time.Minute
	case ActivityProfileUpdated:
		return 10 * time.Second
	default:
		return time.Second
	}
}

// DedupBucket returns the start of the window ts falls into.
func (k ActivityKind) DedupBucket(ts time.Time) time.Time {
	return ts.UTC().Truncate(k.DedupWindow())
}
