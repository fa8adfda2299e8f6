package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid session token")

	// ErrAnswerRequired is returned when advancing past an unanswered question.
	ErrAnswerRequired = errors.New("an answer is required before continuing")
	// ErrInvalidOption is returned when an answer is not one of the current
	// question's options.
	ErrInvalidOption = errors.New("answer is not an option of the current question")
	// ErrAssessmentIncomplete is returned by the registration gate when the
	// current tab has not finished the assessment.
	ErrAssessmentIncomplete = errors.New("please complete the readiness assessment first")
	// ErrNotEligible is returned by the registration gate when the stored
	// score is below the passing mark.
	ErrNotEligible = errors.New("your readiness score does not meet the registration requirement")
	// ErrStepOutOfOrder is returned when a wizard step is submitted before
	// the steps that precede it.
	ErrStepOutOfOrder = errors.New("registration step submitted out of order")
	ErrUnknownStep    = errors.New("unknown registration step")
	ErrInvalidScore   = errors.New("score must be an integer between 0 and 100")
)
