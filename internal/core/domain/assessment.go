package domain

import "math"

// AnswerSet maps a question id to the selected option label.
type AnswerSet map[int]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// YesCount returns how many answers are exactly OptionYes.
func (a AnswerSet) YesCount() int {
	n := 0
	for _, v := range a {
		if v == OptionYes {
			n++
		}
	}
	return n
}

// Score computes the readiness percentage over the full catalog:
// round(100 × yes / QuestionCount). Unanswered questions count as "not yes".
func Score(a AnswerSet) int {
	return int(math.Round(100 * float64(a.YesCount()) / float64(QuestionCount)))
}
