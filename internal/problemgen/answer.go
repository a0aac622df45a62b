package problemgen

import (
	"strconv"
	"strings"
)

// Outcome classifies a submitted answer.
type Outcome int

const (
	// OutcomeNoInput means nothing was submitted. Callers must ignore the
	// submission entirely: no scoring and no feedback.
	OutcomeNoInput Outcome = iota

	// OutcomeCorrect means the submission parsed to the expected answer.
	OutcomeCorrect

	// OutcomeIncorrect means the submission parsed to anything else, or
	// did not parse at all.
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "no-input"
	}
}

// Evaluate compares the player's input against the expected answer.
//
// The input is parsed as a base-10 integer, so leading zeros are tolerated
// ("07" matches 7). There is no partial credit.
func Evaluate(submitted string, expected int) Outcome {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return OutcomeNoInput
	}

	n, err := strconv.Atoi(submitted)
	if err != nil || n != expected {
		return OutcomeIncorrect
	}
	return OutcomeCorrect
}
