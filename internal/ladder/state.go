// Package ladder implements the word ladder rules: move validation,
// suggestions and win/loss adjudication.
package ladder

// Outcome represents the current state of a ladder session.
type Outcome int

const (
	// InProgress is the initial state; the player may keep submitting words.
	InProgress Outcome = iota
	// Won means the last accepted word was the target.
	Won
	// GaveUp means input ended before the ladder was solved.
	GaveUp
	// StepLimitExceeded means the step limit ran out before reaching the target.
	StepLimitExceeded
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case GaveUp:
		return "gave_up"
	case StepLimitExceeded:
		return "step_limit_exceeded"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != InProgress
}
