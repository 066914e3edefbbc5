package wizard

import "errors"

// ValidationError is a user-correctable gate failure. It blocks the step
// transition, names the offending category, and never partially persists.
type ValidationError struct {
	Category string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrWrongInput means the gate received an input payload of the wrong
	// shape for the current step.
	ErrWrongInput = errors.New("input does not match the current step")

	// ErrForwardRetreat means a retreat targeted a step ahead of the
	// current one. Going forward always runs the gate.
	ErrForwardRetreat = errors.New("cannot retreat to a later step")

	// ErrLastStep means advance was called on the final step.
	ErrLastStep = errors.New("already at the final step")

	// ErrNoQuiz means a quiz click arrived before the quiz step started.
	ErrNoQuiz = errors.New("quiz has not been started")
)
