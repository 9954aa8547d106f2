package replay

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScenario is returned for a scenario that cannot be decoded or fails validation
	ErrInvalidScenario = errors.New("invalid replay scenario")

	// ErrAssertionFailed marks a step whose assertions did not hold
	ErrAssertionFailed = errors.New("assertion failed")
)

// StepError reports a step that could not be executed
type StepError struct {
	StepName  string
	StepIndex int
	Action    ActionType
	Message   string
	Err       error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %d '%s' (action: %s): %s: %v",
			e.StepIndex, e.StepName, e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("step %d '%s' (action: %s): %s",
		e.StepIndex, e.StepName, e.Action, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a StepError for step at index
func NewStepError(step Step, index int, message string, err error) *StepError {
	return &StepError{
		StepName:  step.Name,
		StepIndex: index,
		Action:    step.Action,
		Message:   message,
		Err:       err,
	}
}
