package navigator

import "fmt"

// InvalidTransitionError indicates a transition whose precondition failed.
// The navigator state is unchanged; callers may treat it as a no-op.
type InvalidTransitionError struct {
	Op     string
	From   Mode
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s from %s: %s", e.Op, e.From, e.Reason)
}
