package timer

import "fmt"

// ValidationError reports a rejected add-timer input. Field names the input
// that failed ("name" or "minutes").
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError is returned by Engine.Start while another timer is already
// counting down.
type ConflictError struct {
	ActiveID string
}

func (e *ConflictError) Error() string {
	return "another timer is active"
}
