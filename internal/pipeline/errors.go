package pipeline

import "fmt"

// InputError indicates a malformed generation request. It is the only error
// class the pipeline surfaces to callers; every other failure mode degrades
// to a best-effort successful result.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid request: %s - %s", e.Field, e.Message)
}
