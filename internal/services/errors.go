package services

import (
	"errors"
	"fmt"
)

var ErrQuestionNotFound = errors.New("question not found")

// ValidationError reports a request field that cannot be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
