package service

import (
	"errors"
	"fmt"
)

// ErrExpenseNotFound is returned when an operation targets an id that was
// never created.
var ErrExpenseNotFound = errors.New("expense not found")

// ValidationError reports a field that violates an invariant the engine owns
// (amount sign, non-empty text). Shape checking of raw input belongs to the
// request adapter; the engine re-asserts these so it is safe to call directly.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
