// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bmi

import (
	"errors"
	"fmt"
)

// InvalidInputMessage is the single message shown for any rejected input
const InvalidInputMessage = "Please enter a valid (non-negative) input numbers!"

// ErrInvalidInput is the only error kind the calculator produces
var ErrInvalidInput = errors.New(InvalidInputMessage)

// ValidationError records which field was rejected and why.
// It always matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field  Axis
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Message returns the text to surface to the user for err.
// Validation failures collapse to InvalidInputMessage.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidInput) {
		return InvalidInputMessage
	}
	return err.Error()
}
