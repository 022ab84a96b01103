// SPDX-License-Identifier: MIT
// Package dataset: sentinel errors and the line-level ParseError.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine matches every *ParseError via errors.Is.
	ErrMalformedLine = errors.New("dataset: malformed line")

	// ErrTooFewFields indicates a data line with fewer than two tokens.
	ErrTooFewFields = errors.New("dataset: expected criminal and case ids")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataset: invalid option supplied")
)

// ParseError reports a data line that could not be turned into a Record.
type ParseError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Text is the raw line content.
	Text string

	// Err is the underlying cause: ErrTooFewFields or a *strconv.NumError.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedLine) true for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedLine }
