// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package analyzer

import (
	"errors"
	"fmt"
)

// ErrUnknownAnalyzer is returned when no analyzer is registered for a
// (technology, input type) key.
var ErrUnknownAnalyzer = errors.New("no analyzer registered")

// ErrorKind is the closed set of analyzer failure categories.
//
// Callers branch on the kind, not on message text: unsupported-scope and
// invalid-input failures are non-recoverable for the request, while
// extraction failures may be retried by the orchestrating caller.
type ErrorKind string

const (
	// KindUnsupportedScope means the analyzer cannot serve the requested
	// validation scope. Pick another analyzer; retrying is pointless.
	KindUnsupportedScope ErrorKind = "unsupported_scope"

	// KindInvalidInput means required input documents are missing or
	// malformed. The user must resubmit; retrying is pointless.
	KindInvalidInput ErrorKind = "invalid_input"

	// KindExtraction means the analyzer itself failed. Retryable.
	KindExtraction ErrorKind = "extraction"
)

// Error is a categorized analyzer failure.
type Error struct {
	Kind     ErrorKind
	Analyzer string
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("analyzer %s: %s: %s", e.Analyzer, e.Kind, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure may succeed on retry.
func (e *Error) Retryable() bool {
	return e.Kind == KindExtraction
}

// NewUnsupportedScope builds an unsupported-scope error.
func NewUnsupportedScope(analyzer, message string) *Error {
	return &Error{Kind: KindUnsupportedScope, Analyzer: analyzer, Message: message}
}

// NewInvalidInput builds an invalid-input error.
func NewInvalidInput(analyzer, message string, cause error) *Error {
	return &Error{Kind: KindInvalidInput, Analyzer: analyzer, Message: message, Err: cause}
}

// NewExtraction builds a retryable extraction error.
func NewExtraction(analyzer, message string, cause error) *Error {
	return &Error{Kind: KindExtraction, Analyzer: analyzer, Message: message, Err: cause}
}

// KindOf extracts the failure kind from an error chain. The second
// return value is false when err is not an analyzer error.
func KindOf(err error) (ErrorKind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}
