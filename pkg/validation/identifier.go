// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for
// user-provided identifiers.
//
// Technology names and session IDs arrive from HTTP requests and CLI
// flags and end up in registry lookups, log lines and file names; these
// validators reject anything outside a conservative character set before
// it reaches those sinks.
package validation

import (
	"fmt"
	"regexp"
)

// technologyPattern matches technology identifiers such as "flask",
// "react18" or "spring-boot". Lowercase, starts with a letter, max 32
// characters.
var technologyPattern = regexp.MustCompile(`^[a-z][a-z0-9_\-]{0,31}$`)

// sessionIDPattern matches UUID-shaped session identifiers.
var sessionIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateTechnology validates a technology identifier.
//
// Returns an error for empty strings and anything outside
// [a-z][a-z0-9_-]{0,31}.
func ValidateTechnology(technology string) error {
	if technology == "" {
		return fmt.Errorf("technology cannot be empty")
	}
	if !technologyPattern.MatchString(technology) {
		return fmt.Errorf("invalid technology identifier: %q (must be 1-32 lowercase alphanumeric chars, underscores, or hyphens, starting with a letter)", technology)
	}
	return nil
}

// ValidateSessionID validates a validation session identifier.
func ValidateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}
	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("invalid session id format: %q", id)
	}
	return nil
}
