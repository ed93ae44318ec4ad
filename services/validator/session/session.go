// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// ValidationSession wraps one validation request through its lifecycle.
//
// The session is mutated only by the pipeline that owns it. Once Result
// is set the session is immutable apart from processing-log appends.
type ValidationSession struct {
	ID      string                      `json:"id"`
	Request datatypes.ValidationRequest `json:"request"`
	State   State                       `json:"state"`

	// Source and Target are populated by the extraction stages.
	Source *datatypes.AbstractRepresentation `json:"source,omitempty"`
	Target *datatypes.AbstractRepresentation `json:"target,omitempty"`

	// Result is nil until the session reaches a terminal state, then
	// exactly one result is attached and never replaced.
	Result *datatypes.ValidationResult `json:"result,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	log *ProcessingLog
}

// NewSession creates a pending session for the request.
func NewSession(req datatypes.ValidationRequest) *ValidationSession {
	return &ValidationSession{
		ID:        uuid.NewString(),
		Request:   req,
		State:     StatePending,
		CreatedAt: time.Now(),
		log:       NewProcessingLog(),
	}
}

// Log returns the session's processing log.
func (s *ValidationSession) Log() *ProcessingLog {
	return s.log
}

// setResult attaches the single terminal result. A second call is a
// programming error and is ignored to preserve the at-most-one-result
// invariant.
func (s *ValidationSession) setResult(result *datatypes.ValidationResult) {
	if s.Result != nil {
		return
	}
	s.Result = result
}
