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
	"fmt"
	"sync"
	"time"
)

// LogEntry is one timestamped line in a session's processing log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// String formats the entry the way session logs are rendered.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp.Format(time.RFC3339), e.Message)
}

// ProcessingLog is an append-only event list.
//
// The pipeline is the primary writer during a run; reporting code may
// keep appending after the session reaches a terminal state. Appends and
// reads are synchronized so those later appends cannot race readers.
type ProcessingLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewProcessingLog creates an empty log.
func NewProcessingLog() *ProcessingLog {
	return &ProcessingLog{}
}

// Append adds a formatted entry stamped with the current time.
func (l *ProcessingLog) Append(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{
		Timestamp: time.Now(),
		Message:   fmt.Sprintf(format, args...),
	})
}

// Entries returns a copy of all entries in append order.
func (l *ProcessingLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the rendered log lines in append order.
func (l *ProcessingLog) Messages() []string {
	entries := l.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}
