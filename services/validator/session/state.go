// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session drives the end-to-end validation pipeline.
//
// A ValidationSession wraps one validation request and moves through a
// small state machine:
//
//	PENDING → RUNNING            : pipeline picked up the request
//	RUNNING → COMPLETED          : all stages finished, result attached
//	RUNNING → ERROR              : a stage failed, error result attached
//
// COMPLETED and ERROR are terminal. Every terminal session carries
// exactly one ValidationResult, so callers never special-case a missing
// result.
//
// Thread Safety:
//
//	A session is owned exclusively by the pipeline executing it; no
//	other goroutine may mutate it. The processing log accepts appends
//	after completion (for reporting) and is internally synchronized.
package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for transitions outside the state
// machine's transition table.
var ErrInvalidTransition = errors.New("invalid session state transition")

// State is one validation session lifecycle state.
type State string

const (
	// StatePending is the initial state at request intake.
	StatePending State = "pending"

	// StateRunning covers all pipeline stages (extract, compare, score).
	StateRunning State = "running"

	// StateCompleted is the terminal success state.
	StateCompleted State = "completed"

	// StateError is the terminal failure state.
	StateError State = "error"
)

// String returns the state identifier.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether the state is terminal.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateError
}

// AllStates returns every session state.
func AllStates() []State {
	return []State{StatePending, StateRunning, StateCompleted, StateError}
}

// StateMachine enforces valid session state transitions.
//
// Thread Safety: StateMachine is immutable and safe for concurrent use.
type StateMachine struct {
	transitions map[State]map[State]bool
}

// NewStateMachine creates the session state machine.
func NewStateMachine() *StateMachine {
	sm := &StateMachine{transitions: make(map[State]map[State]bool)}
	for _, state := range AllStates() {
		sm.transitions[state] = make(map[State]bool)
	}
	sm.transitions[StatePending][StateRunning] = true
	sm.transitions[StateRunning][StateCompleted] = true
	sm.transitions[StateRunning][StateError] = true
	return sm
}

// CanTransition reports whether from → to is a legal transition.
func (sm *StateMachine) CanTransition(from, to State) bool {
	return sm.transitions[from][to]
}

// Transition validates from → to, returning ErrInvalidTransition for
// moves outside the transition table.
func (sm *StateMachine) Transition(from, to State) error {
	if !sm.CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}
	return nil
}
