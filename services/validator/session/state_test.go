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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateMachineAllowedTransitions(t *testing.T) {
	sm := NewStateMachine()

	assert.True(t, sm.CanTransition(StatePending, StateRunning))
	assert.True(t, sm.CanTransition(StateRunning, StateCompleted))
	assert.True(t, sm.CanTransition(StateRunning, StateError))
}

func TestStateMachineForbiddenTransitions(t *testing.T) {
	sm := NewStateMachine()

	forbidden := []struct{ from, to State }{
		{StatePending, StateCompleted},
		{StatePending, StateError},
		{StateCompleted, StateRunning},
		{StateCompleted, StateError},
		{StateError, StateRunning},
		{StateError, StateCompleted},
		{StateRunning, StatePending},
		{StatePending, StatePending},
	}
	for _, tt := range forbidden {
		assert.False(t, sm.CanTransition(tt.from, tt.to), "%s -> %s must be forbidden", tt.from, tt.to)
		err := sm.Transition(tt.from, tt.to)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	sm := NewStateMachine()
	for _, from := range AllStates() {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range AllStates() {
			assert.False(t, sm.CanTransition(from, to),
				"terminal state %s must not transition to %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatePending.IsTerminal())
	assert.False(t, StateRunning.IsTerminal())
	assert.True(t, StateCompleted.IsTerminal())
	assert.True(t, StateError.IsTerminal())
}
