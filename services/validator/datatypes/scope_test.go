// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeValid(t *testing.T) {
	for _, scope := range AllScopes() {
		assert.True(t, scope.Valid(), "scope %s must be valid", scope)
	}
	assert.False(t, ValidationScope("everything").Valid())
	assert.False(t, ValidationScope("").Valid())
}

func TestWeightsForKnownScopes(t *testing.T) {
	w, ok := WeightsFor(ScopeDataStructure)
	require.True(t, ok)
	assert.Equal(t, CategoryWeights{Fields: 1.0}, w)

	w, ok = WeightsFor(ScopeFullSystem)
	require.True(t, ok)
	assert.Equal(t, CategoryWeights{UI: 0.3, Fields: 0.2, Functions: 0.3, Endpoints: 0.2}, w)

	_, ok = WeightsFor(ValidationScope("nope"))
	assert.False(t, ok)
}

func TestScopeWeightsSumToOne(t *testing.T) {
	for _, scope := range AllScopes() {
		w, ok := WeightsFor(scope)
		require.True(t, ok)
		sum := w.UI + w.Fields + w.Functions + w.Endpoints
		assert.InDelta(t, 1.0, sum, 1e-9, "weights for %s must sum to 1", scope)
	}
}

func TestSeverityValid(t *testing.T) {
	assert.True(t, SeverityCritical.Valid())
	assert.True(t, SeverityWarning.Valid())
	assert.True(t, SeverityInfo.Valid())
	assert.False(t, Severity("fatal").Valid())
}

func TestFloatHelper(t *testing.T) {
	p := Float(0.7)
	require.NotNil(t, p)
	assert.Equal(t, 0.7, *p)
}
