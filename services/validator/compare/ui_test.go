// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

func TestCompareUIElementsRename(t *testing.T) {
	// "abcd" vs "abcde" sits exactly on the 0.8 text similarity edge, so
	// the pair must be treated as a rename, not missing plus additional.
	source := []datatypes.UIElement{{Type: "button", Text: "abcd"}}
	target := []datatypes.UIElement{{Type: "button", Text: "abcde"}}

	out := compareUIElements(source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyUIElementRenamed, out[0].Type)
	assert.Equal(t, datatypes.SeverityWarning, out[0].Severity)
	require.NotNil(t, out[0].Confidence)
	assert.InDelta(t, 0.7, *out[0].Confidence, 1e-9)
}

func TestCompareUIElementsBelowThresholdIsMissingPlusAdditional(t *testing.T) {
	// "abc" vs "abcd" scores 0.75, below the edge.
	source := []datatypes.UIElement{{Type: "button", Text: "abc"}}
	target := []datatypes.UIElement{{Type: "button", Text: "abcd"}}

	out := compareUIElements(source, target)
	counts := typeCounts(out)
	assert.Equal(t, 1, counts[datatypes.DiscrepancyMissingUIElement])
	assert.Equal(t, 1, counts[datatypes.DiscrepancyAdditionalUIElement])
}

func TestCompareUIElementsTypeMustMatchForRename(t *testing.T) {
	source := []datatypes.UIElement{{Type: "button", Text: "Submit"}}
	target := []datatypes.UIElement{{Type: "link", Text: "Submit"}}

	out := compareUIElements(source, target)
	counts := typeCounts(out)
	assert.Equal(t, 1, counts[datatypes.DiscrepancyMissingUIElement])
	assert.Equal(t, 1, counts[datatypes.DiscrepancyAdditionalUIElement])
	assert.Zero(t, counts[datatypes.DiscrepancyUIElementRenamed])
}

func TestCompareUIElementsPositionChange(t *testing.T) {
	source := []datatypes.UIElement{{
		Type: "button", ID: "go",
		Position: &datatypes.Position{X: 10, Y: 10, Width: 80, Height: 24},
	}}
	target := []datatypes.UIElement{{
		Type: "button", ID: "go",
		Position: &datatypes.Position{X: 300, Y: 10, Width: 80, Height: 24},
	}}

	out := compareUIElements(source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyUIPositionChange, out[0].Type)
	assert.Equal(t, datatypes.SeverityWarning, out[0].Severity)
}

func TestCompareUIElementsMissingPositionIsNotAChange(t *testing.T) {
	source := []datatypes.UIElement{{
		Type: "button", ID: "go",
		Position: &datatypes.Position{X: 10, Y: 10},
	}}
	target := []datatypes.UIElement{{Type: "button", ID: "go"}}

	assert.Empty(t, compareUIElements(source, target))
}

func TestCompareUIElementsMissingIsCritical(t *testing.T) {
	source := []datatypes.UIElement{{Type: "input", ID: "email"}}

	out := compareUIElements(source, nil)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyMissingUIElement, out[0].Type)
	assert.Equal(t, datatypes.SeverityCritical, out[0].Severity)
	assert.Equal(t, "email", out[0].SourceElement)
}
