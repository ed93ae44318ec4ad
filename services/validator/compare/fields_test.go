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

func TestCompareDataFieldsTypeMismatch(t *testing.T) {
	source := []datatypes.DataField{{Name: "amount", Type: "decimal", Required: true}}
	target := []datatypes.DataField{{Name: "amount", Type: "float", Required: true}}

	out := compareDataFields(source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyTypeMismatch, out[0].Type)
	assert.Equal(t, datatypes.SeverityCritical, out[0].Severity)
}

func TestCompareDataFieldsConstraintRelaxedIsCritical(t *testing.T) {
	source := []datatypes.DataField{{Name: "email", Type: "string", Required: true}}
	target := []datatypes.DataField{{Name: "email", Type: "string", Required: false}}

	out := compareDataFields(source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyConstraintChange, out[0].Type)
	assert.Equal(t, datatypes.SeverityCritical, out[0].Severity)
}

func TestCompareDataFieldsConstraintTightenedIsWarning(t *testing.T) {
	source := []datatypes.DataField{{Name: "email", Type: "string", Required: false}}
	target := []datatypes.DataField{{Name: "email", Type: "string", Required: true}}

	out := compareDataFields(source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyConstraintChange, out[0].Type)
	assert.Equal(t, datatypes.SeverityWarning, out[0].Severity)
}

func TestCompareDataFieldsRenameRequiresSameType(t *testing.T) {
	source := []datatypes.DataField{{Name: "user_id", Type: "int"}}
	target := []datatypes.DataField{{Name: "userId", Type: "string"}}

	out := compareDataFields(source, target)
	counts := typeCounts(out)
	assert.Equal(t, 1, counts[datatypes.DiscrepancyMissingField])
	assert.Equal(t, 1, counts[datatypes.DiscrepancyAdditionalField])
	assert.Zero(t, counts[datatypes.DiscrepancyFieldRenamed])
}

func TestCompareDataFieldsBothDirections(t *testing.T) {
	source := []datatypes.DataField{{Name: "legacy_flag", Type: "bool"}}
	target := []datatypes.DataField{{Name: "tenant", Type: "string"}}

	out := compareDataFields(source, target)
	require.Len(t, out, 2)

	missing := findByType(t, out, datatypes.DiscrepancyMissingField)
	assert.Equal(t, datatypes.SeverityCritical, missing.Severity)
	assert.Equal(t, "legacy_flag", missing.SourceElement)

	additional := findByType(t, out, datatypes.DiscrepancyAdditionalField)
	assert.Equal(t, datatypes.SeverityInfo, additional.Severity)
	assert.Equal(t, "tenant", additional.TargetElement)
}
