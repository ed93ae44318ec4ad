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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/enrich"
)

func TestCompareFunctionsRename(t *testing.T) {
	source := []datatypes.BackendFunction{
		{Name: "create_order", Parameters: []string{"user", "items"}},
	}
	target := []datatypes.BackendFunction{
		{Name: "createOrder", Parameters: []string{"items", "user"}},
	}

	c := NewSemanticComparator()
	out := c.compareFunctions(context.Background(), source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyFunctionRenamed, out[0].Type)
	require.NotNil(t, out[0].Confidence)
	assert.InDelta(t, 0.7, *out[0].Confidence, 1e-9)
}

func TestCompareFunctionsRenameNeedsSimilarParameters(t *testing.T) {
	source := []datatypes.BackendFunction{
		{Name: "create_order", Parameters: []string{"user", "items"}},
	}
	target := []datatypes.BackendFunction{
		{Name: "createOrder", Parameters: []string{"request"}},
	}

	c := NewSemanticComparator()
	out := c.compareFunctions(context.Background(), source, target)
	counts := typeCounts(out)
	assert.Equal(t, 1, counts[datatypes.DiscrepancyMissingFunction])
	assert.Zero(t, counts[datatypes.DiscrepancyFunctionRenamed])
}

func TestCompareFunctionsNoAdditionalEmission(t *testing.T) {
	// Target-only functions are additions the migration is free to make;
	// only missing source functions are reported.
	target := []datatypes.BackendFunction{{Name: "brand_new"}}

	c := NewSemanticComparator()
	out := c.compareFunctions(context.Background(), nil, target)
	assert.Empty(t, out)
}

func TestCompareFunctionsSignatureChange(t *testing.T) {
	source := []datatypes.BackendFunction{
		{Name: "send_email", Parameters: []string{"to", "subject", "body"}},
	}
	target := []datatypes.BackendFunction{
		{Name: "send_email", Parameters: []string{"to", "message"}},
	}

	c := NewSemanticComparator()
	out := c.compareFunctions(context.Background(), source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyFunctionSignatureChange, out[0].Type)
	assert.Equal(t, datatypes.SeverityWarning, out[0].Severity)
}

func TestCompareFunctionsParameterOrderIgnored(t *testing.T) {
	source := []datatypes.BackendFunction{
		{Name: "f", Parameters: []string{"a", "b"}},
	}
	target := []datatypes.BackendFunction{
		{Name: "f", Parameters: []string{"b", "a"}},
	}

	c := NewSemanticComparator()
	assert.Empty(t, c.compareFunctions(context.Background(), source, target))
}

func TestCompareLogicSummariesLiteralFallbackWithoutComparer(t *testing.T) {
	source := []datatypes.BackendFunction{
		{Name: "tax", LogicSummary: "flat 10 percent"},
	}
	target := []datatypes.BackendFunction{
		{Name: "tax", LogicSummary: "progressive brackets"},
	}

	c := NewSemanticComparator()
	out := c.compareFunctions(context.Background(), source, target)
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyLogicChange, out[0].Type)
	assert.Equal(t, datatypes.SeverityWarning, out[0].Severity)
	assert.Nil(t, out[0].Confidence)
}

func TestCompareLogicSummariesEmptyOrEqualSkipped(t *testing.T) {
	c := NewSemanticComparator()

	// One side empty.
	out := c.compareFunctions(context.Background(),
		[]datatypes.BackendFunction{{Name: "f", LogicSummary: "does things"}},
		[]datatypes.BackendFunction{{Name: "f"}})
	assert.Empty(t, out)

	// Equal after trimming.
	out = c.compareFunctions(context.Background(),
		[]datatypes.BackendFunction{{Name: "f", LogicSummary: " same "}},
		[]datatypes.BackendFunction{{Name: "f", LogicSummary: "same"}})
	assert.Empty(t, out)
}

func TestCompareLogicSummariesSemanticGrading(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		wantType   datatypes.DiscrepancyType
		wantSev    datatypes.Severity
		wantEmpty  bool
	}{
		{"critical below 0.5", 0.3, datatypes.DiscrepancyBusinessLogicChange, datatypes.SeverityCritical, false},
		{"warning below 0.7", 0.6, datatypes.DiscrepancyBusinessLogicChange, datatypes.SeverityWarning, false},
		{"similar enough", 0.85, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := enrich.NewMockAssessor(0.9)
			mock.SetLogicResult(enrich.LogicComparison{Similarity: tt.similarity, Confidence: 0.9})

			c := NewSemanticComparator(WithAssessor(mock))
			out := c.compareFunctions(context.Background(),
				[]datatypes.BackendFunction{{Name: "f", LogicSummary: "old behavior"}},
				[]datatypes.BackendFunction{{Name: "f", LogicSummary: "new behavior"}})

			if tt.wantEmpty {
				assert.Empty(t, out)
				return
			}
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantType, out[0].Type)
			assert.Equal(t, tt.wantSev, out[0].Severity)
			require.NotNil(t, out[0].Confidence)
			assert.InDelta(t, 0.9, *out[0].Confidence, 1e-9)
		})
	}
}

func TestCompareLogicSummariesComparerErrorFallsBackToLiteral(t *testing.T) {
	mock := enrich.NewMockAssessor(0.9)
	mock.SetLogicError(errors.New("model offline"))

	c := NewSemanticComparator(WithAssessor(mock))
	out := c.compareFunctions(context.Background(),
		[]datatypes.BackendFunction{{Name: "f", LogicSummary: "old"}},
		[]datatypes.BackendFunction{{Name: "f", LogicSummary: "new"}})
	require.Len(t, out, 1)
	assert.Equal(t, datatypes.DiscrepancyLogicChange, out[0].Type)
	assert.Nil(t, out[0].Confidence)
}
