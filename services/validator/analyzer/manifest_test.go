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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

const jsonManifest = `{
  "ui_elements": [{"type": "button", "id": "submit", "text": "Submit"}],
  "functions": [{"name": "create_order", "parameters": ["user", "items"]}],
  "data_fields": [{"name": "user_id", "type": "int", "required": true}],
  "api_endpoints": [{"path": "/orders", "methods": ["POST"]}]
}`

const yamlManifest = `
ui_elements:
  - type: button
    id: submit
    text: Submit
functions:
  - name: create_order
    parameters: [user, items]
data_fields:
  - name: user_id
    type: int
    required: true
api_endpoints:
  - path: /orders
    methods: [POST]
`

func manifestInput(docs ...datatypes.Document) datatypes.AnalyzerInput {
	return datatypes.AnalyzerInput{
		InputType: datatypes.InputTypeManifest,
		Documents: docs,
	}
}

func TestManifestAnalyzerJSON(t *testing.T) {
	a := NewManifestAnalyzer()
	rep, err := a.Analyze(context.Background(),
		manifestInput(datatypes.Document{Name: "app.json", Data: []byte(jsonManifest)}),
		datatypes.ScopeFullSystem)
	require.NoError(t, err)

	require.Len(t, rep.UIElements, 1)
	assert.Equal(t, "submit", rep.UIElements[0].ID)
	require.Len(t, rep.Functions, 1)
	assert.Equal(t, []string{"user", "items"}, rep.Functions[0].Parameters)
	require.Len(t, rep.DataFields, 1)
	assert.True(t, rep.DataFields[0].Required)
	require.Len(t, rep.APIEndpoints, 1)
	assert.Equal(t, "POST:/orders", rep.APIEndpoints[0].Key())
	assert.Equal(t, "manifest", rep.Metadata["analyzer"])
	assert.Equal(t, 1, rep.Metadata["documents"])
}

func TestManifestAnalyzerYAML(t *testing.T) {
	a := NewManifestAnalyzer()
	rep, err := a.Analyze(context.Background(),
		manifestInput(datatypes.Document{Name: "app.yaml", Data: []byte(yamlManifest)}),
		datatypes.ScopeFullSystem)
	require.NoError(t, err)
	require.Len(t, rep.Functions, 1)
	assert.Equal(t, "create_order", rep.Functions[0].Name)
	require.Len(t, rep.UIElements, 1)
	assert.Equal(t, "Submit", rep.UIElements[0].Text)
}

func TestManifestAnalyzerMergesDocuments(t *testing.T) {
	a := NewManifestAnalyzer()
	rep, err := a.Analyze(context.Background(),
		manifestInput(
			datatypes.Document{Name: "ui.json", Data: []byte(`{"ui_elements":[{"type":"button","id":"a"}]}`)},
			datatypes.Document{Name: "api.json", Data: []byte(`{"api_endpoints":[{"path":"/x","methods":["GET"]}]}`)},
		),
		datatypes.ScopeFullSystem)
	require.NoError(t, err)
	assert.Len(t, rep.UIElements, 1)
	assert.Len(t, rep.APIEndpoints, 1)
	assert.Equal(t, 2, rep.Metadata["documents"])
}

func TestManifestAnalyzerUnknownExtensionFallback(t *testing.T) {
	a := NewManifestAnalyzer()

	// JSON body under an unknown name.
	rep, err := a.Analyze(context.Background(),
		manifestInput(datatypes.Document{Name: "manifest", Data: []byte(`{"functions":[{"name":"f"}]}`)}),
		datatypes.ScopeFullSystem)
	require.NoError(t, err)
	assert.Len(t, rep.Functions, 1)

	// YAML body under an unknown name.
	rep, err = a.Analyze(context.Background(),
		manifestInput(datatypes.Document{Name: "manifest", Data: []byte("functions:\n  - name: f\n")}),
		datatypes.ScopeFullSystem)
	require.NoError(t, err)
	assert.Len(t, rep.Functions, 1)
}

func TestManifestAnalyzerInvalidInput(t *testing.T) {
	a := NewManifestAnalyzer()

	tests := []struct {
		name  string
		input datatypes.AnalyzerInput
	}{
		{"no documents", manifestInput()},
		{"empty document", manifestInput(datatypes.Document{Name: "a.json"})},
		{"bad json", manifestInput(datatypes.Document{Name: "a.json", Data: []byte("{nope")})},
		{"bad yaml", manifestInput(datatypes.Document{Name: "a.yaml", Data: []byte("\t:bad")})},
		{"neither codec", manifestInput(datatypes.Document{Name: "blob", Data: []byte("\t{]")})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Analyze(context.Background(), tt.input, datatypes.ScopeFullSystem)
			require.Error(t, err)
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, KindInvalidInput, kind)
		})
	}
}

func TestManifestAnalyzerUnsupportedScope(t *testing.T) {
	a := NewManifestAnalyzer()
	_, err := a.Analyze(context.Background(),
		manifestInput(datatypes.Document{Name: "a.json", Data: []byte("{}")}),
		datatypes.ValidationScope("nope"))
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindUnsupportedScope, kind)
}

func TestManifestAnalyzerCanceledContext(t *testing.T) {
	a := NewManifestAnalyzer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx,
		manifestInput(datatypes.Document{Name: "a.json", Data: []byte("{}")}),
		datatypes.ScopeFullSystem)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindExtraction, kind)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.Retryable())
	assert.ErrorIs(t, err, context.Canceled)
}
