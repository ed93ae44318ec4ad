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
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

const manifestAnalyzerName = "manifest"

// ManifestAnalyzer loads pre-extracted feature manifests.
//
// A manifest is a JSON or YAML document listing the ui_elements,
// functions, data_fields and api_endpoints of one system. The analyzer
// does not extract features from source code or screenshots; it gives
// pipelines, tests and the CLI a deterministic, technology-agnostic
// analyzer for systems whose features were extracted elsewhere.
//
// Multiple documents for one invocation accumulate into a single
// representation.
type ManifestAnalyzer struct{}

// NewManifestAnalyzer creates a manifest analyzer.
func NewManifestAnalyzer() *ManifestAnalyzer {
	return &ManifestAnalyzer{}
}

// Name implements Analyzer.
func (a *ManifestAnalyzer) Name() string {
	return manifestAnalyzerName
}

// SupportsScope implements Analyzer. Manifests may describe any feature
// category, so every scope is supported.
func (a *ManifestAnalyzer) SupportsScope(scope datatypes.ValidationScope) bool {
	return scope.Valid()
}

// Analyze implements Analyzer.
func (a *ManifestAnalyzer) Analyze(ctx context.Context, input datatypes.AnalyzerInput,
	scope datatypes.ValidationScope) (*datatypes.AbstractRepresentation, error) {

	if !a.SupportsScope(scope) {
		return nil, NewUnsupportedScope(manifestAnalyzerName,
			fmt.Sprintf("scope %q is not supported", scope))
	}
	if len(input.Documents) == 0 {
		return nil, NewInvalidInput(manifestAnalyzerName, "no manifest documents provided", nil)
	}

	rep := &datatypes.AbstractRepresentation{
		Metadata: map[string]any{
			"analyzer":  manifestAnalyzerName,
			"documents": len(input.Documents),
		},
	}
	for _, doc := range input.Documents {
		if err := ctx.Err(); err != nil {
			return nil, NewExtraction(manifestAnalyzerName, "analysis canceled", err)
		}
		part, err := decodeManifest(doc)
		if err != nil {
			return nil, err
		}
		rep.Merge(part)
	}
	return rep, nil
}

// decodeManifest decodes one document, choosing the codec by file
// extension and falling back to JSON-then-YAML for unknown names.
func decodeManifest(doc datatypes.Document) (*datatypes.AbstractRepresentation, error) {
	if len(doc.Data) == 0 {
		return nil, NewInvalidInput(manifestAnalyzerName,
			fmt.Sprintf("manifest %q is empty", doc.Name), nil)
	}

	var rep datatypes.AbstractRepresentation
	name := strings.ToLower(doc.Name)
	switch {
	case strings.HasSuffix(name, ".json"):
		if err := json.Unmarshal(doc.Data, &rep); err != nil {
			return nil, NewInvalidInput(manifestAnalyzerName,
				fmt.Sprintf("manifest %q is not valid JSON", doc.Name), err)
		}
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		if err := yaml.Unmarshal(doc.Data, &rep); err != nil {
			return nil, NewInvalidInput(manifestAnalyzerName,
				fmt.Sprintf("manifest %q is not valid YAML", doc.Name), err)
		}
	default:
		if jsonErr := json.Unmarshal(doc.Data, &rep); jsonErr != nil {
			if yamlErr := yaml.Unmarshal(doc.Data, &rep); yamlErr != nil {
				return nil, NewInvalidInput(manifestAnalyzerName,
					fmt.Sprintf("manifest %q is neither valid JSON nor YAML", doc.Name), yamlErr)
			}
		}
	}
	return &rep, nil
}
