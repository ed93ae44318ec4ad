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

// ValidationScope selects which representation categories a comparison
// covers and how they are weighted.
type ValidationScope string

const (
	ScopeUILayout             ValidationScope = "ui_layout"
	ScopeBackendFunctionality ValidationScope = "backend_functionality"
	ScopeDataStructure        ValidationScope = "data_structure"
	ScopeAPIEndpoints         ValidationScope = "api_endpoints"
	ScopeBusinessLogic        ValidationScope = "business_logic"
	ScopeFullSystem           ValidationScope = "full_system"
)

// AllScopes returns every supported validation scope.
func AllScopes() []ValidationScope {
	return []ValidationScope{
		ScopeUILayout,
		ScopeBackendFunctionality,
		ScopeDataStructure,
		ScopeAPIEndpoints,
		ScopeBusinessLogic,
		ScopeFullSystem,
	}
}

// Valid reports whether s is a supported scope.
func (s ValidationScope) Valid() bool {
	_, ok := scopeWeights[s]
	return ok
}

// String returns the scope identifier.
func (s ValidationScope) String() string {
	return string(s)
}

// CategoryWeights holds the per-category weights for one scope.
//
// A weight of zero skips the category entirely: its comparator does not
// run and it contributes no discrepancies.
type CategoryWeights struct {
	UI        float64 `json:"ui"`
	Fields    float64 `json:"fields"`
	Functions float64 `json:"functions"`
	Endpoints float64 `json:"endpoints"`
}

// scopeWeights is the scope → category weight table.
var scopeWeights = map[ValidationScope]CategoryWeights{
	ScopeUILayout:             {UI: 0.8, Fields: 0.2, Functions: 0, Endpoints: 0},
	ScopeBackendFunctionality: {UI: 0, Fields: 0.3, Functions: 0.7, Endpoints: 0},
	ScopeDataStructure:        {UI: 0, Fields: 1.0, Functions: 0, Endpoints: 0},
	ScopeAPIEndpoints:         {UI: 0, Fields: 0.2, Functions: 0.3, Endpoints: 0.5},
	ScopeBusinessLogic:        {UI: 0.1, Fields: 0.2, Functions: 0.7, Endpoints: 0},
	ScopeFullSystem:           {UI: 0.3, Fields: 0.2, Functions: 0.3, Endpoints: 0.2},
}

// WeightsFor returns the category weights for the scope.
//
// The second return value is false for unknown scopes.
func WeightsFor(scope ValidationScope) (CategoryWeights, bool) {
	w, ok := scopeWeights[scope]
	return w, ok
}
