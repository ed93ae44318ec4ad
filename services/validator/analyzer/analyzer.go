// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package analyzer defines the feature-extraction capability boundary.
//
// Analyzers turn raw input (manifests, code, screenshots) into an
// AbstractRepresentation. The validation pipeline treats them as black
// boxes behind the Analyzer interface; failures are reported through the
// categorized Error type so callers can distinguish unsupported scopes,
// invalid input and retryable extraction failures.
//
// Thread Safety:
//
//	Analyzer implementations must be safe for concurrent use; the
//	registry shares one instance per key across all pipelines.
package analyzer

import (
	"context"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// Analyzer is the feature-extraction capability contract.
type Analyzer interface {
	// Analyze extracts an abstract representation from the input under
	// the given scope.
	//
	// Returns an *Error with kind unsupported_scope when SupportsScope
	// would report false, invalid_input for missing or undecodable
	// input, and extraction for internal failures.
	Analyze(ctx context.Context, input datatypes.AnalyzerInput, scope datatypes.ValidationScope) (*datatypes.AbstractRepresentation, error)

	// SupportsScope reports whether the analyzer can serve the scope.
	SupportsScope(scope datatypes.ValidationScope) bool

	// Name identifies the analyzer in logs and errors.
	Name() string
}
