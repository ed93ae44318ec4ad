// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package enrich defines the optional fidelity-assessment collaborator.
//
// An Assessor reviews a comparison (both representations plus the locally
// detected discrepancies) and returns an assessment report. The comparator
// converts report findings into additional discrepancies. The collaborator
// is strictly optional: its absence, and any failure it raises, leaves the
// locally computed discrepancy list untouched.
//
// Thread Safety:
//
//	Implementations must be safe for concurrent use.
package enrich

import (
	"context"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// PriorityHigh marks a recommendation the comparator promotes into a
// discrepancy.
const PriorityHigh = "high"

// Recommendation is one prioritized follow-up suggested by the assessor.
type Recommendation struct {
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// FunctionalEquivalence reports differences in observable behavior.
type FunctionalEquivalence struct {
	CriticalDifferences []string `json:"critical_differences"`
}

// UserExperience reports user-facing regressions.
type UserExperience struct {
	UXIssues []string `json:"ux_issues"`
}

// DataIntegrity reports risks to stored or transferred data.
type DataIntegrity struct {
	IntegrityRisks []string `json:"integrity_risks"`
}

// AssessmentResult is the structured body of an assessment report.
type AssessmentResult struct {
	FunctionalEquivalence FunctionalEquivalence `json:"functional_equivalence"`
	UserExperience        UserExperience        `json:"user_experience"`
	DataIntegrity         DataIntegrity         `json:"data_integrity"`
	Recommendations       []Recommendation      `json:"recommendations"`
}

// Report is a complete assessment with the assessor's self-reported
// confidence in [0,1].
type Report struct {
	Confidence float64          `json:"confidence"`
	Result     AssessmentResult `json:"result"`
}

// Assessor is the fidelity-assessment capability contract.
type Assessor interface {
	// Assess reviews a comparison and returns an assessment report.
	//
	// Any error from Assess is logged and swallowed by the caller; the
	// comparison proceeds without enrichment.
	Assess(ctx context.Context, source, target *datatypes.AbstractRepresentation,
		discrepancies []datatypes.ValidationDiscrepancy, scope datatypes.ValidationScope) (*Report, error)
}

// LogicComparison is the outcome of one semantic logic comparison.
type LogicComparison struct {
	// Similarity in [0,1]: how close the two logic summaries are in
	// behavior, not wording.
	Similarity float64 `json:"similarity"`

	// Confidence in [0,1]: the comparer's confidence in Similarity.
	Confidence float64 `json:"confidence"`
}

// LogicComparer semantically compares two function logic summaries.
//
// Assessors that can judge business logic implement this in addition to
// Assessor. When unavailable (or failing), the function comparator falls
// back to a literal summary comparison.
type LogicComparer interface {
	CompareLogic(ctx context.Context, sourceLogic, targetLogic string) (LogicComparison, error)
}
