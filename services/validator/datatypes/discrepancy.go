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

// Severity classifies how serious a discrepancy is.
type Severity string

const (
	// SeverityCritical marks differences that break migration fidelity.
	SeverityCritical Severity = "critical"

	// SeverityWarning marks differences that likely need review.
	SeverityWarning Severity = "warning"

	// SeverityInfo marks additions or cosmetic differences.
	SeverityInfo Severity = "info"
)

// Valid reports whether s is a member of the closed severity vocabulary.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// DiscrepancyType identifies what kind of difference was detected.
//
// The vocabulary is closed: comparators and the enrichment converter only
// ever emit the constants below.
type DiscrepancyType string

const (
	// UI element comparison.
	DiscrepancyMissingUIElement    DiscrepancyType = "missing_ui_element"
	DiscrepancyUIElementRenamed    DiscrepancyType = "ui_element_renamed"
	DiscrepancyAdditionalUIElement DiscrepancyType = "additional_ui_element"
	DiscrepancyUIPositionChange    DiscrepancyType = "ui_position_change"

	// Data field comparison.
	DiscrepancyMissingField     DiscrepancyType = "missing_field"
	DiscrepancyFieldRenamed     DiscrepancyType = "field_renamed"
	DiscrepancyAdditionalField  DiscrepancyType = "additional_field"
	DiscrepancyTypeMismatch     DiscrepancyType = "type_mismatch"
	DiscrepancyConstraintChange DiscrepancyType = "constraint_change"

	// Backend function comparison.
	DiscrepancyMissingFunction         DiscrepancyType = "missing_function"
	DiscrepancyFunctionRenamed         DiscrepancyType = "function_renamed"
	DiscrepancyFunctionSignatureChange DiscrepancyType = "function_signature_change"
	DiscrepancyLogicChange             DiscrepancyType = "logic_change"
	DiscrepancyBusinessLogicChange     DiscrepancyType = "business_logic_change"

	// API endpoint comparison.
	DiscrepancyMissingEndpoint    DiscrepancyType = "missing_endpoint"
	DiscrepancyAdditionalEndpoint DiscrepancyType = "additional_endpoint"

	// LLM enrichment.
	DiscrepancyLLMCriticalDifference DiscrepancyType = "llm_critical_difference"
	DiscrepancyUXIssue               DiscrepancyType = "ux_issue"
	DiscrepancyDataIntegrityRisk     DiscrepancyType = "data_integrity_risk"
	DiscrepancyHighPriorityRec       DiscrepancyType = "high_priority_recommendation"
)

// ValidationDiscrepancy is a single detected difference between the source
// and target representations.
type ValidationDiscrepancy struct {
	Type     DiscrepancyType `json:"type"`
	Severity Severity        `json:"severity"`

	// Description is a human-readable explanation of the difference.
	Description string `json:"description"`

	// SourceElement and TargetElement are opaque references to the records
	// involved (identity keys for matcher output, free text for enrichment
	// output). Either may be empty.
	SourceElement string `json:"source_element,omitempty"`
	TargetElement string `json:"target_element,omitempty"`

	// Recommendation suggests how to resolve the difference.
	Recommendation string `json:"recommendation,omitempty"`

	// Confidence is the detection confidence in [0,1]. A nil confidence
	// means the emitting comparator made a deterministic observation; the
	// scorer excludes nil confidences from its mean and the enrichment
	// step may back-fill them.
	Confidence *float64 `json:"confidence,omitempty"`
}

// Float returns a pointer to v, for populating optional confidence values.
func Float(v float64) *float64 {
	return &v
}
