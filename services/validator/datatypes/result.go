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

import "time"

// ValidationStatus is the overall verdict of one validation run.
type ValidationStatus string

const (
	// StatusApproved means no discrepancies were found.
	StatusApproved ValidationStatus = "approved"

	// StatusApprovedWithWarnings means only warning/info discrepancies
	// were found.
	StatusApprovedWithWarnings ValidationStatus = "approved_with_warnings"

	// StatusRejected means at least one critical discrepancy was found.
	StatusRejected ValidationStatus = "rejected"

	// StatusError means the pipeline failed before a verdict was reached.
	StatusError ValidationStatus = "error"
)

// ValidationResult is the terminal outcome of a validation session.
//
// Every terminal session carries exactly one result, including failed
// sessions (OverallStatus == StatusError, FidelityScore == 0).
type ValidationResult struct {
	OverallStatus ValidationStatus `json:"overall_status"`

	// FidelityScore is the [0,1] scalar summarizing how faithfully the
	// migration preserved the source system's observable features.
	FidelityScore float64 `json:"fidelity_score"`

	Summary string `json:"summary"`

	Discrepancies []ValidationDiscrepancy `json:"discrepancies"`

	// ExecutionTime is the pipeline wall-clock duration in seconds.
	ExecutionTime float64 `json:"execution_time"`

	Timestamp time.Time `json:"timestamp"`
}
