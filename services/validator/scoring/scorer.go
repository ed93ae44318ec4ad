// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package scoring aggregates discrepancies into a fidelity score and
// verdict.
//
// Scoring is a pure function of the discrepancy list: the same input
// always yields the same (status, score, summary) triple, and the score
// is always within [0,1].
package scoring

import (
	"fmt"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// Per-severity score penalties.
const (
	criticalPenalty = 0.15
	warningPenalty  = 0.05
	infoPenalty     = 0.01
)

// Score aggregates discrepancies into a verdict.
//
// Any critical discrepancy rejects the migration outright; warnings alone
// approve with warnings. The base score 1 − 0.15·critical − 0.05·warning
// − 0.01·info is clamped to [0,1], weighted by the mean confidence of all
// discrepancies that carry one, and clamped again.
func Score(discrepancies []datatypes.ValidationDiscrepancy) (datatypes.ValidationStatus, float64, string) {
	var critical, warning, info int
	for _, d := range discrepancies {
		switch d.Severity {
		case datatypes.SeverityCritical:
			critical++
		case datatypes.SeverityWarning:
			warning++
		case datatypes.SeverityInfo:
			info++
		}
	}

	status := datatypes.StatusApproved
	switch {
	case critical > 0:
		status = datatypes.StatusRejected
	case warning > 0:
		status = datatypes.StatusApprovedWithWarnings
	}

	score := clamp01(1.0 -
		criticalPenalty*float64(critical) -
		warningPenalty*float64(warning) -
		infoPenalty*float64(info))
	if mean, ok := MeanConfidence(discrepancies); ok {
		score = clamp01(score * mean)
	}

	return status, score, summarize(status, critical, warning, info)
}

// MeanConfidence returns the arithmetic mean of the confidences carried
// by the discrepancies. Discrepancies without a confidence are excluded
// from the mean, not treated as zero. The second return value is false
// when no discrepancy carries a confidence.
func MeanConfidence(discrepancies []datatypes.ValidationDiscrepancy) (float64, bool) {
	var sum float64
	var n int
	for _, d := range discrepancies {
		if d.Confidence != nil {
			sum += *d.Confidence
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// summarize renders the templated verdict sentence.
func summarize(status datatypes.ValidationStatus, critical, warning, info int) string {
	total := critical + warning + info
	if total == 0 {
		return "No discrepancies detected; the migration preserves all compared features."
	}

	dominant := "informational"
	switch {
	case critical > 0 && critical >= warning && critical >= info:
		dominant = "critical"
	case warning > 0 && warning >= info:
		dominant = "warning"
	}

	var verdict string
	switch status {
	case datatypes.StatusRejected:
		verdict = "Migration rejected"
	case datatypes.StatusApprovedWithWarnings:
		verdict = "Migration approved with warnings"
	default:
		verdict = "Migration approved"
	}

	return fmt.Sprintf("%s: %d discrepancies (%d critical, %d warning, %d info); dominant issue class is %s.",
		verdict, total, critical, warning, info, dominant)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
