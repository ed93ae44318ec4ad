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
	"log/slog"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/enrich"
	"github.com/AleutianAI/AleutianMigrate/services/validator/scoring"
)

// QualityReport is an overall migration quality assessment, exposed to
// the orchestrating caller and the API layer.
type QualityReport struct {
	Scope         datatypes.ValidationScope `json:"scope"`
	OverallStatus datatypes.ValidationStatus `json:"overall_status"`
	FidelityScore float64                   `json:"fidelity_score"`
	Summary       string                    `json:"summary"`

	// Confidence is the assessor's self-reported confidence, or the mean
	// discrepancy confidence (defaulting to 1.0) for the local heuristic.
	Confidence float64 `json:"confidence"`

	CriticalDifferences []string                `json:"critical_differences,omitempty"`
	UXIssues            []string                `json:"ux_issues,omitempty"`
	IntegrityRisks      []string                `json:"integrity_risks,omitempty"`
	Recommendations     []enrich.Recommendation `json:"recommendations,omitempty"`
}

// AssessMigrationQuality builds an overall quality report for a finished
// comparison.
//
// With an enrichment collaborator configured its report supplies the
// qualitative sections; without one (or when it fails) the report falls
// back to the local scoring heuristic alone.
func (c *SemanticComparator) AssessMigrationQuality(ctx context.Context,
	source, target *datatypes.AbstractRepresentation,
	discrepancies []datatypes.ValidationDiscrepancy,
	scope datatypes.ValidationScope) *QualityReport {

	status, score, summary := scoring.Score(discrepancies)
	out := &QualityReport{
		Scope:         scope,
		OverallStatus: status,
		FidelityScore: score,
		Summary:       summary,
		Confidence:    1.0,
	}
	if mean, ok := scoring.MeanConfidence(discrepancies); ok {
		out.Confidence = mean
	}

	if c.assessor == nil {
		return out
	}
	report, err := c.assessor.Assess(ctx, source, target, discrepancies, scope)
	if err != nil || report == nil {
		c.logger.Warn("quality assessment collaborator failed, using local heuristic",
			slog.String("scope", scope.String()),
			slog.Any("error", err),
		)
		return out
	}

	out.Confidence = report.Confidence
	out.CriticalDifferences = report.Result.FunctionalEquivalence.CriticalDifferences
	out.UXIssues = report.Result.UserExperience.UXIssues
	out.IntegrityRisks = report.Result.DataIntegrity.IntegrityRisks
	out.Recommendations = report.Result.Recommendations
	return out
}
