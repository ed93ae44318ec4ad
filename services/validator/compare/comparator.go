// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package compare detects discrepancies between two abstract
// representations.
//
// The SemanticComparator runs one comparator per representation category
// (UI elements, data fields, backend functions, API endpoints), selecting
// categories by the active scope's weight table: a zero weight skips the
// category entirely. An optional fidelity-assessment collaborator can
// enrich the locally computed discrepancy list; its absence or failure
// never changes the local result.
package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/enrich"
	"github.com/AleutianAI/AleutianMigrate/services/validator/observability"
)

// ErrUnknownScope is returned when Compare is asked for a scope outside
// the weight table.
var ErrUnknownScope = errors.New("unknown validation scope")

// Similarity thresholds. All thresholds are inclusive and were tuned
// against the character-set Jaccard metric in the match package; see the
// match package docs before swapping the metric.
const (
	// uiTextSimilarityThreshold gates UI element rename detection.
	uiTextSimilarityThreshold = 0.8

	// nameSimilarityThreshold gates field and function rename detection.
	nameSimilarityThreshold = 0.7

	// paramSimilarityThreshold gates function rename detection on the
	// parameter-set Jaccard similarity.
	paramSimilarityThreshold = 0.8

	// renameConfidence is attached to every fuzzy-detected rename.
	renameConfidence = 0.7

	// logicCriticalThreshold and logicWarningThreshold grade semantic
	// logic similarity reported by the enrichment collaborator.
	logicCriticalThreshold = 0.5
	logicWarningThreshold  = 0.7

	// enrichmentBackfillFactor scales the collaborator's confidence when
	// back-filling local discrepancies that carry none. The factor is
	// inherited behavior; treat it as a product decision before changing.
	enrichmentBackfillFactor = 0.8
)

// SemanticComparator compares two abstract representations under a scope.
//
// Thread Safety:
//
//	SemanticComparator is immutable after construction and safe for
//	concurrent use, provided the configured assessor is.
type SemanticComparator struct {
	assessor enrich.Assessor
	logic    enrich.LogicComparer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option configures a SemanticComparator.
type Option func(*SemanticComparator)

// WithAssessor installs the optional fidelity-assessment collaborator.
// If the assessor also implements enrich.LogicComparer it is used for
// business-logic comparison as well.
func WithAssessor(assessor enrich.Assessor) Option {
	return func(c *SemanticComparator) {
		c.assessor = assessor
		if lc, ok := assessor.(enrich.LogicComparer); ok {
			c.logic = lc
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *SemanticComparator) {
		c.logger = logger
	}
}

// WithMetrics installs validator metrics. A nil value is accepted and
// records nothing.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *SemanticComparator) {
		c.metrics = metrics
	}
}

// NewSemanticComparator builds a comparator.
func NewSemanticComparator(opts ...Option) *SemanticComparator {
	c := &SemanticComparator{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare runs every comparator the scope weights enable and returns the
// combined discrepancy list.
//
// The returned error is non-nil only for unknown scopes; enrichment
// failures are logged and swallowed.
func (c *SemanticComparator) Compare(ctx context.Context, source, target *datatypes.AbstractRepresentation,
	scope datatypes.ValidationScope) ([]datatypes.ValidationDiscrepancy, error) {

	weights, ok := datatypes.WeightsFor(scope)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	if source == nil {
		source = &datatypes.AbstractRepresentation{}
	}
	if target == nil {
		target = &datatypes.AbstractRepresentation{}
	}

	discrepancies := make([]datatypes.ValidationDiscrepancy, 0)
	if weights.UI > 0 {
		discrepancies = append(discrepancies, compareUIElements(source.UIElements, target.UIElements)...)
	}
	if weights.Fields > 0 {
		discrepancies = append(discrepancies, compareDataFields(source.DataFields, target.DataFields)...)
	}
	if weights.Functions > 0 {
		discrepancies = append(discrepancies, c.compareFunctions(ctx, source.Functions, target.Functions)...)
	}
	if weights.Endpoints > 0 {
		discrepancies = append(discrepancies, compareEndpoints(source.APIEndpoints, target.APIEndpoints)...)
	}

	if c.assessor != nil {
		discrepancies = c.enrichDiscrepancies(ctx, source, target, discrepancies, scope)
	}
	return discrepancies, nil
}

// enrichDiscrepancies converts assessor findings into additional
// discrepancies and back-fills missing local confidences.
//
// On any assessor failure the local list is returned unmodified.
func (c *SemanticComparator) enrichDiscrepancies(ctx context.Context,
	source, target *datatypes.AbstractRepresentation,
	local []datatypes.ValidationDiscrepancy,
	scope datatypes.ValidationScope) []datatypes.ValidationDiscrepancy {

	report, err := c.assessor.Assess(ctx, source, target, local, scope)
	if err != nil || report == nil {
		c.logger.Warn("fidelity assessment failed, skipping enrichment",
			slog.String("scope", scope.String()),
			slog.Any("error", err),
		)
		c.metrics.ObserveEnrichmentFailure()
		return local
	}

	backfill := report.Confidence * enrichmentBackfillFactor
	for i := range local {
		if local[i].Confidence == nil {
			local[i].Confidence = datatypes.Float(backfill)
		}
	}

	confidence := datatypes.Float(report.Confidence)
	for _, diff := range report.Result.FunctionalEquivalence.CriticalDifferences {
		local = append(local, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyLLMCriticalDifference,
			Severity:       datatypes.SeverityCritical,
			Description:    diff,
			Recommendation: "Review functional equivalence of the migrated implementation",
			Confidence:     confidence,
		})
	}
	for _, issue := range report.Result.UserExperience.UXIssues {
		local = append(local, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyUXIssue,
			Severity:       datatypes.SeverityWarning,
			Description:    issue,
			Recommendation: "Verify the user-facing behavior matches the source system",
			Confidence:     confidence,
		})
	}
	for _, risk := range report.Result.DataIntegrity.IntegrityRisks {
		local = append(local, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyDataIntegrityRisk,
			Severity:       datatypes.SeverityCritical,
			Description:    risk,
			Recommendation: "Audit data handling in the migrated implementation",
			Confidence:     confidence,
		})
	}
	for _, rec := range report.Result.Recommendations {
		if rec.Priority != enrich.PriorityHigh {
			continue
		}
		local = append(local, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyHighPriorityRec,
			Severity:       datatypes.SeverityWarning,
			Description:    rec.Description,
			Recommendation: rec.Description,
			Confidence:     confidence,
		})
	}

	c.logger.Info("enrichment applied",
		slog.String("scope", scope.String()),
		slog.Float64("assessor_confidence", report.Confidence),
		slog.Int("total_discrepancies", len(local)),
	)
	return local
}
