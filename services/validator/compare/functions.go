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
	"fmt"
	"log/slog"
	"strings"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/match"
)

// compareFunctions detects missing and renamed backend functions plus
// signature and logic changes on matched pairs.
//
// Logic comparison prefers the semantic LogicComparer when one is
// configured; a comparer failure falls back to the literal summary check,
// so a degraded collaborator can only reduce precision, never break the
// comparison.
func (c *SemanticComparator) compareFunctions(ctx context.Context,
	source, target []datatypes.BackendFunction) []datatypes.ValidationDiscrepancy {

	res := match.Exact(source, target)
	renamed := res.ResolveRenames(func(s, t datatypes.BackendFunction) bool {
		return match.NameSimilarity(s.Name, t.Name) >= nameSimilarityThreshold &&
			match.SetJaccard(s.Parameters, t.Parameters) >= paramSimilarityThreshold
	})

	var out []datatypes.ValidationDiscrepancy
	for _, pair := range renamed {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:     datatypes.DiscrepancyFunctionRenamed,
			Severity: datatypes.SeverityWarning,
			Description: fmt.Sprintf("function %q appears renamed to %q (matching parameters)",
				pair.Source.Name, pair.Target.Name),
			SourceElement:  pair.Source.Name,
			TargetElement:  pair.Target.Name,
			Recommendation: "Confirm the rename is intentional and update callers",
			Confidence:     datatypes.Float(renameConfidence),
		})
	}
	for _, s := range res.SourceOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyMissingFunction,
			Severity:       datatypes.SeverityCritical,
			Description:    fmt.Sprintf("function %q is missing from the target", s.Name),
			SourceElement:  s.Name,
			Recommendation: "Port the missing function to the target system",
		})
	}
	for _, pair := range res.Pairs {
		if !sameParameterSet(pair.Source.Parameters, pair.Target.Parameters) {
			out = append(out, datatypes.ValidationDiscrepancy{
				Type:     datatypes.DiscrepancyFunctionSignatureChange,
				Severity: datatypes.SeverityWarning,
				Description: fmt.Sprintf("function %q changed parameters from (%s) to (%s)",
					pair.Source.Name,
					strings.Join(pair.Source.Parameters, ", "),
					strings.Join(pair.Target.Parameters, ", ")),
				SourceElement:  pair.Source.Name,
				TargetElement:  pair.Target.Name,
				Recommendation: "Reconcile the function signature with the source",
			})
		}
		out = append(out, c.compareLogicSummaries(ctx, pair.Source, pair.Target)...)
	}
	return out
}

// compareLogicSummaries grades the logic difference of one matched pair.
func (c *SemanticComparator) compareLogicSummaries(ctx context.Context,
	source, target datatypes.BackendFunction) []datatypes.ValidationDiscrepancy {

	srcLogic := strings.TrimSpace(source.LogicSummary)
	tgtLogic := strings.TrimSpace(target.LogicSummary)
	if srcLogic == "" || tgtLogic == "" || srcLogic == tgtLogic {
		return nil
	}

	if c.logic != nil {
		cmp, err := c.logic.CompareLogic(ctx, srcLogic, tgtLogic)
		if err == nil {
			switch {
			case cmp.Similarity < logicCriticalThreshold:
				return []datatypes.ValidationDiscrepancy{businessLogicChange(source, target, cmp.Similarity,
					datatypes.SeverityCritical, cmp.Confidence)}
			case cmp.Similarity < logicWarningThreshold:
				return []datatypes.ValidationDiscrepancy{businessLogicChange(source, target, cmp.Similarity,
					datatypes.SeverityWarning, cmp.Confidence)}
			default:
				return nil
			}
		}
		c.logger.Warn("semantic logic comparison failed, using literal fallback",
			slog.String("function", source.Name),
			slog.Any("error", err),
		)
		c.metrics.ObserveEnrichmentFailure()
	}

	return []datatypes.ValidationDiscrepancy{{
		Type:     datatypes.DiscrepancyLogicChange,
		Severity: datatypes.SeverityWarning,
		Description: fmt.Sprintf("function %q has a different logic summary in the target",
			source.Name),
		SourceElement:  source.Name,
		TargetElement:  target.Name,
		Recommendation: "Review the function body for behavioral differences",
	}}
}

func businessLogicChange(source, target datatypes.BackendFunction, similarity float64,
	severity datatypes.Severity, confidence float64) datatypes.ValidationDiscrepancy {

	return datatypes.ValidationDiscrepancy{
		Type:     datatypes.DiscrepancyBusinessLogicChange,
		Severity: severity,
		Description: fmt.Sprintf("function %q business logic diverges from the source (similarity %.2f)",
			source.Name, similarity),
		SourceElement:  source.Name,
		TargetElement:  target.Name,
		Recommendation: "Compare the implementations and restore the source behavior",
		Confidence:     datatypes.Float(confidence),
	}
}

// sameParameterSet compares parameter lists order-insensitively.
func sameParameterSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, p := range a {
		seen[p]++
	}
	for _, p := range b {
		seen[p]--
		if seen[p] < 0 {
			return false
		}
	}
	return true
}
