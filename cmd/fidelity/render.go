// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AleutianAI/AleutianMigrate/pkg/ux"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// renderResult prints a styled validation verdict to stdout.
func renderResult(result *datatypes.ValidationResult) {
	if result == nil {
		return
	}
	ux.Title("Migration Fidelity Report")
	fmt.Println()

	renderVerdict(result.OverallStatus, result.FidelityScore)
	renderSummaryLine(result.Summary)
	ux.KeyValue("discrepancies", fmt.Sprintf("%d", len(result.Discrepancies)))
	ux.KeyValue("execution time", fmt.Sprintf("%.2fs", result.ExecutionTime))

	if len(result.Discrepancies) > 0 {
		fmt.Println()
		renderDiscrepancies(result.Discrepancies)
	}
}

func renderVerdict(status datatypes.ValidationStatus, score float64) {
	line := fmt.Sprintf("%s  (fidelity %.3f)", strings.ReplaceAll(string(status), "_", " "), score)
	switch status {
	case datatypes.StatusApproved:
		ux.Success(line)
	case datatypes.StatusApprovedWithWarnings:
		ux.Warning(line)
	default:
		ux.Error(line)
	}
}

func renderSummaryLine(summary string) {
	if summary != "" {
		fmt.Println(ux.Styles.Subtitle.Render(summary))
	}
}

// renderDiscrepancies groups discrepancies by severity, critical first.
func renderDiscrepancies(discrepancies []datatypes.ValidationDiscrepancy) {
	bySeverity := map[datatypes.Severity][]datatypes.ValidationDiscrepancy{}
	for _, d := range discrepancies {
		bySeverity[d.Severity] = append(bySeverity[d.Severity], d)
	}
	for _, severity := range []datatypes.Severity{
		datatypes.SeverityCritical, datatypes.SeverityWarning, datatypes.SeverityInfo,
	} {
		group := bySeverity[severity]
		if len(group) == 0 {
			continue
		}
		fmt.Println(ux.Styles.Bold.Render(fmt.Sprintf("%s (%d)", severity, len(group))))
		for _, d := range group {
			icon := ux.SeverityIcon(string(d.Severity))
			fmt.Printf("  %s %s %s\n", icon.Render(),
				ux.Styles.Muted.Render("["+string(d.Type)+"]"), d.Description)
			if d.Recommendation != "" {
				fmt.Printf("      %s %s\n", ux.IconArrow.Render(),
					ux.Styles.Muted.Render(d.Recommendation))
			}
		}
		fmt.Println()
	}
}

// renderQuality prints a styled migration quality report.
func renderQuality(report *compare.QualityReport) {
	if report == nil {
		return
	}
	ux.Title("Migration Quality Assessment")
	fmt.Println()

	renderVerdict(report.OverallStatus, report.FidelityScore)
	renderSummaryLine(report.Summary)
	ux.KeyValue("scope", string(report.Scope))
	ux.KeyValue("confidence", fmt.Sprintf("%.2f", report.Confidence))

	renderSection("Critical differences", report.CriticalDifferences, ux.IconError)
	renderSection("UX issues", report.UXIssues, ux.IconWarning)
	renderSection("Data integrity risks", report.IntegrityRisks, ux.IconError)
	if len(report.Recommendations) > 0 {
		fmt.Println()
		fmt.Println(ux.Styles.Bold.Render("Recommendations"))
		for _, rec := range report.Recommendations {
			fmt.Printf("  %s [%s] %s\n", ux.IconArrow.Render(), rec.Priority, rec.Description)
		}
	}
}

func renderSection(title string, items []string, icon ux.Icon) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ux.Styles.Bold.Render(title))
	for _, item := range items {
		fmt.Printf("  %s %s\n", icon.Render(), item)
	}
}

// renderLog prints the session processing log.
func renderLog(messages []string) {
	fmt.Println(ux.Styles.Bold.Render("Processing log"))
	for _, msg := range messages {
		fmt.Printf("  %s\n", ux.Styles.Muted.Render(msg))
	}
}

// renderScopes prints the scope table with category weights.
func renderScopes() {
	ux.Title("Validation scopes")
	fmt.Println()
	scopes := datatypes.AllScopes()
	sort.Slice(scopes, func(i, j int) bool { return scopes[i] < scopes[j] })
	for _, scope := range scopes {
		weights, _ := datatypes.WeightsFor(scope)
		fmt.Printf("  %s\n", ux.Styles.Highlight.Render(string(scope)))
		fmt.Printf("    %s\n", ux.Styles.Muted.Render(fmt.Sprintf(
			"ui=%.1f fields=%.1f functions=%.1f endpoints=%.1f",
			weights.UI, weights.Fields, weights.Functions, weights.Endpoints)))
	}
}
