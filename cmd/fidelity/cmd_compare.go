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
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

var (
	compareSourcePath string // Source manifest path
	compareTargetPath string // Target manifest path
	compareScope      string // Validation scope
	compareAI         bool   // Enable LLM enrichment
	compareJSONOutput bool   // Output as JSON
)

// compareCmd runs the comparator directly and prints the quality
// assessment, skipping the session machinery.
//
// # Examples
//
//	fidelity compare -s legacy.json -t rewrite.json
//	fidelity compare -s a.yaml -t b.yaml --scope api_endpoints --json
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two feature manifests and assess migration quality",
	Long: `Compares two feature manifests without running a full session.

The output is the migration quality report: fidelity score, verdict,
and (with --ai) qualitative findings from the LLM assessment.`,
	Run: runCompareCommand,
}

func init() {
	compareCmd.Flags().StringVarP(&compareSourcePath, "source", "s", "", "source feature manifest (JSON or YAML)")
	compareCmd.Flags().StringVarP(&compareTargetPath, "target", "t", "", "target feature manifest (JSON or YAML)")
	compareCmd.Flags().StringVar(&compareScope, "scope", string(datatypes.ScopeFullSystem), "validation scope")
	compareCmd.Flags().BoolVar(&compareAI, "ai", false, "enrich the assessment with an LLM")
	compareCmd.Flags().BoolVar(&compareJSONOutput, "json", false, "output as JSON")
	_ = compareCmd.MarkFlagRequired("source")
	_ = compareCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(compareCmd)
}

func runCompareCommand(cmd *cobra.Command, args []string) {
	start := time.Now()
	ctx := cmd.Context()

	sourceInput, err := loadManifest(compareSourcePath)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "loading source manifest", err)
		exitCommand(CLIExitError)
	}
	targetInput, err := loadManifest(compareTargetPath)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "loading target manifest", err)
		exitCommand(CLIExitError)
	}

	scope := datatypes.ValidationScope(compareScope)
	a := newLocalAnalyzer()
	source, err := a.Analyze(ctx, sourceInput, scope)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "analyzing source manifest", err)
		exitCommand(CLIExitError)
	}
	target, err := a.Analyze(ctx, targetInput, scope)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "analyzing target manifest", err)
		exitCommand(CLIExitError)
	}

	comparator, err := buildComparator(compareAI)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "building comparator", err)
		exitCommand(CLIExitError)
	}
	discrepancies, err := comparator.Compare(ctx, source, target, scope)
	if err != nil {
		OutputError(compareJSONOutput, "compare", "comparison failed", err)
		exitCommand(CLIExitError)
	}
	quality := comparator.AssessMigrationQuality(ctx, source, target, discrepancies, scope)

	if compareJSONOutput {
		_ = OutputJSON(CommandResult{
			APIVersion: "1.0",
			Command:    "compare",
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data: map[string]interface{}{
				"quality":       quality,
				"discrepancies": discrepancies,
			},
		})
	} else {
		renderQuality(quality)
	}
	exitCommand(exitCodeFor(quality.OverallStatus))
}
