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

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	validateSourcePath string // Source feature manifest path
	validateTargetPath string // Target feature manifest path
	validateScope      string // Validation scope
	validateSourceTech string // Source technology label
	validateTargetTech string // Target technology label
	validateAI         bool   // Enable LLM enrichment
	validateJSONOutput bool   // Output as JSON
	validateShowLog    bool   // Print the session processing log
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// validateCmd runs one full validation session locally.
//
// # Description
//
// Extracts both feature manifests, compares them under the requested
// scope, scores the migration, and prints the verdict. The exit code
// reflects the verdict: 0 approved, 1 warnings or rejected, 2 error.
//
// # Examples
//
//	fidelity validate -s legacy.json -t rewrite.json
//	fidelity validate -s legacy.yaml -t rewrite.yaml --scope ui_layout
//	fidelity validate -s a.json -t b.json --ai --json
//
// # Limitations
//
//   - LLM enrichment requires OPENAI_API_KEY
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a migration from two feature manifests",
	Long: `Runs a full validation session over two feature manifests.

The source manifest describes the system being migrated away from; the
target manifest describes the rewritten system. The command extracts
both, detects discrepancies under the chosen scope, and scores fidelity.

Examples:
  fidelity validate -s legacy.json -t rewrite.json
  fidelity validate -s legacy.yaml -t rewrite.yaml --scope data_structure
  fidelity validate -s a.json -t b.json --ai     # include LLM assessment
  fidelity validate -s a.json -t b.json --json   # JSON output for scripting`,
	Run: runValidateCommand,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSourcePath, "source", "s", "", "source feature manifest (JSON or YAML)")
	validateCmd.Flags().StringVarP(&validateTargetPath, "target", "t", "", "target feature manifest (JSON or YAML)")
	validateCmd.Flags().StringVar(&validateScope, "scope", string(datatypes.ScopeFullSystem), "validation scope")
	validateCmd.Flags().StringVar(&validateSourceTech, "source-tech", "any", "source technology label")
	validateCmd.Flags().StringVar(&validateTargetTech, "target-tech", "any", "target technology label")
	validateCmd.Flags().BoolVar(&validateAI, "ai", false, "enrich the comparison with an LLM assessment")
	validateCmd.Flags().BoolVar(&validateJSONOutput, "json", false, "output as JSON")
	validateCmd.Flags().BoolVar(&validateShowLog, "log", false, "print the session processing log")
	_ = validateCmd.MarkFlagRequired("source")
	_ = validateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(validateCmd)
}

func runValidateCommand(cmd *cobra.Command, args []string) {
	start := time.Now()

	source, err := loadManifest(validateSourcePath)
	if err != nil {
		OutputError(validateJSONOutput, "validate", "loading source manifest", err)
		exitCommand(CLIExitError)
	}
	target, err := loadManifest(validateTargetPath)
	if err != nil {
		OutputError(validateJSONOutput, "validate", "loading target manifest", err)
		exitCommand(CLIExitError)
	}

	comparator, err := buildComparator(validateAI)
	if err != nil {
		OutputError(validateJSONOutput, "validate", "building comparator", err)
		exitCommand(CLIExitError)
	}
	pipeline := buildPipeline(comparator)

	req := datatypes.ValidationRequest{
		Scope:            datatypes.ValidationScope(validateScope),
		SourceTechnology: validateSourceTech,
		TargetTechnology: validateTargetTech,
		Source:           source,
		Target:           target,
	}
	sess, err := pipeline.ValidateMigration(cmd.Context(), req)
	if err != nil {
		if validateJSONOutput {
			_ = OutputJSON(CommandResult{
				APIVersion: "1.0",
				Command:    "validate",
				Timestamp:  time.Now(),
				DurationMs: time.Since(start).Milliseconds(),
				Success:    false,
				Data:       sess.Result,
				Error:      err.Error(),
			})
		} else {
			OutputError(false, "validate", "validation failed", err)
			if sess.Result != nil && sess.Result.Summary != "" {
				renderSummaryLine(sess.Result.Summary)
			}
		}
		exitCommand(CLIExitError)
	}

	if validateJSONOutput {
		_ = OutputJSON(CommandResult{
			APIVersion: "1.0",
			Command:    "validate",
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data:       sess.Result,
		})
	} else {
		renderResult(sess.Result)
		if validateShowLog {
			renderLog(sess.Log().Messages())
		}
	}
	exitCommand(exitCodeFor(sess.Result.OverallStatus))
}

// exitCodeFor maps a validation verdict to a process exit code.
func exitCodeFor(status datatypes.ValidationStatus) int {
	switch status {
	case datatypes.StatusApproved:
		return CLIExitSuccess
	case datatypes.StatusApprovedWithWarnings, datatypes.StatusRejected:
		return CLIExitFindings
	default:
		return CLIExitError
	}
}
