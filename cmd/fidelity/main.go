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
	"os"

	"github.com/spf13/cobra"
)

var (
	rootLogDir string // Directory for JSON log files, empty disables
	rootDebug  bool   // Log at debug level
)

var rootCmd = &cobra.Command{
	Use:   "fidelity",
	Short: "Migration fidelity comparison for Aleutian",
	Long: `fidelity compares a source system against its migrated target and
reports how faithfully the migration preserved features.

Both sides are described by feature manifests: JSON or YAML documents
listing UI elements, backend functions, data fields, and API endpoints.
The comparison produces typed discrepancies, a fidelity score, and a
verdict (approved, approved with warnings, or rejected).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogDir, "log-dir", "", "write JSON logs to this directory")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "log at debug level")
}

func main() {
	defer closeCommandLogger()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(CLIExitError)
	}
}
