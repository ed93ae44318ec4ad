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
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

var scopesJSONOutput bool // Output as JSON

// scopesCmd lists supported validation scopes and their category
// weights.
var scopesCmd = &cobra.Command{
	Use:   "scopes",
	Short: "List validation scopes and their category weights",
	Run:   runScopesCommand,
}

func init() {
	scopesCmd.Flags().BoolVar(&scopesJSONOutput, "json", false, "output as JSON")
	rootCmd.AddCommand(scopesCmd)
}

func runScopesCommand(cmd *cobra.Command, args []string) {
	if !scopesJSONOutput {
		renderScopes()
		return
	}

	scopes := datatypes.AllScopes()
	sort.Slice(scopes, func(i, j int) bool { return scopes[i] < scopes[j] })
	table := make(map[string]datatypes.CategoryWeights, len(scopes))
	for _, scope := range scopes {
		weights, _ := datatypes.WeightsFor(scope)
		table[string(scope)] = weights
	}
	_ = OutputJSON(CommandResult{
		APIVersion: "1.0",
		Command:    "scopes",
		Timestamp:  time.Now(),
		Success:    true,
		Data:       table,
	})
}
