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
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/AleutianAI/AleutianMigrate/pkg/logging"
	"github.com/AleutianAI/AleutianMigrate/services/validator/analyzer"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/enrich"
	"github.com/AleutianAI/AleutianMigrate/services/validator/session"
)

// loadManifest reads one manifest file into an analyzer input. The
// analyzer decodes by extension, so the file name is preserved.
func loadManifest(path string) (datatypes.AnalyzerInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return datatypes.AnalyzerInput{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return datatypes.AnalyzerInput{
		InputType: datatypes.InputTypeManifest,
		Documents: []datatypes.Document{{Name: filepath.Base(path), Data: data}},
	}, nil
}

var (
	cliLogger     *logging.Logger
	cliLoggerOnce sync.Once
)

// commandLogger returns the shared structured logger for the invoked
// command. Without --log-dir or --debug it discards everything so
// rendered output stays clean.
func commandLogger() *slog.Logger {
	if rootLogDir == "" && !rootDebug {
		return slog.New(slog.DiscardHandler)
	}
	cliLoggerOnce.Do(func() {
		level := logging.LevelInfo
		if rootDebug {
			level = logging.LevelDebug
		}
		cliLogger = logging.New(logging.Config{
			Level:   level,
			LogDir:  rootLogDir,
			Service: "fidelity",
			Quiet:   !rootDebug,
		})
	})
	return cliLogger.Slog()
}

// closeCommandLogger flushes the command logger if one was built.
func closeCommandLogger() {
	if cliLogger != nil {
		_ = cliLogger.Close()
	}
}

// exitCommand flushes logs and terminates with the code.
func exitCommand(code int) {
	closeCommandLogger()
	os.Exit(code)
}

// newLocalAnalyzer returns a manifest analyzer for direct use, outside
// the registry.
func newLocalAnalyzer() analyzer.Analyzer {
	return analyzer.NewManifestAnalyzer()
}

// buildComparator assembles the comparator, optionally with LLM
// enrichment when requested and an API key is available.
func buildComparator(withAI bool) (*compare.SemanticComparator, error) {
	opts := []compare.Option{compare.WithLogger(commandLogger())}
	if withAI {
		assessor, err := enrich.NewOpenAIAssessor()
		if err != nil {
			return nil, fmt.Errorf("enrichment requested but unavailable: %w", err)
		}
		opts = append(opts, compare.WithAssessor(assessor))
	}
	return compare.NewSemanticComparator(opts...), nil
}

// buildPipeline assembles a local validation pipeline with the manifest
// analyzer registered for every technology.
func buildPipeline(comparator *compare.SemanticComparator) *session.Pipeline {
	registry := analyzer.NewRegistry()
	registry.Register(
		analyzer.Key{Technology: analyzer.TechnologyAny, InputType: datatypes.InputTypeManifest},
		func() (analyzer.Analyzer, error) { return analyzer.NewManifestAnalyzer(), nil },
	)
	return session.NewPipeline(registry, comparator, session.WithLogger(commandLogger()))
}
