// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AleutianAI/AleutianMigrate/services/validator/analyzer"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/observability"
	"github.com/AleutianAI/AleutianMigrate/services/validator/scoring"
)

// Pipeline executes validation sessions.
//
// Stages run strictly sequentially: extract source, extract target,
// compare, score. The compare stage needs both extractions, so there is
// no internal parallelism; concurrency happens across sessions, each
// owned by its own goroutine and sharing only the analyzer registry.
//
// Thread Safety:
//
//	Pipeline is immutable after construction and safe for concurrent
//	use; each ValidateMigration call builds and owns its own session.
type Pipeline struct {
	registry   analyzer.Registry
	comparator *compare.SemanticComparator
	machine    *StateMachine
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithMetrics installs pipeline metrics.
func WithMetrics(metrics *observability.Metrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline builds a pipeline over the given analyzer registry and
// comparator.
func NewPipeline(registry analyzer.Registry, comparator *compare.SemanticComparator, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry:   registry,
		comparator: comparator,
		machine:    NewStateMachine(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ValidateMigration is the single entry point around the validation
// core: it runs the full pipeline for one request.
//
// The returned session is always non-nil and terminal, and always
// carries exactly one result. The error is non-nil when the pipeline
// failed; analyzer extraction failures are retryable by the caller (see
// analyzer.KindOf), while invalid input and unsupported scopes are not.
func (p *Pipeline) ValidateMigration(ctx context.Context, req datatypes.ValidationRequest) (*ValidationSession, error) {
	sess := NewSession(req)
	start := time.Now()

	if err := p.transition(sess, StateRunning); err != nil {
		return p.fail(sess, start, "session could not start", err)
	}
	sess.Log().Append("pipeline started: scope=%s source=%s target=%s",
		req.Scope, req.SourceTechnology, req.TargetTechnology)
	p.logger.Info("validation pipeline started",
		slog.String("session_id", sess.ID),
		slog.String("scope", req.Scope.String()),
	)

	if !req.Scope.Valid() {
		return p.fail(sess, start, fmt.Sprintf("unknown validation scope %q", req.Scope),
			fmt.Errorf("%w: %q", compare.ErrUnknownScope, req.Scope))
	}

	// Stage A: extract source.
	source, err := p.extract(ctx, sess, req.SourceTechnology, req.Source, req.Scope, "source")
	if err != nil {
		return p.fail(sess, start, extractionSummary("source", err), err)
	}
	sess.Source = source

	// Stage B: extract target.
	target, err := p.extract(ctx, sess, req.TargetTechnology, req.Target, req.Scope, "target")
	if err != nil {
		return p.fail(sess, start, extractionSummary("target", err), err)
	}
	sess.Target = target

	// Stage C: compare.
	discrepancies, err := p.comparator.Compare(ctx, source, target, req.Scope)
	if err != nil {
		wrapped := fmt.Errorf("compare stage: %w", err)
		return p.fail(sess, start, "comparison failed", wrapped)
	}
	sess.Log().Append("comparison finished: %d discrepancies", len(discrepancies))

	// Stage D: score.
	status, score, summary := scoring.Score(discrepancies)
	result := &datatypes.ValidationResult{
		OverallStatus: status,
		FidelityScore: score,
		Summary:       summary,
		Discrepancies: discrepancies,
		ExecutionTime: time.Since(start).Seconds(),
		Timestamp:     time.Now(),
	}
	sess.setResult(result)
	if err := p.transition(sess, StateCompleted); err != nil {
		return sess, err
	}
	sess.Log().Append("validation completed: status=%s score=%.3f", status, score)
	p.logger.Info("validation pipeline completed",
		slog.String("session_id", sess.ID),
		slog.String("status", string(status)),
		slog.Float64("fidelity_score", score),
		slog.Int("discrepancies", len(discrepancies)),
	)
	p.metrics.ObserveValidation(req.Scope.String(), string(status),
		result.ExecutionTime, len(discrepancies))
	return sess, nil
}

// extract runs one extraction stage against the analyzer registry.
func (p *Pipeline) extract(ctx context.Context, sess *ValidationSession, technology string,
	input datatypes.AnalyzerInput, scope datatypes.ValidationScope, side string) (*datatypes.AbstractRepresentation, error) {

	key := analyzer.Key{Technology: technology, InputType: input.InputType}
	a, err := p.registry.Resolve(key)
	if err != nil {
		return nil, fmt.Errorf("%s extraction stage: %w", side, err)
	}
	if !a.SupportsScope(scope) {
		return nil, fmt.Errorf("%s extraction stage: %w", side,
			analyzer.NewUnsupportedScope(a.Name(), fmt.Sprintf("scope %q", scope)))
	}

	rep, err := a.Analyze(ctx, input, scope)
	if err != nil {
		return nil, fmt.Errorf("%s extraction stage: %w", side, err)
	}
	sess.Log().Append("%s representation extracted by %s: %s", side, a.Name(), rep.Counts())
	return rep, nil
}

// fail moves the session to the terminal error state with an error
// result, logs the failure, and returns the wrapped error so the caller
// can decide on retries.
func (p *Pipeline) fail(sess *ValidationSession, start time.Time, summary string, err error) (*ValidationSession, error) {
	sess.Log().Append("pipeline failed: %v", err)
	sess.setResult(&datatypes.ValidationResult{
		OverallStatus: datatypes.StatusError,
		FidelityScore: 0.0,
		Summary:       summary,
		Discrepancies: []datatypes.ValidationDiscrepancy{},
		ExecutionTime: time.Since(start).Seconds(),
		Timestamp:     time.Now(),
	})
	if sess.State != StateError {
		if terr := p.transition(sess, StateError); terr != nil {
			p.logger.Error("session error transition failed",
				slog.String("session_id", sess.ID),
				slog.String("error", terr.Error()),
			)
		}
	}
	p.logger.Error("validation pipeline failed",
		slog.String("session_id", sess.ID),
		slog.String("scope", sess.Request.Scope.String()),
		slog.String("error", err.Error()),
	)
	p.metrics.ObserveValidation(sess.Request.Scope.String(), string(datatypes.StatusError),
		time.Since(start).Seconds(), 0)
	return sess, err
}

// transition applies one state machine transition to the session.
func (p *Pipeline) transition(sess *ValidationSession, to State) error {
	if err := p.machine.Transition(sess.State, to); err != nil {
		return err
	}
	sess.State = to
	return nil
}

// extractionSummary builds the user-facing summary for a failed
// extraction stage, keyed off the analyzer error kind.
func extractionSummary(side string, err error) string {
	kind, ok := analyzer.KindOf(err)
	if !ok {
		return fmt.Sprintf("%s extraction failed", side)
	}
	switch kind {
	case analyzer.KindUnsupportedScope:
		return fmt.Sprintf("the %s analyzer does not support the requested scope", side)
	case analyzer.KindInvalidInput:
		return fmt.Sprintf("the %s input is missing or malformed; please resubmit", side)
	default:
		return fmt.Sprintf("%s feature extraction failed; the request may be retried", side)
	}
}
