// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the validator.
//
// Metrics are exposed via the /metrics endpoint. All operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace   = "aleutian"
	validatorSubsystem = "validator"
)

// Metrics holds all Prometheus metrics for validation pipelines.
//
// Initialize once at startup via NewMetrics(). A nil *Metrics is safe to
// use everywhere and records nothing, so library consumers and tests can
// skip metric registration entirely.
type Metrics struct {
	// ValidationsTotal counts finished validation sessions.
	// Labels: scope, status (approved, approved_with_warnings, rejected, error)
	ValidationsTotal *prometheus.CounterVec

	// PipelineDurationSeconds measures end-to-end pipeline duration.
	// Labels: scope
	PipelineDurationSeconds *prometheus.HistogramVec

	// DiscrepanciesDetected observes the discrepancy count per comparison.
	DiscrepanciesDetected prometheus.Histogram

	// EnrichmentFailuresTotal counts swallowed assessor failures.
	EnrichmentFailuresTotal prometheus.Counter
}

// NewMetrics registers and returns the validator metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: validatorSubsystem,
			Name:      "validations_total",
			Help:      "Finished validation sessions by scope and status.",
		}, []string{"scope", "status"}),
		PipelineDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: validatorSubsystem,
			Name:      "pipeline_duration_seconds",
			Help:      "End-to-end validation pipeline duration.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}, []string{"scope"}),
		DiscrepanciesDetected: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: validatorSubsystem,
			Name:      "discrepancies_detected",
			Help:      "Discrepancies detected per comparison.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		EnrichmentFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: validatorSubsystem,
			Name:      "enrichment_failures_total",
			Help:      "Fidelity-assessment collaborator failures that were swallowed.",
		}),
	}
}

// ObserveValidation records one finished session.
func (m *Metrics) ObserveValidation(scope, status string, durationSeconds float64, discrepancies int) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(scope, status).Inc()
	m.PipelineDurationSeconds.WithLabelValues(scope).Observe(durationSeconds)
	m.DiscrepanciesDetected.Observe(float64(discrepancies))
}

// ObserveEnrichmentFailure records one swallowed assessor failure.
func (m *Metrics) ObserveEnrichmentFailure() {
	if m == nil {
		return
	}
	m.EnrichmentFailuresTotal.Inc()
}
