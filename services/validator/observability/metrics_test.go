// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NotNil(t, m)

	m.ObserveValidation("full_system", "approved", 0.25, 3)
	m.ObserveValidation("full_system", "approved", 0.50, 1)
	m.ObserveValidation("ui_layout", "rejected", 0.10, 7)

	assert.InDelta(t, 2.0,
		testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("full_system", "approved")), 1e-9)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("ui_layout", "rejected")), 1e-9)

	count, err := testutil.GatherAndCount(reg,
		"aleutian_validator_validations_total",
		"aleutian_validator_pipeline_duration_seconds",
		"aleutian_validator_discrepancies_detected",
		"aleutian_validator_enrichment_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveValidation("full_system", "approved", 0.1, 0)
	})
}
