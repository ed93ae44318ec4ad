// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package enrich

import (
	"context"
	"sync"
	"time"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

// MockAssessor is a mock fidelity assessor for testing.
//
// Thread Safety:
//
//	MockAssessor is safe for concurrent use.
type MockAssessor struct {
	mu sync.RWMutex

	// reports are queued reports to return, oldest first.
	reports []*Report

	// defaultReport is returned when no queued reports remain.
	defaultReport *Report

	// assessErr causes Assess to return this error.
	assessErr error

	// logicResult is returned by CompareLogic.
	logicResult LogicComparison

	// logicErr causes CompareLogic to return this error.
	logicErr error

	// calls records all calls made to Assess.
	calls []AssessCall
}

// AssessCall records a call to Assess.
type AssessCall struct {
	Scope         datatypes.ValidationScope
	Discrepancies []datatypes.ValidationDiscrepancy
	Timestamp     time.Time
}

// NewMockAssessor creates a mock that returns an empty report with the
// given confidence.
func NewMockAssessor(confidence float64) *MockAssessor {
	return &MockAssessor{
		defaultReport: &Report{Confidence: confidence},
		logicResult:   LogicComparison{Similarity: 1.0, Confidence: confidence},
	}
}

// QueueReport appends a report to be returned by the next Assess call.
func (m *MockAssessor) QueueReport(report *Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
}

// SetError makes Assess fail with err.
func (m *MockAssessor) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assessErr = err
}

// SetLogicResult sets the CompareLogic return value.
func (m *MockAssessor) SetLogicResult(result LogicComparison) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logicResult = result
}

// SetLogicError makes CompareLogic fail with err.
func (m *MockAssessor) SetLogicError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logicErr = err
}

// Calls returns a copy of recorded Assess calls.
func (m *MockAssessor) Calls() []AssessCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]AssessCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Assess implements Assessor.
func (m *MockAssessor) Assess(ctx context.Context, source, target *datatypes.AbstractRepresentation,
	discrepancies []datatypes.ValidationDiscrepancy, scope datatypes.ValidationScope) (*Report, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, AssessCall{
		Scope:         scope,
		Discrepancies: append([]datatypes.ValidationDiscrepancy(nil), discrepancies...),
		Timestamp:     time.Now(),
	})

	if m.assessErr != nil {
		return nil, m.assessErr
	}
	if len(m.reports) > 0 {
		report := m.reports[0]
		m.reports = m.reports[1:]
		return report, nil
	}
	return m.defaultReport, nil
}

// CompareLogic implements LogicComparer.
func (m *MockAssessor) CompareLogic(ctx context.Context, sourceLogic, targetLogic string) (LogicComparison, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.logicErr != nil {
		return LogicComparison{}, m.logicErr
	}
	return m.logicResult, nil
}

// Ensure the mock satisfies both capability contracts.
var (
	_ Assessor      = (*MockAssessor)(nil)
	_ LogicComparer = (*MockAssessor)(nil)
	_ Assessor      = (*OpenAIAssessor)(nil)
	_ LogicComparer = (*OpenAIAssessor)(nil)
)
