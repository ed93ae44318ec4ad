// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianMigrate/services/validator/analyzer"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := analyzer.NewRegistry()
	reg.Register(
		analyzer.Key{Technology: analyzer.TechnologyAny, InputType: datatypes.InputTypeManifest},
		func() (analyzer.Analyzer, error) { return analyzer.NewManifestAnalyzer(), nil },
	)
	comparator := compare.NewSemanticComparator()
	pipeline := session.NewPipeline(reg, comparator)
	store := session.NewStore()

	h := NewHandlers(pipeline, comparator, store, nil)
	r := gin.New()
	r.GET("/health", h.Health)
	r.POST("/v1/validate", h.Validate)
	r.GET("/v1/validations/:id", h.GetValidation)
	r.POST("/v1/compare", h.Compare)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestValidateEndpointApproved(t *testing.T) {
	r, store := newTestRouter(t)
	manifest := json.RawMessage(`{"data_fields":[{"name":"user_id","type":"int","required":true}]}`)

	w := doJSON(t, r, http.MethodPost, "/v1/validate", map[string]any{
		"scope":  "data_structure",
		"source": manifest,
		"target": manifest,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "completed", resp.State)
	require.NotNil(t, resp.Result)
	assert.Equal(t, datatypes.StatusApproved, resp.Result.OverallStatus)
	assert.NotEmpty(t, resp.Log)

	// The terminal session is retrievable afterwards.
	assert.Equal(t, 1, store.Len())
	w = doJSON(t, r, http.MethodGet, "/v1/validations/"+resp.SessionID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateEndpointRejectsBadScope(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/validate", map[string]any{
		"scope":  "everything",
		"source": json.RawMessage(`{}`),
		"target": json.RawMessage(`{}`),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpointRejectsMissingBodyFields(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/validate", map[string]any{
		"scope": "full_system",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpointMalformedManifest(t *testing.T) {
	r, store := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/validate", map[string]any{
		"scope":  "data_structure",
		"source": json.RawMessage(`"not an object"`),
		"target": json.RawMessage(`{}`),
	})
	// The analyzer rejects the manifest; the error session is still
	// returned and stored.
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.State)
	require.NotNil(t, resp.Result)
	assert.Equal(t, datatypes.StatusError, resp.Result.OverallStatus)
	assert.Equal(t, 1, store.Len())
}

func TestValidateEndpointInvalidTechnology(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/validate", map[string]any{
		"scope":             "full_system",
		"source_technology": "Not Valid!",
		"source":            json.RawMessage(`{}`),
		"target":            json.RawMessage(`{}`),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetValidationNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/validations/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompareEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/compare", map[string]any{
		"scope": "api_endpoints",
		"source": map[string]any{
			"api_endpoints": []map[string]any{
				{"path": "/users", "methods": []string{"GET"}},
				{"path": "/users", "methods": []string{"POST"}},
			},
		},
		"target": map[string]any{
			"api_endpoints": []map[string]any{
				{"path": "/users", "methods": []string{"POST"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Discrepancies, 1)
	assert.Equal(t, datatypes.DiscrepancyMissingEndpoint, resp.Discrepancies[0].Type)
	require.NotNil(t, resp.Quality)
	assert.Equal(t, datatypes.StatusRejected, resp.Quality.OverallStatus)
	assert.InDelta(t, 0.85, resp.Quality.FidelityScore, 1e-9)
}

func TestCompareEndpointBadScope(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/compare", map[string]any{
		"scope":  "bogus",
		"source": map[string]any{},
		"target": map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpStatusFor(compare.ErrUnknownScope))
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatusFor(analyzer.ErrUnknownAnalyzer))
	assert.Equal(t, http.StatusBadRequest, httpStatusFor(analyzer.NewInvalidInput("m", "bad", nil)))
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatusFor(analyzer.NewUnsupportedScope("m", "no")))
	assert.Equal(t, http.StatusInternalServerError, httpStatusFor(analyzer.NewExtraction("m", "boom", nil)))
	assert.Equal(t, http.StatusInternalServerError, httpStatusFor(assert.AnError))
}
