// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers provides HTTP request handlers for the validator
// service.
//
// The surface is deliberately thin: it exposes the session and
// comparator capabilities over JSON and nothing else. Authentication,
// rate limiting and durable persistence live outside this service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/AleutianMigrate/pkg/validation"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/session"
)

// Handlers bundles the validator's HTTP handlers and their
// dependencies.
type Handlers struct {
	pipeline   *session.Pipeline
	comparator *compare.SemanticComparator
	store      *session.Store
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewHandlers wires the handler set.
func NewHandlers(pipeline *session.Pipeline, comparator *compare.SemanticComparator,
	store *session.Store, logger *slog.Logger) *Handlers {

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("scope", func(fl validator.FieldLevel) bool {
		return datatypes.ValidationScope(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("technology", func(fl validator.FieldLevel) bool {
		return validation.ValidateTechnology(fl.Field().String()) == nil
	})

	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		pipeline:   pipeline,
		comparator: comparator,
		store:      store,
		validate:   v,
		logger:     logger,
	}
}

// ValidateRequest is the POST /v1/validate body. Source and target are
// inline feature manifests (the same shape the manifest analyzer reads
// from disk).
type ValidateRequest struct {
	Scope            string          `json:"scope" validate:"required,scope"`
	SourceTechnology string          `json:"source_technology" validate:"omitempty,technology"`
	TargetTechnology string          `json:"target_technology" validate:"omitempty,technology"`
	Source           json.RawMessage `json:"source" validate:"required"`
	Target           json.RawMessage `json:"target" validate:"required"`
}

// ValidateResponse is the POST /v1/validate reply.
type ValidateResponse struct {
	SessionID string                      `json:"session_id"`
	State     string                      `json:"state"`
	Result    *datatypes.ValidationResult `json:"result"`
	Log       []string                    `json:"log"`
}

// Validate handles POST /v1/validate: it runs one validation session
// synchronously and returns its terminal state.
func (h *Handlers) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	vreq := datatypes.ValidationRequest{
		Scope:            datatypes.ValidationScope(req.Scope),
		SourceTechnology: defaultTechnology(req.SourceTechnology),
		TargetTechnology: defaultTechnology(req.TargetTechnology),
		Source: datatypes.AnalyzerInput{
			InputType: datatypes.InputTypeManifest,
			Documents: []datatypes.Document{{Name: "source.json", Data: req.Source}},
		},
		Target: datatypes.AnalyzerInput{
			InputType: datatypes.InputTypeManifest,
			Documents: []datatypes.Document{{Name: "target.json", Data: req.Target}},
		},
	}

	sess, err := h.pipeline.ValidateMigration(c.Request.Context(), vreq)
	h.store.Put(sess)
	status := http.StatusOK
	if err != nil {
		// The session still carries an error result; surface it with a
		// client or server error code depending on the failure kind.
		status = httpStatusFor(err)
		h.logger.Warn("validation request failed",
			slog.String("session_id", sess.ID),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(status, ValidateResponse{
		SessionID: sess.ID,
		State:     sess.State.String(),
		Result:    sess.Result,
		Log:       sess.Log().Messages(),
	})
}

// GetValidation handles GET /v1/validations/:id.
func (h *Handlers) GetValidation(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "validation session not found"})
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{
		SessionID: sess.ID,
		State:     sess.State.String(),
		Result:    sess.Result,
		Log:       sess.Log().Messages(),
	})
}

// CompareRequest is the POST /v1/compare body: two already-extracted
// representations compared directly, without a session.
type CompareRequest struct {
	Scope  string                            `json:"scope" validate:"required,scope"`
	Source *datatypes.AbstractRepresentation `json:"source" validate:"required"`
	Target *datatypes.AbstractRepresentation `json:"target" validate:"required"`
}

// CompareResponse is the POST /v1/compare reply.
type CompareResponse struct {
	Discrepancies []datatypes.ValidationDiscrepancy `json:"discrepancies"`
	Quality       *compare.QualityReport            `json:"quality"`
}

// Compare handles POST /v1/compare: raw comparator access for callers
// that already hold both representations.
func (h *Handlers) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	scope := datatypes.ValidationScope(req.Scope)
	discrepancies, err := h.comparator.Compare(c.Request.Context(), req.Source, req.Target, scope)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quality := h.comparator.AssessMigrationQuality(c.Request.Context(), req.Source, req.Target, discrepancies, scope)
	c.JSON(http.StatusOK, CompareResponse{
		Discrepancies: discrepancies,
		Quality:       quality,
	})
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "validator"})
}

func defaultTechnology(technology string) string {
	if technology == "" {
		return "any"
	}
	return technology
}
