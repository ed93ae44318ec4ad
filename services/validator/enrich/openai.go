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
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

const assessmentSystemPrompt = `You are a migration fidelity reviewer. You receive the abstract
feature representations of a source system and its migrated target, plus
the discrepancies already detected by deterministic comparison. Assess the
migration and respond with STRICT JSON only, no prose, in this shape:
{
  "confidence": 0.0,
  "result": {
    "functional_equivalence": {"critical_differences": []},
    "user_experience": {"ux_issues": []},
    "data_integrity": {"integrity_risks": []},
    "recommendations": [{"priority": "high|medium|low", "description": ""}]
  }
}`

const logicSystemPrompt = `You compare the business logic of two function summaries. Respond with
STRICT JSON only: {"similarity": 0.0, "confidence": 0.0}. Similarity is
behavioral equivalence in [0,1], ignoring wording and naming.`

// OpenAIAssessor implements Assessor and LogicComparer against an
// OpenAI-compatible chat completion API.
type OpenAIAssessor struct {
	client *openai.Client
	model  string
}

// NewOpenAIAssessor builds an assessor from the environment.
//
// Reads OPENAI_API_KEY (falling back to the Podman secret file) and
// OPENAI_MODEL, matching the conventions of the other Aleutian services.
func NewOpenAIAssessor() (*OpenAIAssessor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if apiKey == "" {
		secretPath := "/run/secrets/openai_api_key"
		apiKeyBytes, err := os.ReadFile(secretPath)
		if err == nil {
			apiKey = strings.TrimSpace(string(apiKeyBytes))
			slog.Info("Read the OpenAI API Key from Podman Secrets")
		} else {
			slog.Error("OPENAI_API_KEY environment variable not set and secret not found", "path", secretPath)
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	if model == "" {
		model = "gpt-4o-mini"
		slog.Warn("OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}
	slog.Info("Initializing OpenAI fidelity assessor", "model", model)
	return &OpenAIAssessor{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Assess implements Assessor.
func (a *OpenAIAssessor) Assess(ctx context.Context, source, target *datatypes.AbstractRepresentation,
	discrepancies []datatypes.ValidationDiscrepancy, scope datatypes.ValidationScope) (*Report, error) {

	payload := struct {
		Scope         datatypes.ValidationScope         `json:"scope"`
		Source        *datatypes.AbstractRepresentation `json:"source"`
		Target        *datatypes.AbstractRepresentation `json:"target"`
		Discrepancies []datatypes.ValidationDiscrepancy `json:"discrepancies"`
	}{scope, source, target, discrepancies}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment payload: %w", err)
	}

	content, err := a.complete(ctx, assessmentSystemPrompt, string(body))
	if err != nil {
		return nil, err
	}

	var report Report
	if err := json.Unmarshal([]byte(extractJSON(content)), &report); err != nil {
		return nil, fmt.Errorf("parse assessment response: %w", err)
	}
	if report.Confidence < 0 || report.Confidence > 1 {
		return nil, fmt.Errorf("assessment confidence %.3f outside [0,1]", report.Confidence)
	}
	return &report, nil
}

// CompareLogic implements LogicComparer.
func (a *OpenAIAssessor) CompareLogic(ctx context.Context, sourceLogic, targetLogic string) (LogicComparison, error) {
	prompt := fmt.Sprintf("SOURCE LOGIC:\n%s\n\nTARGET LOGIC:\n%s", sourceLogic, targetLogic)
	content, err := a.complete(ctx, logicSystemPrompt, prompt)
	if err != nil {
		return LogicComparison{}, err
	}

	var cmp LogicComparison
	if err := json.Unmarshal([]byte(extractJSON(content)), &cmp); err != nil {
		return LogicComparison{}, fmt.Errorf("parse logic comparison response: %w", err)
	}
	if cmp.Similarity < 0 || cmp.Similarity > 1 || cmp.Confidence < 0 || cmp.Confidence > 1 {
		return LogicComparison{}, fmt.Errorf("logic comparison values outside [0,1]: %+v", cmp)
	}
	return cmp, nil
}

func (a *OpenAIAssessor) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.1,
	})
	if err != nil {
		slog.Error("OpenAI API call failed", "error", err)
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// extractJSON strips markdown code fences that some models wrap around
// JSON responses.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}
