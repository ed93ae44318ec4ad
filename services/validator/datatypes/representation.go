// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes holds the shared data model for migration fidelity
// validation.
//
// An AbstractRepresentation is the technology-agnostic feature set extracted
// from one side of a migration (UI elements, backend functions, data fields,
// API endpoints). Both sides of a comparison use the same model, so every
// record type defines a stable identity key that the element matcher uses
// for exact pairing.
//
// Thread Safety:
//
//	Representations are built once by an analyzer and are read-only
//	afterwards, except for accumulation via Merge during multi-document
//	loads. They are not safe for concurrent mutation.
package datatypes

import (
	"fmt"
	"sort"
	"strings"
)

// keyTextPrefixLen bounds the text portion of an anonymous UI element key.
const keyTextPrefixLen = 20

// Position is an optional UI element bounding box.
type Position struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// UIElement is a single user interface element (button, input, label, ...).
type UIElement struct {
	// Type is the tag or category string, e.g. "button" or "input".
	Type string `json:"type" yaml:"type"`

	// ID is the element identifier when the source markup provides one.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Text is the visible text content, if any.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Position is the optional rendered bounding box.
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"`

	// Attributes holds any additional element attributes.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Key returns the identity key used for exact matching.
//
// The key is the element ID when present, otherwise "type:text-prefix",
// otherwise "type:anonymous". Keys are pure functions of the record.
func (e UIElement) Key() string {
	if e.ID != "" {
		return e.ID
	}
	text := strings.TrimSpace(e.Text)
	if text != "" {
		if len(text) > keyTextPrefixLen {
			text = text[:keyTextPrefixLen]
		}
		return e.Type + ":" + text
	}
	return e.Type + ":anonymous"
}

// BackendFunction is a single backend function or method.
type BackendFunction struct {
	Name string `json:"name" yaml:"name"`

	// Parameters is the ordered parameter-name list.
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// LogicSummary is free text or pseudocode describing the body.
	LogicSummary string `json:"logic_summary,omitempty" yaml:"logic_summary,omitempty"`

	// Endpoint and Method are set when the function backs an HTTP route.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Method   string `json:"method,omitempty" yaml:"method,omitempty"`
}

// Key returns the identity key used for exact matching.
func (f BackendFunction) Key() string {
	return f.Name
}

// DataField is a single field of a data structure or model.
type DataField struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
}

// Key returns the identity key used for exact matching.
func (f DataField) Key() string {
	return f.Name
}

// APIEndpoint is a single HTTP API route.
type APIEndpoint struct {
	Path      string   `json:"path" yaml:"path"`
	Methods   []string `json:"methods,omitempty" yaml:"methods,omitempty"`
	Framework string   `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// Key returns the identity key "sorted(methods):path".
//
// Endpoints are matched by exact key only; there is no fuzzy pass for
// this category.
func (e APIEndpoint) Key() string {
	methods := make([]string, len(e.Methods))
	for i, m := range e.Methods {
		methods[i] = strings.ToUpper(strings.TrimSpace(m))
	}
	sort.Strings(methods)
	return strings.Join(methods, ",") + ":" + e.Path
}

// AbstractRepresentation is the structured feature set extracted from one
// analyzed system under one validation scope.
type AbstractRepresentation struct {
	UIElements   []UIElement       `json:"ui_elements,omitempty" yaml:"ui_elements,omitempty"`
	Functions    []BackendFunction `json:"functions,omitempty" yaml:"functions,omitempty"`
	DataFields   []DataField       `json:"data_fields,omitempty" yaml:"data_fields,omitempty"`
	APIEndpoints []APIEndpoint     `json:"api_endpoints,omitempty" yaml:"api_endpoints,omitempty"`

	// Metadata carries free-form analyzer output (source technology,
	// document counts, extraction notes).
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Merge accumulates another representation into this one.
//
// Used when an analyzer processes multiple input documents for the same
// (system, scope) pair. Metadata keys from other overwrite existing keys.
func (r *AbstractRepresentation) Merge(other *AbstractRepresentation) {
	if other == nil {
		return
	}
	r.UIElements = append(r.UIElements, other.UIElements...)
	r.Functions = append(r.Functions, other.Functions...)
	r.DataFields = append(r.DataFields, other.DataFields...)
	r.APIEndpoints = append(r.APIEndpoints, other.APIEndpoints...)
	if len(other.Metadata) > 0 {
		if r.Metadata == nil {
			r.Metadata = make(map[string]any, len(other.Metadata))
		}
		for k, v := range other.Metadata {
			r.Metadata[k] = v
		}
	}
}

// Clone returns a deep copy of the representation.
func (r *AbstractRepresentation) Clone() *AbstractRepresentation {
	if r == nil {
		return nil
	}
	out := &AbstractRepresentation{
		UIElements:   make([]UIElement, len(r.UIElements)),
		Functions:    make([]BackendFunction, len(r.Functions)),
		DataFields:   make([]DataField, len(r.DataFields)),
		APIEndpoints: make([]APIEndpoint, len(r.APIEndpoints)),
	}
	for i, e := range r.UIElements {
		clone := e
		if e.Position != nil {
			pos := *e.Position
			clone.Position = &pos
		}
		if e.Attributes != nil {
			clone.Attributes = make(map[string]string, len(e.Attributes))
			for k, v := range e.Attributes {
				clone.Attributes[k] = v
			}
		}
		out.UIElements[i] = clone
	}
	for i, f := range r.Functions {
		clone := f
		clone.Parameters = append([]string(nil), f.Parameters...)
		out.Functions[i] = clone
	}
	copy(out.DataFields, r.DataFields)
	for i, e := range r.APIEndpoints {
		clone := e
		clone.Methods = append([]string(nil), e.Methods...)
		out.APIEndpoints[i] = clone
	}
	if r.Metadata != nil {
		out.Metadata = make(map[string]any, len(r.Metadata))
		for k, v := range r.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// Counts returns the per-category element counts, used for logging.
func (r *AbstractRepresentation) Counts() string {
	return fmt.Sprintf("ui=%d functions=%d fields=%d endpoints=%d",
		len(r.UIElements), len(r.Functions), len(r.DataFields), len(r.APIEndpoints))
}
