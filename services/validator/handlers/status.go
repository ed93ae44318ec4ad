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
	"errors"
	"net/http"

	"github.com/AleutianAI/AleutianMigrate/services/validator/analyzer"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
)

// httpStatusFor maps pipeline failures onto HTTP status codes.
//
// Invalid input and unknown scopes are the caller's fault; unknown
// analyzers and unsupported scopes mean the deployment cannot serve the
// request; everything else is a server-side failure.
func httpStatusFor(err error) int {
	if errors.Is(err, compare.ErrUnknownScope) {
		return http.StatusBadRequest
	}
	if errors.Is(err, analyzer.ErrUnknownAnalyzer) {
		return http.StatusUnprocessableEntity
	}
	if kind, ok := analyzer.KindOf(err); ok {
		switch kind {
		case analyzer.KindInvalidInput:
			return http.StatusBadRequest
		case analyzer.KindUnsupportedScope:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
