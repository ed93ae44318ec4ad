// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateTechnology(t *testing.T) {
	valid := []string{
		"flask",
		"react18",
		"spring-boot",
		"dot_net",
		"any",
		"a",
		"a" + strings.Repeat("b", 31),
	}
	for _, tech := range valid {
		assert.NoError(t, ValidateTechnology(tech), tech)
	}

	invalid := []string{
		"",
		"Flask",
		"1react",
		"-flask",
		"spring boot",
		"node.js",
		"a" + strings.Repeat("b", 32),
		"flask;drop",
	}
	for _, tech := range invalid {
		assert.Error(t, ValidateTechnology(tech), tech)
	}
}

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID(uuid.NewString()))
	assert.NoError(t, ValidateSessionID("A1B2C3D4-E5F6-A7B8-C9D0-A1B2C3D4E5F6"))

	invalid := []string{
		"",
		"not-a-uuid",
		"a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6",
		"a1b2c3d4-e5f6-a7b8-c9d0-a1b2c3d4e5f",
		"g1b2c3d4-e5f6-a7b8-c9d0-a1b2c3d4e5f6",
	}
	for _, id := range invalid {
		assert.Error(t, ValidateSessionID(id), id)
	}
}
