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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingLogAppendOrder(t *testing.T) {
	log := NewProcessingLog()
	log.Append("first")
	log.Append("second: %d", 2)

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second: 2", entries[1].Message)
	assert.False(t, entries[0].Timestamp.IsZero())

	messages := log.Messages()
	require.Len(t, messages, 2)
	assert.True(t, strings.HasPrefix(messages[0], "["))
	assert.True(t, strings.HasSuffix(messages[0], "] first"))
}

func TestProcessingLogEntriesIsACopy(t *testing.T) {
	log := NewProcessingLog()
	log.Append("original")

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Entries()[0].Message)
}

func TestProcessingLogConcurrentAppends(t *testing.T) {
	log := NewProcessingLog()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				log.Append("writer %d line %d", i, j)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, log.Entries(), writers*perWriter)
}
