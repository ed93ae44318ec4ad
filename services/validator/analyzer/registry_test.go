// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package analyzer

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
)

func TestRegistryResolveMemoizes(t *testing.T) {
	reg := NewRegistry()
	constructed := 0
	key := Key{Technology: "react", InputType: datatypes.InputTypeManifest}
	reg.Register(key, func() (Analyzer, error) {
		constructed++
		return NewManifestAnalyzer(), nil
	})

	a1, err := reg.Resolve(key)
	require.NoError(t, err)
	a2, err := reg.Resolve(key)
	require.NoError(t, err)

	assert.Same(t, a1, a2, "resolve must return the memoized instance")
	assert.Equal(t, 1, constructed)
}

func TestRegistryResolveFallsBackToAny(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Key{Technology: TechnologyAny, InputType: datatypes.InputTypeManifest},
		func() (Analyzer, error) { return NewManifestAnalyzer(), nil })

	a, err := reg.Resolve(Key{Technology: "django", InputType: datatypes.InputTypeManifest})
	require.NoError(t, err)
	assert.Equal(t, "manifest", a.Name())
}

func TestRegistryResolveUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve(Key{Technology: "react", InputType: "screenshot"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAnalyzer)
}

func TestRegistryFactoryError(t *testing.T) {
	reg := NewRegistry()
	key := Key{Technology: "react", InputType: datatypes.InputTypeManifest}
	reg.Register(key, func() (Analyzer, error) {
		return nil, errors.New("bad wiring")
	})

	_, err := reg.Resolve(key)
	require.Error(t, err)

	// A failed construction is not cached; a fixed factory takes over.
	reg.Register(key, func() (Analyzer, error) { return NewManifestAnalyzer(), nil })
	a, err := reg.Resolve(key)
	require.NoError(t, err)
	assert.Equal(t, "manifest", a.Name())
}

func TestRegistryConcurrentResolve(t *testing.T) {
	reg := NewRegistry()
	key := Key{Technology: TechnologyAny, InputType: datatypes.InputTypeManifest}
	reg.Register(key, func() (Analyzer, error) { return NewManifestAnalyzer(), nil })

	const workers = 16
	results := make([]Analyzer, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := reg.Resolve(key)
			require.NoError(t, err)
			results[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}
