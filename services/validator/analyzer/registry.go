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
	"fmt"
	"sync"
)

// TechnologyAny registers an analyzer as the fallback for every
// technology with a matching input type.
const TechnologyAny = "any"

// Key identifies one analyzer in the registry.
type Key struct {
	Technology string
	InputType  string
}

// Factory constructs an analyzer instance.
//
// Factories must be idempotent and side-effect free: the registry
// memoizes the first constructed instance per key and shares it across
// all concurrent pipelines.
type Factory func() (Analyzer, error)

// Registry is an explicit memoization table for analyzer instances,
// keyed by (technology, input type).
type Registry interface {
	// Register installs a factory for the key. Later registrations for
	// the same key replace the factory but not an already-memoized
	// instance.
	Register(key Key, factory Factory)

	// Resolve returns the memoized analyzer for the key, constructing it
	// on first use. Falls back to a TechnologyAny registration with the
	// same input type. Returns ErrUnknownAnalyzer when neither exists.
	Resolve(key Key) (Analyzer, error)
}

// NewRegistry creates an empty analyzer registry.
func NewRegistry() Registry {
	return &memoRegistry{
		factories: make(map[Key]Factory),
		cache:     make(map[Key]Analyzer),
	}
}

// memoRegistry guards its tables with a mutex. Analyzer construction is
// assumed idempotent, but Go map access races are memory-unsafe, so the
// table is locked rather than left to racing lookups.
type memoRegistry struct {
	mu        sync.Mutex
	factories map[Key]Factory
	cache     map[Key]Analyzer
}

func (r *memoRegistry) Register(key Key, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
}

func (r *memoRegistry) Resolve(key Key) (Analyzer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.cache[key]; ok {
		return a, nil
	}

	factory, ok := r.factories[key]
	if !ok {
		fallback := Key{Technology: TechnologyAny, InputType: key.InputType}
		factory, ok = r.factories[fallback]
		if !ok {
			return nil, fmt.Errorf("%w for technology %q, input type %q",
				ErrUnknownAnalyzer, key.Technology, key.InputType)
		}
	}

	a, err := factory()
	if err != nil {
		return nil, fmt.Errorf("construct analyzer for %q/%q: %w", key.Technology, key.InputType, err)
	}
	r.cache[key] = a
	return a, nil
}
