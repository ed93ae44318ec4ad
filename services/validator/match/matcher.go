// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package match implements pairwise matching of representation records.
//
// Matching runs in two passes. The exact pass partitions two collections
// of same-category records into matched pairs, source-only and target-only
// sets by identity key in O(n+m). The fuzzy pass then attempts to re-pair
// leftover items using a category-specific similarity predicate, so that a
// rename is reported as one "renamed" discrepancy instead of a
// missing/additional pair.
//
// Determinism:
//
//	The fuzzy pass walks source-only items in source list order and, for
//	each, scans target-only items in target list order; the first
//	candidate above threshold wins and is consumed. An item is consumed
//	by at most one fuzzy pair. This ordering is the documented tie-break.
package match

// Keyed is any record with a stable identity key.
//
// Keys must be pure functions of the record; the matcher assumes that two
// records with equal keys represent the same logical element.
type Keyed interface {
	Key() string
}

// Pair is one matched (source, target) record pair.
type Pair[T Keyed] struct {
	Source T
	Target T
}

// Result partitions two collections after the exact pass.
type Result[T Keyed] struct {
	// Pairs holds records matched by identity key, in source list order.
	Pairs []Pair[T]

	// SourceOnly holds source records with no key match in the target,
	// in source list order.
	SourceOnly []T

	// TargetOnly holds target records with no key match in the source,
	// in target list order.
	TargetOnly []T
}

// Exact partitions source and target by identity key.
//
// Duplicate keys within one collection pair up with the first occurrence
// on the other side; later duplicates fall into the *Only sets.
func Exact[T Keyed](source, target []T) Result[T] {
	var res Result[T]

	byKey := make(map[string][]int, len(target))
	for i, t := range target {
		key := t.Key()
		byKey[key] = append(byKey[key], i)
	}

	consumed := make([]bool, len(target))
	for _, s := range source {
		key := s.Key()
		indices := byKey[key]
		if len(indices) > 0 {
			idx := indices[0]
			byKey[key] = indices[1:]
			consumed[idx] = true
			res.Pairs = append(res.Pairs, Pair[T]{Source: s, Target: target[idx]})
			continue
		}
		res.SourceOnly = append(res.SourceOnly, s)
	}
	for i, t := range target {
		if !consumed[i] {
			res.TargetOnly = append(res.TargetOnly, t)
		}
	}
	return res
}

// ResolveRenames runs the fuzzy pass over the unmatched sets.
//
// similar reports whether an unmatched source record and an unmatched
// target record are close enough to be the same element after a rename.
// Each fuzzy pair removes its members from SourceOnly and TargetOnly, so
// after this call the remaining sets are genuinely missing/additional.
//
// Passing a nil predicate disables the fuzzy pass (used for categories
// such as API endpoints that are matched by exact key only).
func (r *Result[T]) ResolveRenames(similar func(source, target T) bool) []Pair[T] {
	if similar == nil || len(r.SourceOnly) == 0 || len(r.TargetOnly) == 0 {
		return nil
	}

	var renamed []Pair[T]
	remainingSource := r.SourceOnly[:0]
	taken := make([]bool, len(r.TargetOnly))

	for _, s := range r.SourceOnly {
		matched := false
		for i, t := range r.TargetOnly {
			if taken[i] {
				continue
			}
			if similar(s, t) {
				renamed = append(renamed, Pair[T]{Source: s, Target: t})
				taken[i] = true
				matched = true
				break
			}
		}
		if !matched {
			remainingSource = append(remainingSource, s)
		}
	}

	r.SourceOnly = remainingSource
	remainingTarget := make([]T, 0, len(r.TargetOnly))
	for i, t := range r.TargetOnly {
		if !taken[i] {
			remainingTarget = append(remainingTarget, t)
		}
	}
	r.TargetOnly = remainingTarget
	return renamed
}
