// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package match

import "strings"

// normalizedEqualSimilarity is the similarity assigned to names that are
// equal after normalization but not byte-equal (camelCase vs snake_case
// convention changes).
const normalizedEqualSimilarity = 0.9

// CharSetSimilarity computes the character-set Jaccard similarity of two
// strings: |intersection| / |union| over case-folded rune sets.
//
// Strings that are equal after whitespace trimming score 1.0. Character
// multiplicity and order are deliberately ignored; this is a naive
// heuristic, and the matching thresholds used by the comparators were
// tuned against exactly this metric.
func CharSetSimilarity(a, b string) float64 {
	if strings.TrimSpace(a) == strings.TrimSpace(b) {
		return 1.0
	}

	setA := runeSet(a)
	setB := runeSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// NormalizeName lower-cases a name and strips underscore and hyphen
// separators, collapsing snake_case, kebab-case and camelCase spellings
// of the same identifier onto one form.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, "-", "")
	return name
}

// NameSimilarity scores two identifiers.
//
// Identical names score 1.0. Names that are equal only after
// normalization score 0.9 (a naming-convention change, not a genuine
// rename). Otherwise the score falls back to CharSetSimilarity.
func NameSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if NormalizeName(a) == NormalizeName(b) {
		return normalizedEqualSimilarity
	}
	return CharSetSimilarity(a, b)
}

// SetJaccard computes the Jaccard similarity of two string sets.
//
// Used for order-insensitive parameter list comparison. Two empty sets
// score 1.0.
func SetJaccard(a, b []string) float64 {
	setA := stringSet(a)
	setB := stringSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range strings.ToLower(s) {
		set[r] = struct{}{}
	}
	return set
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
