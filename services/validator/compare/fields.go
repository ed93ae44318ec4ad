// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package compare

import (
	"fmt"

	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/match"
)

// compareDataFields detects missing, renamed and additional fields plus
// type and constraint changes on matched pairs.
func compareDataFields(source, target []datatypes.DataField) []datatypes.ValidationDiscrepancy {
	res := match.Exact(source, target)
	renamed := res.ResolveRenames(func(s, t datatypes.DataField) bool {
		return s.Type == t.Type && match.NameSimilarity(s.Name, t.Name) >= nameSimilarityThreshold
	})

	var out []datatypes.ValidationDiscrepancy
	for _, pair := range renamed {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:     datatypes.DiscrepancyFieldRenamed,
			Severity: datatypes.SeverityWarning,
			Description: fmt.Sprintf("field %q appears renamed to %q (same type %q)",
				pair.Source.Name, pair.Target.Name, pair.Source.Type),
			SourceElement:  pair.Source.Name,
			TargetElement:  pair.Target.Name,
			Recommendation: "Confirm the rename and update any serialization contracts",
			Confidence:     datatypes.Float(renameConfidence),
		})
	}
	for _, s := range res.SourceOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyMissingField,
			Severity:       datatypes.SeverityCritical,
			Description:    fmt.Sprintf("field %q (%s) is missing from the target", s.Name, s.Type),
			SourceElement:  s.Name,
			Recommendation: "Add the missing field to the migrated data model",
		})
	}
	for _, t := range res.TargetOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyAdditionalField,
			Severity:       datatypes.SeverityInfo,
			Description:    fmt.Sprintf("field %q (%s) exists only in the target", t.Name, t.Type),
			TargetElement:  t.Name,
			Recommendation: "Verify the added field is intentional",
		})
	}
	for _, pair := range res.Pairs {
		if pair.Source.Type != pair.Target.Type {
			out = append(out, datatypes.ValidationDiscrepancy{
				Type:     datatypes.DiscrepancyTypeMismatch,
				Severity: datatypes.SeverityCritical,
				Description: fmt.Sprintf("field %q changed type from %q to %q",
					pair.Source.Name, pair.Source.Type, pair.Target.Type),
				SourceElement:  pair.Source.Name,
				TargetElement:  pair.Target.Name,
				Recommendation: "Align the target field type with the source",
			})
		}
		if pair.Source.Required != pair.Target.Required {
			// A required field becoming optional silently admits data the
			// source system rejected.
			severity := datatypes.SeverityWarning
			if pair.Source.Required && !pair.Target.Required {
				severity = datatypes.SeverityCritical
			}
			out = append(out, datatypes.ValidationDiscrepancy{
				Type:     datatypes.DiscrepancyConstraintChange,
				Severity: severity,
				Description: fmt.Sprintf("field %q changed required=%t to required=%t",
					pair.Source.Name, pair.Source.Required, pair.Target.Required),
				SourceElement:  pair.Source.Name,
				TargetElement:  pair.Target.Name,
				Recommendation: "Match the source field's required constraint",
			})
		}
	}
	return out
}
