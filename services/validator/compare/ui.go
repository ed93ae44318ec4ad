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

// compareUIElements detects missing, renamed, additional and moved UI
// elements.
func compareUIElements(source, target []datatypes.UIElement) []datatypes.ValidationDiscrepancy {
	res := match.Exact(source, target)
	renamed := res.ResolveRenames(func(s, t datatypes.UIElement) bool {
		return s.Type == t.Type && match.CharSetSimilarity(s.Text, t.Text) >= uiTextSimilarityThreshold
	})

	var out []datatypes.ValidationDiscrepancy
	for _, pair := range renamed {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:     datatypes.DiscrepancyUIElementRenamed,
			Severity: datatypes.SeverityWarning,
			Description: fmt.Sprintf("UI element %q appears renamed to %q (same type %q, similar text)",
				pair.Source.Key(), pair.Target.Key(), pair.Source.Type),
			SourceElement:  pair.Source.Key(),
			TargetElement:  pair.Target.Key(),
			Recommendation: "Confirm the rename is intentional and update references",
			Confidence:     datatypes.Float(renameConfidence),
		})
	}
	for _, s := range res.SourceOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyMissingUIElement,
			Severity:       datatypes.SeverityCritical,
			Description:    fmt.Sprintf("UI element %q (%s) is missing from the target", s.Key(), s.Type),
			SourceElement:  s.Key(),
			Recommendation: "Add the missing element to the migrated UI",
		})
	}
	for _, t := range res.TargetOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyAdditionalUIElement,
			Severity:       datatypes.SeverityInfo,
			Description:    fmt.Sprintf("UI element %q (%s) exists only in the target", t.Key(), t.Type),
			TargetElement:  t.Key(),
			Recommendation: "Verify the added element is intentional",
		})
	}
	for _, pair := range res.Pairs {
		if pair.Source.Position == nil || pair.Target.Position == nil {
			continue
		}
		if *pair.Source.Position != *pair.Target.Position {
			out = append(out, datatypes.ValidationDiscrepancy{
				Type:     datatypes.DiscrepancyUIPositionChange,
				Severity: datatypes.SeverityWarning,
				Description: fmt.Sprintf("UI element %q moved from (%.0f,%.0f %gx%g) to (%.0f,%.0f %gx%g)",
					pair.Source.Key(),
					pair.Source.Position.X, pair.Source.Position.Y,
					pair.Source.Position.Width, pair.Source.Position.Height,
					pair.Target.Position.X, pair.Target.Position.Y,
					pair.Target.Position.Width, pair.Target.Position.Height),
				SourceElement:  pair.Source.Key(),
				TargetElement:  pair.Target.Key(),
				Recommendation: "Check the migrated layout against the source design",
			})
		}
	}
	return out
}
