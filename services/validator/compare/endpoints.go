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

// compareEndpoints detects missing and additional API endpoints.
//
// Endpoints are matched by exact (methods, path) key only; there is no
// rename detection for this category.
func compareEndpoints(source, target []datatypes.APIEndpoint) []datatypes.ValidationDiscrepancy {
	res := match.Exact(source, target)

	var out []datatypes.ValidationDiscrepancy
	for _, s := range res.SourceOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyMissingEndpoint,
			Severity:       datatypes.SeverityCritical,
			Description:    fmt.Sprintf("endpoint %q is missing from the target", s.Key()),
			SourceElement:  s.Key(),
			Recommendation: "Expose the missing route in the migrated API",
		})
	}
	for _, t := range res.TargetOnly {
		out = append(out, datatypes.ValidationDiscrepancy{
			Type:           datatypes.DiscrepancyAdditionalEndpoint,
			Severity:       datatypes.SeverityInfo,
			Description:    fmt.Sprintf("endpoint %q exists only in the target", t.Key()),
			TargetElement:  t.Key(),
			Recommendation: "Verify the added route is intentional",
		})
	}
	return out
}
