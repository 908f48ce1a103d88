package diagnose

import (
	"math"

	"github.com/verdantlabs/leafscan/internal/catalog"
	"github.com/verdantlabs/leafscan/internal/imaging"
)

// Health penalty weights. Damaged tissue fraction dominates; the
// spread of damage across regions contributes the rest.
const (
	damagePenaltyWeight = 70.0
	spreadPenaltyWeight = 0.5
)

// Severity thresholds on the 0-100 health score.
const (
	healthyFloor  = 90
	mildFloor     = 70
	moderateFloor = 40
)

// Score grades overall plant health on a 0-100 scale. 100 means no
// visible damage; the score drops with the damaged pixel fraction and
// with how widely damage is spread across grid regions.
func Score(fv imaging.FeatureVector, roi imaging.ROIReport) int {
	penalty := damagePenaltyWeight*fv.DamagedPixelsRatio + spreadPenaltyWeight*roi.AffectedPercentage
	rounded := math.Round(penalty)
	if rounded > 100 {
		rounded = 100
	}
	return 100 - int(rounded)
}

// SeverityFor maps a health score to a severity grade. The mapping is
// monotonic: a lower score never yields a milder grade.
func SeverityFor(score int) catalog.Severity {
	switch {
	case score >= healthyFloor:
		return catalog.SeverityNone
	case score >= mildFloor:
		return catalog.SeverityMild
	case score >= moderateFloor:
		return catalog.SeverityModerate
	default:
		return catalog.SeveritySevere
	}
}
