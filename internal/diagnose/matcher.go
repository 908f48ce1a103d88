// Package diagnose ranks disease signatures against an extracted
// feature vector and grades overall plant health.
package diagnose

import (
	"math"
	"sort"

	"github.com/verdantlabs/leafscan/internal/catalog"
	"github.com/verdantlabs/leafscan/internal/imaging"
)

// Deviation scales normalize out-of-band distances into comparable
// penalty units. Each scale is the distance at which a feature's
// deviation saturates to a full penalty, chosen per feature range
// (variance runs to the tens of thousands, ratios to 1).
const (
	scaleColorVariance = 6000.0
	scaleBrightness    = 120.0
	scaleContrast      = 80.0
	scaleGreenness     = 0.6
	scaleEdgeDensity   = 0.3
	scaleDamagedRatio  = 0.4
)

// Prediction is one catalog signature scored against a feature vector.
type Prediction struct {
	Disease      string           `json:"disease"`
	Confidence   float64          `json:"confidence"`
	Severity     catalog.Severity `json:"severity"`
	Description  string           `json:"description"`
	CommonCauses []string         `json:"common_causes"`
}

// Match scores every catalog signature against the feature vector and
// returns predictions ordered by descending confidence. The sort is
// stable, so equal confidences keep catalog order.
func Match(fv imaging.FeatureVector, c *catalog.Catalog) []Prediction {
	entries := c.Entries()
	predictions := make([]Prediction, 0, len(entries))
	for _, sig := range entries {
		predictions = append(predictions, Prediction{
			Disease:      sig.ID,
			Confidence:   confidence(fv, sig.Bands),
			Severity:     sig.Severity,
			Description:  sig.Description,
			CommonCauses: sig.CommonCauses,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})
	return predictions
}

// confidence is 1 minus the weighted mean band deviation, clamped to
// [0, 1] and rounded to three decimals. A vector inside every band
// scores exactly 1.
func confidence(fv imaging.FeatureVector, b catalog.Bands) float64 {
	type scored struct {
		value float64
		band  catalog.Band
		scale float64
	}
	features := []scored{
		{fv.ColorVariance, b.ColorVariance, scaleColorVariance},
		{fv.Brightness, b.Brightness, scaleBrightness},
		{fv.Contrast, b.Contrast, scaleContrast},
		{fv.Greenness, b.Greenness, scaleGreenness},
		{fv.EdgeDensity, b.EdgeDensity, scaleEdgeDensity},
		{fv.DamagedPixelsRatio, b.DamagedPixelsRatio, scaleDamagedRatio},
	}

	var totalWeight, penalty float64
	for _, f := range features {
		totalWeight += f.band.Weight
		penalty += f.band.Weight * bandDeviation(f.value, f.band, f.scale)
	}
	if totalWeight == 0 {
		return 0
	}

	conf := 1 - penalty/totalWeight
	if conf < 0 {
		conf = 0
	} else if conf > 1 {
		conf = 1
	}
	return math.Round(conf*1000) / 1000
}

// bandDeviation measures how far a value falls outside [Lo, Hi] in
// units of scale, saturating at 1. In-band values deviate 0.
func bandDeviation(v float64, b catalog.Band, scale float64) float64 {
	var distance float64
	switch {
	case v < b.Lo:
		distance = b.Lo - v
	case v > b.Hi:
		distance = v - b.Hi
	default:
		return 0
	}

	dev := distance / scale
	if dev > 1 {
		return 1
	}
	return dev
}
