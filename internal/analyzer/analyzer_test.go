package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/leafscan/internal/catalog"
	"github.com/verdantlabs/leafscan/internal/diagnose"
	"github.com/verdantlabs/leafscan/internal/imaging"
)

var (
	leafGreen     = color.NRGBA{R: 52, G: 140, B: 49, A: 255}
	lesionBrown   = color.NRGBA{R: 101, G: 67, B: 33, A: 255}
	necroticBlack = color.NRGBA{R: 20, G: 18, B: 16, A: 255}
	neutralGray   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func solidPNG(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return encodePNG(t, img)
}

// blotchedPNG builds a 160x160 leaf with lesions in 10 of the 16 grid
// cells: 8 brown blocks, 2 near-black, 6 healthy green.
func blotchedPNG(t *testing.T) []byte {
	t.Helper()
	pattern := [4][4]color.NRGBA{
		{lesionBrown, leafGreen, lesionBrown, leafGreen},
		{lesionBrown, necroticBlack, lesionBrown, leafGreen},
		{leafGreen, lesionBrown, lesionBrown, necroticBlack},
		{lesionBrown, leafGreen, lesionBrown, leafGreen},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 160, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			img.SetNRGBA(x, y, pattern[y/40][x/40])
		}
	}
	return encodePNG(t, img)
}

// speckledPNG builds a 128x128 leaf of the base color with brown
// specks on every 16th diagonal, giving a damaged pixel fraction of
// exactly 1/16 with no grid cell crossing the affected threshold.
func speckledPNG(t *testing.T, base color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if (x+y)%16 == 0 {
				img.SetNRGBA(x, y, lesionBrown)
			} else {
				img.SetNRGBA(x, y, base)
			}
		}
	}
	return encodePNG(t, img)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newAnalyzer(t *testing.T) *Heuristic {
	t.Helper()
	h, err := NewHeuristic(catalog.Default())
	require.NoError(t, err)
	return h
}

func TestNewHeuristic_NilCatalog(t *testing.T) {
	_, err := NewHeuristic(nil)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestAnalyze_HealthyLeaf(t *testing.T) {
	h := newAnalyzer(t)

	result, err := h.Analyze(context.Background(), solidPNG(t, 128, 128, leafGreen), 0.7)
	require.NoError(t, err)

	det := result.DiseaseDetection
	assert.Equal(t, "healthy", det.PrimaryDisease)
	assert.Equal(t, 1.0, det.Confidence)
	assert.Equal(t, catalog.SeverityNone, det.Severity)
	assert.Equal(t, "healthy", det.DiseaseType)
	assert.Equal(t, 100, det.HealthScore)
	assert.False(t, det.LowConfidence)

	assert.Equal(t, 16, result.ROIAnalysis.TotalROIs)
	assert.Equal(t, 0, result.ROIAnalysis.AffectedROIs)
	assert.Zero(t, result.FeatureAnalysis.DamagedPixelsRatio)

	require.NotEmpty(t, result.Predictions)
	assert.Equal(t, "healthy", result.Predictions[0].Disease)
	for _, p := range result.Predictions {
		assert.GreaterOrEqual(t, p.Confidence, 0.7, "prediction %s survived the threshold", p.Disease)
	}

	require.NotNil(t, result.CarePlan)
	assert.Equal(t, "Routine - Maintain current care", result.CarePlan.Urgency)
}

func TestAnalyze_BlotchedLeaf(t *testing.T) {
	h := newAnalyzer(t)

	result, err := h.Analyze(context.Background(), blotchedPNG(t), 0.7)
	require.NoError(t, err)

	det := result.DiseaseDetection
	assert.Equal(t, "blight", det.PrimaryDisease)
	assert.Greater(t, det.Confidence, 0.9)
	assert.Equal(t, catalog.SeveritySevere, det.Severity)
	assert.Equal(t, "fungal", det.DiseaseType)
	assert.False(t, det.LowConfidence)
	assert.NotEmpty(t, det.SymptomsObserved)
	assert.NotEmpty(t, det.RiskIfUntreated)

	// 62.5% damaged pixels and 62.5% affected regions: penalty 75.
	assert.Equal(t, 25, det.HealthScore)
	assert.InDelta(t, 0.625, result.FeatureAnalysis.DamagedPixelsRatio, 1e-9)
	assert.Equal(t, 10, result.ROIAnalysis.AffectedROIs)
	assert.Equal(t, 62.5, result.ROIAnalysis.AffectedPercentage)

	require.NotNil(t, result.CarePlan)
	assert.Equal(t, "CRITICAL - Act immediately", result.CarePlan.Urgency)
	assert.Len(t, result.CarePlan.PriorityActions, 3)
}

func TestAnalyze_StrictThresholdMarksLowConfidence(t *testing.T) {
	h := newAnalyzer(t)

	result, err := h.Analyze(context.Background(), solidPNG(t, 64, 64, neutralGray), 0.99)
	require.NoError(t, err)

	det := result.DiseaseDetection
	assert.Equal(t, "healthy", det.PrimaryDisease)
	assert.Less(t, det.Confidence, 0.99)
	assert.True(t, det.LowConfidence)

	// Nothing clears the threshold, so only the best match survives.
	assert.Len(t, result.Predictions, 1)
}

func TestAnalyze_ThresholdClamped(t *testing.T) {
	h := newAnalyzer(t)
	img := solidPNG(t, 64, 64, neutralGray)

	below, err := h.Analyze(context.Background(), img, -5)
	require.NoError(t, err)
	assert.False(t, below.DiseaseDetection.LowConfidence)
	assert.Len(t, below.Predictions, 8)

	above, err := h.Analyze(context.Background(), img, 1.5)
	require.NoError(t, err)
	assert.True(t, above.DiseaseDetection.LowConfidence)
}

func TestAnalyze_MalformedInput(t *testing.T) {
	h := newAnalyzer(t)

	_, err := h.Analyze(context.Background(), []byte("definitely not an image"), 0.7)
	assert.ErrorIs(t, err, imaging.ErrDecode)

	_, err = h.Analyze(context.Background(), nil, 0.7)
	assert.ErrorIs(t, err, imaging.ErrDecode)
}

func TestAnalyze_GrayscaleInput(t *testing.T) {
	h := newAnalyzer(t)

	gray := image.NewGray(image.Rect(0, 0, 40, 40))
	for i := range gray.Pix {
		gray.Pix[i] = 200
	}

	_, err := h.Analyze(context.Background(), encodePNG(t, gray), 0.7)
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	h := newAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Analyze(ctx, solidPNG(t, 64, 64, leafGreen), 0.7)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_SeverityFollowsHealthScore(t *testing.T) {
	h := newAnalyzer(t)

	// Same lesion coverage on two different leaves: a green one that
	// tops as healthy and a reddish-olive one that tops as yellowing,
	// whose canonical grade is mild. Equal health scores must report
	// equal severities regardless of the winning condition.
	olive := color.NRGBA{R: 180, G: 90, B: 80, A: 255}

	green, err := h.Analyze(context.Background(), speckledPNG(t, leafGreen), 0.7)
	require.NoError(t, err)
	sick, err := h.Analyze(context.Background(), speckledPNG(t, olive), 0.7)
	require.NoError(t, err)

	assert.Equal(t, "healthy", green.DiseaseDetection.PrimaryDisease)
	assert.Equal(t, "yellowing", sick.DiseaseDetection.PrimaryDisease)

	require.Equal(t, green.DiseaseDetection.HealthScore, sick.DiseaseDetection.HealthScore)
	assert.Equal(t, 96, green.DiseaseDetection.HealthScore)
	assert.Equal(t, green.DiseaseDetection.Severity, sick.DiseaseDetection.Severity)

	for _, result := range []*AnalysisResult{green, sick} {
		assert.Equal(t, diagnose.SeverityFor(result.DiseaseDetection.HealthScore),
			result.DiseaseDetection.Severity)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	h := newAnalyzer(t)
	img := blotchedPNG(t)

	first, err := h.Analyze(context.Background(), img, 0.7)
	require.NoError(t, err)
	second, err := h.Analyze(context.Background(), img, 0.7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_JSONContract(t *testing.T) {
	h := newAnalyzer(t)

	result, err := h.Analyze(context.Background(), blotchedPNG(t), 0.7)
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"disease_detection", "feature_analysis", "roi_analysis", "predictions", "care_plan",
	} {
		assert.Contains(t, decoded, key)
	}

	var det map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["disease_detection"], &det))
	for _, key := range []string{
		"primary_disease", "confidence", "severity", "description", "disease_type",
		"common_causes", "symptoms_observed", "risk_if_untreated", "health_score", "low_confidence",
	} {
		assert.Contains(t, det, key)
	}
}
