// Package analyzer orchestrates the full screening pipeline: decode,
// feature extraction, region segmentation, signature matching, health
// scoring, and care plan generation.
package analyzer

import (
	"context"
	"fmt"

	"github.com/verdantlabs/leafscan/internal/careplan"
	"github.com/verdantlabs/leafscan/internal/catalog"
	"github.com/verdantlabs/leafscan/internal/diagnose"
	"github.com/verdantlabs/leafscan/internal/imaging"
)

// Analyzer screens a plant image and reports on its health.
//
// confidenceThreshold filters the returned predictions: only matches
// at or above it are kept, except that the single best match always
// survives so the caller gets a diagnosis to act on. Values outside
// [0, 1] are clamped.
type Analyzer interface {
	Analyze(ctx context.Context, imageBytes []byte, confidenceThreshold float64) (*AnalysisResult, error)
}

// DiseaseDetection is the primary diagnosis with its supporting texts.
//
// Severity is derived from the health score alone, so two analyses
// with the same score always report the same grade. The condition's
// canonical grade stays visible on its prediction entry.
type DiseaseDetection struct {
	PrimaryDisease   string           `json:"primary_disease"`
	Confidence       float64          `json:"confidence"`
	Severity         catalog.Severity `json:"severity"`
	Description      string           `json:"description"`
	DiseaseType      string           `json:"disease_type"`
	CommonCauses     []string         `json:"common_causes"`
	SymptomsObserved []string         `json:"symptoms_observed"`
	RiskIfUntreated  string           `json:"risk_if_untreated"`
	HealthScore      int              `json:"health_score"`
	LowConfidence    bool             `json:"low_confidence"`
}

// AnalysisResult is the complete output of one screening run.
type AnalysisResult struct {
	DiseaseDetection DiseaseDetection      `json:"disease_detection"`
	FeatureAnalysis  imaging.FeatureVector `json:"feature_analysis"`
	ROIAnalysis      imaging.ROIReport     `json:"roi_analysis"`
	Predictions      []diagnose.Prediction `json:"predictions"`
	CarePlan         *careplan.CarePlan    `json:"care_plan"`
}

// Heuristic is the feature-band implementation of Analyzer. It is
// stateless apart from its catalog and safe for concurrent use.
type Heuristic struct {
	catalog *catalog.Catalog
}

// NewHeuristic builds an analyzer over the given signature catalog.
func NewHeuristic(c *catalog.Catalog) (*Heuristic, error) {
	if c == nil || c.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	return &Heuristic{catalog: c}, nil
}

// Analyze runs the screening pipeline on raw image bytes. The same
// bytes, threshold, and catalog always produce the same result.
//
// The context is honored between pipeline stages; a canceled context
// returns ctx.Err() without a partial result.
func (h *Heuristic) Analyze(ctx context.Context, imageBytes []byte, confidenceThreshold float64) (*AnalysisResult, error) {
	threshold := clampThreshold(confidenceThreshold)

	img, err := imaging.Decode(imageBytes)
	if err != nil {
		return nil, fmt.Errorf("analyzing image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	features := imaging.Extract(img)
	regions := imaging.Segment(img)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	predictions := diagnose.Match(features, h.catalog)
	kept := predictions[:0:0]
	for _, p := range predictions {
		if p.Confidence >= threshold {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		kept = predictions[:1]
	}
	top := kept[0]

	sig, _ := h.catalog.ByID(top.Disease)
	score := diagnose.Score(features, regions)
	severity := diagnose.SeverityFor(score)

	plan, err := careplan.Generate(top.Disease, severity, h.catalog)
	if err != nil {
		return nil, fmt.Errorf("generating care plan: %w", err)
	}

	return &AnalysisResult{
		DiseaseDetection: DiseaseDetection{
			PrimaryDisease:   top.Disease,
			Confidence:       top.Confidence,
			Severity:         severity,
			Description:      sig.Description,
			DiseaseType:      sig.Type,
			CommonCauses:     sig.CommonCauses,
			SymptomsObserved: sig.Symptoms,
			RiskIfUntreated:  sig.RiskIfUntreated,
			HealthScore:      score,
			LowConfidence:    top.Confidence < threshold,
		},
		FeatureAnalysis: features,
		ROIAnalysis:     regions,
		Predictions:     kept,
		CarePlan:        plan,
	}, nil
}

func clampThreshold(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
