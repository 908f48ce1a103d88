// Package careplan turns a diagnosis into an actionable care plan:
// prioritized actions, watering and feeding guidance, treatment
// options, and a recovery timeline.
package careplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verdantlabs/leafscan/internal/catalog"
)

// ErrUnknownDiagnosis reports a disease identifier absent from the
// catalog the plan is generated against.
var ErrUnknownDiagnosis = errors.New("unknown diagnosis")

// Priority action limits per severity. Severe cases get only the most
// critical steps so the owner is not buried in a checklist.
const (
	severeActionLimit   = 3
	moderateActionLimit = 5
)

// Watering describes the watering regimen while recovering.
type Watering struct {
	Frequency string `json:"frequency"`
	Method    string `json:"method"`
	Tip       string `json:"tip"`
}

// Fertilizing describes the feeding regimen while recovering.
type Fertilizing struct {
	Frequency string `json:"frequency"`
	Type      string `json:"type"`
	Tip       string `json:"tip"`
}

// Treatment groups remedies by approach.
type Treatment struct {
	Organic  []string `json:"organic"`
	Chemical []string `json:"chemical"`
	Cultural []string `json:"cultural"`
}

// Timeline lays out the expected treatment and recovery milestones.
type Timeline struct {
	Assessment             string `json:"assessment"`
	InitialTreatment       string `json:"initial_treatment"`
	FirstImprovement       string `json:"first_improvement"`
	SignificantImprovement string `json:"significant_improvement"`
	FullRecovery           string `json:"full_recovery"`
}

// CarePlan is the complete advice bundle for one diagnosis.
type CarePlan struct {
	Urgency         string      `json:"urgency"`
	Monitoring      string      `json:"monitoring"`
	PriorityActions []string    `json:"priority_actions"`
	Watering        Watering    `json:"watering"`
	Fertilizing     Fertilizing `json:"fertilizing"`
	Treatment       Treatment   `json:"treatment"`
	Timeline        Timeline    `json:"timeline"`
	Prevention      []string    `json:"prevention"`
	Tips            []string    `json:"tips"`
}

// Generate builds a care plan for a diagnosed condition. The disease
// must exist in the catalog; conditions the built-in advice table does
// not know fall back to a generic assessment plan, so catalogs loaded
// from file always produce usable output.
//
// The effective severity drives urgency, monitoring cadence, the
// recovery timeline, and how many priority actions are kept. Output is
// deterministic for a given diagnosis and severity.
func Generate(diseaseID string, severity catalog.Severity, c *catalog.Catalog) (*CarePlan, error) {
	sig, ok := c.ByID(diseaseID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDiagnosis, diseaseID)
	}

	tpl, known := templates[diseaseID]
	if !known {
		tpl = defaultTemplate
	}

	plan := &CarePlan{
		PriorityActions: trimActions(tpl.actions, severity),
		Watering:        tpl.watering,
		Fertilizing:     tpl.fertilizing,
		Treatment: Treatment{
			Organic:  append([]string(nil), tpl.treatment.Organic...),
			Chemical: append([]string(nil), tpl.treatment.Chemical...),
			Cultural: append([]string(nil), tpl.treatment.Cultural...),
		},
		Timeline:   timelineFor(severity),
		Prevention: append([]string(nil), tpl.prevention...),
		Tips:       append([]string(nil), tpl.tips...),
	}

	switch severity {
	case catalog.SeveritySevere:
		plan.Urgency = "CRITICAL - Act immediately"
		plan.Monitoring = "Check every 12 hours"
	case catalog.SeverityModerate:
		plan.Urgency = "High - Treat within 2-3 days"
		plan.Monitoring = "Check every 2-3 days"
	case catalog.SeverityMild:
		plan.Urgency = "Standard - Treat within 1 week"
		plan.Monitoring = "Check weekly"
	default:
		plan.Urgency = "Routine - Maintain current care"
		plan.Monitoring = "Check weekly"
	}

	if sig.Type != "healthy" {
		name := strings.ReplaceAll(diseaseID, "_", " ")
		plan.Tips = append(plan.Tips,
			fmt.Sprintf("%s can spread to nearby plants - isolate if possible", name))
	}

	return plan, nil
}

// trimActions keeps the most critical steps first. The template lists
// actions in priority order.
func trimActions(actions []string, severity catalog.Severity) []string {
	limit := len(actions)
	switch severity {
	case catalog.SeveritySevere:
		limit = severeActionLimit
	case catalog.SeverityModerate:
		limit = moderateActionLimit
	}
	if limit > len(actions) {
		limit = len(actions)
	}
	return append([]string(nil), actions[:limit]...)
}

func timelineFor(severity catalog.Severity) Timeline {
	tl := Timeline{
		Assessment:             "0-24 hours",
		InitialTreatment:       "0-24 hours",
		FirstImprovement:       "1-7 days",
		SignificantImprovement: "2-4 weeks",
		FullRecovery:           "1-3 months",
	}
	switch severity {
	case catalog.SeveritySevere:
		tl.InitialTreatment = "24-48 hours"
	case catalog.SeverityModerate:
		tl.SignificantImprovement = "1-2 weeks"
	default:
		tl.FullRecovery = "2-4 weeks"
	}
	return tl
}
