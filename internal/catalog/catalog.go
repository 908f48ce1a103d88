// Package catalog defines the disease signature catalog matched
// against extracted image features.
//
// A signature describes one plant condition: its identity, canonical
// severity, advisory texts, and the feature bands a matching image is
// expected to fall into. The catalog is immutable once built; lookups
// are safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
)

// Severity grades how serious a condition is when present.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ErrEmptyCatalog reports a catalog built without any signatures.
var ErrEmptyCatalog = errors.New("catalog has no signatures")

// Band is the expected range for one feature, with a weight that sets
// how strongly a deviation from the range penalizes the match.
type Band struct {
	Lo     float64 `json:"lo"`
	Hi     float64 `json:"hi"`
	Weight float64 `json:"weight"`
}

// Bands holds one Band per extracted feature.
type Bands struct {
	ColorVariance      Band `json:"color_variance"`
	Brightness         Band `json:"brightness"`
	Contrast           Band `json:"contrast"`
	Greenness          Band `json:"greenness"`
	EdgeDensity        Band `json:"edge_density"`
	DamagedPixelsRatio Band `json:"damaged_pixels_ratio"`
}

// Signature is one recognizable plant condition.
type Signature struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Severity        Severity `json:"severity"`
	Description     string   `json:"description"`
	CommonCauses    []string `json:"common_causes"`
	Symptoms        []string `json:"symptoms"`
	RiskIfUntreated string   `json:"risk_if_untreated"`
	Bands           Bands    `json:"bands"`
}

// Catalog is an ordered, validated set of disease signatures. Order
// is significant: the matcher uses it to break confidence ties.
type Catalog struct {
	entries []Signature
	byID    map[string]int
}

// New validates the signatures and builds a catalog from them. The
// given order is preserved.
//
// Returns ErrEmptyCatalog when entries is empty, and a descriptive
// error for duplicate IDs, inverted bands, or negative weights.
func New(entries []Signature) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]Signature, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, sig := range c.entries {
		if sig.ID == "" {
			return nil, fmt.Errorf("signature %d has an empty id", i)
		}
		if _, dup := c.byID[sig.ID]; dup {
			return nil, fmt.Errorf("duplicate signature id %q", sig.ID)
		}
		if err := validateBands(sig.Bands); err != nil {
			return nil, fmt.Errorf("signature %q: %w", sig.ID, err)
		}
		c.byID[sig.ID] = i
	}
	return c, nil
}

func validateBands(b Bands) error {
	for _, nb := range []struct {
		name string
		band Band
	}{
		{"color_variance", b.ColorVariance},
		{"brightness", b.Brightness},
		{"contrast", b.Contrast},
		{"greenness", b.Greenness},
		{"edge_density", b.EdgeDensity},
		{"damaged_pixels_ratio", b.DamagedPixelsRatio},
	} {
		if nb.band.Lo > nb.band.Hi {
			return fmt.Errorf("%s band is inverted: lo %.3f > hi %.3f", nb.name, nb.band.Lo, nb.band.Hi)
		}
		if nb.band.Weight < 0 {
			return fmt.Errorf("%s band has negative weight %.3f", nb.name, nb.band.Weight)
		}
	}
	return nil
}

// Entries returns the signatures in catalog order. The slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) Entries() []Signature {
	out := make([]Signature, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByID looks up a signature by its identifier.
func (c *Catalog) ByID(id string) (Signature, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Signature{}, false
	}
	return c.entries[i], true
}

// Len reports the number of signatures.
func (c *Catalog) Len() int {
	return len(c.entries)
}
