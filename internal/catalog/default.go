package catalog

// Default returns the built-in catalog of eight plant conditions.
//
// The bands encode what each condition looks like in feature space.
// Greenness and damaged-pixel ratio carry the highest weights for the
// healthy signature since those two separate healthy tissue from every
// disease; texture-driven conditions weight edge density instead.
func Default() *Catalog {
	c, err := New(defaultSignatures())
	if err != nil {
		// The built-in table is validated by tests; a failure here is
		// a programming error.
		panic(err)
	}
	return c
}

func defaultSignatures() []Signature {
	return []Signature{
		{
			ID:              "healthy",
			Type:            "healthy",
			Severity:        SeverityNone,
			Description:     "Plant appears healthy with no visible signs of disease",
			CommonCauses:    []string{},
			Symptoms:        []string{},
			RiskIfUntreated: "No risk - plant is currently healthy.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 0, Hi: 6000, Weight: 1},
				Brightness:         Band{Lo: 60, Hi: 200, Weight: 1},
				Contrast:           Band{Lo: 0, Hi: 60, Weight: 1},
				Greenness:          Band{Lo: 0.40, Hi: 1.0, Weight: 3},
				EdgeDensity:        Band{Lo: 0, Hi: 0.10, Weight: 2},
				DamagedPixelsRatio: Band{Lo: 0, Hi: 0.05, Weight: 4},
			},
		},
		{
			ID:          "leaf_spot",
			Type:        "fungal",
			Severity:    SeverityModerate,
			Description: "Circular or irregular brown/black spots on leaves",
			CommonCauses: []string{
				"Fungal infection", "Bacterial infection", "Poor air circulation",
			},
			Symptoms: []string{
				"Circular brown or black spots",
				"Yellow halos around lesions",
				"Spots merging on older leaves",
			},
			RiskIfUntreated: "Spots multiply and merge until entire leaves die back, defoliating the plant.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 800, Hi: 14000, Weight: 1},
				Brightness:         Band{Lo: 40, Hi: 180, Weight: 1},
				Contrast:           Band{Lo: 15, Hi: 120, Weight: 1},
				Greenness:          Band{Lo: 0.25, Hi: 0.50, Weight: 2},
				EdgeDensity:        Band{Lo: 0.08, Hi: 0.60, Weight: 3},
				DamagedPixelsRatio: Band{Lo: 0.10, Hi: 0.45, Weight: 3},
			},
		},
		{
			ID:          "powdery_mildew",
			Type:        "fungal",
			Severity:    SeverityModerate,
			Description: "White powdery coating on leaves and stems",
			CommonCauses: []string{
				"Fungal infection", "High humidity", "Poor air flow",
			},
			Symptoms: []string{
				"White powdery patches on upper leaf surfaces",
				"Distorted new growth",
				"Premature leaf drop",
			},
			RiskIfUntreated: "The coating spreads across leaves and stems, blocking light and weakening the plant.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 500, Hi: 12000, Weight: 1},
				Brightness:         Band{Lo: 120, Hi: 235, Weight: 2},
				Contrast:           Band{Lo: 20, Hi: 130, Weight: 1},
				Greenness:          Band{Lo: 0.20, Hi: 0.42, Weight: 2},
				EdgeDensity:        Band{Lo: 0.10, Hi: 0.65, Weight: 3},
				DamagedPixelsRatio: Band{Lo: 0.02, Hi: 0.30, Weight: 2},
			},
		},
		{
			ID:          "rust",
			Type:        "fungal",
			Severity:    SeverityModerate,
			Description: "Rust-colored pustules on leaf underside",
			CommonCauses: []string{
				"Fungal infection", "High humidity", "Wet conditions",
			},
			Symptoms: []string{
				"Orange or rust-colored pustules on leaf undersides",
				"Pale speckling on upper surfaces",
				"Early leaf drop",
			},
			RiskIfUntreated: "Pustules spread to healthy leaves and the plant steadily loses foliage and vigor.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 800, Hi: 14000, Weight: 1},
				Brightness:         Band{Lo: 40, Hi: 160, Weight: 1},
				Contrast:           Band{Lo: 15, Hi: 120, Weight: 1},
				Greenness:          Band{Lo: 0.22, Hi: 0.48, Weight: 2},
				EdgeDensity:        Band{Lo: 0.08, Hi: 0.55, Weight: 2},
				DamagedPixelsRatio: Band{Lo: 0.15, Hi: 0.55, Weight: 3},
			},
		},
		{
			ID:          "blight",
			Type:        "fungal",
			Severity:    SeveritySevere,
			Description: "Large dark patches on leaves causing rapid leaf death",
			CommonCauses: []string{
				"Fungal infection", "Bacterial infection", "Wet weather",
			},
			Symptoms: []string{
				"Large dark water-soaked patches",
				"Rapidly collapsing foliage",
				"Brown lesions on stems",
			},
			RiskIfUntreated: "Blight advances quickly and can kill the entire plant within days.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 500, Hi: 12000, Weight: 1},
				Brightness:         Band{Lo: 20, Hi: 130, Weight: 1},
				Contrast:           Band{Lo: 10, Hi: 110, Weight: 1},
				Greenness:          Band{Lo: 0, Hi: 0.40, Weight: 2},
				EdgeDensity:        Band{Lo: 0.02, Hi: 0.50, Weight: 1},
				DamagedPixelsRatio: Band{Lo: 0.35, Hi: 1.0, Weight: 4},
			},
		},
		{
			ID:          "yellowing",
			Type:        "nutrient_deficiency",
			Severity:    SeverityMild,
			Description: "Leaves turning yellow, often starting from older leaves",
			CommonCauses: []string{
				"Nutrient deficiency", "Poor drainage", "Overwatering",
			},
			Symptoms: []string{
				"Older leaves turning uniformly yellow",
				"Pale new growth",
				"Slowed overall growth",
			},
			RiskIfUntreated: "Chlorosis deepens and leaves drop as the deficiency starves the plant.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 200, Hi: 9000, Weight: 1},
				Brightness:         Band{Lo: 90, Hi: 220, Weight: 1},
				Contrast:           Band{Lo: 0, Hi: 80, Weight: 1},
				Greenness:          Band{Lo: 0.20, Hi: 0.38, Weight: 3},
				EdgeDensity:        Band{Lo: 0, Hi: 0.15, Weight: 1},
				DamagedPixelsRatio: Band{Lo: 0.05, Hi: 0.45, Weight: 2},
			},
		},
		{
			ID:          "wilting",
			Type:        "environmental",
			Severity:    SeveritySevere,
			Description: "Plants drooping and losing turgor despite moisture",
			CommonCauses: []string{
				"Underwatering", "Root rot", "Wilt diseases",
			},
			Symptoms: []string{
				"Drooping leaves despite moist soil",
				"Loss of turgor in stems",
				"Leaf edges curling inward",
			},
			RiskIfUntreated: "Persistent wilt points to failing roots; the plant may collapse without intervention.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 500, Hi: 12000, Weight: 1},
				Brightness:         Band{Lo: 30, Hi: 110, Weight: 2},
				Contrast:           Band{Lo: 25, Hi: 140, Weight: 2},
				Greenness:          Band{Lo: 0.25, Hi: 0.50, Weight: 1},
				EdgeDensity:        Band{Lo: 0.05, Hi: 0.45, Weight: 1},
				DamagedPixelsRatio: Band{Lo: 0.05, Hi: 0.40, Weight: 1},
			},
		},
		{
			ID:          "pest_damage",
			Type:        "pest",
			Severity:    SeverityModerate,
			Description: "Holes, discoloration, or abnormal leaf damage",
			CommonCauses: []string{
				"Insect infestation", "Mites", "Aphids",
			},
			Symptoms: []string{
				"Holes chewed through leaves",
				"Sticky residue or fine webbing",
				"Speckled discoloration",
			},
			RiskIfUntreated: "Pests keep feeding and multiplying, stripping foliage and spreading to nearby plants.",
			Bands: Bands{
				ColorVariance:      Band{Lo: 800, Hi: 14000, Weight: 1},
				Brightness:         Band{Lo: 50, Hi: 180, Weight: 1},
				Contrast:           Band{Lo: 20, Hi: 130, Weight: 1},
				Greenness:          Band{Lo: 0.28, Hi: 0.55, Weight: 1},
				EdgeDensity:        Band{Lo: 0.12, Hi: 0.70, Weight: 3},
				DamagedPixelsRatio: Band{Lo: 0.08, Hi: 0.50, Weight: 2},
			},
		},
	}
}
