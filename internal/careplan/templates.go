package careplan

// template holds the static advice for one condition. Actions are
// listed in priority order; severity trimming keeps the head.
type template struct {
	actions     []string
	watering    Watering
	fertilizing Fertilizing
	treatment   Treatment
	prevention  []string
	tips        []string
}

// fertilizingHold is the feeding guidance while a plant is under
// active treatment.
var fertilizingHold = Fertilizing{
	Frequency: "Pause until the plant recovers",
	Type:      "None while under treatment",
	Tip:       "Resume a balanced fertilizer once new healthy growth appears",
}

// defaultTemplate serves conditions loaded from a custom catalog that
// the built-in advice table does not know.
var defaultTemplate = template{
	actions: []string{
		"Assess plant condition carefully",
		"Ensure proper light and temperature",
		"Check soil moisture",
	},
	watering: Watering{
		Frequency: "Every 2-3 days",
		Method:    "Water at the base, keep foliage dry",
		Tip:       "Let the soil surface dry between waterings",
	},
	fertilizing: fertilizingHold,
	treatment: Treatment{
		Cultural: []string{
			"Monitor daily for changes",
			"Maintain a consistent care schedule",
			"Keep the plant clean",
		},
	},
	prevention: []string{
		"Inspect the plant weekly for early signs of trouble",
	},
	tips: []string{
		"Monitor closely",
		"Be patient with treatment",
	},
}

var templates = map[string]template{
	"healthy": {
		actions: []string{
			"Continue regular watering schedule",
			"Maintain current lighting conditions",
			"Keep monitoring for any changes",
		},
		watering: Watering{
			Frequency: "Every 2-3 days",
			Method:    "Water until soil is moist but not waterlogged",
			Tip:       "Water in the morning to allow foliage to dry",
		},
		fertilizing: Fertilizing{
			Frequency: "Every 2-4 weeks during growing season",
			Type:      "Balanced fertilizer (NPK 10-10-10)",
			Tip:       "Reduce frequency in winter months",
		},
		treatment: Treatment{
			Cultural: []string{
				"Maintain good air circulation around the plant",
				"Water at the base to keep leaves dry",
			},
		},
		prevention: []string{
			"Maintain good air circulation around the plant",
			"Avoid overcrowding with other plants",
			"Water at the base to keep leaves dry",
			"Remove any dead leaves promptly",
			"Inspect plant weekly for early signs of disease",
		},
		tips: []string{
			"Consistency is key - maintain current schedule",
			"Prevention is easier than cure",
			"Regular monitoring prevents problems",
		},
	},
	"leaf_spot": {
		actions: []string{
			"Remove infected leaves immediately",
			"Isolate plant from others if possible",
			"Stop overhead watering",
			"Apply fungicide spray (neem oil or sulfur)",
			"Improve air circulation with a fan",
		},
		watering: Watering{
			Frequency: "Every 2-3 days, let soil surface dry between",
			Method:    "Water at base only, never spray foliage",
			Tip:       "Water in early morning to minimize leaf wetness",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Spray with neem oil every 7-10 days",
				"Apply baking soda solution (1 tbsp per gallon)",
				"Use milk spray (1 part milk to 9 parts water)",
			},
			Chemical: []string{
				"Use copper fungicide",
				"Apply sulfur-based fungicide",
				"Use systemic fungicide for severe cases",
			},
			Cultural: []string{
				"Space plants properly for air flow",
				"Remove lower leaves within 6 inches of soil",
				"Disinfect pruning tools with 10% bleach",
			},
		},
		prevention: []string{
			"Space plants properly for air flow",
			"Water soil only, avoid wetting leaves",
			"Disinfect pruning tools with 10% bleach",
			"Avoid touching wet leaves",
		},
		tips: []string{
			"Remove infected leaves as soon as possible",
			"Never water from above",
			"Improve spacing between plants",
		},
	},
	"powdery_mildew": {
		actions: []string{
			"Increase air circulation immediately",
			"Lower humidity levels",
			"Spray with fungicide",
			"Remove heavily affected leaves",
			"Avoid crowding plants together",
		},
		watering: Watering{
			Frequency: "Every 3-4 days",
			Method:    "Base watering only, never overhead",
			Tip:       "Keep humidity below 50% while treating",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Spray with baking soda solution weekly",
				"Apply milk spray (1:9 ratio)",
				"Use sulfur dust or spray",
				"Apply neem oil every 7 days",
			},
			Chemical: []string{
				"Use potassium bicarbonate fungicide",
				"Apply sulfur-based fungicide",
				"Use commercial powdery mildew spray",
			},
			Cultural: []string{
				"Keep temperature between 60-75F",
				"Use a fan to improve circulation",
				"Ensure 6-8 inches between plants",
			},
		},
		prevention: []string{
			"Never overhead water - use base watering only",
			"Maintain good air circulation",
			"Keep humidity low",
			"Remove infected leaves immediately",
			"Disinfect tools between plants",
		},
		tips: []string{
			"Humidity is your enemy - keep below 50%",
			"Air circulation is crucial",
			"Early treatment is most effective",
		},
	},
	"rust": {
		actions: []string{
			"Remove infected leaves at the first sign",
			"Improve air circulation",
			"Reduce leaf wetness duration",
			"Apply fungicide spray",
			"Lower humidity levels",
		},
		watering: Watering{
			Frequency: "Every 3-4 days depending on soil",
			Method:    "Water at soil level only",
			Tip:       "Avoid wetting foliage completely",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Spray with sulfur fungicide",
				"Use neem oil weekly",
				"Apply copper fungicide",
			},
			Chemical: []string{
				"Use triazole fungicide",
				"Apply myclobutanil spray",
				"Use commercial rust treatment",
			},
			Cultural: []string{
				"Clean fallen leaves regularly",
				"Space plants with adequate air flow",
				"Maintain temperature between 60-75F",
			},
		},
		prevention: []string{
			"Space plants with adequate air flow",
			"Avoid overhead irrigation",
			"Remove rust-infected leaves promptly",
			"Clean fallen leaves regularly",
		},
		tips: []string{
			"Keep foliage completely dry",
			"Good air flow prevents recurrence",
			"Check undersides of leaves daily",
		},
	},
	"blight": {
		actions: []string{
			"URGENT: Remove all infected parts immediately",
			"Destroy infected leaves (do not compost)",
			"Isolate plant from other plants",
			"Apply heavy fungicide treatment",
			"Consider destroying entire plant if severely affected",
		},
		watering: Watering{
			Frequency: "Only when topsoil is dry",
			Method:    "Water at soil level, keep foliage dry",
			Tip:       "Do not splash soil onto leaves",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Apply copper soap spray",
				"Remove and destroy all infected material",
			},
			Chemical: []string{
				"Apply copper fungicide immediately",
				"Use chlorothalonil fungicide every 7 days",
				"Apply mancozeb fungicide",
			},
			Cultural: []string{
				"Prune infected branches 12 inches below visible damage",
				"Remove entire plant if more than 50% affected",
				"Sterilize tools with bleach solution after each cut",
			},
		},
		prevention: []string{
			"Keep the plant isolated for 2-4 weeks",
			"Do not touch other plants after handling",
			"Check daily for new symptoms",
		},
		tips: []string{
			"This is serious - act immediately",
			"Consider removing the entire plant",
			"Do not compost infected material",
		},
	},
	"yellowing": {
		actions: []string{
			"Check soil moisture level",
			"Assess drainage holes",
			"Look for root rot (foul odor)",
			"Check nutrient levels in soil",
		},
		watering: Watering{
			Frequency: "Typically every 3-5 days",
			Method:    "Water only when soil is dry 2 inches down",
			Tip:       "Stick a finger 2 inches into the soil before watering",
		},
		fertilizing: Fertilizing{
			Frequency: "Every 2-3 weeks",
			Type:      "Balanced liquid fertilizer (10-10-10)",
			Tip:       "Consider iron and magnesium if yellowing persists",
		},
		treatment: Treatment{
			Organic: []string{
				"Apply balanced fertilizer (10-10-10)",
				"Use liquid fertilizer for faster results",
			},
			Chemical: []string{
				"Apply chelated iron for persistent chlorosis",
			},
			Cultural: []string{
				"Let soil dry out for 2-3 days if soggy",
				"Repot with fresh soil if root rot is present",
				"Ensure the pot has drainage holes",
			},
		},
		prevention: []string{
			"Check soil moisture before watering",
			"Ensure good drainage",
			"Fertilize regularly during the growing season",
		},
		tips: []string{
			"Check soil moisture first",
			"Could be overwatering or nutrient issue",
			"Remove yellow leaves to redirect energy",
		},
	},
	"wilting": {
		actions: []string{
			"Check soil moisture immediately",
			"Feel if soil is dry or soggy",
			"Check for root damage or rot",
			"Provide immediate water or drainage correction",
		},
		watering: Watering{
			Frequency: "Keep soil consistently moist",
			Method:    "Slow, deep watering preferred",
			Tip:       "Water when the top inch is dry",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Water thoroughly until it drains from the bottom",
				"Mist foliage to reduce stress",
			},
			Cultural: []string{
				"Support the plant with a stake",
				"Repot in fresh, dry soil if roots are rotting",
				"Remove damaged roots with clean tools",
			},
		},
		prevention: []string{
			"Keep a consistent watering schedule",
			"Check drainage holes regularly",
			"Avoid heat stress near radiators or vents",
		},
		tips: []string{
			"Often reversible if caught early",
			"May indicate watering problems",
			"Keep plant well-hydrated but not soggy",
		},
	},
	"pest_damage": {
		actions: []string{
			"Isolate plant from other plants",
			"Inspect undersides of leaves closely",
			"Identify pest type (aphids, mites, scale)",
			"Apply appropriate treatment",
			"Monitor plant daily",
		},
		watering: Watering{
			Frequency: "Every 2-3 days",
			Method:    "Water at the base",
			Tip:       "Keep leaves clean with a gentle spray",
		},
		fertilizing: fertilizingHold,
		treatment: Treatment{
			Organic: []string{
				"Spray with insecticidal soap",
				"Use neem oil every 7 days for 3 weeks",
				"Apply horticultural oil",
				"Remove pests manually with a cotton swab and rubbing alcohol",
			},
			Chemical: []string{
				"Use systemic insecticide",
				"Apply pyrethrin spray",
				"Use commercial pest spray per instructions",
			},
			Cultural: []string{
				"Quarantine new plants for 2 weeks",
				"Spray both sides of leaves thoroughly",
				"Repeat treatment every 7-10 days",
			},
		},
		prevention: []string{
			"Inspect new plants before bringing home",
			"Quarantine new plants for 2 weeks",
			"Keep plant leaves clean with gentle spray",
			"Monitor regularly to catch infestations early",
		},
		tips: []string{
			"Isolation is critical to prevent spread",
			"Repeat treatments are necessary",
			"Check new plants before bringing home",
		},
	},
}
