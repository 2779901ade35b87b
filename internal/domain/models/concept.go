package models

// ConceptCategory groups concepts by the side of the cycle they belong to.
type ConceptCategory string

const (
	CategoryAccumulation ConceptCategory = "accumulation"
	CategoryDistribution ConceptCategory = "distribution"
)

// Concept is a Wyckoff annotation tag a user can place on the chart.
type Concept string

const (
	ConceptSC     Concept = "SC"
	ConceptAR     Concept = "AR"
	ConceptST     Concept = "ST"
	ConceptSpring Concept = "Spring"
	ConceptLPS    Concept = "LPS"
	ConceptSOS    Concept = "SOS"
	ConceptBC     Concept = "BC"
	ConceptUTAD   Concept = "UTAD"
	ConceptLPSY   Concept = "LPSY"
	ConceptSOW    Concept = "SOW"
)

// ConceptInfo is the static display configuration for a concept.
type ConceptInfo struct {
	Label       Concept         `json:"label"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ConceptCategory `json:"category"`
	Color       string          `json:"color"`
}

// ConceptOrder is the palette display order.
var ConceptOrder = []Concept{
	ConceptSC, ConceptAR, ConceptST, ConceptSpring, ConceptLPS, ConceptSOS,
	ConceptBC, ConceptUTAD, ConceptLPSY, ConceptSOW,
}

// Concepts is the full catalog keyed by tag.
var Concepts = map[Concept]ConceptInfo{
	ConceptSC:     {ConceptSC, "Selling Climax", "Extreme low with high volume", CategoryAccumulation, "#10B981"},
	ConceptAR:     {ConceptAR, "Automatic Rally", "Recovery after SC", CategoryAccumulation, "#10B981"},
	ConceptST:     {ConceptST, "Secondary Test", "Test of SC low", CategoryAccumulation, "#10B981"},
	ConceptSpring: {ConceptSpring, "Spring", "Test of support before breakout", CategoryAccumulation, "#22C55E"},
	ConceptLPS:    {ConceptLPS, "Last Point of Support", "Final buying opportunity before markup", CategoryAccumulation, "#22C55E"},
	ConceptSOS:    {ConceptSOS, "Sign of Strength", "Breakout with volume", CategoryAccumulation, "#22C55E"},
	ConceptBC:     {ConceptBC, "Buying Climax", "Extreme high with high volume", CategoryDistribution, "#EF4444"},
	ConceptUTAD:   {ConceptUTAD, "UTAD", "Test of resistance before breakdown", CategoryDistribution, "#F97316"},
	ConceptLPSY:   {ConceptLPSY, "Last Point of Supply", "Final selling opportunity before markdown", CategoryDistribution, "#F97316"},
	ConceptSOW:    {ConceptSOW, "Sign of Weakness", "Breakdown with volume", CategoryDistribution, "#F97316"},
}

// IsValidConcept reports whether tag is part of the catalog.
func IsValidConcept(tag Concept) bool {
	_, ok := Concepts[tag]
	return ok
}
