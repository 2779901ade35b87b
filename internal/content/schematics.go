package content

import "WyckoffLab/internal/domain/models"

// Schematics is the static reference catalog in display order.
var Schematics = []models.Schematic{
	{
		ID:          "accumulation-1",
		Title:       "Accumulation Schematic #1",
		Description: "The classic accumulation pattern - simplest form of smart money accumulation",
		Color:       "#10B981",
		Phases: []models.SchematicPhase{
			{Phase: "A", Name: "Stop the Downtrend", Elements: []string{"Selling Climax (SC)", "Automatic Rally (AR)", "Secondary Test (ST)"}},
			{Phase: "B", Name: "Building Cause", Elements: []string{"Trading Range forms", "Volume decreases", "Institutional buying"}},
			{Phase: "C", Name: "The Spring", Elements: []string{"Support tested", "Price holds above low", "Last Point of Support forms"}},
			{Phase: "D", Name: "Launch", Elements: []string{"Breakout above resistance", "Higher highs", "Volume confirms"}},
			{Phase: "E", Name: "New Trend", Elements: []string{"Markup phase begins", "Price moves away from TR"}},
		},
		KeyPoints: []string{
			"Single spring before breakout",
			"Relatively tight trading range",
			"Clean SOS (Sign of Strength) breakout",
		},
	},
	{
		ID:          "accumulation-2",
		Title:       "Accumulation Schematic #2",
		Description: "Complex accumulation with multiple springs and shakeouts",
		Color:       "#22C55E",
		Phases: []models.SchematicPhase{
			{Phase: "A", Name: "Stop the Downtrend", Elements: []string{"Multiple Selling Climaxes", "Deep Shakeouts", "Recovery rallies"}},
			{Phase: "B", Name: "Building Cause", Elements: []string{"Extended Trading Range", "Multiple tests of support", "Volume absorption"}},
			{Phase: "C", Name: "Tests", Elements: []string{"Multiple Springs", "Higher highs within TR", "Last Point of Support"}},
			{Phase: "D", Name: "Launch", Elements: []string{"Breakout after multiple tests", "SOS with volume", "Retest of breakout"}},
			{Phase: "E", Name: "New Trend", Elements: []string{"Strong markup", "Pullbacks find support"}},
		},
		KeyPoints: []string{
			"More complex than Schematic #1",
			"Multiple springs and shakeouts",
			"Takes longer to complete",
			"Often leads to stronger moves",
		},
	},
	{
		ID:          "distribution",
		Title:       "Distribution Schematic",
		Description: "Smart money selling positions to the public at higher prices",
		Color:       "#EF4444",
		Phases: []models.SchematicPhase{
			{Phase: "A", Name: "Stop the Uptrend", Elements: []string{"Buying Climax (BC)", "Automatic Reaction (AR)", "Secondary Test (ST)"}},
			{Phase: "B", Name: "Building Cause", Elements: []string{"Trading Range forms", "High volume on rallies", "Institutional selling"}},
			{Phase: "C", Name: "The Test (UTAD)", Elements: []string{"Up-thrust after resistance distribution", "Tests", "Last Point of Supply forms"}},
			{Phase: "D", Name: "Breakdown", Elements: []string{"Breakdown below support", "Lower lows", "Volume increases"}},
			{Phase: "E", Name: "New Trend", Elements: []string{"Markdown phase begins", "Price moves away from TR"}},
		},
		KeyPoints: []string{
			"Mirror of accumulation",
			"High volume on selling",
			"UTAD (Up-Thrust After Distribution)",
			"SOW (Sign of Weakness) breakdown",
		},
	},
	{
		ID:          "cycle-overview",
		Title:       "Wyckoff Cycle Overview",
		Description: "Complete cycle showing phases A through E",
		Color:       "#3B82F6",
		Phases: []models.SchematicPhase{
			{Phase: "A", Name: "Stop the Trend", Elements: []string{"Trend reversal begins", "Climax event", "Initial recovery"}},
			{Phase: "B", Name: "Build Cause", Elements: []string{"Trading range", "Accumulation/Distribution", "Cause building"}},
			{Phase: "C", Name: "Test", Elements: []string{"Spring or UTAD", "Final test of S/R", "Last point forms"}},
			{Phase: "D", Name: "Launch", Elements: []string{"Breakout/Breakdown", "Trend begins", "Confirmation"}},
			{Phase: "E", Name: "New Trend", Elements: []string{"Trend continues", "Pullbacks to S/R", "Extended move"}},
		},
		KeyPoints: []string{
			"Complete cycle: Accumulation to Markup to Distribution to Markdown",
			"Phases repeat continuously",
			"Identifies institutional activity",
			"Framework for market analysis",
		},
	},
}

// SchematicByID looks up a schematic.
func SchematicByID(id string) (models.Schematic, bool) {
	for _, s := range Schematics {
		if s.ID == id {
			return s, true
		}
	}
	return models.Schematic{}, false
}
