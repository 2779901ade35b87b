// Package content holds the authored course, schematic, quiz, and symbol
// catalogs. Everything here is static; the catalog is compiled in rather than
// loaded from storage so the service has no content database to manage.
package content

import "WyckoffLab/internal/domain/models"

// Courses is the full catalog in display order.
var Courses = []models.Course{
	{
		ID:          "fundamentals",
		Title:       "Wyckoff Fundamentals",
		Description: "Master the core principles that drive market movements",
		Icon:        "📐",
		Color:       "#3B82F6",
		Lessons: []models.Lesson{
			{
				ID:          "fundamentals-1",
				Title:       "Introduction to Wyckoff",
				Description: "Understanding the methodology",
				Order:       1,
				Content: `# Introduction to Wyckoff Methodology

The Wyckoff methodology is a technical analysis approach developed by Richard D. Wyckoff in the early 20th century. It focuses on understanding the actions of institutional money ("Composite Operator") and using that understanding to anticipate price movements.

## Key Principles

1. **Price and Volume Tell the Story** - The market's price and volume data reveal the supply and demand dynamics
2. **Composite Operator (CO)** - Large institutional traders who move markets
3. **Trend and Structure** - Markets move in phases that can be identified and predicted

## Why Wyckoff Works

Wyckoff believed that the market is not random but follows identifiable patterns caused by the accumulation and distribution of large orders by institutional traders.
`,
			},
			{
				ID:          "fundamentals-2",
				Title:       "The Three Laws",
				Description: "Law of Supply and Demand",
				Order:       2,
				Content: `# The Three Laws of Wyckoff

## Law of Supply and Demand
When demand exceeds supply, prices rise. When supply exceeds demand, prices fall. This is the most fundamental law in trading.

## Law of Cause and Effect
Every effect (price movement) has a cause (accumulation or distribution). The cause must be sufficient to produce the effect.

## Law of Effort vs. Result
When effort (volume) doesn't match the result (price movement), expect a reversal. Divergence between price and volume signals weakness.
`,
			},
			{
				ID:          "fundamentals-3",
				Title:       "Reading Price and Volume",
				Description: "Interpreting market data",
				Order:       3,
				Content: `# Reading Price and Volume

## Volume Analysis
- High volume indicates strong conviction
- Low volume suggests lack of interest
- Volume precedes price

## Price Action
- Close location indicates future direction
- Range expansion/contraction patterns
- Support and resistance levels
`,
			},
			{
				ID:          "fundamentals-4",
				Title:       "Trend Identification",
				Description: "Identifying market direction",
				Order:       4,
				Content: `# Trend Identification

## Uptrend
- Higher highs and higher lows
- Buying in dips (accumulation zones)

## Downtrend
- Lower highs and lower lows
- Selling in rallies (distribution zones)

## Consolidation
- Price moving in a defined range
- Preparation for next move
`,
			},
			{
				ID:          "fundamentals-5",
				Title:       "Support and Resistance",
				Description: "Key price levels",
				Order:       5,
				Content: `# Support and Resistance

## Support
- Price level where buying pressure exceeds selling
- Multiple tests indicate strength

## Resistance
- Price level where selling pressure exceeds buying
- Breakout confirms new trend
`,
			},
			{
				ID:          "fundamentals-6",
				Title:       "Market Structure",
				Description: "Understanding market phases",
				Order:       6,
				Content: `# Market Structure

## Single Stick Analysis
- Open, High, Low, Close
- Position within daily range
- Volume interpretation

## Multiple Stick Analysis
- Trend patterns
- Support/resistance zones
- Accumulation/distribution signs
`,
			},
			{
				ID:          "fundamentals-7",
				Title:       "Introduction to Schematics",
				Description: "The visual framework",
				Order:       7,
				Content: `# Introduction to Schematics

Wyckoff schematics are visual representations of the accumulation and distribution cycles. They help traders identify where smart money is accumulating or distributing positions.

## Types of Schematics
- Accumulation Schematic #1
- Accumulation Schematic #2
- Distribution Schematic
- Wyckoff Cycle Overview (Phases A-E)
`,
			},
			{
				ID:          "fundamentals-8",
				Title:       "Putting It Together",
				Description: "Practical application",
				Order:       8,
				Content: `# Putting It Together

## Applying the Methodology

1. Identify the trend using price action
2. Look for accumulation/distribution zones
3. Use schematics to identify the phase
4. Wait for entry signals (Spring, UTAD)
5. Manage risk with position sizing
`,
			},
		},
	},
	{
		ID:          "accumulation",
		Title:       "Accumulation Schematics",
		Description: "Learn to identify smart money accumulation patterns",
		Icon:        "📈",
		Color:       "#10B981",
		Lessons: []models.Lesson{
			{
				ID:          "accum-1",
				Title:       "What is Accumulation?",
				Description: "Understanding institutional buying",
				Order:       1,
				Content: `# What is Accumulation?

Accumulation is the process by which smart money (institutional traders) builds positions in a stock over time, typically during a trading range, before a markup phase.

## Key Characteristics
- Buying at support levels
- Selling into strength (to test supply)
- Building cause before effect
`,
			},
			{
				ID:          "accum-2",
				Title:       "Accumulation Schematic #1",
				Description: "The classic accumulation pattern",
				Order:       2,
				Content: `# Accumulation Schematic #1

## Phase A - Stop the Downtrend
- Last point of supply (LPSY)
- Selling climax (SC)
- Automatic rally (AR)
- Secondary test (ST)

## Phase B - Building Cause
- Trading range forms
- Institutional buying continues
- Volume decreases in range

## Phase C - The Spring
- Support is tested
- Price holds above low
- Last point of support (LPS)

## Phase D - Launch
- Breakout above resistance
- Higher highs and higher lows
- Increased volume confirms
`,
			},
			{
				ID:          "accum-3",
				Title:       "Accumulation Schematic #2",
				Description: "Complex accumulation pattern",
				Order:       3,
				Content: `# Accumulation Schematic #2

Similar to Schematic #1 but with more complex structure:

## Characteristics
- Multiple springs
- Shakeouts
- Higher lows within TR
- More time in accumulation
`,
			},
			{
				ID:          "accum-4",
				Title:       "Spring Analysis",
				Description: "The key entry signal",
				Order:       4,
				Content: `# Spring Analysis

A Spring is a test of support that fails to go below the prior low, indicating weak supply and potential upward movement.

## What to Look For
- Price dips below support but closes back above
- Low volume on the test
- Quick recovery
`,
			},
			{
				ID:          "accum-5",
				Title:       "Last Point of Support (LPS)",
				Description: "Optimal entry point",
				Order:       5,
				Content: `# Last Point of Support (LPS)

The LPS is the final buying opportunity before markup begins, typically occurring after the Spring.

## Characteristics
- Higher low
- Reduced volume
- Consolidation before breakout
`,
			},
			{
				ID:          "accum-6",
				Title:       "Volume Analysis in Accumulation",
				Description: "Reading volume patterns",
				Order:       6,
				Content: `# Volume Analysis in Accumulation

## Buying Climax
- High volume spike
- Wide range candle down
- Often the lowest point

## Automatic Rally
- Moderate volume increase
- Price recovers

## Testing
- Lower volume on retests
- Shows absorption
`,
			},
			{
				ID:          "accum-7",
				Title:       "Sign of Strength (SOS)",
				Description: "Confirming accumulation",
				Order:       7,
				Content: `# Sign of Strength (SOS)

An SOS is a breakout above a previous resistance level with increased volume, confirming the end of accumulation.

## Characteristics
- Breakout above resistance
- Higher volume
- Retest of breakout
`,
			},
			{
				ID:          "accum-8",
				Title:       "Entry Strategies",
				Description: "When to enter positions",
				Order:       8,
				Content: `# Entry Strategies

## Entry Points
1. After Spring confirmation
2. At LPS
3. On breakout (SOS)

## Confirmation
- Volume increase
- Price closes above resistance
- Strong close
`,
			},
			{
				ID:          "accum-9",
				Title:       "Stop Loss Placement",
				Description: "Risk management",
				Order:       9,
				Content: `# Stop Loss Placement

## Where to Place Stops
- Below the Spring low
- Below recent lows
- Below accumulation low

## Risk Management
- Position size accordingly
- 1-2% max risk per trade
`,
			},
			{
				ID:          "accum-10",
				Title:       "Exit Strategies",
				Description: "Taking profits",
				Order:       10,
				Content: `# Exit Strategies

## When to Exit
- First resistance target reached
- Signs of distribution
- Trend reversal signals

## Trail Stops
- Move to breakeven after initial target
- Use swing lows for uptrends
`,
			},
			{
				ID:          "accum-11",
				Title:       "Real Examples",
				Description: "Case studies",
				Order:       11,
				Content: `# Real Examples

Let's analyze historical examples of accumulation patterns.
`,
			},
			{
				ID:          "accum-12",
				Title:       "Common Mistakes",
				Description: "What to avoid",
				Order:       12,
				Content: `# Common Mistakes

## Mistakes to Avoid
- Entering too early (before Spring)
- Ignoring volume
- Not waiting for confirmation
- Poor stop loss placement
`,
			},
		},
	},
	{
		ID:          "distribution",
		Title:       "Distribution Schematics",
		Description: "Spot where smart money distributes positions",
		Icon:        "📉",
		Color:       "#EF4444",
		Lessons: []models.Lesson{
			{
				ID:          "dist-1",
				Title:       "What is Distribution?",
				Description: "Understanding institutional selling",
				Order:       1,
				Content: `# What is Distribution?

Distribution is the opposite of accumulation - smart money selling their positions to the public at higher prices before a markdown phase.
`,
			},
			{
				ID:          "dist-2",
				Title:       "Distribution Schematic",
				Description: "The classic pattern",
				Order:       2,
				Content: `# Distribution Schematic

## Phase A - Stop the Uptrend
- Buying climax (BC)
- Automatic reaction (AR)
- Secondary test (ST)

## Phase B - Building Cause
- Trading range forms
- Institutional selling continues

## Phase C - The Test (UTAD)
- Test of resistance
- Last point of supply forms

## Phase D - Breakdown
- Breakdown below support
`,
			},
			{
				ID:          "dist-3",
				Title:       "Up-Thrust After Distribution (UTAD)",
				Description: "The key sell signal",
				Order:       3,
				Content: `# Up-Thrust After Distribution (UTAD)

A UTAD is a test of resistance that fails to go above the prior high, indicating weak demand and potential downward movement.
`,
			},
			{
				ID:          "dist-4",
				Title:       "Last Point of Supply (LPSY)",
				Description: "Optimal short entry",
				Order:       4,
				Content: `# Last Point of Supply (LPSY)

The LPSY is the final selling opportunity before markdown begins, typically occurring after the UTAD.
`,
			},
			{
				ID:          "dist-5",
				Title:       "Selling Climax",
				Description: "The beginning of distribution",
				Order:       5,
				Content: `# Selling Climax (SC)

A selling climax is a high-volume spike that often marks the end of a downtrend or the beginning of accumulation.
`,
			},
			{
				ID:          "dist-6",
				Title:       "Signs of Weakness (SOW)",
				Description: "Confirming distribution",
				Order:       6,
				Content: `# Signs of Weakness (SOW)

A SOW is a breakdown below a previous support level with increased volume, confirming the end of distribution.
`,
			},
			{
				ID:          "dist-7",
				Title:       "Short Selling Strategies",
				Description: "Timing entries",
				Order:       7,
				Content: `# Short Selling Strategies

## Entry Points
1. After UTAD confirmation
2. At LPSY
3. On breakdown (SOW)
`,
			},
			{
				ID:          "dist-8",
				Title:       "Short Covering",
				Description: "Managing short positions",
				Order:       8,
				Content: `# Short Covering

## When to Cover
- First support target reached
- Signs of accumulation
- Trend reversal signals
`,
			},
			{
				ID:          "dist-9",
				Title:       "Comparing Accumulation vs Distribution",
				Description: "Understanding the differences",
				Order:       9,
				Content: `# Comparing Accumulation vs Distribution

## Key Differences
- Accumulation: Buying, low prices, upward bias
- Distribution: Selling, high prices, downward bias
- Mirror patterns
`,
			},
			{
				ID:          "dist-10",
				Title:       "Market Cycle Integration",
				Description: "Putting distribution in context",
				Order:       10,
				Content: `# Market Cycle Integration

Distribution occurs as part of the complete Wyckoff cycle, leading into markdown and eventually back to accumulation.
`,
			},
		},
	},
	{
		ID:          "volume",
		Title:       "Volume Analysis",
		Description: "Read volume like a professional trader",
		Icon:        "📊",
		Color:       "#8B5CF6",
		Lessons: []models.Lesson{
			{
				ID:          "volume-1",
				Title:       "Volume Fundamentals",
				Description: "Understanding volume",
				Order:       1,
				Content: `# Volume Fundamentals

Volume represents the number of shares traded during a given period. It indicates the level of participation and conviction behind price movements.
`,
			},
			{
				ID:          "volume-2",
				Title:       "Volume and Trend",
				Description: "Confirming trends with volume",
				Order:       2,
				Content: `# Volume and Trend

## Healthy Uptrend
- Higher volume on up days
- Lower volume on pullbacks

## Healthy Downtrend
- Higher volume on down days
- Lower volume on rallies
`,
			},
			{
				ID:          "volume-3",
				Title:       "Volume Climaxes",
				Description: "Identifying extreme readings",
				Order:       3,
				Content: `# Volume Climaxes

## Buying Climax (BC)
- Extremely high volume
- Often accompanied by wide-range up bar
- May signal end of uptrend

## Selling Climax (SC)
- Extremely high volume
- Often accompanied by wide-range down bar
- May signal end of downtrend
`,
			},
			{
				ID:          "volume-4",
				Title:       "Volume and Breakouts",
				Description: "Confirming breakouts",
				Order:       4,
				Content: `# Volume and Breakouts

## True Breakout
- Increased volume on breakout
- Wide-range candle
- Close above resistance

## False Breakout
- Low volume on breakout
- Close back below resistance
`,
			},
			{
				ID:          "volume-5",
				Title:       "Absorption",
				Description: "Reading institutional activity",
				Order:       5,
				Content: `# Absorption

Absorption occurs when large players absorb all available supply or demand without moving price significantly.
`,
			},
			{
				ID:          "volume-6",
				Title:       "Effort vs Result",
				Description: "Divergence patterns",
				Order:       6,
				Content: `# Effort vs Result

## High Effort, Low Result
- High volume but price doesn't move far
- Signals reversal likely

## Low Effort, High Result
- Low volume but price moves significantly
`,
			},
		},
	},
	{
		ID:          "psychology",
		Title:       "Trading Psychology",
		Description: "Master your mind for trading success",
		Icon:        "🧠",
		Color:       "#F59E0B",
		Lessons: []models.Lesson{
			{
				ID:          "psych-1",
				Title:       "Market Psychology",
				Description: "Understanding crowd behavior",
				Order:       1,
				Content: `# Market Psychology

Markets are driven by human emotions: fear and greed. Understanding these emotions helps predict market movements.
`,
			},
			{
				ID:          "psych-2",
				Title:       "Why Traders Fail",
				Description: "Common psychological pitfalls",
				Order:       2,
				Content: `# Why Traders Fail

- Trading too large
- No trading plan
- Revenge trading
- Fear of missing out (FOMO)
- Overtrading
`,
			},
			{
				ID:          "psych-3",
				Title:       "Building Discipline",
				Description: "Developing a trading mindset",
				Order:       3,
				Content: `# Building Discipline

## Key Principles
- Follow your trading plan
- Accept losses
- Be patient
- Stay objective
`,
			},
			{
				ID:          "psych-4",
				Title:       "Managing Emotions",
				Description: "Keeping emotions in check",
				Order:       4,
				Content: `# Managing Emotions

## Techniques
- Take breaks after losses
- Journal your trades
- Stick to position sizing rules
- Have an exit plan
`,
			},
			{
				ID:          "psych-5",
				Title:       "Long-term Success",
				Description: "Sustainable trading",
				Order:       5,
				Content: `# Long-term Success

Focus on consistency and risk management. The goal is to survive long-term, not to get rich quick.
`,
			},
		},
	},
}

// CourseByID looks up a course.
func CourseByID(id string) (models.Course, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// LessonByID looks up a lesson across all courses.
func LessonByID(id string) (models.Lesson, bool) {
	for _, c := range Courses {
		for _, l := range c.Lessons {
			if l.ID == id {
				return l, true
			}
		}
	}
	return models.Lesson{}, false
}

// CourseSummaries returns the catalog without lesson bodies.
func CourseSummaries() []models.CourseSummary {
	out := make([]models.CourseSummary, 0, len(Courses))
	for _, c := range Courses {
		out = append(out, c.Summary())
	}
	return out
}

// TotalLessons counts lessons across the catalog.
func TotalLessons() int {
	n := 0
	for _, c := range Courses {
		n += len(c.Lessons)
	}
	return n
}
