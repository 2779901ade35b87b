package content

import "WyckoffLab/internal/domain/models"

// Quizzes holds one knowledge check per course, keyed by course id. Correct
// answer indexes never leave the server; grading happens in the quiz usecase.
var Quizzes = map[string]models.Quiz{
	"fundamentals": {
		ID:       "quiz-fundamentals",
		CourseID: "fundamentals",
		Title:    "Wyckoff Fundamentals Quiz",
		Questions: []models.QuizQuestion{
			{
				Prompt:  "Who is the Composite Operator?",
				Choices: []string{"A retail day trader", "Large institutional traders who move markets", "The exchange matching engine", "A market-making algorithm"},
				Answer:  1,
			},
			{
				Prompt:  "According to the Law of Supply and Demand, prices rise when:",
				Choices: []string{"Supply exceeds demand", "Volume is low", "Demand exceeds supply", "The range contracts"},
				Answer:  2,
			},
			{
				Prompt:  "The Law of Effort vs. Result warns of a likely reversal when:",
				Choices: []string{"Volume and price move together", "Volume does not match the price movement", "Price makes a new high", "The trend accelerates"},
				Answer:  1,
			},
			{
				Prompt:  "An uptrend is defined by:",
				Choices: []string{"Lower highs and lower lows", "A flat trading range", "Higher highs and higher lows", "Decreasing volume"},
				Answer:  2,
			},
			{
				Prompt:  "Support is a price level where:",
				Choices: []string{"Selling pressure exceeds buying", "Buying pressure exceeds selling", "Volume is always highest", "The trend must reverse"},
				Answer:  1,
			},
		},
	},
	"accumulation": {
		ID:       "quiz-accumulation",
		CourseID: "accumulation",
		Title:    "Accumulation Schematics Quiz",
		Questions: []models.QuizQuestion{
			{
				Prompt:  "A Spring is:",
				Choices: []string{"A breakout above resistance on high volume", "A test of support that fails to go below the prior low", "The first candle of a markup", "A gap at the open"},
				Answer:  1,
			},
			{
				Prompt:  "The Last Point of Support (LPS) typically occurs:",
				Choices: []string{"Before the Selling Climax", "During the markdown", "After the Spring", "At the Buying Climax"},
				Answer:  2,
			},
			{
				Prompt:  "A Sign of Strength (SOS) is:",
				Choices: []string{"A low-volume dip below support", "A breakout above resistance with increased volume", "A long period of flat volume", "Any green candle"},
				Answer:  1,
			},
			{
				Prompt:  "In Phase B of accumulation, the trading range shows:",
				Choices: []string{"Institutional buying with decreasing volume", "Parabolic markup", "A breakdown below support", "No institutional activity"},
				Answer:  0,
			},
			{
				Prompt:  "Compared with Schematic #1, Accumulation Schematic #2 has:",
				Choices: []string{"No springs at all", "A tighter range and quicker breakout", "Multiple springs and shakeouts over a longer range", "Only distribution features"},
				Answer:  2,
			},
		},
	},
	"distribution": {
		ID:       "quiz-distribution",
		CourseID: "distribution",
		Title:    "Distribution Schematics Quiz",
		Questions: []models.QuizQuestion{
			{
				Prompt:  "Distribution is best described as:",
				Choices: []string{"Smart money building positions at low prices", "Smart money selling positions to the public at higher prices", "A sudden volume drought", "The start of an uptrend"},
				Answer:  1,
			},
			{
				Prompt:  "A UTAD is:",
				Choices: []string{"A breakdown below support", "A failed test of resistance indicating weak demand", "A retest of the Spring low", "A volume climax at support"},
				Answer:  1,
			},
			{
				Prompt:  "Phase A of distribution starts with:",
				Choices: []string{"A Selling Climax", "A Spring", "A Buying Climax", "An LPS"},
				Answer:  2,
			},
			{
				Prompt:  "A Sign of Weakness (SOW) is confirmed by:",
				Choices: []string{"A breakdown below support with increased volume", "A breakout above resistance", "Falling volume in the range", "A higher low"},
				Answer:  0,
			},
			{
				Prompt:  "The LPSY marks:",
				Choices: []string{"The optimal long entry", "The final selling opportunity before markdown", "The end of markdown", "The midpoint of accumulation"},
				Answer:  1,
			},
		},
	},
	"volume": {
		ID:       "quiz-volume",
		CourseID: "volume",
		Title:    "Volume Analysis Quiz",
		Questions: []models.QuizQuestion{
			{
				Prompt:  "In a healthy uptrend, pullbacks show:",
				Choices: []string{"Higher volume than up days", "Lower volume than up days", "No volume at all", "Identical volume"},
				Answer:  1,
			},
			{
				Prompt:  "A Buying Climax often features:",
				Choices: []string{"Extremely high volume with a wide-range up bar", "Very low volume", "A narrow doji on average volume", "A gap down"},
				Answer:  0,
			},
			{
				Prompt:  "A breakout on low volume that closes back below resistance is:",
				Choices: []string{"A true breakout", "A false breakout", "An SOS", "An LPS"},
				Answer:  1,
			},
			{
				Prompt:  "Absorption describes:",
				Choices: []string{"Price moving far on no volume", "Large players taking all supply or demand without moving price much", "A volume drought after a climax", "Retail panic selling"},
				Answer:  1,
			},
		},
	},
	"psychology": {
		ID:       "quiz-psychology",
		CourseID: "psychology",
		Title:    "Trading Psychology Quiz",
		Questions: []models.QuizQuestion{
			{
				Prompt:  "Markets are primarily driven by which pair of emotions?",
				Choices: []string{"Hope and apathy", "Fear and greed", "Joy and anger", "Trust and doubt"},
				Answer:  1,
			},
			{
				Prompt:  "Revenge trading means:",
				Choices: []string{"Trading to recover a loss immediately, off plan", "Following the trading plan strictly", "Reducing size after a win", "Journaling every trade"},
				Answer:  0,
			},
			{
				Prompt:  "Which habit supports long-term trading success?",
				Choices: []string{"Doubling size after losses", "Trading without an exit plan", "Consistency and risk management", "Chasing every breakout"},
				Answer:  2,
			},
		},
	},
}

// QuizForCourse looks up the quiz attached to a course.
func QuizForCourse(courseID string) (models.Quiz, bool) {
	q, ok := Quizzes[courseID]
	return q, ok
}
