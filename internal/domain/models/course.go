package models

// Lesson is one unit of authored course content.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
}

// Course groups lessons under a theme.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Lessons     []Lesson `json:"lessons"`
}

// CourseSummary is a course without lesson bodies, for list views.
type CourseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	LessonCount int    `json:"lessonCount"`
}

// Summary strips lesson content from a course.
func (c Course) Summary() CourseSummary {
	return CourseSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		LessonCount: len(c.Lessons),
	}
}

// SchematicPhase is one phase (A-E) of a schematic.
type SchematicPhase struct {
	Phase    string   `json:"phase"`
	Name     string   `json:"name"`
	Elements []string `json:"elements"`
}

// Schematic is a static visual-framework reference.
type Schematic struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Color       string           `json:"color"`
	Phases      []SchematicPhase `json:"phases"`
	KeyPoints   []string         `json:"keyPoints"`
}

// QuizQuestion is a single multiple-choice question. Answer indexes Choices.
type QuizQuestion struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"-"`
}

// Quiz is a per-course knowledge check. Answers are never serialized; grading
// happens server-side.
type Quiz struct {
	ID        string         `json:"id"`
	CourseID  string         `json:"courseId"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// SymbolInfo describes a tradeable symbol offered by the chart tool.
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Base   string `json:"base"`
}
