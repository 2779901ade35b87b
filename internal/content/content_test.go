package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCourseCatalogIntegrity(t *testing.T) {
	if len(Courses) != 5 {
		t.Fatalf("expected 5 courses, got %d", len(Courses))
	}

	seenCourses := map[string]bool{}
	seenLessons := map[string]bool{}
	for _, c := range Courses {
		if c.ID == "" || c.Title == "" || c.Color == "" {
			t.Fatalf("course missing identity fields: %+v", c.Summary())
		}
		if seenCourses[c.ID] {
			t.Fatalf("duplicate course id %q", c.ID)
		}
		seenCourses[c.ID] = true

		if len(c.Lessons) == 0 {
			t.Fatalf("course %q has no lessons", c.ID)
		}
		for i, l := range c.Lessons {
			if l.ID == "" || l.Title == "" || l.Content == "" {
				t.Fatalf("course %q lesson %d missing fields", c.ID, i)
			}
			if seenLessons[l.ID] {
				t.Fatalf("duplicate lesson id %q", l.ID)
			}
			seenLessons[l.ID] = true
			if l.Order != i+1 {
				t.Fatalf("course %q lesson %q order %d at position %d", c.ID, l.ID, l.Order, i)
			}
		}
	}

	if got := TotalLessons(); got != len(seenLessons) {
		t.Fatalf("TotalLessons=%d, counted %d", got, len(seenLessons))
	}
}

func TestCourseLookups(t *testing.T) {
	c, ok := CourseByID("accumulation")
	if !ok || c.ID != "accumulation" {
		t.Fatalf("course lookup failed: %v %v", c.ID, ok)
	}
	if _, ok := CourseByID("nope"); ok {
		t.Fatalf("unknown course found")
	}

	lesson := Courses[0].Lessons[0]
	l, ok := LessonByID(lesson.ID)
	if !ok || l.ID != lesson.ID {
		t.Fatalf("lesson lookup failed for %q", lesson.ID)
	}
	if _, ok := LessonByID("nope"); ok {
		t.Fatalf("unknown lesson found")
	}

	summaries := CourseSummaries()
	if len(summaries) != len(Courses) {
		t.Fatalf("summary count %d", len(summaries))
	}
	for i, s := range summaries {
		if s.LessonCount != len(Courses[i].Lessons) {
			t.Fatalf("summary %q lesson count %d", s.ID, s.LessonCount)
		}
	}
}

func TestQuizCatalogIntegrity(t *testing.T) {
	if len(Quizzes) == 0 {
		t.Fatalf("no quizzes")
	}
	for courseID, q := range Quizzes {
		if _, ok := CourseByID(courseID); !ok {
			t.Fatalf("quiz %q references unknown course %q", q.ID, courseID)
		}
		if q.CourseID != courseID {
			t.Fatalf("quiz %q keyed under %q but references %q", q.ID, courseID, q.CourseID)
		}
		if !strings.HasPrefix(q.ID, "quiz-") {
			t.Fatalf("quiz id %q", q.ID)
		}
		if len(q.Questions) == 0 {
			t.Fatalf("quiz %q has no questions", q.ID)
		}
		for i, question := range q.Questions {
			if len(question.Choices) < 2 {
				t.Fatalf("quiz %q question %d has %d choices", q.ID, i, len(question.Choices))
			}
			if question.Answer < 0 || question.Answer >= len(question.Choices) {
				t.Fatalf("quiz %q question %d answer index %d out of range", q.ID, i, question.Answer)
			}
		}
	}

	q, ok := QuizForCourse("fundamentals")
	if !ok || q.ID != "quiz-fundamentals" {
		t.Fatalf("quiz lookup failed: %+v %v", q.ID, ok)
	}
	if _, ok := QuizForCourse("nope"); ok {
		t.Fatalf("unknown course returned a quiz")
	}
}

func TestQuizAnswersNeverSerialized(t *testing.T) {
	b, err := json.Marshal(Quizzes["fundamentals"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(b)), `"answer"`) {
		t.Fatalf("answer indexes leaked into JSON: %s", b)
	}
}

func TestSchematicCatalogIntegrity(t *testing.T) {
	if len(Schematics) != 4 {
		t.Fatalf("expected 4 schematics, got %d", len(Schematics))
	}
	seen := map[string]bool{}
	for _, sc := range Schematics {
		if seen[sc.ID] {
			t.Fatalf("duplicate schematic id %q", sc.ID)
		}
		seen[sc.ID] = true
		if len(sc.Phases) == 0 || len(sc.KeyPoints) == 0 {
			t.Fatalf("schematic %q missing phases or key points", sc.ID)
		}
		for _, p := range sc.Phases {
			if p.Phase == "" || p.Name == "" || len(p.Elements) == 0 {
				t.Fatalf("schematic %q has an empty phase entry", sc.ID)
			}
		}
	}

	if _, ok := SchematicByID("accumulation-1"); !ok {
		t.Fatalf("accumulation-1 missing")
	}
	if _, ok := SchematicByID("nope"); ok {
		t.Fatalf("unknown schematic found")
	}
}

func TestSymbolCatalog(t *testing.T) {
	if len(Symbols) == 0 {
		t.Fatalf("no symbols")
	}
	for _, s := range Symbols {
		if !IsValidSymbol(s.Symbol) {
			t.Fatalf("catalog symbol %q not valid", s.Symbol)
		}
	}
	if IsValidSymbol("NOPEUSDT") {
		t.Fatalf("unknown symbol accepted")
	}
}
