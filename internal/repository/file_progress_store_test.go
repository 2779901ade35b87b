package repository

import (
	"os"
	"path/filepath"
	"testing"

	applogger "WyckoffLab/pkg/logger"
)

func storeLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestFileProgressStoreNewUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	p, err := s.Get("alice@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Lessons) != 0 || len(p.QuizScores) != 0 {
		t.Fatalf("new user not empty: %+v", p)
	}
}

func TestFileProgressStoreLessonCompletion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	p, err := s.SetLessonCompletion("alice@example.com", "fundamentals-1", true)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(p.Lessons) != 1 || !p.Lessons[0].Completed || p.Lessons[0].CompletedAt == nil {
		t.Fatalf("unexpected progress %+v", p)
	}
	if p.LastUpdated.IsZero() {
		t.Fatalf("lastUpdated not set")
	}

	// Unmarking clears the completion timestamp.
	p, err = s.SetLessonCompletion("alice@example.com", "fundamentals-1", false)
	if err != nil {
		t.Fatalf("unset: %v", err)
	}
	if p.Lessons[0].Completed || p.Lessons[0].CompletedAt != nil {
		t.Fatalf("unmark did not clear completion: %+v", p.Lessons[0])
	}
	if len(p.Lessons) != 1 {
		t.Fatalf("unmark duplicated the lesson entry")
	}
}

func TestFileProgressStorePersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := s.SetLessonCompletion("alice@example.com", "accum-3", true); err != nil {
		t.Fatalf("set lesson: %v", err)
	}
	if _, err := s.SetQuizScore("alice@example.com", "quiz-accumulation", 80); err != nil {
		t.Fatalf("set score: %v", err)
	}

	reloaded, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	p, err := reloaded.Get("alice@example.com")
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if len(p.Lessons) != 1 || p.Lessons[0].LessonID != "accum-3" || !p.Lessons[0].Completed {
		t.Fatalf("lesson lost across reload: %+v", p.Lessons)
	}
	if p.QuizScores["quiz-accumulation"] != 80 {
		t.Fatalf("score lost across reload: %+v", p.QuizScores)
	}
}

func TestFileProgressStoreUsersIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := s.SetLessonCompletion("alice@example.com", "psych-1", true); err != nil {
		t.Fatalf("set: %v", err)
	}

	p, err := s.Get("bob@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Lessons) != 0 {
		t.Fatalf("progress leaked between users: %+v", p.Lessons)
	}
}

func TestFileProgressStoreSnapshotIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := s.SetQuizScore("alice@example.com", "quiz-volume", 50); err != nil {
		t.Fatalf("set: %v", err)
	}

	p, _ := s.Get("alice@example.com")
	p.QuizScores["quiz-volume"] = 999

	again, _ := s.Get("alice@example.com")
	if again.QuizScores["quiz-volume"] != 50 {
		t.Fatalf("snapshot aliases stored record")
	}
}

func TestFileProgressStoreQuizScoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := s.SetQuizScore("alice@example.com", "quiz-fundamentals", 40); err != nil {
		t.Fatalf("set: %v", err)
	}
	p, err := s.SetQuizScore("alice@example.com", "quiz-fundamentals", 100)
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if p.QuizScores["quiz-fundamentals"] != 100 {
		t.Fatalf("last write did not win: %+v", p.QuizScores)
	}
}

func TestFileProgressStoreNoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")
	s, err := NewFileProgressStore(path, storeLogger(t))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.SetQuizScore("alice@example.com", "quiz-psychology", i*10); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "progress.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected files %v", names)
	}
}
