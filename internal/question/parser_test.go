package question_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prova-app/prova-api/internal/question"
)

func TestParseSingleLine(t *testing.T) {
	qs, err := question.ParseBytes([]byte("What is 2+2?;3;4;5;6;2;img.png"))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(qs))
	}

	q := qs[0]
	if q.Prompt != "What is 2+2?" {
		t.Errorf("wrong prompt: %q", q.Prompt)
	}
	if q.Image != "img.png" {
		t.Errorf("wrong image ref: %q", q.Image)
	}

	want := []question.Answer{
		{Text: "3", IsCorrect: false},
		{Text: "4", IsCorrect: true},
		{Text: "5", IsCorrect: false},
		{Text: "6", IsCorrect: false},
	}
	if len(q.Answers) != len(want) {
		t.Fatalf("expected %d answers, got %d", len(want), len(q.Answers))
	}
	for i, a := range q.Answers {
		if a != want[i] {
			t.Errorf("answer %d: got %+v, want %+v", i, a, want[i])
		}
	}
}

func TestParseOmitsEmptyAnswers(t *testing.T) {
	qs, err := question.ParseBytes([]byte("Q;a;;c;d;1;"))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	q := qs[0]
	if len(q.Answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(q.Answers))
	}
	if q.Answers[0].Text != "a" || !q.Answers[0].IsCorrect {
		t.Errorf("first answer should be \"a\" and correct, got %+v", q.Answers[0])
	}
	if q.Answers[1].Text != "c" || q.Answers[1].IsCorrect {
		t.Errorf("second answer should be \"c\" and incorrect, got %+v", q.Answers[1])
	}
	if q.Image != "" {
		t.Errorf("expected empty image ref, got %q", q.Image)
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	_, err := question.ParseBytes([]byte("Q;a;b;1;img"))
	if !errors.Is(err, question.ErrFormat) {
		t.Fatalf("expected ErrFormat for a 5-field line, got %v", err)
	}
}

func TestParseRejectsBadCorrectIndex(t *testing.T) {
	for _, line := range []string{
		"Q;a;b;c;d;x;img",
		"Q;a;b;c;d;0;img",
		"Q;a;b;c;d;5;img",
		"Q;a;b;c;d;-1;img",
	} {
		if _, err := question.ParseBytes([]byte(line)); !errors.Is(err, question.ErrFormat) {
			t.Errorf("line %q: expected ErrFormat, got %v", line, err)
		}
	}
}

func TestParseReportsLineNumber(t *testing.T) {
	_, err := question.ParseBytes([]byte("Q;a;b;c;d;1;\nbroken line\n"))
	if !errors.Is(err, question.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2: %v", err)
	}
}

func TestParseTrailingNewlineAndCRLF(t *testing.T) {
	qs, err := question.ParseBytes([]byte("Q;a;b;c;d;1;img\r\n"))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(qs))
	}
	if qs[0].Image != "img" {
		t.Errorf("CR not stripped from last field: %q", qs[0].Image)
	}
}

func TestParseEmptyInput(t *testing.T) {
	qs, err := question.ParseBytes(nil)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected 0 records, got %d", len(qs))
	}
}

func TestMaxScoreMatchesLineCount(t *testing.T) {
	for _, n := range []int{0, 1, 100} {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString("Q;a;b;c;d;1;\n")
		}

		path := filepath.Join(t.TempDir(), "test.csv")
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			t.Fatal(err)
		}

		qs, err := question.ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile failed for %d lines: %v", n, err)
		}
		if got := question.MaxScore(qs); got != n {
			t.Errorf("MaxScore for %d lines: got %d", n, got)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := question.ParseFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
