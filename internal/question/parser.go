package question

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrFormat marks a record line that does not follow the
// question;a1;a2;a3;a4;correctIndex;image grammar.
var ErrFormat = errors.New("malformed record line")

const fieldsPerLine = 7

type Answer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type Question struct {
	Prompt  string   `json:"prompt"`
	Answers []Answer `json:"answers"`
	Image   string   `json:"image,omitempty"`
}

// Parse reads the whole input and converts it into question records,
// preserving line order. It fails on the first malformed line; a bad line is
// never skipped silently.
func Parse(r io.Reader) ([]Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

func ParseBytes(data []byte) ([]Question, error) {
	lines := strings.Split(string(data), "\n")
	// a trailing newline produces one empty final segment, not a record
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	questions := make([]Question, 0, len(lines))
	for i, line := range lines {
		q, err := parseLine(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// ParseFile parses the record file at the given locator.
func ParseFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return ParseBytes(data)
}

func parseLine(line string) (Question, error) {
	fields := strings.Split(line, ";")
	if len(fields) != fieldsPerLine {
		return Question{}, fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, fieldsPerLine, len(fields))
	}

	correct, err := strconv.Atoi(strings.TrimSpace(fields[5]))
	if err != nil {
		return Question{}, fmt.Errorf("%w: correct index %q is not an integer", ErrFormat, fields[5])
	}
	if correct < 1 || correct > 4 {
		return Question{}, fmt.Errorf("%w: correct index %d out of range 1..4", ErrFormat, correct)
	}

	q := Question{
		Prompt: fields[0],
		Image:  fields[6],
	}
	for i := 1; i <= 4; i++ {
		if fields[i] == "" {
			continue
		}
		q.Answers = append(q.Answers, Answer{
			Text:      fields[i],
			IsCorrect: i == correct,
		})
	}
	return q, nil
}

// MaxScore is the score ceiling for a test: one point per parsed record.
// Deriving it from the parsed records rather than raw line count keeps the
// deriver and the parser in agreement on what a "line" is.
func MaxScore(questions []Question) int {
	return len(questions)
}
