package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// QuizDirection says which side of a topic card is shown as the prompt.
type QuizDirection string

const (
	QuizDirectionJPToEN QuizDirection = "jp-to-en"
	QuizDirectionENToJP QuizDirection = "en-to-jp"
)

// PromptLanguage returns the language the learner reads.
func (d QuizDirection) PromptLanguage() Language {
	if d == QuizDirectionENToJP {
		return LanguageEnglish
	}
	return LanguageJapanese
}

// ParseQuizDirection accepts jp-to-en or en-to-jp, ignoring case and
// surrounding space.
func ParseQuizDirection(s string) (QuizDirection, error) {
	switch d := QuizDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case QuizDirectionJPToEN, QuizDirectionENToJP:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// QuestionCount is the quiz length offered on the home screen.
type QuestionCount int

const (
	QuestionCount10 QuestionCount = 10
	QuestionCount20 QuestionCount = 20
)

// Valid reports whether c is one of the offered quiz lengths.
func (c QuestionCount) Valid() bool {
	return c == QuestionCount10 || c == QuestionCount20
}

// ParseQuestionCount reads a quiz length, rejecting anything but 10 and 20.
func ParseQuestionCount(s string) (QuestionCount, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !QuestionCount(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuestionCount, s)
	}
	return QuestionCount(n), nil
}

// QuizConfig is what the learner picks before a quiz starts.
type QuizConfig struct {
	Topic         Topic
	Direction     QuizDirection
	QuestionCount QuestionCount
}

// QuizQuestion is a card oriented for the chosen direction.
type QuizQuestion struct {
	Prompt       string   `json:"prompt"`
	Answer       string   `json:"answer"`
	Alternatives []string `json:"alternatives,omitempty"`
	Hint         string   `json:"hint,omitempty"`
	UserAnswer   string   `json:"user_answer,omitempty"`
}

// Accepts reports whether answer matches the expected answer or one of its
// alternatives after NormalizeTopicAnswer.
func (q QuizQuestion) Accepts(answer string) bool {
	got := NormalizeTopicAnswer(answer)
	if got == "" {
		return false
	}
	if got == NormalizeTopicAnswer(q.Answer) {
		return true
	}
	for _, alt := range q.Alternatives {
		if got == NormalizeTopicAnswer(alt) {
			return true
		}
	}
	return false
}

// QuizResult is one graded question.
type QuizResult struct {
	Question  QuizQuestion `json:"question"`
	IsCorrect bool         `json:"is_correct"`
}

// QuizReport is what the results screen shows.
type QuizReport struct {
	Results []QuizResult `json:"results"`
	Correct int          `json:"correct"`
	Total   int          `json:"total"`
	Score   int          `json:"score"`
}

// NewQuizReport totals results; Score is a whole percentage.
func NewQuizReport(results []QuizResult) *QuizReport {
	report := &QuizReport{Results: results, Total: len(results)}
	for _, r := range results {
		if r.IsCorrect {
			report.Correct++
		}
	}
	report.Score = ScorePercent(report.Correct, report.Total)
	return report
}

// ScorePercent is correct as a whole percentage of total, 0 when total is 0.
func ScorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}
