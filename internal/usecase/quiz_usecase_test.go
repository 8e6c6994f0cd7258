package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/repository"
)

// in-memory topic repository for quiz tests
type fakeTopicRepo struct {
	topics map[string]entity.TopicData
	getErr error
}

func (r *fakeTopicRepo) List(ctx context.Context, query *repository.ListTopicQuery) ([]entity.TopicSummary, int64, error) {
	out := make([]entity.TopicSummary, 0, len(r.topics))
	for name, data := range r.topics {
		out = append(out, entity.TopicSummary{Topic: entity.Topic{Name: name}, QuestionCount: len(data.Questions)})
	}
	return out, int64(len(out)), nil
}

func (r *fakeTopicRepo) Get(ctx context.Context, name string) (*entity.Topic, *entity.TopicData, error) {
	if r.getErr != nil {
		return nil, nil, r.getErr
	}
	data, ok := r.topics[name]
	if !ok {
		return nil, nil, entity.ErrTopicNotFound
	}
	return &entity.Topic{Name: name}, &data, nil
}

// identitySource never swaps, so shuffled order equals file order.
type identitySource struct{}

func (identitySource) IntN(n int) int { return n - 1 }

type fakeHinter struct{ err error }

func (h fakeHinter) Reading(text string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "READING(" + text + ")", nil
}

func animalsRepo(n int) *fakeTopicRepo {
	qs := make([]entity.Question, n)
	for i := range qs {
		qs[i] = entity.Question{Question: fmt.Sprintf("動物%d", i), Answer: fmt.Sprintf("animal %d", i), Alternatives: []string{fmt.Sprintf("beast %d", i)}}
	}
	return &fakeTopicRepo{topics: map[string]entity.TopicData{"Animals": {Questions: qs}, "Empty": {}}}
}

func TestStartQuiz_JPToEN(t *testing.T) {
	uc := NewQuizUsecase(animalsRepo(25), identitySource{}, fakeHinter{})
	qs, err := uc.StartQuiz(context.Background(), entity.QuizConfig{
		Topic:         entity.Topic{Name: "Animals"},
		Direction:     entity.QuizDirectionJPToEN,
		QuestionCount: entity.QuestionCount20,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qs) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(qs))
	}
	first := qs[0]
	if first.Prompt != "動物0" || first.Answer != "animal 0" || len(first.Alternatives) != 1 {
		t.Fatalf("unexpected first question: %+v", first)
	}
	if first.Hint != "READING(動物0)" {
		t.Fatalf("expected hint for Japanese prompt, got %q", first.Hint)
	}
}

func TestStartQuiz_ENToJPAndShortTopic(t *testing.T) {
	uc := NewQuizUsecase(animalsRepo(4), identitySource{}, fakeHinter{})
	qs, err := uc.StartQuiz(context.Background(), entity.QuizConfig{
		Topic:         entity.Topic{Name: "Animals"},
		Direction:     entity.QuizDirectionENToJP,
		QuestionCount: entity.QuestionCount10,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(qs) != 4 {
		t.Fatalf("expected all 4 questions when topic is short, got %d", len(qs))
	}
	if qs[0].Prompt != "animal 0" || qs[0].Answer != "動物0" {
		t.Fatalf("expected swapped sides, got %+v", qs[0])
	}
	if len(qs[0].Alternatives) != 0 || qs[0].Hint != "" {
		t.Fatalf("English prompts carry no alternatives or hint: %+v", qs[0])
	}
}

func TestStartQuiz_HintErrorsAreIgnored(t *testing.T) {
	uc := NewQuizUsecase(animalsRepo(2), identitySource{}, fakeHinter{err: errors.New("no dict")})
	qs, err := uc.StartQuiz(context.Background(), entity.QuizConfig{
		Topic: entity.Topic{Name: "Animals"}, Direction: entity.QuizDirectionJPToEN, QuestionCount: entity.QuestionCount10,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if qs[0].Hint != "" {
		t.Fatalf("expected empty hint, got %q", qs[0].Hint)
	}
}

func TestStartQuiz_Errors(t *testing.T) {
	uc := NewQuizUsecase(animalsRepo(3), identitySource{}, nil)
	ctx := context.Background()
	cases := []struct {
		name string
		cfg  entity.QuizConfig
		want error
	}{
		{"bad direction", entity.QuizConfig{Topic: entity.Topic{Name: "Animals"}, Direction: "num-to-jp", QuestionCount: 10}, entity.ErrInvalidDirection},
		{"bad count", entity.QuizConfig{Topic: entity.Topic{Name: "Animals"}, Direction: entity.QuizDirectionJPToEN, QuestionCount: 15}, entity.ErrInvalidQuestionCount},
		{"unknown topic", entity.QuizConfig{Topic: entity.Topic{Name: "Weather"}, Direction: entity.QuizDirectionJPToEN, QuestionCount: 10}, entity.ErrTopicNotFound},
		{"empty topic", entity.QuizConfig{Topic: entity.Topic{Name: "Empty"}, Direction: entity.QuizDirectionJPToEN, QuestionCount: 10}, entity.ErrEmptyTopic},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := uc.StartQuiz(ctx, c.cfg); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestStartQuiz_ShuffleUsesSource(t *testing.T) {
	// Always picking index 0 rotates the deck: the last card ends up first.
	uc := NewQuizUsecase(animalsRepo(3), zeroSource{}, nil)
	qs, err := uc.StartQuiz(context.Background(), entity.QuizConfig{
		Topic: entity.Topic{Name: "Animals"}, Direction: entity.QuizDirectionJPToEN, QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if qs[0].Prompt != "動物1" || qs[1].Prompt != "動物2" || qs[2].Prompt != "動物0" {
		t.Fatalf("unexpected order: %s %s %s", qs[0].Prompt, qs[1].Prompt, qs[2].Prompt)
	}
}

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func TestSubmitQuiz(t *testing.T) {
	uc := NewQuizUsecase(animalsRepo(1), identitySource{}, nil)
	report, err := uc.SubmitQuiz(context.Background(), []entity.QuizQuestion{
		{Prompt: "犬", Answer: "dog", UserAnswer: " Dog "},
		{Prompt: "猫", Answer: "cat", Alternatives: []string{"kitty"}, UserAnswer: "KITTY"},
		{Prompt: "鳥", Answer: "bird", UserAnswer: "fish"},
		{Prompt: "魚", Answer: "fish"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Correct != 2 || report.Total != 4 || report.Score != 50 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !report.Results[0].IsCorrect || report.Results[2].IsCorrect || report.Results[3].IsCorrect {
		t.Fatalf("unexpected grading: %+v", report.Results)
	}

	if _, err := uc.SubmitQuiz(context.Background(), nil); !errors.Is(err, entity.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}
