package usecase

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/repository"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

// QuizUsecase drives the home, quiz and results screens of a topic quiz.
type QuizUsecase interface {
	ListTopics(ctx context.Context, query *repository.ListTopicQuery) ([]entity.TopicSummary, int64, error)
	StartQuiz(ctx context.Context, cfg entity.QuizConfig) ([]entity.QuizQuestion, error)
	CheckAnswer(question entity.QuizQuestion, answer string) bool
	SubmitQuiz(ctx context.Context, questions []entity.QuizQuestion) (*entity.QuizReport, error)
}

// ReadingHinter returns the katakana reading of Japanese text.
type ReadingHinter interface {
	Reading(text string) (string, error)
}

type quizUsecase struct {
	repo   repository.TopicRepository
	src    japanese.Source
	hinter ReadingHinter
}

// NewQuizUsecase builds a QuizUsecase. src drives question shuffling; hinter may be nil.
func NewQuizUsecase(repo repository.TopicRepository, src japanese.Source, hinter ReadingHinter) QuizUsecase {
	return &quizUsecase{repo: repo, src: src, hinter: hinter}
}

func (u *quizUsecase) ListTopics(ctx context.Context, query *repository.ListTopicQuery) ([]entity.TopicSummary, int64, error) {
	return u.repo.List(ctx, query)
}

func (u *quizUsecase) StartQuiz(ctx context.Context, cfg entity.QuizConfig) ([]entity.QuizQuestion, error) {
	if _, err := entity.ParseQuizDirection(string(cfg.Direction)); err != nil {
		return nil, err
	}
	if !cfg.QuestionCount.Valid() {
		return nil, entity.ErrInvalidQuestionCount
	}

	_, data, err := u.repo.Get(ctx, cfg.Topic.Name)
	if err != nil {
		return nil, err
	}
	if len(data.Questions) == 0 {
		return nil, entity.ErrEmptyTopic
	}

	picked := u.shuffle(data.Questions)
	picked = picked[:min(int(cfg.QuestionCount), len(picked))]

	return lo.Map(picked, func(q entity.Question, _ int) entity.QuizQuestion {
		return u.orient(q, cfg.Direction)
	}), nil
}

func (u *quizUsecase) shuffle(in []entity.Question) []entity.Question {
	out := slices.Clone(in)
	for i := len(out) - 1; i > 0; i-- {
		j := u.src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// orient turns a topic card into a prompt for the chosen direction. Topic
// alternatives belong to the English answer, so they only apply to jp-to-en.
// Japanese prompts carry a reading hint.
func (u *quizUsecase) orient(q entity.Question, dir entity.QuizDirection) entity.QuizQuestion {
	out := entity.QuizQuestion{
		Prompt:       q.Question,
		Answer:       q.Answer,
		Alternatives: slices.Clone(q.Alternatives),
	}
	if dir == entity.QuizDirectionENToJP {
		out = entity.QuizQuestion{Prompt: q.Answer, Answer: q.Question}
	}
	if dir.PromptLanguage() == entity.LanguageJapanese {
		out.Hint = u.hint(out.Prompt)
	}
	return out
}

// hint is best effort: a missing dictionary never blocks a quiz.
func (u *quizUsecase) hint(text string) string {
	if u.hinter == nil {
		return ""
	}
	r, err := u.hinter.Reading(text)
	if err != nil {
		return ""
	}
	return r
}

func (u *quizUsecase) CheckAnswer(question entity.QuizQuestion, answer string) bool {
	return question.Accepts(answer)
}

func (u *quizUsecase) SubmitQuiz(ctx context.Context, questions []entity.QuizQuestion) (*entity.QuizReport, error) {
	if len(questions) == 0 {
		return nil, entity.ErrNoQuestions
	}
	results := lo.Map(questions, func(q entity.QuizQuestion, _ int) entity.QuizResult {
		return entity.QuizResult{Question: q, IsCorrect: u.CheckAnswer(q, q.UserAnswer)}
	})
	return entity.NewQuizReport(results), nil
}
