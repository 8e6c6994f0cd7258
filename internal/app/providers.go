package app

import (
	"fmt"

	adapterrepo "github.com/eslsoft/benkyo/internal/adapter/repository"
	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/infrastructure/config"
	"github.com/eslsoft/benkyo/internal/infrastructure/random"
	"github.com/eslsoft/benkyo/internal/infrastructure/reading"
	"github.com/eslsoft/benkyo/internal/repository"
	"github.com/eslsoft/benkyo/internal/usecase"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

func provideTopicRepository(cfg *config.Config) (repository.TopicRepository, error) {
	return adapterrepo.OpenTopicRepository(cfg.Quiz.TopicsDir)
}

// provideGenerator seeds the shared generator from quiz.seed, or from the OS
// when it is zero.
func provideGenerator(cfg *config.Config) (*japanese.Generator, error) {
	seed, err := random.SeedOrNew(cfg.Quiz.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}
	return japanese.NewSeededGenerator(seed), nil
}

func provideQuizHinter(cfg *config.Config, h *reading.Hinter) usecase.ReadingHinter {
	if !cfg.Quiz.Hints {
		return nil
	}
	return h
}

func provideDefaultCount(cfg *config.Config) entity.QuestionCount {
	return entity.QuestionCount(cfg.Quiz.DefaultCount)
}
