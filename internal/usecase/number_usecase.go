package usecase

import (
	"context"
	"strconv"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

// NumberUsecase serves the number drill.
type NumberUsecase interface {
	Convert(ctx context.Context, n int) (string, error)
	Readings(ctx context.Context, n int) ([]string, error)
	NewQuestion(ctx context.Context, direction japanese.Direction) (*entity.NumberQuestion, error)
	Check(ctx context.Context, answer string, n int, direction japanese.Direction) (*entity.NumberCheck, error)
}

type numberUsecase struct {
	gen *japanese.Generator
}

func NewNumberUsecase(gen *japanese.Generator) NumberUsecase {
	return &numberUsecase{gen: gen}
}

func (u *numberUsecase) Convert(ctx context.Context, n int) (string, error) {
	return japanese.NumberToJapanese(n)
}

// Readings reports out-of-range input as an error instead of the empty list
// japanese.AllValidJapanese returns, so API callers can tell the cases apart.
func (u *numberUsecase) Readings(ctx context.Context, n int) ([]string, error) {
	if _, err := japanese.NumberToJapanese(n); err != nil {
		return nil, err
	}
	return japanese.AllValidJapanese(n), nil
}

func (u *numberUsecase) NewQuestion(ctx context.Context, direction japanese.Direction) (*entity.NumberQuestion, error) {
	direction, err := japanese.ParseDirection(string(direction))
	if err != nil {
		return nil, err
	}
	n := u.gen.RandomNumber()
	prompt := strconv.Itoa(n)
	if direction == japanese.DirectionJPToNum {
		if prompt, err = japanese.NumberToJapanese(n); err != nil {
			return nil, err
		}
	}
	return &entity.NumberQuestion{Number: n, Direction: direction, Prompt: prompt}, nil
}

func (u *numberUsecase) Check(ctx context.Context, answer string, n int, direction japanese.Direction) (*entity.NumberCheck, error) {
	direction, err := japanese.ParseDirection(string(direction))
	if err != nil {
		return nil, err
	}
	expected, err := japanese.NumberToJapanese(n)
	if err != nil {
		return nil, err
	}
	result := &entity.NumberCheck{
		Correct:  japanese.CheckNumberAnswer(answer, n, direction),
		Expected: expected,
		Accepted: japanese.AllValidJapanese(n),
	}
	if direction == japanese.DirectionJPToNum {
		result.Expected = strconv.Itoa(n)
		result.Accepted = []string{result.Expected}
	}
	return result, nil
}
