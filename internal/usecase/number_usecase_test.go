package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/eslsoft/benkyo/pkg/japanese"
)

type fixedSource struct{ n int }

func (s fixedSource) IntN(int) int { return s.n - japanese.MinRandomNumber }

func TestNumberUsecase_NewQuestion(t *testing.T) {
	uc := NewNumberUsecase(japanese.NewGenerator(fixedSource{n: 47}))
	ctx := context.Background()

	q, err := uc.NewQuestion(ctx, japanese.DirectionNumToJP)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.Number != 47 || q.Prompt != "47" {
		t.Fatalf("unexpected num-to-jp question: %+v", q)
	}

	q, err = uc.NewQuestion(ctx, japanese.DirectionJPToNum)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.Prompt != "yonjuunana" {
		t.Fatalf("unexpected jp-to-num prompt: %q", q.Prompt)
	}

	if _, err := uc.NewQuestion(ctx, "jp-to-en"); !errors.Is(err, japanese.ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestNumberUsecase_Check(t *testing.T) {
	uc := NewNumberUsecase(japanese.NewSeededGenerator(1))
	ctx := context.Background()

	res, err := uc.Check(ctx, "ShiJuuNana", 47, japanese.DirectionNumToJP)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Correct || res.Expected != "yonjuunana" || len(res.Accepted) != 4 {
		t.Fatalf("unexpected check: %+v", res)
	}

	res, err = uc.Check(ctx, "48", 47, japanese.DirectionJPToNum)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Correct || res.Expected != "47" {
		t.Fatalf("unexpected check: %+v", res)
	}

	if _, err := uc.Check(ctx, "zero", 100000, japanese.DirectionNumToJP); !errors.Is(err, japanese.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestNumberUsecase_ConvertAndReadings(t *testing.T) {
	uc := NewNumberUsecase(japanese.NewSeededGenerator(1))
	ctx := context.Background()

	got, err := uc.Convert(ctx, 8000)
	if err != nil || got != "hassen" {
		t.Fatalf("Convert(8000) = (%q, %v)", got, err)
	}
	readings, err := uc.Readings(ctx, 4)
	if err != nil || !reflect.DeepEqual(readings, []string{"yon", "shi"}) {
		t.Fatalf("Readings(4) = (%v, %v)", readings, err)
	}
	if _, err := uc.Readings(ctx, -1); !errors.Is(err, japanese.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
