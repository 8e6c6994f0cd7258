package mapping

import (
	"github.com/samber/lo"

	"github.com/eslsoft/benkyo/internal/entity"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

func ToPbTopic(in entity.TopicSummary) *benkyov1.Topic {
	return &benkyov1.Topic{
		Name:          in.Name,
		File:          in.File,
		QuestionCount: int32(in.QuestionCount),
	}
}

func ToPbQuizQuestion(in entity.QuizQuestion) *benkyov1.QuizQuestion {
	return &benkyov1.QuizQuestion{
		Prompt:       in.Prompt,
		Answer:       in.Answer,
		Alternatives: in.Alternatives,
		Hint:         in.Hint,
		UserAnswer:   in.UserAnswer,
	}
}

func FromPbQuizQuestion(in *benkyov1.QuizQuestion) entity.QuizQuestion {
	if in == nil {
		return entity.QuizQuestion{}
	}
	return entity.QuizQuestion{
		Prompt:       in.Prompt,
		Answer:       in.Answer,
		Alternatives: in.Alternatives,
		Hint:         in.Hint,
		UserAnswer:   in.UserAnswer,
	}
}

func ToPbQuizReport(in *entity.QuizReport) *benkyov1.SubmitQuizResponse {
	return &benkyov1.SubmitQuizResponse{
		Results: lo.Map(in.Results, func(r entity.QuizResult, _ int) *benkyov1.QuizResult {
			return &benkyov1.QuizResult{
				Question:  ToPbQuizQuestion(r.Question),
				IsCorrect: r.IsCorrect,
			}
		}),
		Correct: int32(in.Correct),
		Total:   int32(in.Total),
		Score:   int32(in.Score),
	}
}
