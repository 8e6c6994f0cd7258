package mapping

import (
	"github.com/eslsoft/benkyo/internal/entity"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

func ToPbNumberQuestion(in *entity.NumberQuestion) *benkyov1.NumberQuestion {
	return &benkyov1.NumberQuestion{
		Number:    int32(in.Number),
		Direction: string(in.Direction),
		Prompt:    in.Prompt,
	}
}

func ToPbNumberCheck(in *entity.NumberCheck) *benkyov1.CheckResponse {
	return &benkyov1.CheckResponse{
		Correct:  in.Correct,
		Expected: in.Expected,
		Accepted: in.Accepted,
	}
}
