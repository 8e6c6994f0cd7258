package connectrpc

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/eslsoft/benkyo/internal/adapter/mapping"
	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/usecase"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

var _ benkyov1.QuizServiceHandler = (*QuizServiceServer)(nil)

type QuizServiceServer struct {
	uc           usecase.QuizUsecase
	defaultCount entity.QuestionCount
}

// NewQuizServiceServer builds the quiz handler. defaultCount applies when a
// request leaves question_count unset.
func NewQuizServiceServer(uc usecase.QuizUsecase, defaultCount entity.QuestionCount) *QuizServiceServer {
	return &QuizServiceServer{uc: uc, defaultCount: defaultCount}
}

func (s *QuizServiceServer) StartQuiz(ctx context.Context, req *connect.Request[benkyov1.StartQuizRequest]) (*connect.Response[benkyov1.StartQuizResponse], error) {
	msg := req.Msg
	name := strings.TrimSpace(msg.Topic)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("topic required"))
	}
	direction, err := entity.ParseQuizDirection(msg.Direction)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	count := entity.QuestionCount(msg.QuestionCount)
	if count == 0 {
		count = s.defaultCount
	}

	questions, err := s.uc.StartQuiz(ctx, entity.QuizConfig{
		Topic:         entity.Topic{Name: name},
		Direction:     direction,
		QuestionCount: count,
	})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	return connect.NewResponse(&benkyov1.StartQuizResponse{
		Topic:     name,
		Direction: string(direction),
		Questions: lo.Map(questions, func(q entity.QuizQuestion, _ int) *benkyov1.QuizQuestion {
			return mapping.ToPbQuizQuestion(q)
		}),
	}), nil
}

func (s *QuizServiceServer) SubmitQuiz(ctx context.Context, req *connect.Request[benkyov1.SubmitQuizRequest]) (*connect.Response[benkyov1.SubmitQuizResponse], error) {
	questions := lo.Map(req.Msg.Questions, func(q *benkyov1.QuizQuestion, _ int) entity.QuizQuestion {
		return mapping.FromPbQuizQuestion(q)
	})
	report, err := s.uc.SubmitQuiz(ctx, questions)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbQuizReport(report)), nil
}
