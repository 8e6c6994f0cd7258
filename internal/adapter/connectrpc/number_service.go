package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/eslsoft/benkyo/internal/adapter/mapping"
	"github.com/eslsoft/benkyo/internal/usecase"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

var _ benkyov1.NumberServiceHandler = (*NumberServiceServer)(nil)

type NumberServiceServer struct {
	uc usecase.NumberUsecase
}

func NewNumberServiceServer(uc usecase.NumberUsecase) *NumberServiceServer {
	return &NumberServiceServer{uc: uc}
}

func (s *NumberServiceServer) Convert(ctx context.Context, req *connect.Request[benkyov1.ConvertRequest]) (*connect.Response[benkyov1.ConvertResponse], error) {
	n := req.Msg.Number
	reading, err := s.uc.Convert(ctx, int(n))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&benkyov1.ConvertResponse{Number: n, Reading: reading}), nil
}

func (s *NumberServiceServer) Readings(ctx context.Context, req *connect.Request[benkyov1.ReadingsRequest]) (*connect.Response[benkyov1.ReadingsResponse], error) {
	n := req.Msg.Number
	readings, err := s.uc.Readings(ctx, int(n))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&benkyov1.ReadingsResponse{Number: n, Readings: readings}), nil
}

func (s *NumberServiceServer) NewQuestion(ctx context.Context, req *connect.Request[benkyov1.NewQuestionRequest]) (*connect.Response[benkyov1.NumberQuestion], error) {
	q, err := s.uc.NewQuestion(ctx, japanese.Direction(req.Msg.Direction))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbNumberQuestion(q)), nil
}

func (s *NumberServiceServer) Check(ctx context.Context, req *connect.Request[benkyov1.CheckRequest]) (*connect.Response[benkyov1.CheckResponse], error) {
	msg := req.Msg
	result, err := s.uc.Check(ctx, msg.Answer, int(msg.Number), japanese.Direction(msg.Direction))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbNumberCheck(result)), nil
}
