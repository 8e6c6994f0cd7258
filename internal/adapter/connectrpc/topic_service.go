package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/eslsoft/benkyo/internal/adapter/mapping"
	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/repository"
	"github.com/eslsoft/benkyo/internal/usecase"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

var _ benkyov1.TopicServiceHandler = (*TopicServiceServer)(nil)

type TopicServiceServer struct {
	uc usecase.QuizUsecase
}

func NewTopicServiceServer(uc usecase.QuizUsecase) *TopicServiceServer {
	return &TopicServiceServer{uc: uc}
}

func (s *TopicServiceServer) ListTopics(ctx context.Context, req *connect.Request[benkyov1.ListTopicsRequest]) (*connect.Response[benkyov1.ListTopicsResponse], error) {
	msg := req.Msg
	query := &repository.ListTopicQuery{
		Pagination: convertPagination(msg.GetPagination()),
		FilterOrder: repository.FilterOrder{
			Filter:  msg.GetFilter(),
			OrderBy: msg.GetOrderBy(),
		},
	}
	items, total, err := s.uc.ListTopics(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	total32, err := safeInt32("total topics", total)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&benkyov1.ListTopicsResponse{
		Topics: lo.Map(items, func(item entity.TopicSummary, _ int) *benkyov1.Topic {
			return mapping.ToPbTopic(item)
		}),
		Pagination: &benkyov1.PaginationResponse{
			Total:  total32,
			PageNo: query.PageNo,
		},
	}), nil
}
