package benkyov1

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// Client calls every benkyo procedure over one base URL.
type Client struct {
	listTopics  *connect.Client[ListTopicsRequest, ListTopicsResponse]
	startQuiz   *connect.Client[StartQuizRequest, StartQuizResponse]
	submitQuiz  *connect.Client[SubmitQuizRequest, SubmitQuizResponse]
	convert     *connect.Client[ConvertRequest, ConvertResponse]
	readings    *connect.Client[ReadingsRequest, ReadingsResponse]
	newQuestion *connect.Client[NewQuestionRequest, NumberQuestion]
	check       *connect.Client[CheckRequest, CheckResponse]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithCodec()}, opts...)
	return &Client{
		listTopics:  connect.NewClient[ListTopicsRequest, ListTopicsResponse](httpClient, baseURL+TopicServiceListTopicsProcedure, opts...),
		startQuiz:   connect.NewClient[StartQuizRequest, StartQuizResponse](httpClient, baseURL+QuizServiceStartQuizProcedure, opts...),
		submitQuiz:  connect.NewClient[SubmitQuizRequest, SubmitQuizResponse](httpClient, baseURL+QuizServiceSubmitQuizProcedure, opts...),
		convert:     connect.NewClient[ConvertRequest, ConvertResponse](httpClient, baseURL+NumberServiceConvertProcedure, opts...),
		readings:    connect.NewClient[ReadingsRequest, ReadingsResponse](httpClient, baseURL+NumberServiceReadingsProcedure, opts...),
		newQuestion: connect.NewClient[NewQuestionRequest, NumberQuestion](httpClient, baseURL+NumberServiceNewQuestionProcedure, opts...),
		check:       connect.NewClient[CheckRequest, CheckResponse](httpClient, baseURL+NumberServiceCheckProcedure, opts...),
	}
}

func (c *Client) ListTopics(ctx context.Context, req *ListTopicsRequest) (*ListTopicsResponse, error) {
	return unary(ctx, c.listTopics, req)
}

func (c *Client) StartQuiz(ctx context.Context, req *StartQuizRequest) (*StartQuizResponse, error) {
	return unary(ctx, c.startQuiz, req)
}

func (c *Client) SubmitQuiz(ctx context.Context, req *SubmitQuizRequest) (*SubmitQuizResponse, error) {
	return unary(ctx, c.submitQuiz, req)
}

func (c *Client) Convert(ctx context.Context, req *ConvertRequest) (*ConvertResponse, error) {
	return unary(ctx, c.convert, req)
}

func (c *Client) Readings(ctx context.Context, req *ReadingsRequest) (*ReadingsResponse, error) {
	return unary(ctx, c.readings, req)
}

func (c *Client) NewQuestion(ctx context.Context, req *NewQuestionRequest) (*NumberQuestion, error) {
	return unary(ctx, c.newQuestion, req)
}

func (c *Client) Check(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	return unary(ctx, c.check, req)
}

func unary[Req, Res any](ctx context.Context, client *connect.Client[Req, Res], req *Req) (*Res, error) {
	resp, err := client.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
