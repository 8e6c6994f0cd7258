package benkyov1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

type TopicServiceHandler interface {
	ListTopics(context.Context, *connect.Request[ListTopicsRequest]) (*connect.Response[ListTopicsResponse], error)
}

type QuizServiceHandler interface {
	StartQuiz(context.Context, *connect.Request[StartQuizRequest]) (*connect.Response[StartQuizResponse], error)
	SubmitQuiz(context.Context, *connect.Request[SubmitQuizRequest]) (*connect.Response[SubmitQuizResponse], error)
}

type NumberServiceHandler interface {
	Convert(context.Context, *connect.Request[ConvertRequest]) (*connect.Response[ConvertResponse], error)
	Readings(context.Context, *connect.Request[ReadingsRequest]) (*connect.Response[ReadingsResponse], error)
	NewQuestion(context.Context, *connect.Request[NewQuestionRequest]) (*connect.Response[NumberQuestion], error)
	Check(context.Context, *connect.Request[CheckRequest]) (*connect.Response[CheckResponse], error)
}

// NewTopicServiceHandler returns the mount path and handler for TopicService.
func NewTopicServiceHandler(svc TopicServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	listTopics := connect.NewUnaryHandler(TopicServiceListTopicsProcedure, svc.ListTopics,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...)
	return "/" + TopicServiceName + "/", route(map[string]http.Handler{
		TopicServiceListTopicsProcedure: listTopics,
	})
}

// NewQuizServiceHandler returns the mount path and handler for QuizService.
func NewQuizServiceHandler(svc QuizServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + QuizServiceName + "/", route(map[string]http.Handler{
		QuizServiceStartQuizProcedure:  connect.NewUnaryHandler(QuizServiceStartQuizProcedure, svc.StartQuiz, opts...),
		QuizServiceSubmitQuizProcedure: connect.NewUnaryHandler(QuizServiceSubmitQuizProcedure, svc.SubmitQuiz, opts...),
	})
}

// NewNumberServiceHandler returns the mount path and handler for NumberService.
func NewNumberServiceHandler(svc NumberServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	pure := append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))
	return "/" + NumberServiceName + "/", route(map[string]http.Handler{
		NumberServiceConvertProcedure:     connect.NewUnaryHandler(NumberServiceConvertProcedure, svc.Convert, pure...),
		NumberServiceReadingsProcedure:    connect.NewUnaryHandler(NumberServiceReadingsProcedure, svc.Readings, pure...),
		NumberServiceNewQuestionProcedure: connect.NewUnaryHandler(NumberServiceNewQuestionProcedure, svc.NewQuestion, opts...),
		NumberServiceCheckProcedure:       connect.NewUnaryHandler(NumberServiceCheckProcedure, svc.Check, pure...),
	})
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	out := make([]connect.HandlerOption, 0, len(opts)+2)
	out = append(out, WithCodec())
	return append(out, opts...)
}

func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
