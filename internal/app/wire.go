//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/benkyo/internal/adapter/connectrpc"
	"github.com/eslsoft/benkyo/internal/infrastructure/config"
	"github.com/eslsoft/benkyo/internal/infrastructure/reading"
	"github.com/eslsoft/benkyo/internal/infrastructure/server"
	"github.com/eslsoft/benkyo/internal/usecase"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
	"github.com/eslsoft/benkyo/pkg/japanese"
)

var configSet = wire.NewSet(
	config.Load,
)

var repositorySet = wire.NewSet(
	provideTopicRepository,
)

var infrastructureSet = wire.NewSet(
	provideGenerator,
	wire.Bind(new(japanese.Source), new(*japanese.Generator)),
	reading.NewHinter,
	provideQuizHinter,
)

var usecaseSet = wire.NewSet(
	usecase.NewQuizUsecase,
	usecase.NewNumberUsecase,
)

var serviceSet = wire.NewSet(
	provideDefaultCount,
	connectrpc.NewTopicServiceServer,
	connectrpc.NewQuizServiceServer,
	connectrpc.NewNumberServiceServer,
	wire.Bind(new(benkyov1.TopicServiceHandler), new(*connectrpc.TopicServiceServer)),
	wire.Bind(new(benkyov1.QuizServiceHandler), new(*connectrpc.QuizServiceServer)),
	wire.Bind(new(benkyov1.NumberServiceHandler), new(*connectrpc.NumberServiceServer)),
	wire.Struct(new(server.Handlers), "*"),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		repositorySet,
		infrastructureSet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
