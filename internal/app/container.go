package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/benkyo/internal/infrastructure/config"
	"github.com/eslsoft/benkyo/internal/infrastructure/reading"
	"github.com/eslsoft/benkyo/internal/infrastructure/server"
	"github.com/eslsoft/benkyo/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Server  *server.Server
	Quiz    usecase.QuizUsecase
	Numbers usecase.NumberUsecase
	Hinter  *reading.Hinter
}
