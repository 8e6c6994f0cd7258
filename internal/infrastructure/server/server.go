package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/eslsoft/benkyo/internal/infrastructure/config"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

// Handlers are the connect services the server mounts.
type Handlers struct {
	Topic  benkyov1.TopicServiceHandler
	Quiz   benkyov1.QuizServiceHandler
	Number benkyov1.NumberServiceHandler
}

// Server represents the application server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, handlers Handlers) *Server {
	interceptors := connect.WithInterceptors(Logger(NewRequestLogger(cfg)))

	mux := http.NewServeMux()
	mux.Handle(benkyov1.NewTopicServiceHandler(handlers.Topic, interceptors))
	mux.Handle(benkyov1.NewQuizServiceHandler(handlers.Quiz, interceptors))
	mux.Handle(benkyov1.NewNumberServiceHandler(handlers.Number, interceptors))
	mux.HandleFunc("GET /healthz", healthz)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h2c.NewHandler(withCORS(cfg.Server.CORSOrigins, mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

func withCORS(origins []string, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: connectcors.AllowedHeaders(),
		ExposedHeaders: connectcors.ExposedHeaders(),
		MaxAge:         7200,
	}).Handler(h)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Handler exposes the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
