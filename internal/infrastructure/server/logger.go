package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/benkyo/internal/infrastructure/config"
)

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	switch cfg.Log.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}

// NewRequestLogger builds the slog logger used for per-request access logs,
// honouring the same level and format settings as NewLogger.
func NewRequestLogger(cfg *config.Config) *slog.Logger {
	return newRequestLogger(os.Stderr, cfg.Log)
}

func newRequestLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal", "panic":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger logs one line per unary call with its procedure, status and timing.
func Logger(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := requestAttributes(req, statusText(err), time.Since(start))
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, logLevel(err), "request completed", attrs...)

			return resp, err
		}
	}
}

func logLevel(err error) slog.Level {
	if err == nil {
		return slog.LevelInfo
	}
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func requestAttributes(req connect.AnyRequest, status string, duration time.Duration) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("procedure", req.Spec().Procedure),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}

	appendStringAttr(&attrs, "http_method", req.HTTPMethod())
	peer := req.Peer()
	appendStringAttr(&attrs, "peer_addr", peer.Addr)
	appendStringAttr(&attrs, "protocol", peer.Protocol)

	header := req.Header()
	appendStringAttr(&attrs, "user_agent", header.Get("User-Agent"))
	appendStringAttr(&attrs, "request_id", header.Get("X-Request-Id"))
	appendStringAttr(&attrs, "client_ip", firstForwardedFor(header))
	return attrs
}

// statusText reports "ok" for successful calls, which have no connect code.
func statusText(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}

func appendStringAttr(attrs *[]slog.Attr, key, value string) {
	if value == "" {
		return
	}
	*attrs = append(*attrs, slog.String(key, value))
}

func firstForwardedFor(header http.Header) string {
	for _, part := range strings.Split(header.Get("X-Forwarded-For"), ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}
