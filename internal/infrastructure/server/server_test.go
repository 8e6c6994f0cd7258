package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/benkyo/internal/infrastructure/config"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

type stubNumbers struct{}

func (stubNumbers) Convert(_ context.Context, req *connect.Request[benkyov1.ConvertRequest]) (*connect.Response[benkyov1.ConvertResponse], error) {
	return connect.NewResponse(&benkyov1.ConvertResponse{Number: req.Msg.Number, Reading: "yonjuunana"}), nil
}

func (stubNumbers) Readings(context.Context, *connect.Request[benkyov1.ReadingsRequest]) (*connect.Response[benkyov1.ReadingsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (stubNumbers) NewQuestion(context.Context, *connect.Request[benkyov1.NewQuestionRequest]) (*connect.Response[benkyov1.NumberQuestion], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (stubNumbers) Check(context.Context, *connect.Request[benkyov1.CheckRequest]) (*connect.Response[benkyov1.CheckResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

type stubTopics struct{}

func (stubTopics) ListTopics(context.Context, *connect.Request[benkyov1.ListTopicsRequest]) (*connect.Response[benkyov1.ListTopicsResponse], error) {
	return connect.NewResponse(&benkyov1.ListTopicsResponse{}), nil
}

type stubQuiz struct{}

func (stubQuiz) StartQuiz(context.Context, *connect.Request[benkyov1.StartQuizRequest]) (*connect.Response[benkyov1.StartQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func (stubQuiz) SubmitQuiz(context.Context, *connect.Request[benkyov1.SubmitQuizRequest]) (*connect.Response[benkyov1.SubmitQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, nil)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "localhost", HTTPPort: 0, CORSOrigins: []string{"https://app.example"}},
		Log:    config.LogConfig{Level: "error", Format: "text"},
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv := NewServer(cfg, logger, Handlers{Topic: stubTopics{}, Quiz: stubQuiz{}, Number: stubNumbers{}})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}
}

func TestConnectJSONCall(t *testing.T) {
	ts := newTestServer(t)

	payload, _ := json.Marshal(benkyov1.ConvertRequest{Number: 47})
	resp, err := http.Post(ts.URL+benkyov1.NumberServiceConvertProcedure, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST Convert: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	var out benkyov1.ConvertResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Number != 47 || out.Reading != "yonjuunana" {
		t.Fatalf("unexpected response %+v", out)
	}

	client := benkyov1.NewClient(ts.Client(), ts.URL)
	_, err = client.Readings(context.Background(), &benkyov1.ReadingsRequest{Number: 1})
	if connect.CodeOf(err) != connect.CodeUnimplemented {
		t.Fatalf("expected unimplemented, got %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+benkyov1.NumberServiceConvertProcedure, nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type,Connect-Protocol-Version")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if !strings.Contains(strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")), "connect-protocol-version") {
		t.Fatalf("connect headers not allowed: %q", resp.Header.Get("Access-Control-Allow-Headers"))
	}
}

func TestStartShutdown(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", HTTPPort: 0}, Log: config.LogConfig{Level: "info"}}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv := NewServer(cfg, logger, Handlers{Topic: stubTopics{}, Quiz: stubQuiz{}, Number: stubNumbers{}})

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Start did not return after Shutdown")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "debug", Format: "text"}})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("unexpected level %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logger.Formatter)
	}

	if _, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "loud"}}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
