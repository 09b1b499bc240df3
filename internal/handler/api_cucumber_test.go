//go:build cucumber

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhishek622/interviewPrep/internal/interview"
	"github.com/abhishek622/interviewPrep/internal/llm/llmtest"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestInterviewAPIScenarios runs the interview API feature scenarios.
func TestInterviewAPIScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "interview-api",
		ScenarioInitializer: InitializeAPIScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("features", "interview_api.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeAPIScenario wires steps for the interview API scenarios.
func InitializeAPIScenario(ctx *godog.ScenarioContext) {
	state := &apiScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^the model responds with:$`, state.givenModelResponds)
	ctx.Step(`^I POST "([^"]+)" with:$`, state.whenIPost)
	ctx.Step(`^the response status is (\d+)$`, state.thenStatus)
	ctx.Step(`^the response body is:$`, state.thenBodyIs)
	ctx.Step(`^the response error code is "([^"]+)"$`, state.thenErrorCode)
	ctx.Step(`^the response has an error field$`, state.thenHasErrorField)
	ctx.Step(`^the model was called (\d+) times?$`, state.thenModelCalls)
}

type apiScenarioState struct {
	stub     *llmtest.Stub
	response *httptest.ResponseRecorder
}

func (s *apiScenarioState) reset() {
	s.stub = nil
	s.response = nil
}

func (s *apiScenarioState) givenModelResponds(doc *godog.DocString) error {
	s.stub = llmtest.New(doc.Content)
	return nil
}

func (s *apiScenarioState) whenIPost(path string, doc *godog.DocString) error {
	if s.stub == nil {
		return fmt.Errorf("model stub is not set")
	}
	gin.SetMode(gin.TestMode)
	h := &Handler{
		Logger:  zap.NewNop(),
		Service: interview.NewService(s.stub, zap.NewNop()),
		Env:     "test",
	}
	r := gin.New()
	RegisterRoutes(r, h, nil)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(doc.Content))
	req.Header.Set("Content-Type", "application/json")
	s.response = httptest.NewRecorder()
	r.ServeHTTP(s.response, req)
	return nil
}

func (s *apiScenarioState) thenStatus(status int) error {
	if s.response.Code != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.response.Code, s.response.Body.String())
	}
	return nil
}

func (s *apiScenarioState) thenBodyIs(doc *godog.DocString) error {
	got := strings.TrimSpace(s.response.Body.String())
	want := strings.TrimSpace(doc.Content)
	if got != want {
		return fmt.Errorf("expected body %s, got %s", want, got)
	}
	return nil
}

func (s *apiScenarioState) thenErrorCode(code string) error {
	var body response.ErrorBody
	if err := json.Unmarshal(s.response.Body.Bytes(), &body); err != nil {
		return fmt.Errorf("decode error body: %w", err)
	}
	if body.Code != code {
		return fmt.Errorf("expected code %s, got %s", code, body.Code)
	}
	return nil
}

func (s *apiScenarioState) thenHasErrorField() error {
	var body map[string]any
	if err := json.Unmarshal(s.response.Body.Bytes(), &body); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if msg, ok := body["error"].(string); !ok || msg == "" {
		return fmt.Errorf("expected error field in %v", body)
	}
	return nil
}

func (s *apiScenarioState) thenModelCalls(n int) error {
	if got := s.stub.Calls(); got != n {
		return fmt.Errorf("expected %d model calls, got %d", n, got)
	}
	return nil
}
