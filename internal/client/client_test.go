package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestGenerateQuestions(t *testing.T) {
	var got model.GenerateQuestionsReq
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate-questions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":[{"question":"Explain event loop","answer":"..."}]}`))
	})

	qs, err := c.GenerateQuestions(context.Background(), "Backend engineer", "technical")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.JobData != "Backend engineer" || got.Type != "technical" {
		t.Fatalf("unexpected request body %+v", got)
	}
	if len(qs) != 1 || qs[0].Question != "Explain event loop" {
		t.Fatalf("unexpected questions %+v", qs)
	}
}

func TestCheckAnswerReturnsAPIError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Missing required fields","code":"MISSING_INPUT","missing":["userAnswer"]}`))
	})

	_, err := c.CheckAnswer(context.Background(), model.CheckAnswerReq{Question: "q", ModelAnswer: "a"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != "MISSING_INPUT" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
	if apiErr.Message != "Missing required fields" || len(apiErr.Missing) != 1 {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestAssessReadiness(t *testing.T) {
	var got model.AssessReadinessReq
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/assess-readiness" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"assessment":{"overallScore":72,"readinessLevel":"Medium","confidenceScore":60}}`))
	})

	a, err := c.AssessReadiness(context.Background(), model.AssessReadinessReq{
		Questions:   []model.Question{{Question: "q", Answer: "a"}},
		Answers:     []string{"mine"},
		Evaluations: []model.Evaluation{{OverallScore: 70}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ReadinessLevel != model.ReadinessMedium || a.OverallScore != 72 {
		t.Fatalf("unexpected assessment %+v", a)
	}
	if len(got.Answers) != 1 || got.Answers[0] != "mine" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.GenerateQuestions(context.Background(), "x", "technical")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Message != "bad gateway" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second)
	_, err := c.GenerateQuestions(context.Background(), "x", "technical")
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError")
	}
}
