package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhishek622/interviewPrep/internal/interview"
	"github.com/abhishek622/interviewPrep/internal/llm"
	"github.com/abhishek622/interviewPrep/internal/llm/llmtest"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, completer llm.Completer, env string) *httptest.Server {
	t.Helper()
	h := &Handler{
		Logger:   zap.NewNop(),
		Service:  interview.NewService(completer, zap.NewNop()),
		Env:      env,
		Provider: "openai",
		Model:    "gpt-test",
	}
	r := gin.New()
	RegisterRoutes(r, h, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func decodeError(t *testing.T, body []byte) response.ErrorBody {
	t.Helper()
	var parsed response.ErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("decode error body %s: %v", body, err)
	}
	if parsed.Error == "" {
		t.Fatalf("expected error field in %s", body)
	}
	return parsed
}

func TestGenerateQuestionsEndToEnd(t *testing.T) {
	stub := llmtest.New(`{"questions":[{"question":"Explain event loop","answer":"..."}]}`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"Backend engineer, 3 yrs Node","type":"technical"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if got := strings.TrimSpace(string(body)); got != `{"questions":[{"question":"Explain event loop","answer":"..."}]}` {
		t.Fatalf("unexpected body %s", got)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestGenerateQuestionsBareArray(t *testing.T) {
	stub := llmtest.New(`[{"question":"a","hint":"h","answer":"b"},{"question":"c","answer":"d"}]`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"SRE","type":"behavioral"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var parsed model.GenerateQuestionsRes
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Questions) != 2 || parsed.Questions[0].Hint != "h" {
		t.Fatalf("unexpected questions %+v", parsed.Questions)
	}
}

func TestGenerateQuestionsMissingFields(t *testing.T) {
	stub := llmtest.New(`[]`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"SRE"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if parsed.Code != string(interview.KindMissingInput) || len(parsed.Missing) != 1 || parsed.Missing[0] != "type" {
		t.Fatalf("unexpected error body %+v", parsed)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestGenerateQuestionsWithoutKeyIsConfigurationError(t *testing.T) {
	srv := newTestServer(t, nil, "production")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"SRE","type":"technical"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if parsed.Code != string(interview.KindConfiguration) {
		t.Fatalf("unexpected code %q", parsed.Code)
	}
}

func TestGenerateQuestionsMalformedOutput(t *testing.T) {
	srv := newTestServer(t, llmtest.New(`{"answer":"nope"}`), "production")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"SRE","type":"technical"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if parsed.Code != string(interview.KindMalformedOutput) {
		t.Fatalf("unexpected code %q", parsed.Code)
	}
	if parsed.Details != "" {
		t.Fatalf("expected no details outside development, got %q", parsed.Details)
	}
}

func TestUpstreamFailureIncludesDetailsInDevelopment(t *testing.T) {
	srv := newTestServer(t, llmtest.Failing(errors.New("401 invalid key")), "development")

	resp, body := postJSON(t, srv.URL+"/api/generate-questions", `{"jobData":"SRE","type":"technical"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if parsed.Code != string(interview.KindUpstream) {
		t.Fatalf("unexpected code %q", parsed.Code)
	}
	if !strings.Contains(parsed.Details, "401 invalid key") {
		t.Fatalf("expected details with cause, got %q", parsed.Details)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	stub := llmtest.New(`[]`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/check-answer", `{"question":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	decodeError(t, body)
	if stub.Calls() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestCheckAnswerMissingUserAnswer(t *testing.T) {
	stub := llmtest.New(`{}`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/check-answer", `{"question":"What is Go?","modelAnswer":"A language"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if len(parsed.Missing) != 1 || parsed.Missing[0] != "userAnswer" {
		t.Fatalf("unexpected missing fields %v", parsed.Missing)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.Calls())
	}
}

func TestCheckAnswerReturnsEvaluation(t *testing.T) {
	stub := llmtest.New(`{"scores":{"relevance":20,"completeness":15,"clarity":21,"specificity":10},"feedback":{"strengths":["concise"],"improvements":["examples"]},"overallScore":66,"suggestions":"Add a concrete example."}`)
	srv := newTestServer(t, stub, "production")

	resp, body := postJSON(t, srv.URL+"/api/check-answer", `{"question":"What is Go?","modelAnswer":"A language","userAnswer":"A compiled language"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var parsed model.CheckAnswerRes
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Evaluation.OverallScore != 66 || parsed.Evaluation.Feedback.Strengths[0] != "concise" {
		t.Fatalf("unexpected evaluation %+v", parsed.Evaluation)
	}
}

func TestAssessReadinessLengthMismatch(t *testing.T) {
	stub := llmtest.New(`{}`)
	srv := newTestServer(t, stub, "production")

	payload := `{"questions":[{"question":"q1","answer":"a1"},{"question":"q2","answer":"a2"}],"answers":["x"],"evaluations":[{},{}]}`
	resp, body := postJSON(t, srv.URL+"/api/assess-readiness", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	parsed := decodeError(t, body)
	if parsed.Code != string(interview.KindInvalidAssessmentInput) {
		t.Fatalf("unexpected code %q", parsed.Code)
	}
	if stub.Calls() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestAssessReadinessReturnsAssessment(t *testing.T) {
	stub := llmtest.New(`{"overallScore":81,"categoryScores":{"relevance":21,"completeness":19,"clarity":22,"specificity":19},"strengths":["clarity"],"improvementAreas":["metrics"],"recommendations":["practice"],"readinessLevel":"High","confidenceScore":77,"nextSteps":["apply"]}`)
	srv := newTestServer(t, stub, "production")

	payload := `{"questions":[{"question":"q1","answer":"a1"}],"answers":["x"],"evaluations":[{"scores":{"relevance":20,"completeness":20,"clarity":20,"specificity":20},"feedback":{"strengths":[],"improvements":[]},"overallScore":80,"suggestions":""}]}`
	resp, body := postJSON(t, srv.URL+"/api/assess-readiness", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var parsed model.AssessReadinessRes
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.Assessment.ReadinessLevel != model.ReadinessHigh || parsed.Assessment.OverallScore != 81 {
		t.Fatalf("unexpected assessment %+v", parsed.Assessment)
	}
}

func TestHealthAndTestEndpoints(t *testing.T) {
	srv := newTestServer(t, llmtest.New(), "staging")

	for _, path := range []string{"/", "/api"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || body["status"] != "healthy" || body["environment"] != "staging" {
			t.Fatalf("%s: unexpected response %d %v", path, resp.StatusCode, body)
		}
	}

	resp, err := http.Get(srv.URL + "/api/test")
	if err != nil {
		t.Fatalf("get /api/test: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["modelKeyPresent"] != true || body["message"] != "Backend is running!" {
		t.Fatalf("unexpected test body %v", body)
	}
}
