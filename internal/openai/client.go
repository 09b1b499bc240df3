package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/interviewPrep/internal/llm"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	GroqBaseURL    = "https://api.groq.com/openai/v1"
)

// Client talks to any OpenAI-compatible chat completions endpoint
// (OpenAI, Groq, local servers).
type Client struct {
	model string
	http  *resty.Client
}

var _ llm.Completer = (*Client)(nil)

func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	h := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Client{model: model, http: h}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float32         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openai api error: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	chatReq := ChatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, Message{Role: "system", Content: req.System})
	}
	chatReq.Messages = append(chatReq.Messages, Message{Role: "user", Content: req.User})
	if req.JSON {
		chatReq.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}
	return c.Chat(ctx, chatReq)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	var ch ChatResponse
	var failure ChatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&ch).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}

	if resp.IsError() {
		msg := strings.TrimSpace(resp.String())
		if failure.Error != nil && failure.Error.Message != "" {
			msg = failure.Error.Message
		}
		return "", &StatusError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if ch.Error != nil {
		return "", fmt.Errorf("api error: %s", ch.Error.Message)
	}
	if len(ch.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return ch.Choices[0].Message.Content, nil
}
