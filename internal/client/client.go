// Package client is a typed client for the interview prep HTTP API.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "http://localhost:10000"

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
	Missing []string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

type Client struct {
	http *resty.Client
}

// New builds a client for baseURL. The timeout covers the whole round trip,
// including the backend's call to the model.
func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	h := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	return &Client{http: h}
}

func (c *Client) GenerateQuestions(ctx context.Context, jobData, interviewType string) ([]model.Question, error) {
	var res model.GenerateQuestionsRes
	err := c.post(ctx, "/api/generate-questions", model.GenerateQuestionsReq{JobData: jobData, Type: interviewType}, &res)
	if err != nil {
		return nil, err
	}
	return res.Questions, nil
}

func (c *Client) CheckAnswer(ctx context.Context, req model.CheckAnswerReq) (model.Evaluation, error) {
	var res model.CheckAnswerRes
	if err := c.post(ctx, "/api/check-answer", req, &res); err != nil {
		return model.Evaluation{}, err
	}
	return res.Evaluation, nil
}

func (c *Client) AssessReadiness(ctx context.Context, req model.AssessReadinessReq) (model.ReadinessAssessment, error) {
	var res model.AssessReadinessRes
	if err := c.post(ctx, "/api/assess-readiness", req, &res); err != nil {
		return model.ReadinessAssessment{}, err
	}
	return res.Assessment, nil
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	var failure response.ErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&failure).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		if msg == "" {
			msg = resp.Status()
		}
		return &APIError{
			Status:  resp.StatusCode(),
			Code:    failure.Code,
			Message: msg,
			Missing: failure.Missing,
		}
	}
	return nil
}
