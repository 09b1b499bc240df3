package handler

import (
	"errors"

	"github.com/abhishek622/interviewPrep/internal/interview"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Logger   *zap.Logger
	Service  *interview.Service
	Env      string
	Provider string
	Model    string
}

func (h *Handler) devMode() bool {
	return h.Env == "development"
}

// failureMessages is what a client sees for a non-input failure of each
// operation.
var failureMessages = map[string]string{
	"generate_questions": "Failed to generate questions. Please try again.",
	"check_answer":       "Failed to check answer",
	"assess_readiness":   "Failed to assess interview readiness",
}

// writeError maps an operation error to its HTTP response.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var ie *interview.Error
	if !errors.As(err, &ie) {
		h.Logger.Error(op+": unexpected error", zap.Error(err))
		response.InternalError(c, "", failureMessages[op], h.details(err))
		return
	}

	switch ie.Kind {
	case interview.KindMissingInput:
		h.Logger.Warn(op+": missing fields", zap.Strings("fields", ie.Fields))
		response.BadRequest(c, string(ie.Kind), "Missing required fields", ie.Fields)
	case interview.KindInvalidAssessmentInput:
		h.Logger.Warn(op+": invalid assessment data", zap.String("reason", ie.Reason), zap.Strings("fields", ie.Fields))
		response.BadRequest(c, string(ie.Kind), "Invalid assessment data", ie.Fields)
	case interview.KindConfiguration:
		h.Logger.Error(op+": model provider not configured")
		response.InternalError(c, string(ie.Kind), "Server configuration error: Missing API key", h.details(err))
	default:
		h.Logger.Error(op+": failed", zap.String("kind", string(ie.Kind)), zap.Error(err))
		response.InternalError(c, string(ie.Kind), failureMessages[op], h.details(err))
	}
}

func (h *Handler) details(err error) string {
	if !h.devMode() {
		return ""
	}
	return err.Error()
}

func (h *Handler) bindJSON(c *gin.Context, op string, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.Logger.Warn(op+": bad request body", zap.Error(err))
		response.BadRequest(c, "", "invalid request body", nil)
		return false
	}
	return true
}
