package handler

import (
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateQuestions asks the model for interview questions about a job description
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req model.GenerateQuestionsReq
	if !h.bindJSON(c, "generate_questions", &req) {
		return
	}

	questions, err := h.Service.GenerateQuestions(c.Request.Context(), req.JobData, req.Type)
	if err != nil {
		h.writeError(c, "generate_questions", err)
		return
	}

	h.Logger.Info("generate_questions: questions generated",
		zap.String("type", req.Type),
		zap.Int("count", len(questions)),
	)

	response.OK(c, model.GenerateQuestionsRes{Questions: questions})
}

// CheckAnswer scores a candidate answer against the model answer
func (h *Handler) CheckAnswer(c *gin.Context) {
	var req model.CheckAnswerReq
	if !h.bindJSON(c, "check_answer", &req) {
		return
	}

	eval, err := h.Service.CheckAnswer(c.Request.Context(), req.Question, req.ModelAnswer, req.UserAnswer)
	if err != nil {
		h.writeError(c, "check_answer", err)
		return
	}

	h.Logger.Info("check_answer: answer evaluated", zap.Float64("overall_score", eval.OverallScore))

	response.OK(c, model.CheckAnswerRes{Evaluation: eval})
}

// AssessReadiness aggregates every answered question into a readiness report
func (h *Handler) AssessReadiness(c *gin.Context) {
	var req model.AssessReadinessReq
	if !h.bindJSON(c, "assess_readiness", &req) {
		return
	}

	assessment, err := h.Service.AssessReadiness(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "assess_readiness", err)
		return
	}

	h.Logger.Info("assess_readiness: assessment ready",
		zap.Int("questions", len(req.Questions)),
		zap.String("level", string(assessment.ReadinessLevel)),
	)

	response.OK(c, model.AssessReadinessRes{Assessment: assessment})
}
