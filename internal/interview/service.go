// Package interview builds the prompts for question generation, answer
// checking and readiness assessment, calls the language model, and turns
// its output into validated model types.
package interview

import (
	"context"
	"strings"

	"github.com/abhishek622/interviewPrep/internal/llm"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"go.uber.org/zap"
)

const (
	opGenerate = "generate_questions"
	opCheck    = "check_answer"
	opAssess   = "assess_readiness"
)

// DefaultTemperature is the sampling temperature used for every call.
const DefaultTemperature = 0.7

type Service struct {
	model       llm.Completer
	temperature float32
	logger      *zap.Logger
}

type Option func(*Service)

func WithTemperature(t float32) Option {
	return func(s *Service) { s.temperature = t }
}

// NewService returns a Service. A nil model means no provider credential is
// configured; every operation then fails with KindConfiguration after input
// validation.
func NewService(m llm.Completer, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{model: m, temperature: DefaultTemperature, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether a model provider is available.
func (s *Service) Configured() bool {
	return s.model != nil
}

func (s *Service) GenerateQuestions(ctx context.Context, jobData, interviewType string) ([]model.Question, error) {
	jobData = strings.TrimSpace(jobData)
	interviewType = strings.TrimSpace(interviewType)
	if missing := missingFields(field{"jobData", jobData}, field{"type", interviewType}); len(missing) > 0 {
		return nil, &Error{Kind: KindMissingInput, Op: opGenerate, Fields: missing}
	}

	system, user := buildQuestionPrompt(jobData, interviewType)
	raw, err := s.complete(ctx, opGenerate, system, user)
	if err != nil {
		return nil, err
	}

	questions, shape, err := parseQuestions(raw)
	if err != nil {
		s.logger.Warn("generate_questions: unusable model output",
			zap.String("shape", shape.String()),
			zap.String("raw", raw),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("generate_questions: parsed",
		zap.String("shape", shape.String()),
		zap.Int("count", len(questions)),
	)
	return questions, nil
}

func (s *Service) CheckAnswer(ctx context.Context, question, modelAnswer, userAnswer string) (model.Evaluation, error) {
	question = strings.TrimSpace(question)
	modelAnswer = strings.TrimSpace(modelAnswer)
	userAnswer = strings.TrimSpace(userAnswer)
	missing := missingFields(
		field{"question", question},
		field{"modelAnswer", modelAnswer},
		field{"userAnswer", userAnswer},
	)
	if len(missing) > 0 {
		return model.Evaluation{}, &Error{Kind: KindMissingInput, Op: opCheck, Fields: missing}
	}

	system, user := buildEvaluationPrompt(question, modelAnswer, userAnswer)
	raw, err := s.complete(ctx, opCheck, system, user)
	if err != nil {
		return model.Evaluation{}, err
	}

	eval, err := parseEvaluation(raw)
	if err != nil {
		s.logger.Warn("check_answer: unusable model output", zap.String("raw", raw), zap.Error(err))
		return model.Evaluation{}, err
	}
	return eval, nil
}

func (s *Service) AssessReadiness(ctx context.Context, req model.AssessReadinessReq) (model.ReadinessAssessment, error) {
	if err := validateAssessment(req); err != nil {
		return model.ReadinessAssessment{}, err
	}

	system, user, err := buildReadinessPrompt(req.Questions, req.Answers, req.Evaluations)
	if err != nil {
		return model.ReadinessAssessment{}, &Error{Kind: KindInvalidAssessmentInput, Op: opAssess, Reason: "evaluations cannot be encoded", Err: err}
	}
	raw, err := s.complete(ctx, opAssess, system, user)
	if err != nil {
		return model.ReadinessAssessment{}, err
	}

	assessment, err := parseAssessment(raw)
	if err != nil {
		s.logger.Warn("assess_readiness: unusable model output", zap.String("raw", raw), zap.Error(err))
		return model.ReadinessAssessment{}, err
	}
	return assessment, nil
}

func validateAssessment(req model.AssessReadinessReq) error {
	var missing []string
	if len(req.Questions) == 0 {
		missing = append(missing, "questions")
	}
	if len(req.Answers) == 0 {
		missing = append(missing, "answers")
	}
	if len(req.Evaluations) == 0 {
		missing = append(missing, "evaluations")
	}
	if len(missing) > 0 {
		return &Error{Kind: KindInvalidAssessmentInput, Op: opAssess, Reason: "missing or empty arrays", Fields: missing}
	}
	if len(req.Questions) != len(req.Answers) || len(req.Questions) != len(req.Evaluations) {
		return &Error{Kind: KindInvalidAssessmentInput, Op: opAssess, Reason: "questions, answers and evaluations must have the same length"}
	}
	return nil
}

func (s *Service) complete(ctx context.Context, op, system, user string) (string, error) {
	if s.model == nil {
		return "", &Error{Kind: KindConfiguration, Op: op, Reason: "missing model API key"}
	}
	raw, err := s.model.Complete(ctx, llm.Request{
		System:      system,
		User:        user,
		Temperature: s.temperature,
		JSON:        true,
	})
	if err != nil {
		return "", &Error{Kind: KindUpstream, Op: op, Err: err}
	}
	return raw, nil
}

type field struct {
	name  string
	value string
}

func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
