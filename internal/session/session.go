// Package session holds the terminal client's interview state: the
// generated questions, each question's answer status and evaluation, and
// the readiness assessment flag.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

// QuestionState is the lifecycle of a single question.
type QuestionState int

const (
	Unanswered QuestionState = iota
	Checking
	Answered
)

func (s QuestionState) String() string {
	switch s {
	case Unanswered:
		return "unanswered"
	case Checking:
		return "checking"
	case Answered:
		return "answered"
	default:
		return fmt.Sprintf("QuestionState(%d)", int(s))
	}
}

// AssessmentState is the session-wide readiness flag.
type AssessmentState int

const (
	NotAssessed AssessmentState = iota
	Assessing
	Assessed
)

func (s AssessmentState) String() string {
	switch s {
	case NotAssessed:
		return "not-assessed"
	case Assessing:
		return "assessing"
	case Assessed:
		return "assessed"
	default:
		return fmt.Sprintf("AssessmentState(%d)", int(s))
	}
}

var (
	ErrNoSuchQuestion = errors.New("no such question")
	ErrInvalidState   = errors.New("invalid state transition")
	ErrEmptyAnswer    = errors.New("answer is empty")
	ErrNotReady       = errors.New("not every question is answered")
)

// Entry is one question with the candidate's progress on it.
type Entry struct {
	Question   model.Question
	State      QuestionState
	Answer     string
	Evaluation *model.Evaluation
}

// Session is the state of one batch of generated questions. It is not safe
// for concurrent use; the terminal model owns it.
type Session struct {
	entries    []Entry
	answered   map[int]struct{}
	assessment AssessmentState
	report     *model.ReadinessAssessment
}

// New starts a session for a freshly generated batch. Nothing carries over
// from any earlier batch.
func New(questions []model.Question) *Session {
	entries := make([]Entry, len(questions))
	for i, q := range questions {
		entries[i] = Entry{Question: q}
	}
	return &Session{
		entries:  entries,
		answered: make(map[int]struct{}, len(questions)),
	}
}

func (s *Session) Len() int { return len(s.entries) }

// Entry returns a copy of the i-th entry.
func (s *Session) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrNoSuchQuestion, i)
	}
	return s.entries[i], nil
}

func (s *Session) AnsweredCount() int { return len(s.answered) }

// BeginCheck moves question i from Unanswered to Checking and records the
// submitted answer. It returns the request to send to the backend.
func (s *Session) BeginCheck(i int, answer string) (model.CheckAnswerReq, error) {
	e, err := s.entry(i)
	if err != nil {
		return model.CheckAnswerReq{}, err
	}
	if e.State != Unanswered {
		return model.CheckAnswerReq{}, fmt.Errorf("%w: question %d is %s", ErrInvalidState, i, e.State)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return model.CheckAnswerReq{}, ErrEmptyAnswer
	}

	e.State = Checking
	e.Answer = answer
	return model.CheckAnswerReq{
		Question:    e.Question.Question,
		ModelAnswer: e.Question.Answer,
		UserAnswer:  answer,
	}, nil
}

// SaveDraft keeps unsubmitted text for an Unanswered question. Other states
// are left untouched.
func (s *Session) SaveDraft(i int, text string) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	if e.State == Unanswered {
		e.Answer = text
	}
	return nil
}

// CompleteCheck records the evaluation. Answered is final.
func (s *Session) CompleteCheck(i int, ev model.Evaluation) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	if e.State != Checking {
		return fmt.Errorf("%w: question %d is %s", ErrInvalidState, i, e.State)
	}
	e.State = Answered
	e.Evaluation = &ev
	s.answered[i] = struct{}{}
	return nil
}

// FailCheck reverts a Checking question to Unanswered. The typed answer is
// kept so it can be resubmitted.
func (s *Session) FailCheck(i int) error {
	e, err := s.entry(i)
	if err != nil {
		return err
	}
	if e.State != Checking {
		return fmt.Errorf("%w: question %d is %s", ErrInvalidState, i, e.State)
	}
	e.State = Unanswered
	return nil
}

// ReadyForAssessment reports whether every question has an evaluation.
func (s *Session) ReadyForAssessment() bool {
	return len(s.entries) > 0 && len(s.answered) == len(s.entries)
}

func (s *Session) Assessment() AssessmentState { return s.assessment }

// Report returns the readiness assessment once Assessed.
func (s *Session) Report() (model.ReadinessAssessment, bool) {
	if s.report == nil {
		return model.ReadinessAssessment{}, false
	}
	return *s.report, true
}

// BeginAssessment moves NotAssessed to Assessing and builds the request with
// questions, answers and evaluations in question order.
func (s *Session) BeginAssessment() (model.AssessReadinessReq, error) {
	if !s.ReadyForAssessment() {
		return model.AssessReadinessReq{}, ErrNotReady
	}
	if s.assessment != NotAssessed {
		return model.AssessReadinessReq{}, fmt.Errorf("%w: assessment is %s", ErrInvalidState, s.assessment)
	}

	req := model.AssessReadinessReq{
		Questions:   make([]model.Question, len(s.entries)),
		Answers:     make([]string, len(s.entries)),
		Evaluations: make([]model.Evaluation, len(s.entries)),
	}
	for i, e := range s.entries {
		req.Questions[i] = e.Question
		req.Answers[i] = e.Answer
		req.Evaluations[i] = *e.Evaluation
	}
	s.assessment = Assessing
	return req, nil
}

func (s *Session) CompleteAssessment(a model.ReadinessAssessment) error {
	if s.assessment != Assessing {
		return fmt.Errorf("%w: assessment is %s", ErrInvalidState, s.assessment)
	}
	s.assessment = Assessed
	s.report = &a
	return nil
}

func (s *Session) FailAssessment() error {
	if s.assessment != Assessing {
		return fmt.Errorf("%w: assessment is %s", ErrInvalidState, s.assessment)
	}
	s.assessment = NotAssessed
	return nil
}

func (s *Session) entry(i int) (*Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchQuestion, i)
	}
	return &s.entries[i], nil
}
