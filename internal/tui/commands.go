package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg/model"
)

type tickMsg time.Time

type questionsMsg struct {
	questions []model.Question
	err       error
}

// checkedMsg carries the session it was issued for so that results arriving
// after a new batch was generated are dropped.
type checkedMsg struct {
	session    *session.Session
	index      int
	evaluation model.Evaluation
	err        error
}

type assessedMsg struct {
	session    *session.Session
	assessment model.ReadinessAssessment
	err        error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func generateCmd(ctx context.Context, api API, jobData, interviewType string) tea.Cmd {
	return func() tea.Msg {
		qs, err := api.GenerateQuestions(ctx, jobData, interviewType)
		return questionsMsg{questions: qs, err: err}
	}
}

func checkCmd(ctx context.Context, api API, s *session.Session, index int, req model.CheckAnswerReq) tea.Cmd {
	return func() tea.Msg {
		ev, err := api.CheckAnswer(ctx, req)
		return checkedMsg{session: s, index: index, evaluation: ev, err: err}
	}
}

func assessCmd(ctx context.Context, api API, s *session.Session, req model.AssessReadinessReq) tea.Cmd {
	return func() tea.Msg {
		a, err := api.AssessReadiness(ctx, req)
		return assessedMsg{session: s, assessment: a, err: err}
	}
}
