// Package tui is the terminal front-end for the interview prep API.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/abhishek622/interviewPrep/internal/client"
	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg/model"
)

// API is the subset of the backend client the UI drives.
type API interface {
	GenerateQuestions(ctx context.Context, jobData, interviewType string) ([]model.Question, error)
	CheckAnswer(ctx context.Context, req model.CheckAnswerReq) (model.Evaluation, error)
	AssessReadiness(ctx context.Context, req model.AssessReadinessReq) (model.ReadinessAssessment, error)
}

var _ API = (*client.Client)(nil)

type screen int

const (
	screenSetup screen = iota
	screenQuestions
	screenReport
)

type field int

const (
	fieldURL field = iota
	fieldDescription
	fieldType
	fieldCount
)

// Options configures the terminal model.
type Options struct {
	NoColor bool
	Logger  *zap.Logger
}

// Model is the Bubble Tea model for the whole client.
type Model struct {
	ctx     context.Context
	api     API
	logger  *zap.Logger
	noColor bool

	screen screen
	width  int

	job         session.JobInput
	url         textinput.Model
	description textinput.Model
	typeIndex   int
	focus       field
	generating  bool

	session *session.Session
	cursor  int
	answer  textarea.Model

	banner  session.Banner
	now     time.Time
	spinner spinner.Model
}

// NewModel builds the client model on the setup screen.
func NewModel(ctx context.Context, api API, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	url := textinput.New()
	url.Placeholder = "https://company.example/jobs/backend-engineer"
	url.Prompt = "Job URL:         "
	url.CharLimit = 2048
	url.Focus()

	desc := textinput.New()
	desc.Placeholder = "or paste the job description"
	desc.Prompt = "Job description: "
	desc.CharLimit = 20000

	answer := textarea.New()
	answer.Placeholder = "Type your answer, ctrl+s to submit"
	answer.SetHeight(5)
	answer.ShowLineNumbers = false

	return Model{
		ctx:         ctx,
		api:         api,
		logger:      logger,
		noColor:     opts.NoColor,
		url:         url,
		description: desc,
		answer:      answer,
		now:         time.Now(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init starts the banner clock and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update routes key presses by screen and applies API results to the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.answer.SetWidth(max(typed.Width-4, 20))
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		return m, tick()
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case questionsMsg:
		return m.onQuestions(typed)
	case checkedMsg:
		return m.onChecked(typed)
	case assessedMsg:
		return m.onAssessed(typed)
	case tea.KeyMsg:
		switch typed.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+x":
			m.banner.Dismiss()
			return m, nil
		}
		switch m.screen {
		case screenSetup:
			return m.updateSetup(typed)
		case screenQuestions:
			return m.updateQuestions(typed)
		case screenReport:
			return m.updateReport(typed)
		}
	}
	return m, nil
}

func (m Model) busy() bool {
	if m.generating {
		return true
	}
	if m.session == nil {
		return false
	}
	if m.session.Assessment() == session.Assessing {
		return true
	}
	for i := 0; i < m.session.Len(); i++ {
		if e, _ := m.session.Entry(i); e.State == session.Checking {
			return true
		}
	}
	return false
}

func (m Model) interviewType() string {
	return string(model.InterviewTypes[m.typeIndex])
}

func (m Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		step := field(1)
		if msg.String() == "shift+tab" {
			step = fieldCount - 1
		}
		return m.setFocus((m.focus + step) % fieldCount), nil
	case "enter":
		return m.generate()
	}

	if m.generating {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldURL:
		m.url, cmd = m.url.Update(msg)
		m.job.SetURL(m.url.Value())
		m.description.SetValue(m.job.Description())
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
		m.job.SetDescription(m.description.Value())
		m.url.SetValue(m.job.URL())
	case fieldType:
		switch msg.String() {
		case "left", "h":
			m.typeIndex = (m.typeIndex + len(model.InterviewTypes) - 1) % len(model.InterviewTypes)
		case "right", "l", " ":
			m.typeIndex = (m.typeIndex + 1) % len(model.InterviewTypes)
		}
	}
	return m, cmd
}

func (m Model) setFocus(f field) Model {
	m.focus = f
	m.url.Blur()
	m.description.Blur()
	switch f {
	case fieldURL:
		m.url.Focus()
	case fieldDescription:
		m.description.Focus()
	}
	return m
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	jobData := m.job.JobData()
	if jobData == "" {
		m.banner = session.NewBanner("Enter a job URL or description first", m.now)
		return m, nil
	}
	m.generating = true
	m.logger.Info("generate questions", zap.String("type", m.interviewType()))
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.api, jobData, m.interviewType()))
}

func (m Model) onQuestions(msg questionsMsg) (tea.Model, tea.Cmd) {
	m.generating = false
	if msg.err != nil {
		m.logger.Warn("generate questions failed", zap.Error(msg.err))
		m.banner = session.NewBanner(errorText("Failed to generate questions", msg.err), m.now)
		return m, nil
	}
	m.session = session.New(msg.questions)
	m.cursor = 0
	m.screen = screenQuestions
	m.answer.Reset()
	cmd := m.answer.Focus()
	return m, cmd
}

func (m Model) updateQuestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.moveCursor(1), nil
	case "shift+tab":
		return m.moveCursor(-1), nil
	case "ctrl+s":
		return m.submitAnswer()
	case "ctrl+r":
		return m.assess()
	case "ctrl+n":
		return m.restart(), textinput.Blink
	}

	e, err := m.session.Entry(m.cursor)
	if err != nil || e.State != session.Unanswered {
		return m, nil
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m Model) moveCursor(step int) Model {
	n := m.session.Len()
	if n == 0 {
		return m
	}
	_ = m.session.SaveDraft(m.cursor, m.answer.Value())
	m.cursor = (m.cursor + step + n) % n
	m.answer.Reset()
	if e, err := m.session.Entry(m.cursor); err == nil {
		m.answer.SetValue(e.Answer)
	}
	return m
}

func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	req, err := m.session.BeginCheck(m.cursor, m.answer.Value())
	if err != nil {
		if errors.Is(err, session.ErrEmptyAnswer) {
			m.banner = session.NewBanner("Please enter an answer first", m.now)
		}
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, checkCmd(m.ctx, m.api, m.session, m.cursor, req))
}

func (m Model) onChecked(msg checkedMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || msg.session != m.session {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("check answer failed", zap.Int("question", msg.index), zap.Error(msg.err))
		_ = m.session.FailCheck(msg.index)
		m.banner = session.NewBanner(errorText("Failed to check answer", msg.err), m.now)
		return m, nil
	}
	if err := m.session.CompleteCheck(msg.index, msg.evaluation); err != nil {
		m.logger.Warn("check answer result dropped", zap.Int("question", msg.index), zap.Error(err))
	}
	return m, nil
}

func (m Model) assess() (tea.Model, tea.Cmd) {
	if m.session.Assessment() == session.Assessed {
		m.screen = screenReport
		return m, nil
	}
	req, err := m.session.BeginAssessment()
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, assessCmd(m.ctx, m.api, m.session, req))
}

func (m Model) onAssessed(msg assessedMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || msg.session != m.session {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("assess readiness failed", zap.Error(msg.err))
		_ = m.session.FailAssessment()
		m.banner = session.NewBanner(errorText("Failed to assess interview readiness", msg.err), m.now)
		return m, nil
	}
	_ = m.session.CompleteAssessment(msg.assessment)
	m.screen = screenReport
	return m, nil
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		return m.restart(), textinput.Blink
	case "tab", "shift+tab":
		m.screen = screenQuestions
	}
	return m, nil
}

// restart returns to the setup screen keeping the job input.
func (m Model) restart() Model {
	m.screen = screenSetup
	m.session = nil
	m.cursor = 0
	m.answer.Reset()
	m.answer.Blur()
	return m.setFocus(fieldURL)
}

func errorText(prefix string, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return prefix + ": " + err.Error()
}
