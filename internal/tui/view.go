package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg/model"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorError   = lipgloss.Color("196")
	colorGood    = lipgloss.Color("42")
	colorWarn    = lipgloss.Color("214")
	colorPending = lipgloss.Color("244")
)

// View renders the active screen with the banner on top.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenSetup:
		body = m.viewSetup()
	case screenQuestions:
		body = m.viewQuestions()
	case screenReport:
		body = m.viewReport()
	}
	parts := []string{m.stylize("Interview Prep", colorTitle, true)}
	if m.banner.Visible(m.now) {
		parts = append(parts, m.stylize("! "+m.banner.Message, colorError, false))
	}
	parts = append(parts, body)
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(m.url.View() + "\n")
	b.WriteString(m.description.View() + "\n")

	types := make([]string, len(model.InterviewTypes))
	for i, t := range model.InterviewTypes {
		label := string(t)
		if i == m.typeIndex {
			label = "[" + label + "]"
		}
		types[i] = label
	}
	line := "Interview type:  " + strings.Join(types, " ")
	if m.focus == fieldType {
		line = m.stylize(line, colorTitle, false)
	}
	b.WriteString(line + "\n\n")

	if m.generating {
		b.WriteString(m.spinner.View() + " Generating questions...\n")
	} else {
		b.WriteString(m.help("tab switch field", "←/→ type", "enter generate", "esc quit"))
	}
	return b.String()
}

func (m Model) viewQuestions() string {
	var b strings.Builder
	s := m.session
	fmt.Fprintf(&b, "Answered %d of %d\n\n", s.AnsweredCount(), s.Len())

	for i := 0; i < s.Len(); i++ {
		e, _ := s.Entry(i)
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%sQ%d %s %s\n", marker, i+1, m.stateBadge(e.State), truncate(e.Question.Question, 90))
	}
	b.WriteString("\n")

	e, err := s.Entry(m.cursor)
	if err == nil {
		b.WriteString(m.viewEntry(e))
	}

	keys := []string{"tab next", "shift+tab prev", "ctrl+s submit"}
	if s.ReadyForAssessment() {
		switch s.Assessment() {
		case session.Assessing:
			b.WriteString(m.spinner.View() + " Assessing readiness...\n")
		case session.Assessed:
			keys = append(keys, "ctrl+r view report")
		default:
			keys = append(keys, "ctrl+r assess readiness")
		}
	}
	keys = append(keys, "ctrl+n new", "esc quit")
	b.WriteString(m.help(keys...))
	return b.String()
}

func (m Model) viewEntry(e session.Entry) string {
	var b strings.Builder
	b.WriteString(m.stylize(e.Question.Question, colorTitle, true) + "\n")
	if e.Question.Hint != "" {
		b.WriteString(m.stylize("Hint: "+e.Question.Hint, colorMuted, false) + "\n")
	}
	b.WriteString("\n")

	switch e.State {
	case session.Unanswered:
		b.WriteString(m.answer.View() + "\n")
	case session.Checking:
		b.WriteString(m.spinner.View() + " Checking...\n")
	case session.Answered:
		b.WriteString("Your answer: " + e.Answer + "\n\n")
		if e.Evaluation != nil {
			b.WriteString(m.viewEvaluation(*e.Evaluation))
		}
		b.WriteString("\n" + m.stylize("Model answer:", colorMuted, true) + "\n" + e.Question.Answer + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewEvaluation(ev model.Evaluation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %s\n", m.score(ev.OverallScore, 100))
	fmt.Fprintf(&b, "  Relevance %.0f/25  Completeness %.0f/25  Clarity %.0f/25  Specificity %.0f/25\n",
		ev.Scores.Relevance, ev.Scores.Completeness, ev.Scores.Clarity, ev.Scores.Specificity)
	b.WriteString(m.list("Strengths", ev.Feedback.Strengths))
	b.WriteString(m.list("Improvements", ev.Feedback.Improvements))
	if ev.Suggestions != "" {
		b.WriteString("Suggestions: " + ev.Suggestions + "\n")
	}
	return b.String()
}

func (m Model) viewReport() string {
	a, ok := m.session.Report()
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Readiness: %s   Overall %s   Confidence %.0f%%\n\n",
		m.level(a.ReadinessLevel), m.score(a.OverallScore, 100), a.ConfidenceScore)
	fmt.Fprintf(&b, "Relevance %.0f/25  Completeness %.0f/25  Clarity %.0f/25  Specificity %.0f/25\n\n",
		a.CategoryScores.Relevance, a.CategoryScores.Completeness, a.CategoryScores.Clarity, a.CategoryScores.Specificity)
	b.WriteString(m.list("Strengths", a.Strengths))
	b.WriteString(m.list("Areas to improve", a.ImprovementAreas))
	b.WriteString(m.list("Recommendations", a.Recommendations))
	b.WriteString(m.list("Next steps", a.NextSteps))
	b.WriteString("\n" + m.help("tab back to questions", "ctrl+n new", "esc quit"))
	return b.String()
}

func (m Model) list(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.stylize(title+":", colorMuted, true) + "\n")
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
	return b.String()
}

func (m Model) stateBadge(s session.QuestionState) string {
	switch s {
	case session.Answered:
		return m.stylize("[done]", colorGood, false)
	case session.Checking:
		return m.stylize("[....]", colorWarn, false)
	default:
		return m.stylize("[    ]", colorPending, false)
	}
}

func (m Model) score(v, outOf float64) string {
	text := fmt.Sprintf("%.0f/%.0f", v, outOf)
	switch {
	case v >= outOf*0.8:
		return m.stylize(text, colorGood, true)
	case v >= outOf*0.6:
		return m.stylize(text, colorWarn, true)
	default:
		return m.stylize(text, colorError, true)
	}
}

func (m Model) level(l model.ReadinessLevel) string {
	switch l {
	case model.ReadinessHigh:
		return m.stylize(string(l), colorGood, true)
	case model.ReadinessMedium:
		return m.stylize(string(l), colorWarn, true)
	default:
		return m.stylize(string(l), colorError, true)
	}
}

func (m Model) help(keys ...string) string {
	if m.banner.Visible(m.now) {
		keys = append([]string{"ctrl+x dismiss"}, keys...)
	}
	return m.stylize(strings.Join(keys, " • "), colorMuted, false) + "\n"
}

func (m Model) stylize(text string, color lipgloss.Color, bold bool) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}

func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len([]rune(normalized)) <= limit {
		return normalized
	}
	return string([]rune(normalized)[:limit-3]) + "..."
}
