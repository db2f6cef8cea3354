package form

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quizforge/mcq-server/models"
)

// state is the submission lifecycle of this form instance.
type state int

const (
	stateIdle state = iota
	stateSubmitting
	stateSuccess
	stateFailed
)

// Focus positions in tab order. The four options occupy the positions
// right after the question.
const (
	focusQuestion = 0
	focusOption0  = 1
	focusCorrect  = focusOption0 + models.OptionCount
	focusSubmit   = focusCorrect + 1
	focusCount    = focusSubmit + 1
)

// Model is the authoring form: one question body, four options, a correct
// answer selector and a submit control. One submission may be in flight at
// a time; the submit control stays disabled until the exchange completes.
type Model struct {
	submitter Submitter

	question textarea.Model
	options  [models.OptionCount]textinput.Model
	correct  int
	focus    int

	state     state
	fieldErrs map[string]string
	banner    string
}

// submitResultMsg carries the outcome of one exchange back into Update.
type submitResultMsg struct {
	outcome SubmitOutcome
	err     error
}

func NewModel(submitter Submitter) Model {
	q := textarea.New()
	q.Placeholder = "Question text"
	q.ShowLineNumbers = false
	q.SetHeight(3)
	q.Focus()

	var opts [models.OptionCount]textinput.Model
	for i := range opts {
		ti := textinput.New()
		ti.Placeholder = fmt.Sprintf("Option %d", i+1)
		ti.Prompt = "> "
		opts[i] = ti
	}

	return Model{
		submitter: submitter,
		question:  q,
		options:   opts,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case submitResultMsg:
		return m.handleResult(typed), nil
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount), nil
	case "shift+tab":
		return m.setFocus((m.focus - 1 + focusCount) % focusCount), nil
	case "left":
		if m.focus == focusCorrect && m.correct > 0 {
			m.correct--
			return m, nil
		}
	case "right":
		if m.focus == focusCorrect && m.correct < models.OptionCount-1 {
			m.correct++
			return m, nil
		}
	case "enter":
		if m.focus == focusSubmit {
			return m.submit()
		}
	}
	return m.updateFocused(key)
}

// updateFocused routes input to whichever widget has focus.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus == focusQuestion:
		m.question, cmd = m.question.Update(msg)
	case m.focus >= focusOption0 && m.focus < focusOption0+models.OptionCount:
		i := m.focus - focusOption0
		m.options[i], cmd = m.options[i].Update(msg)
	}
	return m, cmd
}

func (m Model) setFocus(focus int) Model {
	m.focus = focus
	if focus == focusQuestion {
		m.question.Focus()
	} else {
		m.question.Blur()
	}
	for i := range m.options {
		if focus == focusOption0+i {
			m.options[i].Focus()
		} else {
			m.options[i].Blur()
		}
	}
	return m
}

// request assembles the candidate record. No id is attached; the endpoint
// assigns one on success.
func (m Model) request() models.SubmitQuestionRequest {
	opts := make([]string, models.OptionCount)
	for i := range m.options {
		opts[i] = m.options[i].Value()
	}
	idx := m.correct
	return models.SubmitQuestionRequest{
		QuestionText:       m.question.Value(),
		Options:            opts,
		CorrectAnswerIndex: &idx,
	}
}

// submit validates locally first; only a clean record is transmitted.
// A second activation while an exchange is in flight is ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state == stateSubmitting {
		return m, nil
	}
	req := m.request()
	if violations := models.Validate(req); len(violations) > 0 {
		m.state = stateIdle
		m.fieldErrs = indexViolations(violations)
		m.banner = ""
		return m, nil
	}
	m.state = stateSubmitting
	m.fieldErrs = nil
	m.banner = ""
	return m, submitCmd(m.submitter, req)
}

func submitCmd(submitter Submitter, req models.SubmitQuestionRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		outcome, err := submitter.Submit(ctx, req)
		return submitResultMsg{outcome: outcome, err: err}
	}
}

func (m Model) handleResult(result submitResultMsg) Model {
	if result.err != nil {
		// Transport failure: keep the fields so the user can retry.
		m.state = stateFailed
		m.banner = "Could not reach the server. Your input was kept; try again."
		return m
	}
	if result.outcome.Accepted {
		return m.reset(result.outcome.Message)
	}
	m.state = stateFailed
	m.fieldErrs = indexViolations(result.outcome.Violations)
	if len(result.outcome.Violations) == 0 {
		m.banner = result.outcome.Message
	} else {
		m.banner = "The server rejected the submission."
	}
	return m
}

// reset clears every field to its default after a confirmed save.
func (m Model) reset(message string) Model {
	m.question.Reset()
	for i := range m.options {
		m.options[i].Reset()
	}
	m.correct = 0
	m.state = stateSuccess
	m.fieldErrs = nil
	m.banner = message
	return m.setFocus(focusQuestion)
}

// indexViolations keys violations by field path for inline rendering.
// Later violations for the same field win; the full set is still shown
// because paths are unique per field.
func indexViolations(violations []models.Violation) map[string]string {
	if len(violations) == 0 {
		return nil
	}
	errs := make(map[string]string, len(violations))
	for _, v := range violations {
		errs[v.Field] = v.Message
	}
	return errs
}
