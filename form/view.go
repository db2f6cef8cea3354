package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quizforge/mcq-server/models"
)

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Add a question"),
		"",
		m.viewQuestion(),
		m.viewOptions(),
		m.viewCorrect(),
		"",
		m.viewSubmit(),
		m.viewBanner(),
		hintStyle.Render("tab: next field • ←/→: pick correct answer • enter on [Submit]: send • esc: quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewQuestion() string {
	label := labelStyle.Render("Question")
	if m.focus == focusQuestion {
		label = focusedStyle.Render("Question")
	}
	lines := []string{label, m.question.View()}
	if msg, ok := m.fieldErrs["questionText"]; ok {
		lines = append(lines, errorStyle.Render("✗ "+msg))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewOptions() string {
	var lines []string
	if msg, ok := m.fieldErrs["options"]; ok {
		lines = append(lines, errorStyle.Render("✗ "+msg))
	}
	for i := range m.options {
		label := labelStyle.Render(fmt.Sprintf("Option %d", i+1))
		if m.focus == focusOption0+i {
			label = focusedStyle.Render(fmt.Sprintf("Option %d", i+1))
		}
		lines = append(lines, label+" "+m.options[i].View())
		if msg, ok := m.fieldErrs[fmt.Sprintf("options[%d]", i)]; ok {
			lines = append(lines, errorStyle.Render("  ✗ "+msg))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewCorrect() string {
	label := labelStyle.Render("Correct answer:")
	if m.focus == focusCorrect {
		label = focusedStyle.Render("Correct answer:")
	}
	slots := make([]string, models.OptionCount)
	for i := range slots {
		marker := fmt.Sprintf("( ) %d", i+1)
		if i == m.correct {
			marker = fmt.Sprintf("(•) %d", i+1)
		}
		if i == m.correct && m.focus == focusCorrect {
			marker = selectedStyle.Render(marker)
		}
		slots[i] = marker
	}
	line := label + " " + strings.Join(slots, "  ")
	if msg, ok := m.fieldErrs["correctAnswerIndex"]; ok {
		line += "\n" + errorStyle.Render("✗ "+msg)
	}
	return line
}

func (m Model) viewSubmit() string {
	switch {
	case m.state == stateSubmitting:
		return disabledStyle.Render("[ Submitting… ]")
	case m.focus == focusSubmit:
		return selectedStyle.Render("[ Submit ]")
	default:
		return labelStyle.Render("[ Submit ]")
	}
}

func (m Model) viewBanner() string {
	switch {
	case m.banner == "":
		return ""
	case m.state == stateSuccess:
		return successStyle.Render("✓ " + m.banner)
	case m.state == stateFailed:
		return errorStyle.Render("✗ " + m.banner)
	default:
		return hintStyle.Render(m.banner)
	}
}
