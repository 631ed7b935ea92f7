package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasks/internal/task"
)

// renderCard draws one task. Description and due date lines are omitted when
// empty; title and priority always show.
func renderCard(t task.Task, selected bool, width int, keys listKeyMap) string {
	lines := []string{cardTitleStyle.Render(t.Title)}
	if desc := strings.TrimSpace(t.Description); desc != "" {
		lines = append(lines, desc)
	}
	if t.Due.Valid {
		lines = append(lines, "Due: "+task.FormatDue(t.Due))
	}
	lines = append(lines, "Priority: "+t.Priority.String())

	style := cardStyle
	if selected {
		style = selectedCardStyle
		actions := outlineStyle.Render("["+keys.Edit.Help().Key+"] Edit") + " " +
			errorStyle.Render("["+keys.Delete.Help().Key+"] Delete")
		lines = append(lines, actions)
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
