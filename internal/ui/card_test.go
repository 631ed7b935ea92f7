package ui

import (
	"database/sql"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tasks/internal/config"
	"tasks/internal/task"
)

func TestRenderCardOptionalLines(t *testing.T) {
	keys := newListKeyMap(config.Default().Keys)

	bare := renderCard(task.Task{Title: "Write spec"}, false, 0, keys)
	assert.Contains(t, bare, "Write spec")
	assert.Contains(t, bare, "Priority: Low")
	assert.NotContains(t, bare, "Due:")
	assert.Equal(t, 4, lipgloss.Height(bare))

	full := renderCard(task.Task{
		Title:       "Review PR",
		Description: "check the tests",
		Due:         sql.NullTime{Time: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		Priority:    task.PriorityHigh,
	}, false, 0, keys)
	assert.Contains(t, full, "check the tests")
	assert.Contains(t, full, "Due: June 1st, 2024")
	assert.Contains(t, full, "Priority: High")
	assert.Equal(t, 6, lipgloss.Height(full))
}

func TestRenderCardSelectedShowsActions(t *testing.T) {
	keys := newListKeyMap(config.Default().Keys)
	tk := task.Task{Title: "Write spec", Description: "   "}

	plain := renderCard(tk, false, 0, keys)
	assert.NotContains(t, plain, "Delete")

	selected := renderCard(tk, true, 40, keys)
	assert.Contains(t, selected, "[e] Edit")
	assert.Contains(t, selected, "[d] Delete")
	assert.Equal(t, 40, lipgloss.Width(selected))
	assert.Equal(t, 5, lipgloss.Height(selected))
}
