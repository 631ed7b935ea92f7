package ui

import (
	"database/sql"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasks/internal/config"
	"tasks/internal/task"
)

func testFormKeys() formKeyMap {
	return newFormKeyMap(config.Default().Keys)
}

func TestNewFormDefaults(t *testing.T) {
	f := NewForm(task.Draft{}, testFormKeys())
	assert.False(t, f.Editing())
	assert.Equal(t, fieldTitle, f.focus)

	d, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, task.Draft{Priority: task.PriorityLow}, d)
}

func TestNewFormSeedsFromTask(t *testing.T) {
	due := sql.NullTime{Time: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	orig := task.Task{ID: "t-1", Title: "Review PR", Description: "look at tests", Due: due, Priority: task.PriorityHigh}

	f := NewForm(task.DraftOf(orig), testFormKeys())
	assert.True(t, f.Editing())
	d, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, "t-1", d.ID)
	assert.Equal(t, "Review PR", d.Title)
	assert.Equal(t, "look at tests", d.Description)
	assert.Equal(t, "2024-06-01", task.FormatDate(d.Due))
	assert.Equal(t, task.PriorityHigh, d.Priority)
}

func TestFormFocusWraps(t *testing.T) {
	f := NewForm(task.Draft{}, testFormKeys())
	f, _, _ = f.Update(shiftTab)
	assert.Equal(t, fieldPriority, f.focus)
	f, _, _ = f.Update(tab)
	assert.Equal(t, fieldTitle, f.focus)

	// enter advances until the last field
	f, res, _ := f.Update(enter)
	assert.Equal(t, formEditing, res.action)
	assert.Equal(t, fieldDescription, f.focus)
}

func TestFormDescriptionTakesNewlines(t *testing.T) {
	f := NewForm(task.Draft{}, testFormKeys())
	f, _, _ = f.Update(keyRunes("Ship"))
	f, _, _ = f.Update(tab)
	f, _, _ = f.Update(keyRunes("line one"))
	f, res, _ := f.Update(enter)
	assert.Equal(t, formEditing, res.action)
	assert.Equal(t, fieldDescription, f.focus)
	f, _, _ = f.Update(keyRunes("line two"))

	_, res, _ = f.Update(ctrlS)
	require.Equal(t, formSubmitted, res.action)
	assert.Equal(t, "line one\nline two", res.draft.Description)
	assert.Empty(t, res.draft.ID)
}

func TestFormPrioritySelect(t *testing.T) {
	f := NewForm(task.Draft{Title: "x"}, testFormKeys())
	f, _, _ = f.Update(shiftTab)
	require.Equal(t, fieldPriority, f.focus)

	steps := []struct {
		msg  tea.Msg
		want task.Priority
	}{
		{keyRunes("+"), task.PriorityMedium},
		{tea.KeyMsg{Type: tea.KeyRight}, task.PriorityHigh},
		{keyRunes("+"), task.PriorityLow},
		{keyRunes("-"), task.PriorityHigh},
		{tea.KeyMsg{Type: tea.KeyLeft}, task.PriorityMedium},
		{keyRunes("z"), task.PriorityMedium},
	}
	for _, s := range steps {
		f, _, _ = f.Update(s.msg)
		assert.Equal(t, s.want, f.priority)
	}
	assert.Contains(t, f.View(), "Medium")

	_, res, _ := f.Update(enter)
	require.Equal(t, formSubmitted, res.action)
	assert.Equal(t, task.PriorityMedium, res.draft.Priority)
}

func TestFormCancel(t *testing.T) {
	f := NewForm(task.Draft{ID: "t-1", Title: "keep"}, testFormKeys())
	f, _, _ = f.Update(keyRunes("!!"))
	_, res, _ := f.Update(esc)
	assert.Equal(t, formCancelled, res.action)
	assert.Equal(t, task.Draft{}, res.draft)
}

func TestFormSubmitKeepsID(t *testing.T) {
	f := NewForm(task.Draft{ID: "t-1", Title: "keep"}, testFormKeys())
	_, res, _ := f.Update(ctrlS)
	require.Equal(t, formSubmitted, res.action)
	assert.Equal(t, "t-1", res.draft.ID)
	assert.Equal(t, "keep", res.draft.Title)
}
