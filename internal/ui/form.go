package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasks/internal/task"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldDue
	fieldPriority
	fieldCount
)

func (f field) label() string {
	switch f {
	case fieldTitle:
		return "Task Title"
	case fieldDescription:
		return "Description"
	case fieldDue:
		return "Due Date"
	case fieldPriority:
		return "Priority"
	default:
		return ""
	}
}

type formAction int

const (
	formEditing formAction = iota
	formSubmitted
	formCancelled
)

type formResult struct {
	action formAction
	draft  task.Draft
}

// Form edits one draft. It copies the values it is seeded with and never
// holds on to the task being edited.
type Form struct {
	id          string
	title       textinput.Model
	description textarea.Model
	due         textinput.Model
	priority    task.Priority
	focus       field
	keys        formKeyMap
	err         error
}

func NewForm(d task.Draft, keys formKeyMap) Form {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 0
	title.Width = 40
	title.SetValue(d.Title)

	desc := textarea.New()
	desc.Placeholder = "Optional"
	desc.ShowLineNumbers = false
	desc.CharLimit = 0
	desc.SetWidth(44)
	desc.SetHeight(3)
	desc.SetValue(d.Description)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = len(task.DateLayout)
	due.Width = 12
	due.SetValue(task.FormatDate(d.Due))

	f := Form{
		id:          d.ID,
		title:       title,
		description: desc,
		due:         due,
		priority:    d.Priority,
		keys:        keys,
	}
	if !f.priority.Valid() {
		f.priority = task.PriorityLow
	}
	f.setFocus(fieldTitle)
	return f
}

// Editing reports whether the form was seeded from an existing task.
func (f Form) Editing() bool {
	return f.id != ""
}

func (f Form) Update(msg tea.Msg) (Form, formResult, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		cmd := f.updateFocused(msg)
		return f, formResult{}, cmd
	}

	switch {
	case key.Matches(keyMsg, f.keys.Cancel):
		return f, formResult{action: formCancelled}, nil
	case key.Matches(keyMsg, f.keys.Save):
		return f.submit()
	case key.Matches(keyMsg, f.keys.Next):
		cmd := f.setFocus(f.focus + 1)
		return f, formResult{}, cmd
	case key.Matches(keyMsg, f.keys.Prev):
		cmd := f.setFocus(f.focus - 1)
		return f, formResult{}, cmd
	case key.Matches(keyMsg, f.keys.Confirm) && f.focus != fieldDescription:
		if f.focus == fieldCount-1 {
			return f.submit()
		}
		cmd := f.setFocus(f.focus + 1)
		return f, formResult{}, cmd
	}

	if f.focus == fieldPriority {
		switch {
		case key.Matches(keyMsg, f.keys.PriorityUp):
			f.priority = f.priority.Next()
		case key.Matches(keyMsg, f.keys.PriorityDown):
			f.priority = f.priority.Prev()
		}
		return f, formResult{}, nil
	}

	cmd := f.updateFocused(msg)
	return f, formResult{}, cmd
}

// Draft returns the current field values without validating them.
func (f Form) Draft() (task.Draft, error) {
	due, err := task.ParseDate(f.due.Value())
	if err != nil {
		return task.Draft{}, err
	}
	return task.Draft{
		ID:          f.id,
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Due:         due,
		Priority:    f.priority,
	}, nil
}

func (f Form) submit() (Form, formResult, tea.Cmd) {
	d, err := f.Draft()
	if err != nil {
		f.err = err
		cmd := f.setFocus(fieldDue)
		return f, formResult{}, cmd
	}
	if err := d.Validate(); err != nil {
		f.err = err
		cmd := f.setFocus(fieldTitle)
		return f, formResult{}, cmd
	}
	f.err = nil
	return f, formResult{action: formSubmitted, draft: d}, nil
}

func (f *Form) setFocus(next field) tea.Cmd {
	f.focus = field(wrapIndex(int(next), int(fieldCount)))
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	case fieldDue:
		return f.due.Focus()
	}
	return nil
}

func (f *Form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}

func (f *Form) setWidth(w int) {
	if w <= 0 {
		return
	}
	f.title.Width = w - 4
	f.description.SetWidth(w)
}

func (f Form) View() string {
	var b strings.Builder
	for i := fieldTitle; i < fieldCount; i++ {
		label := labelStyle
		if i == f.focus {
			label = focusedLabelStyle
		}
		name := i.label()
		if i == fieldTitle {
			name += " *"
		}
		b.WriteString(label.Render(name))
		b.WriteString("\n")
		switch i {
		case fieldTitle:
			b.WriteString(f.title.View())
		case fieldDescription:
			b.WriteString(f.description.View())
		case fieldDue:
			b.WriteString(f.due.View())
		case fieldPriority:
			b.WriteString(f.renderPriority())
		}
		b.WriteString("\n\n")
	}
	if f.err != nil {
		b.WriteString(errorStyle.Render(formError(f.err)))
		b.WriteString("\n\n")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		outlineStyle.Render("["+f.keys.Cancel.Help().Key+"] Cancel"), " ",
		buttonStyle.Render("["+f.keys.Save.Help().Key+"] Save"))
	b.WriteString(buttons)
	return b.String()
}

func (f Form) renderPriority() string {
	opts := make([]string, 0, 3)
	for _, p := range task.Priorities() {
		style := priorityStyle
		if p == f.priority {
			style = selectedPriorStyle
		}
		opts = append(opts, style.Render(p.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

func formError(err error) string {
	msg := err.Error()
	if msg == "" {
		return ""
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
