package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasks/internal/config"
	"tasks/internal/storage"
	"tasks/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeEdit
)

// Model owns the task collection for the lifetime of the view, along with
// the cursor, the modal and the task currently under edit.
type Model struct {
	ctx      context.Context
	store    *storage.Store
	cfg      config.Config
	keys     listKeyMap
	formKeys formKeyMap
	help     help.Model
	tasks    []task.Task
	cursor   int
	mode     mode
	editing  *task.Task
	form     Form
	status   string
	width    int
	height   int
}

func New(ctx context.Context, store *storage.Store, cfg config.Config) (Model, error) {
	tasks, err := store.FetchTasks(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("load tasks: %w", err)
	}
	keys := newListKeyMap(cfg.Keys)
	return Model{
		ctx:      ctx,
		store:    store,
		cfg:      cfg,
		keys:     keys,
		formKeys: newFormKeyMap(cfg.Keys),
		help:     help.New(),
		tasks:    tasks,
		cursor:   clampCursor(0, len(tasks)),
		mode:     modeList,
		status:   fmt.Sprintf("Press '%s' to add a task.", cfg.Keys.Add),
	}, nil
}

func Run(ctx context.Context, store *storage.Store, cfg config.Config) error {
	m, err := New(ctx, store, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return shutdownErr(ctx, err)
}

// shutdownErr drops the error Bubble Tea returns when ctx ends the program,
// e.g. on SIGTERM.
func shutdownErr(ctx context.Context, err error) error {
	if err == nil || ctx.Err() == nil {
		return err
	}
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ModalOpen reports whether the add/edit dialog is showing.
func (m Model) ModalOpen() bool {
	return m.mode != modeList
}

// Tasks returns the collection in display order.
func (m Model) Tasks() []task.Task {
	return append([]task.Task(nil), m.tasks...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.ModalOpen() {
			m.form.setWidth(dialogWidth(msg.Width))
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ModalOpen() {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	if m.ModalOpen() {
		return m.updateModal(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))
	case key.Matches(msg, m.keys.Add):
		return m.beginCreate()
	case key.Matches(msg, m.keys.Edit):
		if len(m.tasks) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.beginEdit(m.tasks[m.cursor])
	case key.Matches(msg, m.keys.Delete):
		if len(m.tasks) == 0 {
			m.status = "No tasks to delete"
			return m, nil
		}
		return m.delete(m.tasks[m.cursor].ID)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, res, cmd := m.form.Update(msg)
	m.form = form
	switch res.action {
	case formSubmitted:
		return m.save(res.draft)
	case formCancelled:
		return m.cancel()
	}
	return m, cmd
}

func (m Model) beginCreate() (tea.Model, tea.Cmd) {
	m.editing = nil
	m.mode = modeCreate
	m.form = m.newForm(task.Draft{})
	m.status = "Adding task"
	return m, textinput.Blink
}

func (m Model) beginEdit(t task.Task) (tea.Model, tea.Cmd) {
	m.editing = &t
	m.mode = modeEdit
	m.form = m.newForm(task.DraftOf(t))
	m.status = fmt.Sprintf("Editing %q", t.Title)
	return m, textinput.Blink
}

func (m Model) newForm(d task.Draft) Form {
	f := NewForm(d, m.formKeys)
	f.setWidth(dialogWidth(m.width))
	return f
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.mode = modeList
	m.editing = nil
	m.status = "Cancelled"
	return m, nil
}

// save replaces the task whose id the draft carries, keeping its position,
// or appends a new task under a fresh id.
func (m Model) save(d task.Draft) (tea.Model, tea.Cmd) {
	saved, created, err := m.upsert(d)
	if err != nil {
		log.Printf("save failed: %v", err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.mode = modeList
	m.editing = nil
	if created {
		log.Printf("added task %s", saved.ID)
		m.status = "Added task"
	} else {
		log.Printf("updated task %s", saved.ID)
		m.status = "Saved task"
	}
	return m.reload(saved.ID), nil
}

func (m Model) upsert(d task.Draft) (task.Task, bool, error) {
	if d.ID != "" {
		t := d.Task(d.ID)
		err := m.store.Replace(m.ctx, t)
		if err == nil {
			return t, false, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return task.Task{}, false, err
		}
	}
	t := d.Task(task.NewID())
	if err := m.store.Insert(m.ctx, t); err != nil {
		return task.Task{}, false, err
	}
	return t, true, nil
}

// delete removes the task with id. Unknown ids leave the list untouched.
func (m Model) delete(id string) (tea.Model, tea.Cmd) {
	if err := m.store.DeleteTask(m.ctx, id); err != nil {
		log.Printf("delete %s failed: %v", id, err)
		m.status = fmt.Sprintf("delete failed: %v", err)
		return m, nil
	}
	log.Printf("deleted task %s", id)
	m.status = "Deleted task"
	return m.reload(""), nil
}

// reload refreshes the cached list from the store and moves the cursor to
// focusID when it is present.
func (m Model) reload(focusID string) Model {
	tasks, err := m.store.FetchTasks(m.ctx)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return m
	}
	m.tasks = tasks
	for i, t := range m.tasks {
		if t.ID == focusID {
			m.cursor = i
			break
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.tasks))
	return m
}

func (m Model) View() string {
	page := m.renderPage()
	if !m.ModalOpen() {
		return page
	}
	dialog := m.renderDialog()
	if m.width <= 0 || m.height <= 0 {
		return page + "\n" + dialog
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m Model) renderPage() string {
	var b strings.Builder
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		headingStyle.Render("Tasks"), "  ",
		buttonStyle.Render("["+m.keys.Add.Help().Key+"] Add Task"))
	b.WriteString(header)
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.cfg.Keys.Add)))
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

// renderTaskList renders as many cards as fit the terminal, scrolled so the
// selected card is visible.
func (m Model) renderTaskList() string {
	width := 0
	if m.width > 0 {
		width = m.width - appStyle.GetHorizontalFrameSize()
	}
	cards := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		cards[i] = renderCard(t, i == m.cursor && m.mode == modeList, width, m.keys)
	}

	avail := m.height - appStyle.GetVerticalFrameSize() - 6
	if m.height <= 0 || avail <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	start := 0
	for start < m.cursor && stackHeight(cards[start:m.cursor+1]) > avail {
		start++
	}
	end := start + 1
	for end < len(cards) && stackHeight(cards[start:end+1]) <= avail {
		end++
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards[start:end]...)
}

func (m Model) renderDialog() string {
	title := "Add Task"
	if m.editing != nil {
		title = "Edit Task"
	}
	body := headingStyle.Render(title) + "\n\n" + m.form.View() + "\n\n" + m.help.View(m.formKeys)
	return dialogStyle.Render(body)
}

func stackHeight(blocks []string) int {
	h := 0
	for _, b := range blocks {
		h += lipgloss.Height(b)
	}
	return h
}

func dialogWidth(termWidth int) int {
	const maxWidth = 60
	if termWidth <= 0 {
		return 0
	}
	w := termWidth - dialogStyle.GetHorizontalFrameSize() - 4
	if w > maxWidth {
		w = maxWidth
	}
	return w
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
