// Package task holds the task record, the form draft and their rules.
package task

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("title is required")

type Task struct {
	ID          string
	Title       string
	Description string
	Due         sql.NullTime
	Priority    Priority
}

// Draft is a task as submitted by the form. ID is empty for a new task.
type Draft struct {
	ID          string
	Title       string
	Description string
	Due         sql.NullTime
	Priority    Priority
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// DraftOf copies t into a draft for editing.
func DraftOf(t Task) Draft {
	return Draft{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Due:         t.Due,
		Priority:    t.Priority,
	}
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !d.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Task materialises the draft under id, keeping the values as entered.
func (d Draft) Task(id string) Task {
	return Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Due:         d.Due,
		Priority:    d.Priority,
	}
}
