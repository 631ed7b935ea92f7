package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite"

	"tasks/internal/task"
)

var ErrNotFound = errors.New("task not found")

// Store keeps the ordered task collection in a private in-memory SQLite
// database. The collection lives exactly as long as the Store.
type Store struct {
	db *sql.DB
	// conn holds the database; every query goes through it so a dropped
	// connection surfaces as an error instead of a fresh empty database.
	conn *sql.Conn
}

func Open(ctx context.Context, name string) (*Store, error) {
	if name == "" {
		return nil, errors.New("store name is empty")
	}
	db, err := sql.Open("sqlite", memoryDSN(name))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open connection: %w", err)
	}

	s := &Store{db: db, conn: conn}
	if err := s.ensureSchema(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	var connErr error
	if s.conn != nil {
		connErr = s.conn.Close()
	}
	return errors.Join(connErr, s.db.Close())
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL UNIQUE,
	title TEXT NOT NULL CHECK (length(trim(title)) > 0),
	description TEXT NOT NULL DEFAULT '',
	due TEXT DEFAULT NULL,
	priority TEXT NOT NULL DEFAULT 'Low' CHECK (priority IN ('Low', 'Medium', 'High'))
);`
	_, err := s.conn.ExecContext(ctx, ddl)
	return err
}

// FetchTasks returns the collection in insertion order.
func (s *Store) FetchTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id, title, description, due, priority FROM tasks ORDER BY position;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) Get(ctx context.Context, id string) (task.Task, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT id, title, description, due, priority FROM tasks WHERE id = ?;`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, err
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks;`).Scan(&n)
	return n, err
}

// Insert appends t after every existing task.
func (s *Store) Insert(ctx context.Context, t task.Task) error {
	if t.ID == "" {
		return errors.New("task id is empty")
	}
	_, err := s.conn.ExecContext(ctx, `
INSERT INTO tasks (id, position, title, description, due, priority)
VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks), ?, ?, ?, ?);`,
		t.ID, t.Title, t.Description, dueValue(t.Due), t.Priority.String())
	if err != nil {
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	return nil
}

// Replace overwrites every field of the task with the same id. Its position
// in the collection is kept.
func (s *Store) Replace(ctx context.Context, t task.Task) error {
	res, err := s.conn.ExecContext(ctx, `UPDATE tasks SET title = ?, description = ?, due = ?, priority = ? WHERE id = ?;`,
		t.Title, t.Description, dueValue(t.Due), t.Priority.String(), t.ID)
	if err != nil {
		return fmt.Errorf("replace task %s: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, t.ID)
	}
	return nil
}

// DeleteTask removes the task with id. Unknown ids are ignored.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (task.Task, error) {
	var t task.Task
	var dueStr sql.NullString
	var priority string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &dueStr, &priority); err != nil {
		return task.Task{}, err
	}
	if dueStr.Valid {
		due, err := task.ParseDate(dueStr.String)
		if err != nil {
			return task.Task{}, err
		}
		t.Due = due
	}
	p, err := task.ParsePriority(priority)
	if err != nil {
		return task.Task{}, err
	}
	t.Priority = p
	return t, nil
}

func dueValue(due sql.NullTime) sql.NullString {
	if !due.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: task.FormatDate(due), Valid: true}
}

func memoryDSN(name string) string {
	if strings.HasPrefix(name, "file:") {
		return name
	}
	u := url.URL{
		Scheme: "file",
		Opaque: url.PathEscape(name),
	}
	q := url.Values{}
	q.Set("mode", "memory")
	u.RawQuery = q.Encode()
	return u.String()
}
