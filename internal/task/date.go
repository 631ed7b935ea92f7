package task

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout is the input and storage layout for due dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD value. An empty value means no date.
func ParseDate(v string) (sql.NullTime, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return sql.NullTime{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, v)
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

func FormatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(DateLayout)
}

// FormatDue renders a due date in long form, e.g. "June 1st, 2024".
func FormatDue(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%s %s, %d", t.Time.Month(), humanize.Ordinal(t.Time.Day()), t.Time.Year())
}
