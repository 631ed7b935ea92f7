package task

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPriority = errors.New("invalid priority")

// Priority is the closed set of task priorities. The zero value is Low.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{"Low", "Medium", "High"}

// Priorities lists every priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority accepts a priority name in any case. Anything outside
// Low, Medium and High is rejected.
func ParsePriority(v string) (Priority, error) {
	v = strings.TrimSpace(v)
	for i, name := range priorityNames {
		if strings.EqualFold(v, name) {
			return Priority(i), nil
		}
	}
	return PriorityLow, fmt.Errorf("%w: %q", ErrInvalidPriority, v)
}

// Next returns the following priority, wrapping from High to Low.
func (p Priority) Next() Priority {
	return Priority(wrap(int(p)+1, len(priorityNames)))
}

// Prev returns the preceding priority, wrapping from Low to High.
func (p Priority) Prev() Priority {
	return Priority(wrap(int(p)-1, len(priorityNames)))
}

func wrap(idx, n int) int {
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
