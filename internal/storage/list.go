package storage

import (
	"slices"
	"strings"
)

// List is an ordered sequence addressed by position, negative positions count from the tail
type List struct {
	expiry
	items []string
}

// NewList creates an empty List entity
func NewList() *List {
	return &List{}
}

func (l *List) Type() DataType { return TypeList }

func (l *List) IsEmpty() bool { return len(l.items) == 0 }

// Values returns a snapshot of the elements from head to tail
func (l *List) Values() []string { return slices.Clone(l.items) }

func (l *List) Len() int { return len(l.items) }

// Index returns the element at index
func (l *List) Index(index int) (string, bool) {
	if index < 0 {
		index += len(l.items)
	}
	if index < 0 || index >= len(l.items) {
		return "", false
	}
	return l.items[index], true
}

// Insert places value before or after the first element equal to pivot.
// where is BEFORE or AFTER (case-insensitive). Returns the new length or -1 if pivot is missing
func (l *List) Insert(where, pivot, value string) (int, error) {
	after, err := InsertAfter(where)
	if err != nil {
		return 0, err
	}

	i := slices.Index(l.items, pivot)
	if i < 0 {
		return -1, nil
	}
	if after {
		i++
	}
	l.items = slices.Insert(l.items, i, value)

	return len(l.items), nil
}

// InsertAfter parses a BEFORE or AFTER relation token, case-insensitively
func InsertAfter(where string) (bool, error) {
	switch {
	case strings.EqualFold(where, "BEFORE"):
		return false, nil
	case strings.EqualFold(where, "AFTER"):
		return true, nil
	}
	return false, ErrSyntax
}

// LPush prepends each value in turn, so the last one ends up at the head
func (l *List) LPush(values ...string) int {
	head := make([]string, 0, len(values)+len(l.items))
	for i := len(values) - 1; i >= 0; i-- {
		head = append(head, values[i])
	}
	l.items = append(head, l.items...)
	return len(l.items)
}

// RPush appends each value in turn
func (l *List) RPush(values ...string) int {
	l.items = append(l.items, values...)
	return len(l.items)
}

func (l *List) LPop() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	v := l.items[0]
	l.items[0] = ""
	l.items = l.items[1:]
	return v, true
}

func (l *List) RPop() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	last := len(l.items) - 1
	v := l.items[last]
	l.items[last] = ""
	l.items = l.items[:last]
	return v, true
}

// Range returns the elements between the inclusive positions start and stop.
// A negative start clamps to the head, a negative stop counts from the tail
func (l *List) Range(start, stop int) []string {
	start, stop, ok := normalizeRange(max(start, 0), stop, len(l.items))
	if !ok {
		return []string{}
	}
	return slices.Clone(l.items[start : stop+1])
}

// Rem removes elements equal to value: all of them when count is 0, up to count
// scanning from the head when positive, up to -count from the tail when negative
func (l *List) Rem(count int, value string) int {
	limit := count
	if limit < 0 {
		limit = -limit
	}

	drop := make([]bool, len(l.items))
	removed := 0
	mark := func(i int) bool {
		if l.items[i] == value {
			drop[i] = true
			removed++
		}
		return limit == 0 || removed < limit
	}

	if count >= 0 {
		for i := 0; i < len(l.items); i++ {
			if !mark(i) {
				break
			}
		}
	} else {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !mark(i) {
				break
			}
		}
	}

	if removed == 0 {
		return 0
	}

	kept := l.items[:0]
	for i, v := range l.items {
		if !drop[i] {
			kept = append(kept, v)
		}
	}
	clear(l.items[len(kept):])
	l.items = kept

	return removed
}

// Set replaces the element at index
func (l *List) Set(index int, value string) error {
	if index < 0 {
		index += len(l.items)
	}
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[index] = value
	return nil
}

// Trim keeps only the elements between the inclusive positions start and stop
func (l *List) Trim(start, stop int) {
	start, stop, ok := normalizeRange(start, stop, len(l.items))
	if !ok {
		l.items = nil
		return
	}
	l.items = slices.Clone(l.items[start : stop+1])
}

func (l *List) clone() Entity {
	return &List{expiry: l.expiry, items: slices.Clone(l.items)}
}
