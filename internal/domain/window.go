package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Window is a fixed-capacity list that keeps the most recent items.
// Push never modifies the receiver; it returns a new Window backed by a
// fresh array, so a Window can be shared freely between record versions.
// A limit of zero or less means unbounded.
type Window[T any] struct {
	limit int
	items []T
}

// NewWindow creates a window holding at most limit items. If more items
// are given, only the most recent ones are kept.
func NewWindow[T any](limit int, items ...T) Window[T] {
	return Window[T]{limit: limit}.Push(items...)
}

// Push appends items and evicts the oldest entries beyond the limit.
func (w Window[T]) Push(items ...T) Window[T] {
	total := len(w.items) + len(items)
	drop := 0
	if w.limit > 0 && total > w.limit {
		drop = total - w.limit
	}

	next := make([]T, 0, total-drop)
	for i := drop; i < total; i++ {
		if i < len(w.items) {
			next = append(next, w.items[i])
		} else {
			next = append(next, items[i-len(w.items)])
		}
	}
	return Window[T]{limit: w.limit, items: next}
}

// Items returns a copy of the window contents, oldest first.
func (w Window[T]) Items() []T {
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

// Last returns up to n of the most recent items, oldest first.
func (w Window[T]) Last(n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(w.items) {
		n = len(w.items)
	}
	out := make([]T, n)
	copy(out, w.items[len(w.items)-n:])
	return out
}

func (w Window[T]) Len() int   { return len(w.items) }
func (w Window[T]) Limit() int { return w.limit }

func (w Window[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Items())
}

// UnmarshalJSON replaces the contents while keeping the receiver's limit.
func (w *Window[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*w = NewWindow(w.limit, items...)
	return nil
}

func (w Window[T]) MarshalYAML() (interface{}, error) {
	return w.Items(), nil
}

func (w *Window[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	*w = NewWindow(w.limit, items...)
	return nil
}
