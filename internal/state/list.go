package state

import "github.com/llehouerou/spotui/internal/ui/cursor"

// List is a fetched collection with an optional selected index. A list that
// was never fetched is absent (Loaded false), which differs from a fetched
// empty list: moving the selection is a no-op only on absent lists.
type List[T any] struct {
	Items     []T
	Loaded    bool
	Selection cursor.Selection
}

// Set replaces the items and marks the list as loaded. The selection is kept.
func (l *List[T]) Set(items []T) {
	l.Items = items
	l.Loaded = true
}

// Clear makes the list absent again and drops the selection.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

func (l *List[T]) Len() int {
	return len(l.Items)
}

// Selected returns the selected item, if the selection points inside the list.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	i, ok := l.Selection.Get()
	if !ok || i < 0 || i >= len(l.Items) {
		return zero, false
	}
	return l.Items[i], true
}

// Next moves the selection forward with wrap-around.
func (l *List[T]) Next() {
	if !l.Loaded {
		return
	}
	l.Selection = cursor.At(cursor.Advance(len(l.Items), l.Selection))
}

// Prev moves the selection backward with wrap-around.
func (l *List[T]) Prev() {
	if !l.Loaded {
		return
	}
	l.Selection = cursor.At(cursor.Retreat(len(l.Items), l.Selection))
}

// Seed selects the first item when nothing is selected yet.
func (l *List[T]) Seed() {
	if !l.Selection.IsSet() {
		l.Selection = cursor.At(0)
	}
}

type navigable interface {
	Next()
	Prev()
	Seed()
}
