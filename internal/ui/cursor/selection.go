package cursor

// Selection is an optional index into a list. The zero value selects nothing.
type Selection struct {
	idx int
	set bool
}

// None returns an empty selection.
func None() Selection {
	return Selection{}
}

// At returns a selection pointing at i.
func At(i int) Selection {
	return Selection{idx: i, set: true}
}

// Get returns the selected index and whether one is set.
func (s Selection) Get() (int, bool) {
	return s.idx, s.set
}

// IsSet reports whether an index is selected.
func (s Selection) IsSet() bool {
	return s.set
}

// Or returns the selected index, or def when nothing is selected.
func (s Selection) Or(def int) int {
	if !s.set {
		return def
	}
	return s.idx
}

// Advance returns the index after cur in a list of n items, wrapping to 0
// past the end. An empty selection or an empty list yields 0.
func Advance(n int, cur Selection) int {
	i, ok := cur.Get()
	if !ok || n == 0 {
		return 0
	}
	if i >= n-1 {
		return 0
	}
	return i + 1
}

// Retreat returns the index before cur in a list of n items, wrapping to the
// last item from 0. An empty selection or an empty list yields 0.
func Retreat(n int, cur Selection) int {
	i, ok := cur.Get()
	if !ok || n == 0 {
		return 0
	}
	if i > 0 {
		return i - 1
	}
	return n - 1
}
