package keymap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key is a classified key press. Name is the raw key as reported by the
// terminal; Action is its binding, or ActionNone. Runes holds pasted text,
// which never resolves to an action.
type Key struct {
	Name   string
	Action Action
	Runes  string
}

// Text returns the printable text the key types, if any. Text entry reads
// this rather than the action, so "j" types "j" even though it is bound to a
// movement. Non-printable runes in pasted text are dropped.
func (k Key) Text() string {
	src := k.Runes
	if src == "" {
		if utf8.RuneCountInString(k.Name) != 1 {
			return ""
		}
		src = k.Name
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, src)
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or ActionNone if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// Classify turns a raw key name into a Key. It never fails: unbound keys
// come back as literals.
func (r *Resolver) Classify(name string) Key {
	return Key{Name: name, Action: r.Resolve(name)}
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
