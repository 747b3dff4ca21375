//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import "testing"

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 4},
		{"navigation context", "navigation", 4},
		{"input context", "input", 3},
		{"search context", "search", 1},
		{"unknown context returns empty", "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == ActionNone {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestOverride(t *testing.T) {
	got, err := Override(Bindings, map[string][]string{
		"move_down": {"n"},
	})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}

	r := NewResolver(got)
	if a := r.Resolve("n"); a != ActionMoveDown {
		t.Errorf("Resolve(n) = %q, want %q", a, ActionMoveDown)
	}
	if a := r.Resolve("j"); a != ActionNone {
		t.Errorf("Resolve(j) = %q after override, want none", a)
	}
	if a := NewResolver(Bindings).Resolve("j"); a != ActionMoveDown {
		t.Error("Override modified the input bindings")
	}
}

func TestOverride_SwapKeys(t *testing.T) {
	got, err := Override(Bindings, map[string][]string{
		"move_down": {"k"},
		"move_up":   {"j"},
	})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	r := NewResolver(got)
	if a := r.Resolve("k"); a != ActionMoveDown {
		t.Errorf("Resolve(k) = %q, want %q", a, ActionMoveDown)
	}
	if a := r.Resolve("j"); a != ActionMoveUp {
		t.Errorf("Resolve(j) = %q, want %q", a, ActionMoveUp)
	}
}

func TestDefaultBindingsHaveNoConflicts(t *testing.T) {
	if _, err := Override(Bindings, nil); err != nil {
		t.Errorf("default bindings conflict: %v", err)
	}
}

func TestOverrideErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string][]string
	}{
		{"unknown action", map[string][]string{"fly": {"f"}}},
		{"empty keys", map[string][]string{"quit": {}}},
		{"steals a default key", map[string][]string{"move_down": {"q"}}},
		{"two overrides share a key", map[string][]string{
			"move_down": {"n"},
			"move_up":   {"n"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Override(Bindings, tt.overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}
