package keymap

import (
	"slices"
	"testing"
)

func TestByContext(t *testing.T) {
	for _, ctx := range Contexts {
		t.Run(ctx, func(t *testing.T) {
			result := ByContext(ctx)
			if len(result) == 0 {
				t.Fatalf("ByContext(%q) returned no bindings", ctx)
			}
			for _, b := range result {
				if b.Context != ctx {
					t.Errorf("binding context = %q, want %q", b.Context, ctx)
				}
			}
		})
	}
	if got := ByContext("unknown"); len(got) != 0 {
		t.Errorf("ByContext(unknown) = %d bindings, want 0", len(got))
	}
}

func TestAll_EveryBindingComplete(t *testing.T) {
	for _, b := range All {
		if b.Action == "" || len(b.Keys) == 0 || b.Description == "" {
			t.Errorf("incomplete binding %+v", b)
		}
		if !slices.Contains(Contexts, b.Context) {
			t.Errorf("binding %q has unknown context %q", b.Action, b.Context)
		}
	}
}

func TestAll_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok {
				t.Errorf("key %q bound to both %q and %q", id, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}
