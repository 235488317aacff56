package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"adhd-planner/internal/model"
)

func entry(texts ...string) model.ChecklistEntry {
	e := model.ChecklistEntry{IntroText: "Intro"}
	for _, t := range texts {
		e.Items = append(e.Items, model.ChecklistItem{Text: t})
	}
	return e
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		index       int
		wantToggled bool
		wantStates  []bool
	}{
		{name: "first item", id: "a", index: 0, wantToggled: true, wantStates: []bool{true, false, false}},
		{name: "last item", id: "a", index: 2, wantToggled: true, wantStates: []bool{false, false, true}},
		{name: "negative index", id: "a", index: -1, wantToggled: false, wantStates: []bool{false, false, false}},
		{name: "index out of range", id: "a", index: 3, wantToggled: false, wantStates: []bool{false, false, false}},
		{name: "unknown appointment", id: "missing", index: 0, wantToggled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Install(ctx, "a", entry("one", "two", "three"))

			_, toggled := r.Toggle(ctx, tt.id, tt.index)
			if toggled != tt.wantToggled {
				t.Fatalf("toggled = %v, want %v", toggled, tt.wantToggled)
			}

			got, ok := r.Get(ctx, "a")
			if !ok {
				t.Fatal("entry a should exist")
			}
			if tt.wantStates == nil {
				tt.wantStates = []bool{false, false, false}
			}
			for i, want := range tt.wantStates {
				if got.Items[i].Completed != want {
					t.Errorf("item %d completed = %v, want %v", i, got.Items[i].Completed, want)
				}
				if got.Items[i].Text != []string{"one", "two", "three"}[i] {
					t.Errorf("item %d text changed to %q", i, got.Items[i].Text)
				}
			}
			if got.IntroText != "Intro" {
				t.Errorf("intro changed to %q", got.IntroText)
			}
			if _, exists := r.Get(ctx, "missing"); exists {
				t.Error("toggle must not create entries")
			}
		})
	}
}

func TestToggle_TwiceRestores(t *testing.T) {
	ctx := context.Background()
	r := New()
	r.Install(ctx, "a", entry("one", "two"))

	r.Toggle(ctx, "a", 1)
	got, _ := r.Toggle(ctx, "a", 1)
	if got.Items[1].Completed {
		t.Error("double toggle should restore the original state")
	}
}

func TestInstall_ReplacesAndCopies(t *testing.T) {
	ctx := context.Background()
	r := New()

	first := entry("one", "two")
	r.Install(ctx, "a", first)
	r.Toggle(ctx, "a", 0)

	// Mutating the caller's slice must not leak into the store.
	first.Items[1].Text = "changed"
	got, _ := r.Get(ctx, "a")
	if got.Items[1].Text != "two" {
		t.Errorf("store shares caller slice: %q", got.Items[1].Text)
	}

	r.Install(ctx, "a", entry("fresh"))
	got, _ = r.Get(ctx, "a")
	if len(got.Items) != 1 || got.Items[0].Completed {
		t.Errorf("install should replace wholesale, got %+v", got)
	}

	// Mutating a returned copy must not leak either.
	got.Items[0].Completed = true
	again, _ := r.Get(ctx, "a")
	if again.Items[0].Completed {
		t.Error("Get should return a copy")
	}
}

func TestFinishGenerating_CompareAndClear(t *testing.T) {
	ctx := context.Background()
	r := New()

	if got := r.Generating(ctx); got != "" {
		t.Fatalf("expected idle marker, got %q", got)
	}

	r.SetGenerating(ctx, "a")
	r.SetGenerating(ctx, "b")
	r.FinishGenerating(ctx, "a")
	if got := r.Generating(ctx); got != "b" {
		t.Errorf("finishing a stale id cleared the marker: %q", got)
	}

	r.FinishGenerating(ctx, "b")
	if got := r.Generating(ctx); got != "" {
		t.Errorf("expected cleared marker, got %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("appt-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.SetGenerating(ctx, id)
			r.Install(ctx, id, entry("one", "two"))
			r.Toggle(ctx, id, 0)
			r.Get(ctx, id)
			r.FinishGenerating(ctx, id)
		}()
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		got, ok := r.Get(ctx, fmt.Sprintf("appt-%d", i))
		if !ok || !got.Items[0].Completed || got.Items[1].Completed {
			t.Errorf("appt-%d: unexpected entry %+v", i, got)
		}
	}
}
