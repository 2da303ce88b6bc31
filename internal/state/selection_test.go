package state

import (
	"testing"

	"github.com/desertthunder/mpx/internal/models"
	tu "github.com/desertthunder/mpx/internal/testing"
)

func TestSelection(t *testing.T) {
	entries := tu.Entries(60)

	t.Run("zero value is collapsed", func(t *testing.T) {
		var s Selection
		if s.Expanded || s.Selected != "" {
			t.Errorf("expected empty selection, got %+v", s)
		}
		if !s.Valid() {
			t.Error("zero value should be valid")
		}
	})

	t.Run("select expands entry", func(t *testing.T) {
		s := Selection{}.Select(entries[6])
		if s.Selected != "7" || !s.Expanded {
			t.Errorf("expected selected=7 expanded=true, got %+v", s)
		}
	})

	t.Run("dismiss after select collapses", func(t *testing.T) {
		s := Selection{}.Select(entries[6]).Dismiss()
		if s != (Selection{}) {
			t.Errorf("expected empty selection, got %+v", s)
		}
	})

	t.Run("dismiss is idempotent", func(t *testing.T) {
		once := Selection{}.Select(entries[0]).Dismiss()
		twice := once.Dismiss()
		if once != twice {
			t.Errorf("dismiss twice = %+v, dismiss once = %+v", twice, once)
		}
		if (Selection{}).Dismiss() != (Selection{}) {
			t.Error("dismiss on collapsed selection should be a no-op")
		}
	})

	t.Run("select then dismiss round trips for every entry", func(t *testing.T) {
		for _, e := range entries {
			before := Selection{}
			after := before.Select(e).Dismiss()
			if after != before {
				t.Fatalf("round trip for %s: got %+v, want %+v", e.ID, after, before)
			}
		}
	})

	t.Run("reselecting same entry is unchanged", func(t *testing.T) {
		s := Selection{}.Select(entries[0])
		again := s.Select(entries[0])
		if again != s || again.Selected != "1" || !again.Expanded {
			t.Errorf("expected selected=1 expanded=true, got %+v", again)
		}
	})

	t.Run("selecting another entry while expanded is ignored", func(t *testing.T) {
		s := Selection{}.Select(entries[0]).Select(entries[1])
		if s.Selected != "1" {
			t.Errorf("expected selection to stay on 1, got %s", s.Selected)
		}
	})

	t.Run("entry without id is ignored", func(t *testing.T) {
		s := Selection{}.Select(entries[0])
		s = s.Dismiss().Select(models.NewEntry("", "1"))
		if s.Expanded {
			t.Errorf("expected collapsed selection, got %+v", s)
		}
	})

	t.Run("IsSelected", func(t *testing.T) {
		s := Selection{}.Select(entries[3])
		for i, e := range entries {
			if got, want := s.IsSelected(e), i == 3; got != want {
				t.Errorf("IsSelected(%s) = %v, want %v", e.ID, got, want)
			}
		}
		if s.Dismiss().IsSelected(entries[3]) {
			t.Error("dismissed selection should not report a selected entry")
		}
	})

	t.Run("reachable states satisfy invariant", func(t *testing.T) {
		s := Selection{}
		steps := []func(Selection) Selection{
			func(s Selection) Selection { return s.Select(entries[2]) },
			func(s Selection) Selection { return s.Select(entries[9]) },
			Selection.Dismiss,
			Selection.Dismiss,
			func(s Selection) Selection { return s.Select(entries[59]) },
			Selection.Dismiss,
		}
		for i, step := range steps {
			s = step(s)
			if !s.Valid() {
				t.Fatalf("step %d produced invalid selection %+v", i, s)
			}
		}
	})
}
