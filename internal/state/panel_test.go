package state

import "testing"

func TestPanel(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		var p Panel
		if p.Collapsed || p.Playing {
			t.Errorf("expected collapsed=false playing=false, got %+v", p)
		}
		if p.Layout() != LayoutFull {
			t.Errorf("expected full layout, got %v", p.Layout())
		}
		if p.Glyph() != GlyphPause {
			t.Errorf("expected pause glyph, got %v", p.Glyph())
		}
	})

	t.Run("toggle collapses and plays", func(t *testing.T) {
		p := Panel{}.Toggle()
		if !p.Collapsed || !p.Playing {
			t.Errorf("expected collapsed=true playing=true, got %+v", p)
		}
		if p.Glyph() != GlyphPlay {
			t.Errorf("expected play glyph, got %v", p.Glyph())
		}
		if p.Layout() != LayoutNarrow || p.ShowsSkipControls() {
			t.Errorf("expected narrow layout without skip controls, got %v", p.Layout())
		}
	})

	t.Run("second toggle restores", func(t *testing.T) {
		p := Panel{}.Toggle().Toggle()
		if p.Collapsed || p.Playing {
			t.Errorf("expected collapsed=false playing=false, got %+v", p)
		}
		if p.Glyph() != GlyphPause {
			t.Errorf("expected pause glyph, got %v", p.Glyph())
		}
		if p.Layout() != LayoutFull || !p.ShowsSkipControls() {
			t.Errorf("expected full layout with skip controls, got %v", p.Layout())
		}
	})

	t.Run("toggle always flips both flags", func(t *testing.T) {
		p := Panel{}
		for i := range 25 {
			next := p.Toggle()
			if next.Collapsed == p.Collapsed || next.Playing == p.Playing {
				t.Fatalf("toggle %d changed only one flag: %+v -> %+v", i, p, next)
			}
			if next.Collapsed != next.Playing {
				t.Fatalf("toggle %d desynchronised flags: %+v", i, next)
			}
			p = next
		}
	})

	t.Run("glyph rule", func(t *testing.T) {
		tc := []struct {
			panel Panel
			want  Glyph
		}{
			{Panel{Collapsed: false, Playing: false}, GlyphPause},
			{Panel{Collapsed: true, Playing: false}, GlyphPause},
			{Panel{Collapsed: false, Playing: true}, GlyphPause},
			{Panel{Collapsed: true, Playing: true}, GlyphPlay},
		}
		for _, tt := range tc {
			if got := tt.panel.Glyph(); got != tt.want {
				t.Errorf("%+v.Glyph() = %v, want %v", tt.panel, got, tt.want)
			}
		}
	})

	t.Run("names", func(t *testing.T) {
		if GlyphPlay.String() != "play" || GlyphPause.String() != "pause" {
			t.Error("unexpected glyph names")
		}
		if LayoutFull.String() != "full" || LayoutNarrow.String() != "narrow" {
			t.Error("unexpected layout names")
		}
	})
}
