package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/prompter/prompter"
	"github.com/milk9111/prompter/settings"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s, err := settings.Load("")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	g, err := NewGame(Options{Settings: s})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestGameAdjustSpeed(t *testing.T) {
	g := newTestGame(t)
	if g.animator.Speed() != prompter.DefaultSpeed {
		t.Fatalf("expected default speed, got %v", g.animator.Speed())
	}

	cases := []struct {
		steps int
		want  float64
		label string
	}{
		{1, 0.6, "0.6x"},
		{-1, 0.5, "0.5x"},
		{-100, prompter.MinSpeed, "0.1x"},
		{100, prompter.MaxSpeed, "5.0x"},
	}
	for _, c := range cases {
		g.AdjustSpeed(c.steps)
		if g.animator.Speed() != c.want {
			t.Fatalf("AdjustSpeed(%d): speed = %v, want %v", c.steps, g.animator.Speed(), c.want)
		}
		if g.controls.speedText.Label != c.label {
			t.Fatalf("AdjustSpeed(%d): label = %q, want %q", c.steps, g.controls.speedText.Label, c.label)
		}
		if g.controls.speed.Current != speedToTicks(c.want) {
			t.Fatalf("AdjustSpeed(%d): slider at %d", c.steps, g.controls.speed.Current)
		}
	}
}

func TestGameAdjustFontSize(t *testing.T) {
	g := newTestGame(t)
	before := g.view.ContentHeight()

	g.AdjustFontSize(1)
	if g.view.FontSize() != prompter.DefaultFontSize+prompter.FontSizeStep {
		t.Fatalf("font size = %d", g.view.FontSize())
	}
	if g.view.ContentHeight() <= before {
		t.Fatalf("larger font should re-wrap to a taller content, %v -> %v", before, g.view.ContentHeight())
	}

	g.AdjustFontSize(100)
	if g.view.FontSize() != prompter.MaxFontSize || g.controls.fontText.Label != "48" {
		t.Fatalf("expected cap at 48, got %d (%q)", g.view.FontSize(), g.controls.fontText.Label)
	}
	g.AdjustFontSize(1)
	if g.view.FontSize() != prompter.MaxFontSize {
		t.Fatalf("font size passed the cap: %d", g.view.FontSize())
	}

	g.AdjustFontSize(-100)
	if g.view.FontSize() != prompter.MinFontSize || g.controls.fontText.Label != "12" {
		t.Fatalf("expected floor at 12, got %d (%q)", g.view.FontSize(), g.controls.fontText.Label)
	}
}

func TestGameTogglePanel(t *testing.T) {
	g := newTestGame(t)
	withPanel := g.view.VisibleHeight()

	g.TogglePanel()
	if got := g.view.VisibleHeight(); got != withPanel+panelHeight {
		t.Fatalf("hidden panel: visible height = %v, want %v", got, withPanel+panelHeight)
	}

	g.TogglePanel()
	if got := g.view.VisibleHeight(); got != withPanel {
		t.Fatalf("shown panel: visible height = %v, want %v", got, withPanel)
	}
}

func TestGameTogglePlayUpdatesButton(t *testing.T) {
	g := newTestGame(t)
	g.TogglePlay()
	if !g.animator.Playing() || g.controls.playBtn.Text().Label != "Pause" {
		t.Fatalf("expected playing with a Pause label")
	}
	g.Reset()
	if g.animator.Playing() || g.controls.playBtn.Text().Label != "Play" {
		t.Fatalf("reset should show Play")
	}
}

func TestGameArrowKeysIgnoreFocusedSlider(t *testing.T) {
	g := newTestGame(t)
	g.controls.speed.Focus(true)
	ticks := g.controls.speed.Current

	right := func(k ebiten.Key) bool { return k == ebiten.KeyArrowRight }
	g.handleKeys(right)
	if !g.animator.Playing() {
		t.Fatalf("ArrowRight should toggle play with the slider focused")
	}
	if g.animator.Speed() != prompter.DefaultSpeed || g.controls.speed.Current != ticks {
		t.Fatalf("ArrowRight changed the speed: %v, slider %d", g.animator.Speed(), g.controls.speed.Current)
	}

	g.handleKeys(func(k ebiten.Key) bool { return k == ebiten.KeyArrowLeft })
	if g.animator.Playing() || g.animator.Position() != 0 {
		t.Fatalf("ArrowLeft should reset, got %+v", g.animator.State())
	}
}
