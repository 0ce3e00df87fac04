package keys

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recorder struct {
	calls []string
}

func (r *recorder) TogglePlay()          { r.calls = append(r.calls, "toggle") }
func (r *recorder) Reset()               { r.calls = append(r.calls, "reset") }
func (r *recorder) TogglePanel()         { r.calls = append(r.calls, "panel") }
func (r *recorder) AdjustSpeed(s int)    { r.calls = append(r.calls, speedCall(s)) }
func (r *recorder) AdjustFontSize(s int) { r.calls = append(r.calls, fontCall(s)) }

func speedCall(s int) string {
	if s > 0 {
		return "speed+"
	}
	return "speed-"
}

func fontCall(s int) string {
	if s > 0 {
		return "font+"
	}
	return "font-"
}

func pressing(keys ...ebiten.Key) JustPressed {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestDispatchDefaultBindings(t *testing.T) {
	cases := []struct {
		name string
		keys []ebiten.Key
		want []string
	}{
		{"right_toggles", []ebiten.Key{ebiten.KeyArrowRight}, []string{"toggle"}},
		{"left_resets", []ebiten.Key{ebiten.KeyArrowLeft}, []string{"reset"}},
		{"up_faster", []ebiten.Key{ebiten.KeyArrowUp}, []string{"speed+"}},
		{"down_slower", []ebiten.Key{ebiten.KeyArrowDown}, []string{"speed-"}},
		{"equal_font_up", []ebiten.Key{ebiten.KeyEqual}, []string{"font+"}},
		{"numpad_font_down", []ebiten.Key{ebiten.KeyNumpadSubtract}, []string{"font-"}},
		{"h_panel", []ebiten.Key{ebiten.KeyH}, []string{"panel"}},
		{"unbound", []ebiten.Key{ebiten.KeyQ}, nil},
		{"two_keys_one_action_fires_once", []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, []string{"font+"}},
		{"several_actions", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowRight}, []string{"toggle", "speed+"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &recorder{}
			Dispatch(pressing(c.keys...), DefaultBindings(), r)
			if !reflect.DeepEqual(r.calls, c.want) {
				t.Fatalf("calls = %v, want %v", r.calls, c.want)
			}
		})
	}
}

func TestBindingsOverride(t *testing.T) {
	b, err := DefaultBindings().Override(map[string][]string{
		"toggle_play": {"Space", "ArrowRight"},
	})
	if err != nil {
		t.Fatalf("override: %v", err)
	}

	r := &recorder{}
	Dispatch(pressing(ebiten.KeySpace), b, r)
	if !reflect.DeepEqual(r.calls, []string{"toggle"}) {
		t.Fatalf("space should toggle, got %v", r.calls)
	}

	if got := DefaultBindings()[ActionTogglePlay]; len(got) != 1 {
		t.Fatalf("override must not touch the defaults, got %v", got)
	}
}

func TestBindingsOverrideErrors(t *testing.T) {
	cases := []struct {
		name  string
		names map[string][]string
	}{
		{"unknown_action", map[string][]string{"explode": {"Space"}}},
		{"unknown_key", map[string][]string{"reset": {"NotAKey"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := DefaultBindings().Override(c.names); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestActionNames(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Fatalf("action %d did not round-trip through %q", a, a.String())
		}
	}
	if Action(99).String() != "unknown" {
		t.Fatalf("out of range action should be unknown")
	}
}
