package keys

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type Action int

const (
	ActionTogglePlay Action = iota
	ActionReset
	ActionFaster
	ActionSlower
	ActionFontLarger
	ActionFontSmaller
	ActionTogglePanel
)

var actionNames = []string{
	ActionTogglePlay:  "toggle_play",
	ActionReset:       "reset",
	ActionFaster:      "faster",
	ActionSlower:      "slower",
	ActionFontLarger:  "font_larger",
	ActionFontSmaller: "font_smaller",
	ActionTogglePanel: "toggle_panel",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in dispatch order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction maps a settings name such as "toggle_play" to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("keys: unknown action %q", name)
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		ActionTogglePlay:  {ebiten.KeyArrowRight},
		ActionReset:       {ebiten.KeyArrowLeft},
		ActionFaster:      {ebiten.KeyArrowUp},
		ActionSlower:      {ebiten.KeyArrowDown},
		ActionFontLarger:  {ebiten.KeyEqual, ebiten.KeyNumpadAdd},
		ActionFontSmaller: {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		ActionTogglePanel: {ebiten.KeyH},
	}
}

// ParseKey resolves an ebiten key name such as "ArrowRight" or "Space".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("keys: unknown key %q: %w", name, err)
	}
	return k, nil
}

// Override returns a copy of b with the named actions rebound. Each value
// lists one or more ebiten key names.
func (b Bindings) Override(names map[string][]string) (Bindings, error) {
	out := make(Bindings, len(b))
	for a, ks := range b {
		out[a] = append([]ebiten.Key(nil), ks...)
	}
	for name, keyNames := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		ks := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			k, err := ParseKey(kn)
			if err != nil {
				return nil, fmt.Errorf("keys: action %s: %w", name, err)
			}
			ks = append(ks, k)
		}
		out[action] = ks
	}
	return out, nil
}
