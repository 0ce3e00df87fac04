package keys

import "github.com/hajimehoshi/ebiten/v2"

// Controller receives the commands the keyboard can issue.
type Controller interface {
	TogglePlay()
	Reset()
	AdjustSpeed(steps int)
	AdjustFontSize(steps int)
	TogglePanel()
}

// JustPressed reports whether k went down this frame.
type JustPressed func(k ebiten.Key) bool

// Dispatch calls c once for every action with a key that went down this
// frame. It holds no state, so tests drive it with a fake JustPressed.
func Dispatch(pressed JustPressed, b Bindings, c Controller) []Action {
	var fired []Action
	for _, action := range Actions() {
		for _, k := range b[action] {
			if !pressed(k) {
				continue
			}
			apply(action, c)
			fired = append(fired, action)
			break
		}
	}
	return fired
}
