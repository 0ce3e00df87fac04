package osd

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	DefaultHold = 0.9
	DefaultFade = 0.6
)

// Toast is a one-line status message that stays opaque for a hold time and
// then fades out. Durations are in seconds.
type Toast struct {
	text  string
	hold  float32
	fade  float32
	timer float32
	alpha float32
	tween *gween.Tween
}

func NewToast(hold, fade float32) *Toast {
	return &Toast{hold: hold, fade: fade}
}

// Show replaces the current message and restarts the timer.
func (t *Toast) Show(text string) {
	t.text = text
	t.timer = t.hold
	t.alpha = 1
	t.tween = gween.New(1, 0, t.fade, ease.OutQuad)
}

// Update advances the toast by dt seconds.
func (t *Toast) Update(dt float32) {
	if t.tween == nil {
		return
	}
	if t.timer > 0 {
		t.timer -= dt
		if t.timer > 0 {
			return
		}
		// carry the overshoot into the fade
		dt = -t.timer
		t.timer = 0
	}

	val, done := t.tween.Update(dt)
	t.alpha = val
	if done {
		t.alpha = 0
		t.tween = nil
	}
}

func (t *Toast) Visible() bool {
	return t.alpha > 0
}

func (t *Toast) Text() string {
	return t.text
}

func (t *Toast) Alpha() float32 {
	return t.alpha
}
