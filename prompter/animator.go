package prompter

// Viewport is the scrollable region the animator drives.
type Viewport interface {
	ContentHeight() float64
	VisibleHeight() float64
	SetScrollOffset(offset float64)
}

// Indicator reflects play/pause state, e.g. a button label.
type Indicator interface {
	SetPlaying(playing bool)
}

// Animator advances the viewport's scroll offset by Speed every frame while
// playing, and stops on its own once the end of the content is reached.
// It keeps at most one frame callback pending.
type Animator struct {
	state     State
	viewport  Viewport
	indicator Indicator
	frames    FrameScheduler
	frame     FrameID
}

// NewAnimator returns a stopped animator at position 0. indicator may be nil.
func NewAnimator(viewport Viewport, indicator Indicator, frames FrameScheduler) *Animator {
	return &Animator{
		state:     State{Speed: DefaultSpeed},
		viewport:  viewport,
		indicator: indicator,
		frames:    frames,
	}
}

func (a *Animator) State() State {
	return a.state
}

func (a *Animator) Playing() bool {
	return a.state.Playing
}

func (a *Animator) Position() float64 {
	return a.state.Position
}

func (a *Animator) Speed() float64 {
	return a.state.Speed
}

// SetIndicator replaces the indicator and syncs it to the current state.
func (a *Animator) SetIndicator(indicator Indicator) {
	a.indicator = indicator
	a.updateIndicator()
}

// TogglePlay flips between playing and stopped.
func (a *Animator) TogglePlay() {
	a.state.Playing = !a.state.Playing
	a.updateIndicator()

	a.cancelFrame()
	if a.state.Playing {
		a.scheduleFrame()
	}
}

// Tick advances one frame. It is a no-op while stopped so a stale callback
// that slipped past a cancel does nothing.
func (a *Animator) Tick() {
	a.cancelFrame()
	if !a.state.Playing {
		return
	}

	maxScroll := MaxScroll(a.viewport.ContentHeight(), a.viewport.VisibleHeight())
	next, step := Advance(a.state, maxScroll)
	a.state = next
	a.viewport.SetScrollOffset(a.state.Position)

	if step == Stop {
		a.updateIndicator()
		return
	}
	a.scheduleFrame()
}

// Reset stops playback and scrolls back to the top. Calling it again changes nothing.
func (a *Animator) Reset() {
	a.cancelFrame()
	a.state.Position = 0
	a.state.Playing = false
	a.viewport.SetScrollOffset(0)
	a.updateIndicator()
}

// SetSpeed stores v as is; callers clamp it with ClampSpeed. It applies from
// the next tick.
func (a *Animator) SetSpeed(v float64) {
	a.state.Speed = v
}

func (a *Animator) scheduleFrame() {
	a.frame = a.frames.RequestFrame(a.Tick)
}

func (a *Animator) cancelFrame() {
	if a.frame == 0 {
		return
	}
	a.frames.CancelFrame(a.frame)
	a.frame = 0
}

func (a *Animator) updateIndicator() {
	if a.indicator != nil {
		a.indicator.SetPlaying(a.state.Playing)
	}
}
