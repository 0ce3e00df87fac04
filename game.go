package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/prompter/assets"
	"github.com/milk9111/prompter/keys"
	"github.com/milk9111/prompter/osd"
	"github.com/milk9111/prompter/prompter"
	"github.com/milk9111/prompter/script"
	"github.com/milk9111/prompter/settings"
	"github.com/milk9111/prompter/textview"
)

type Options struct {
	Settings   *settings.Settings
	ScriptPath string
	Debug      bool
}

// Game wires the scroll animator to ebiten: Update is the per-frame callback
// that drives the animator's frame queue.
type Game struct {
	width  int
	height int
	debug  bool

	view     *textview.View
	frames   *prompter.FrameQueue
	animator *prompter.Animator
	controls *Controls
	bindings keys.Bindings
	toast    *osd.Toast
	toastFg  text.Face

	scriptPath string
	watcher    *script.Watcher
	clipboard  *script.Clipboard

	fontSize    int
	panelHidden bool
}

func NewGame(opts Options) (*Game, error) {
	s := opts.Settings

	source, err := assets.FontSource()
	if err != nil {
		return nil, err
	}
	bindings, err := s.Bindings()
	if err != nil {
		return nil, err
	}

	body, err := script.Load(opts.ScriptPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		width:      s.Window.Width,
		height:     s.Window.Height,
		debug:      opts.Debug,
		frames:     prompter.NewFrameQueue(),
		bindings:   bindings,
		toast:      osd.NewToast(osd.DefaultHold, osd.DefaultFade),
		toastFg:    &text.GoTextFace{Source: source, Size: 20},
		scriptPath: opts.ScriptPath,
		clipboard:  script.NewClipboard(),
		fontSize:   s.Prompter.FontSize,
	}

	g.view = textview.NewView(source, s.ViewOptions())
	g.view.SetText(body)
	g.layoutView()

	g.controls = NewControls(&text.GoTextFace{Source: source, Size: 14}, s.Colors.Panel.Color, ControlHandlers{
		OnTogglePlay: g.TogglePlay,
		OnReset:      g.Reset,
		OnSpeed:      func(v float64) { g.setSpeed(v, false) },
		OnFontSize:   g.AdjustFontSize,
		OnTextInput:  g.view.SetText,
		OnPaste:      g.pasteScript,
		OnReload:     g.reloadScript,
	})
	g.controls.SetPasteEnabled(g.clipboard.Available())
	g.controls.SetReloadEnabled(g.scriptPath != "")
	g.controls.SetFontSize(g.fontSize)

	g.animator = prompter.NewAnimator(g.view, g, g.frames)
	g.setSpeed(s.Prompter.Speed, false)

	if g.scriptPath != "" && s.Script.Watch {
		w, err := script.NewWatcher(g.scriptPath)
		if err != nil {
			log.Printf("script: watch %s: %v", g.scriptPath, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// Close stops the script watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.pollScript()
	g.layoutView()

	g.controls.ui.Update()
	g.handleKeys(inpututil.IsKeyJustPressed)

	g.frames.RunFrame()
	g.toast.Update(1 / float32(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	g.controls.ui.Draw(screen)

	if g.toast.Visible() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(g.width)-24, 20)
		op.PrimaryAlign = text.AlignEnd
		op.ColorScale.ScaleAlpha(g.toast.Alpha())
		text.Draw(screen, g.toast.Text(), g.toastFg, op)
	}

	if g.debug {
		st := g.animator.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  pos: %.1f / %.1f  speed: %.1f  playing: %v",
			ebiten.ActualFPS(), st.Position,
			prompter.MaxScroll(g.view.ContentHeight(), g.view.VisibleHeight()), st.Speed, st.Playing))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// handleKeys runs the key bindings unless the text input has focus, where
// only Escape is handled.
func (g *Game) handleKeys(pressed keys.JustPressed) {
	if g.controls.InputFocused() {
		if pressed(ebiten.KeyEscape) {
			g.controls.BlurInput()
		}
		return
	}
	keys.Dispatch(pressed, g.bindings, g)
}

// layoutView gives the text view everything above the panel.
func (g *Game) layoutView() {
	h := g.height
	if !g.panelHidden {
		h -= panelHeight
	}
	if h < 0 {
		h = 0
	}
	g.view.SetBounds(image.Rect(0, 0, g.width, h))
}

// SetPlaying is the animator's indicator.
func (g *Game) SetPlaying(playing bool) {
	g.controls.SetPlaying(playing)
}

func (g *Game) TogglePlay() {
	g.animator.TogglePlay()
	if g.animator.Playing() {
		g.toast.Show("Playing")
	} else {
		g.toast.Show("Paused")
	}
}

func (g *Game) Reset() {
	g.animator.Reset()
	g.toast.Show("Top")
}

func (g *Game) AdjustSpeed(steps int) {
	g.setSpeed(prompter.StepSpeed(g.animator.Speed(), steps), true)
}

func (g *Game) AdjustFontSize(steps int) {
	size := prompter.StepFontSize(g.fontSize, steps)
	if size == g.fontSize {
		return
	}
	g.fontSize = size
	g.view.SetFontSize(size)
	g.controls.SetFontSize(size)
	g.toast.Show(fmt.Sprintf("Font %d", size))
}

func (g *Game) TogglePanel() {
	g.panelHidden = !g.panelHidden
	g.controls.SetVisible(!g.panelHidden)
	g.layoutView()
}

func (g *Game) setSpeed(v float64, announce bool) {
	v = prompter.ClampSpeed(v)
	g.animator.SetSpeed(v)
	g.controls.SetSpeed(v)
	if announce {
		g.toast.Show("Speed " + prompter.FormatSpeed(v))
	}
}

func (g *Game) pollScript() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil {
		log.Printf("script: watch: %v", err)
	}
	if _, changed := g.watcher.Poll(); changed {
		g.reloadScript()
	}
}

func (g *Game) reloadScript() {
	if g.scriptPath == "" {
		return
	}
	body, err := script.Load(g.scriptPath)
	if err != nil {
		log.Printf("script: reload: %v", err)
		return
	}
	g.view.SetText(body)
	g.toast.Show("Reloaded")
}

func (g *Game) pasteScript() {
	body, ok := g.clipboard.ReadText()
	if !ok {
		if err := g.clipboard.Err(); err != nil {
			log.Printf("script: clipboard: %v", err)
		}
		return
	}
	g.view.SetText(body)
	g.toast.Show("Pasted")
}
