package main

import (
	"image/color"
	"math"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/prompter/prompter"
)

const panelHeight = 56

// ControlHandlers are the calls the panel makes into the game. The panel
// keeps no prompter state of its own.
type ControlHandlers struct {
	OnTogglePlay func()
	OnReset      func()
	OnSpeed      func(v float64)
	OnFontSize   func(steps int)
	OnTextInput  func(s string)
	OnPaste      func()
	OnReload     func()
}

// Controls is the settings panel along the bottom of the window.
type Controls struct {
	ui        *ebitenui.UI
	root      *widget.Container
	panel     *widget.Container
	playBtn   *widget.Button
	speed     *widget.Slider
	speedText *widget.Text
	fontText  *widget.Text
	input     *widget.TextInput
	pasteBtn  *widget.Button
	reloadBtn *widget.Button
}

func speedToTicks(v float64) int {
	return int(math.Round(v / prompter.SpeedStep))
}

func ticksToSpeed(n int) float64 {
	return prompter.ClampSpeed(float64(n) * prompter.SpeedStep)
}

// NewControls builds the panel: play/pause, reset, a speed slider with its
// value, font size buttons, a text box that mirrors into the prompter, and
// paste/reload buttons.
func NewControls(face text.Face, panelColor color.Color, h ControlHandlers) *Controls {
	c := &Controls{}
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newPanelTheme(&face, panelColor)
	theme := ui.PrimaryTheme

	labelColor := color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{
		Idle:     color.White,
		Hover:    color.White,
		Pressed:  color.NRGBA{R: 0xaa, G: 0xcc, B: 0xff, A: 0xff},
		Disabled: color.Gray{Y: 128},
	}
	rowItem := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, minW int, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, 32), rowItem),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}
	label := func(s string, minW int) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, labelColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, 0), rowItem),
		)
	}

	c.playBtn = button("Play", 80, h.OnTogglePlay)
	resetBtn := button("Reset", 70, h.OnReset)

	c.speed = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(speedToTicks(prompter.MinSpeed), speedToTicks(prompter.MaxSpeed)),
		// arrow keys belong to the prompter bindings even when the slider has focus
		widget.SliderOpts.DisableDefaultKeys(true),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 16), rowItem),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if h.OnSpeed != nil {
				h.OnSpeed(ticksToSpeed(args.Current))
			}
		}),
	)
	c.speedText = label(prompter.FormatSpeed(prompter.DefaultSpeed), 44)

	fontDown := button("A-", 40, func() {
		if h.OnFontSize != nil {
			h.OnFontSize(-1)
		}
	})
	c.fontText = label(strconv.Itoa(prompter.DefaultFontSize), 28)
	fontUp := button("A+", 40, func() {
		if h.OnFontSize != nil {
			h.OnFontSize(1)
		}
	})

	c.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 28), rowItem),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if h.OnTextInput != nil {
				h.OnTextInput(args.InputText)
			}
		}),
	)

	c.pasteBtn = button("Paste", 70, h.OnPaste)
	c.reloadBtn = button("Reload", 70, h.OnReload)

	c.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, panelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	c.panel.AddChild(c.playBtn)
	c.panel.AddChild(resetBtn)
	c.panel.AddChild(label("Speed", 0))
	c.panel.AddChild(c.speed)
	c.panel.AddChild(c.speedText)
	c.panel.AddChild(fontDown)
	c.panel.AddChild(c.fontText)
	c.panel.AddChild(fontUp)
	c.panel.AddChild(c.input)
	c.panel.AddChild(c.pasteBtn)
	c.panel.AddChild(c.reloadBtn)

	c.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	c.root.AddChild(c.panel)

	ui.Container = c.root
	c.ui = ui
	return c
}

// SetPlaying makes the play button the play/pause indicator.
func (c *Controls) SetPlaying(playing bool) {
	label := "Play"
	if playing {
		label = "Pause"
	}
	if t := c.playBtn.Text(); t != nil {
		t.Label = label
	}
}

// SetSpeed moves the slider and its label to v without calling OnSpeed
// with a different value.
func (c *Controls) SetSpeed(v float64) {
	c.speed.Current = speedToTicks(v)
	c.speedText.Label = prompter.FormatSpeed(v)
}

func (c *Controls) SetFontSize(size int) {
	c.fontText.Label = strconv.Itoa(size)
}

func (c *Controls) SetPasteEnabled(enabled bool) {
	c.pasteBtn.GetWidget().Disabled = !enabled
}

func (c *Controls) SetReloadEnabled(enabled bool) {
	c.reloadBtn.GetWidget().Disabled = !enabled
}

func (c *Controls) SetVisible(visible bool) {
	if visible {
		c.panel.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.panel.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// InputFocused reports whether the text box owns the keyboard.
func (c *Controls) InputFocused() bool {
	return c.input.IsFocused()
}

func (c *Controls) BlurInput() {
	c.input.Focus(false)
}
