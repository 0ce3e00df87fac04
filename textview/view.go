package textview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Align selects the horizontal placement of each line.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	default:
		return "unknown"
	}
}

// leadIn is the fraction of the visible height left blank above the first
// line and below the last, so reading starts and ends mid-screen.
const leadIn = 0.5

type Options struct {
	FontSize    int
	LineSpacing float64
	Margin      float64
	Align       Align
	Text        color.Color
	Background  color.Color
	Guide       color.Color
	ShowGuide   bool
	Mirror      bool
}

// View is the scrollable text region. It wraps lazily: changing the text,
// font size or bounds marks the layout dirty and the next ContentHeight or
// Draw re-wraps.
type View struct {
	source *text.GoTextFaceSource
	face   *text.GoTextFace
	// measure is swapped out in tests so layout runs without a font
	measure func(s string, size int) float64

	opts   Options
	text   string
	bounds image.Rectangle
	offset float64

	lines  []string
	dirty  bool
	canvas *ebiten.Image
}

func NewView(source *text.GoTextFaceSource, opts Options) *View {
	v := &View{source: source}
	v.measure = v.advance
	v.opts = opts
	v.SetFontSize(opts.FontSize)
	return v
}

func (v *View) advance(s string, size int) float64 {
	if v.face == nil || int(v.face.Size) != size {
		v.face = &text.GoTextFace{Source: v.source, Size: float64(size)}
	}
	return text.Advance(s, v.face)
}

func (v *View) SetText(s string) {
	if s == v.text {
		return
	}
	v.text = s
	v.dirty = true
}

func (v *View) Text() string {
	return v.text
}

func (v *View) SetFontSize(size int) {
	if size <= 0 {
		return
	}
	if size == v.opts.FontSize && v.lines != nil {
		return
	}
	v.opts.FontSize = size
	if v.source != nil {
		v.face = &text.GoTextFace{Source: v.source, Size: float64(size)}
	}
	v.dirty = true
}

func (v *View) FontSize() int {
	return v.opts.FontSize
}

// SetBounds places the view on screen. The visible height follows it.
func (v *View) SetBounds(r image.Rectangle) {
	if r == v.bounds {
		return
	}
	if r.Dx() != v.bounds.Dx() {
		v.dirty = true
	}
	if v.canvas != nil && v.canvas.Bounds().Size() != r.Size() {
		v.canvas.Deallocate()
		v.canvas = nil
	}
	v.bounds = r
}

func (v *View) Bounds() image.Rectangle {
	return v.bounds
}

func (v *View) SetMirror(mirror bool) {
	v.opts.Mirror = mirror
}

func (v *View) Mirror() bool {
	return v.opts.Mirror
}

func (v *View) SetShowGuide(show bool) {
	v.opts.ShowGuide = show
}

func (v *View) LineHeight() float64 {
	spacing := v.opts.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	return float64(v.opts.FontSize) * spacing
}

// Lines returns the wrapped lines for the current text and width.
func (v *View) Lines() []string {
	v.relayout()
	return v.lines
}

func (v *View) ContentHeight() float64 {
	v.relayout()
	return float64(len(v.lines))*v.LineHeight() + 2*v.padTop()
}

func (v *View) VisibleHeight() float64 {
	return float64(v.bounds.Dy())
}

func (v *View) SetScrollOffset(offset float64) {
	v.offset = offset
}

func (v *View) ScrollOffset() float64 {
	return v.offset
}

func (v *View) padTop() float64 {
	return v.VisibleHeight() * leadIn
}

func (v *View) wrapWidth() float64 {
	return float64(v.bounds.Dx()) - 2*v.opts.Margin
}

func (v *View) relayout() {
	if !v.dirty && v.lines != nil {
		return
	}
	size := v.opts.FontSize
	v.lines = Layout(v.text, v.wrapWidth(), func(s string) float64 {
		return v.measure(s, size)
	})
	v.dirty = false
}

// clampedOffset keeps drawing inside the content after a re-wrap shrank it.
func (v *View) clampedOffset() float64 {
	maxScroll := v.ContentHeight() - v.VisibleHeight()
	if maxScroll < 0 {
		maxScroll = 0
	}
	switch {
	case v.offset < 0:
		return 0
	case v.offset > maxScroll:
		return maxScroll
	}
	return v.offset
}

// visibleRange returns the indexes [first, last) of lines that intersect the view.
func (v *View) visibleRange() (int, int) {
	v.relayout()
	lh := v.LineHeight()
	if lh <= 0 || len(v.lines) == 0 {
		return 0, 0
	}
	top := v.clampedOffset() - v.padTop()
	first := int(top / lh)
	if first < 0 {
		first = 0
	}
	last := int((top+v.VisibleHeight())/lh) + 1
	if last > len(v.lines) {
		last = len(v.lines)
	}
	if first > last {
		first = last
	}
	return first, last
}

// Draw renders the visible lines into the view's bounds on dst.
func (v *View) Draw(dst *ebiten.Image) {
	if v.bounds.Empty() {
		return
	}
	area := dst.SubImage(v.bounds).(*ebiten.Image)
	if v.opts.Background != nil {
		area.Fill(v.opts.Background)
	}

	target := area
	origin := v.bounds.Min
	if v.opts.Mirror {
		if v.canvas == nil {
			v.canvas = ebiten.NewImage(v.bounds.Dx(), v.bounds.Dy())
		}
		v.canvas.Clear()
		target = v.canvas
		origin = image.Point{}
	}

	v.drawLines(target, origin)

	if v.opts.Mirror {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(v.bounds.Max.X), float64(v.bounds.Min.Y))
		area.DrawImage(v.canvas, op)
	}

	if v.opts.ShowGuide && v.opts.Guide != nil {
		lh := float32(v.LineHeight())
		y := float32(v.bounds.Min.Y) + float32(v.padTop())
		vector.DrawFilledRect(area, float32(v.bounds.Min.X), y, float32(v.bounds.Dx()), lh, v.opts.Guide, false)
	}
}

func (v *View) drawLines(dst *ebiten.Image, origin image.Point) {
	if v.face == nil {
		return
	}
	first, last := v.visibleRange()
	lh := v.LineHeight()
	top := float64(origin.Y) + v.padTop() - v.clampedOffset()

	op := &text.DrawOptions{}
	x := float64(origin.X) + v.opts.Margin
	if v.opts.Align == AlignCenter {
		x = float64(origin.X) + float64(v.bounds.Dx())/2
		op.PrimaryAlign = text.AlignCenter
	}
	// center the glyphs vertically inside the line box
	inset := (lh - float64(v.opts.FontSize)) / 2

	for i := first; i < last; i++ {
		if v.lines[i] == "" {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(x, top+float64(i)*lh+inset)
		op.ColorScale.Reset()
		if v.opts.Text != nil {
			op.ColorScale.ScaleWithColor(v.opts.Text)
		}
		text.Draw(dst, v.lines[i], v.face, op)
	}
}
