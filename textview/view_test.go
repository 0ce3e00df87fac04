package textview

import (
	"image"
	"testing"
	"unicode/utf8"
)

// newTestView builds a view whose glyphs are half the font size wide, so
// layout runs without loading a font.
func newTestView(opts Options) *View {
	v := &View{opts: opts, dirty: true}
	v.measure = func(s string, size int) float64 {
		return float64(utf8.RuneCountInString(s)*size) / 2
	}
	return v
}

func TestViewContentHeight(t *testing.T) {
	v := newTestView(Options{FontSize: 20, LineSpacing: 1.5})
	v.SetBounds(image.Rect(0, 0, 200, 100))
	v.SetText("one\ntwo\nthree")

	// three lines of 30px plus 50px lead-in above and below
	if got := v.ContentHeight(); got != 190 {
		t.Fatalf("expected 190, got %v", got)
	}
	if got := v.VisibleHeight(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestViewFontSizeChangesContentHeight(t *testing.T) {
	v := newTestView(Options{FontSize: 12, LineSpacing: 1.4, Margin: 10})
	v.SetBounds(image.Rect(0, 0, 300, 200))
	v.SetText("Good evening. Tonight we look at how a teleprompter keeps the speaker's eyes on the lens while the words roll by at a steady pace.")

	small := v.ContentHeight()
	smallLines := len(v.Lines())

	v.SetFontSize(48)
	large := v.ContentHeight()
	if large <= small {
		t.Fatalf("content height should grow with font size: %v -> %v", small, large)
	}
	if len(v.Lines()) <= smallLines {
		t.Fatalf("larger font should wrap into more lines: %d -> %d", smallLines, len(v.Lines()))
	}
}

func TestViewRewrapsOnWidthChange(t *testing.T) {
	v := newTestView(Options{FontSize: 10})
	v.SetBounds(image.Rect(0, 0, 100, 50))
	v.SetText("aaaa bbbb cccc dddd")
	wide := len(v.Lines())

	v.SetBounds(image.Rect(0, 0, 50, 50))
	if narrow := len(v.Lines()); narrow <= wide {
		t.Fatalf("narrower bounds should add lines: %d -> %d", wide, narrow)
	}
}

func TestViewClampedOffset(t *testing.T) {
	v := newTestView(Options{FontSize: 10, LineSpacing: 1})
	v.SetBounds(image.Rect(0, 0, 100, 40))
	v.SetText("a\nb\nc\nd")
	// 4 lines * 10 + 2 * 20 lead-in = 80, max scroll 40

	cases := []struct {
		offset, want float64
	}{
		{-5, 0},
		{15, 15},
		{400, 40},
	}
	for _, c := range cases {
		v.SetScrollOffset(c.offset)
		if got := v.clampedOffset(); got != c.want {
			t.Fatalf("offset %v clamped to %v, want %v", c.offset, got, c.want)
		}
		if v.ScrollOffset() != c.offset {
			t.Fatalf("stored offset should stay %v", c.offset)
		}
	}
}

func TestViewVisibleRange(t *testing.T) {
	v := newTestView(Options{FontSize: 10, LineSpacing: 1})
	v.SetBounds(image.Rect(0, 0, 100, 40))
	v.SetText("a\nb\nc\nd\ne\nf\ng\nh")

	v.SetScrollOffset(0)
	first, last := v.visibleRange()
	if first != 0 || last != 3 {
		t.Fatalf("at top expected [0,3), got [%d,%d)", first, last)
	}

	v.SetScrollOffset(60)
	first, last = v.visibleRange()
	if first != 4 || last != 8 {
		t.Fatalf("at offset 60 expected [4,8), got [%d,%d)", first, last)
	}
}

func TestViewSetTextSameIsNoop(t *testing.T) {
	v := newTestView(Options{FontSize: 10})
	v.SetBounds(image.Rect(0, 0, 100, 40))
	v.SetText("x")
	_ = v.Lines()
	v.SetText("x")
	if v.dirty {
		t.Fatalf("setting identical text should not dirty the layout")
	}
}
