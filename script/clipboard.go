package script

import (
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard reads script text from the system clipboard. On systems without
// one (headless X11, CI) it reports itself unavailable instead of failing.
type Clipboard struct {
	once      sync.Once
	available bool
	err       error
	read      func() []byte
}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) init() {
	c.once.Do(func() {
		if c.read != nil {
			c.available = true
			return
		}
		if err := clipboard.Init(); err != nil {
			c.err = err
			return
		}
		c.read = func() []byte { return clipboard.Read(clipboard.FmtText) }
		c.available = true
	})
}

// Available initialises the clipboard on first use.
func (c *Clipboard) Available() bool {
	c.init()
	return c.available
}

// Err is the initialisation error, if any.
func (c *Clipboard) Err() error {
	c.init()
	return c.err
}

// ReadText returns the clipboard text, normalised like a loaded script.
// It reports false when the clipboard is unavailable or holds no text.
func (c *Clipboard) ReadText() (string, bool) {
	if !c.Available() {
		return "", false
	}
	data := c.read()
	if len(data) == 0 {
		return "", false
	}
	return Normalize(string(data)), true
}
