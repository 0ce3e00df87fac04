package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed *.yaml *.txt
var assetsFS embed.FS

const (
	DefaultSettings = "prompter.yaml"
	SampleScript    = "sample.txt"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// FontSource returns the shared Go Regular face source used for the script
// and the panel. It is parsed once.
func FontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontErr != nil {
			fontErr = fmt.Errorf("assets: load goregular: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
