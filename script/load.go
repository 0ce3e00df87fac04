package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/milk9111/prompter/assets"
)

// Load reads the script at path. An empty path returns the bundled sample.
func Load(path string) (string, error) {
	if path == "" {
		data, err := assets.LoadFile(assets.SampleScript)
		if err != nil {
			return "", fmt.Errorf("script: load sample: %w", err)
		}
		return Normalize(string(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("script: load %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}

// Normalize converts line endings to '\n' and drops a UTF-8 byte order mark
// and trailing newlines.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimRight(s, "\n")
}
