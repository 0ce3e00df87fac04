package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/prompter/assets"
	"gopkg.in/yaml.v3"
)

// LocalFile is picked up from the working directory when no path is given.
const LocalFile = "prompter.yaml"

// Load decodes the embedded defaults, then overlays path on top. With an
// empty path a prompter.yaml in the working directory is used if present.
func Load(path string) (*Settings, error) {
	data, err := assets.LoadFile(assets.DefaultSettings)
	if err != nil {
		return nil, fmt.Errorf("settings: load defaults: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("settings: unmarshal defaults: %w", err)
	}

	overlay, name, err := readOverlay(path)
	if err != nil {
		return nil, err
	}
	if overlay != nil {
		if err := yaml.Unmarshal(overlay, &s); err != nil {
			return nil, fmt.Errorf("settings: unmarshal %s: %w", name, err)
		}
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func readOverlay(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("settings: load %s: %w", path, err)
		}
		return data, path, nil
	}

	data, err := os.ReadFile(LocalFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, LocalFile, nil
	}
	if err != nil {
		return nil, LocalFile, fmt.Errorf("settings: load %s: %w", LocalFile, err)
	}
	return data, LocalFile, nil
}
