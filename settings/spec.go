package settings

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/prompter/keys"
	"github.com/milk9111/prompter/prompter"
	"github.com/milk9111/prompter/textview"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Window   WindowSpec          `yaml:"window"`
	Prompter PrompterSpec        `yaml:"prompter"`
	Colors   ColorsSpec          `yaml:"colors"`
	Script   ScriptSpec          `yaml:"script"`
	Keys     map[string][]string `yaml:"keys"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PrompterSpec struct {
	Speed        float64 `yaml:"speed"`
	FontSize     int     `yaml:"font_size"`
	LineSpacing  float64 `yaml:"line_spacing"`
	Margin       float64 `yaml:"margin"`
	Align        string  `yaml:"align"`
	Mirror       bool    `yaml:"mirror"`
	ReadingGuide bool    `yaml:"reading_guide"`
}

type ColorsSpec struct {
	Background YAMLColor `yaml:"background"`
	Text       YAMLColor `yaml:"text"`
	Guide      YAMLColor `yaml:"guide"`
	Panel      YAMLColor `yaml:"panel"`
}

type ScriptSpec struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// Normalize pulls numeric fields into range and fills unset ones.
func (s *Settings) Normalize() {
	if s.Window.Width <= 0 {
		s.Window.Width = 1280
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 720
	}
	if s.Window.Title == "" {
		s.Window.Title = "prompter"
	}

	if s.Prompter.Speed == 0 {
		s.Prompter.Speed = prompter.DefaultSpeed
	}
	s.Prompter.Speed = prompter.ClampSpeed(s.Prompter.Speed)
	if s.Prompter.FontSize == 0 {
		s.Prompter.FontSize = prompter.DefaultFontSize
	}
	s.Prompter.FontSize = prompter.ClampFontSize(s.Prompter.FontSize)
	if s.Prompter.LineSpacing <= 0 {
		s.Prompter.LineSpacing = 1.4
	}
	if s.Prompter.Margin < 0 {
		s.Prompter.Margin = 0
	}

	s.Colors.Background.orDefault(color.Black)
	s.Colors.Text.orDefault(color.White)
	s.Colors.Guide.orDefault(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14})
	s.Colors.Panel.orDefault(color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xe6})
}

// Validate reports settings that cannot be used as given.
func (s *Settings) Validate() error {
	if _, err := s.Align(); err != nil {
		return err
	}
	if _, err := s.Bindings(); err != nil {
		return err
	}
	return nil
}

func (s *Settings) Align() (textview.Align, error) {
	switch strings.ToLower(strings.TrimSpace(s.Prompter.Align)) {
	case "", "center":
		return textview.AlignCenter, nil
	case "left":
		return textview.AlignLeft, nil
	default:
		return 0, fmt.Errorf("settings: invalid align %q", s.Prompter.Align)
	}
}

// Bindings applies the keys section on top of the default key bindings.
func (s *Settings) Bindings() (keys.Bindings, error) {
	b, err := keys.DefaultBindings().Override(s.Keys)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return b, nil
}

// ViewOptions converts the settings into text view options.
func (s *Settings) ViewOptions() textview.Options {
	align, _ := s.Align()
	return textview.Options{
		FontSize:    s.Prompter.FontSize,
		LineSpacing: s.Prompter.LineSpacing,
		Margin:      s.Prompter.Margin,
		Align:       align,
		Text:        s.Colors.Text.Color,
		Background:  s.Colors.Background.Color,
		Guide:       s.Colors.Guide.Color,
		ShowGuide:   s.Prompter.ReadingGuide,
		Mirror:      s.Prompter.Mirror,
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) orDefault(def color.Color) {
	if c.Color == nil {
		c.Color = def
	}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("settings: color at line %d must be a string", value.Line)
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("settings: color %q: want #rrggbb or #rrggbbaa", value.Value)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("settings: color %q: %w", value.Value, err)
		}
		ch[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return nil
}
