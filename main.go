package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/prompter/prompter"
	"github.com/milk9111/prompter/settings"
)

func main() {
	configPath := flag.String("config", "", "settings file (defaults to ./prompter.yaml when present)")
	scriptPath := flag.String("script", "", "text file to prompt; the bundled sample is used when empty")
	speed := flag.Float64("speed", 0, "initial speed, 0.1 to 5.0 (overrides settings)")
	fontSize := flag.Int("font", 0, "initial font size, 12 to 48 (overrides settings)")
	mirror := flag.Bool("mirror", false, "flip text horizontally for beam-splitter glass")
	debug := flag.Bool("debug", false, "show FPS and scroll position")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *speed != 0 {
		s.Prompter.Speed = prompter.ClampSpeed(*speed)
	}
	if *fontSize != 0 {
		s.Prompter.FontSize = prompter.ClampFontSize(*fontSize)
	}
	if *mirror {
		s.Prompter.Mirror = true
	}
	path := *scriptPath
	if path == "" {
		path = s.Script.Path
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)

	game, err := NewGame(Options{Settings: s, ScriptPath: path, Debug: *debug})
	if err != nil {
		log.Fatalf("prompter: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
