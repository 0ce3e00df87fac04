package prompter

import (
	"fmt"

	"github.com/milk9111/prompter/common"
)

// Speed is measured in pixels advanced per frame.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 5.0
	SpeedStep    = 0.1
	DefaultSpeed = 0.5
)

const (
	MinFontSize     = 12
	MaxFontSize     = 48
	FontSizeStep    = 2
	DefaultFontSize = 24
)

// ClampSpeed snaps v to the 0.1 grid and limits it to [MinSpeed, MaxSpeed].
// The slider, the keyboard and the settings file all go through it.
func ClampSpeed(v float64) float64 {
	return common.Clamp(common.RoundTo(v, SpeedStep), MinSpeed, MaxSpeed)
}

// StepSpeed moves v by the given number of SpeedStep increments.
func StepSpeed(v float64, steps int) float64 {
	return ClampSpeed(v + float64(steps)*SpeedStep)
}

func ClampFontSize(n int) int {
	return common.ClampInt(n, MinFontSize, MaxFontSize)
}

func StepFontSize(n, steps int) int {
	return ClampFontSize(n + steps*FontSizeStep)
}

// FormatSpeed renders a speed the way the panel label shows it, e.g. "0.5x".
func FormatSpeed(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}
