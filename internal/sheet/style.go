package sheet

import (
	"math"

	"github.com/five82/sheetcal/internal/position"
)

// Inputs are the continuous values a frame's styles are computed from.
type Inputs struct {
	Drag          float64
	Threshold     float64
	CrossfadeBand float64
	Positions     position.Values
	HeaderHeight  float64
	TopInset      float64
}

// Style is the derived visual state for one frame.
type Style struct {
	// MonthTranslateY is the month grid's vertical translation. It is zero
	// at d = 0 and reaches EndTranslateY at d = T.
	MonthTranslateY float64
	EndTranslateY   float64

	MonthOpacity float64
	WeekOpacity  float64

	MonthInteractive bool
	WeekInteractive  bool

	// Progress is d/T clamped to [0, 1].
	Progress float64
}

// Compute derives the frame's styles. It is pure and safe to call from any
// goroutine.
func Compute(in Inputs) Style {
	t := in.Threshold
	if t <= 0 {
		t = minThreshold
	}
	d := clamp(in.Drag, 0, t)
	band := clamp(in.CrossfadeBand, 0, t)

	anchor := in.Positions.WeekRowOffset + in.HeaderHeight + in.TopInset
	end := anchor - in.Positions.SelectedDayOffset

	monthOpacity := 0.0
	switch {
	case d >= t:
		monthOpacity = 1
	case band > 0:
		monthOpacity = clamp((d-(t-band))/band, 0, 1)
	}

	expanded := d >= t
	return Style{
		MonthTranslateY:  Lerp(d, 0, t, 0, end),
		EndTranslateY:    end,
		MonthOpacity:     monthOpacity,
		WeekOpacity:      1 - monthOpacity,
		MonthInteractive: expanded,
		WeekInteractive:  !expanded,
		Progress:         d / t,
	}
}

// Lerp maps x from [x0, x1] onto [y0, y1], clamping x to the input range.
func Lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	x = clamp(x, math.Min(x0, x1), math.Max(x0, x1))
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
