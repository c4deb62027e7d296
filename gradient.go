package textfx

import (
	"math"
	"slices"

	"github.com/gogpu/textfx/surface"
)

// Legacy gradient defaults. Old configs stored a top, mid and bottom color
// with a movable midpoint.
const (
	legacyTopColor    = "#FFF2A6"
	legacyMidColor    = "#FFD33A"
	legacyBottomColor = "#FF8F1F"
	legacyMidpointPct = 55
)

// NormalizeStops returns the drawable stops of p sorted by offset.
//
// Stops without a valid 6-digit hex color are dropped and offsets are
// clamped to [0, 100]. Equal offsets keep their input order. When no usable
// stop remains the legacy top/mid/bottom fields are used if present, and
// otherwise the default warm gradient. The result is always non-empty and
// NormalizeStops is idempotent.
func NormalizeStops(p GradientFillParams) []GradientStop {
	stops := make([]GradientStop, 0, len(p.Stops))
	for _, s := range p.Stops {
		if !ValidHex(s.Color) {
			continue
		}
		stops = append(stops, GradientStop{
			OffsetPct: clampPct(s.OffsetPct, 0),
			Color:     NormalizeHex(s.Color, DefaultFillColor),
		})
	}
	if len(stops) > 0 {
		slices.SortStableFunc(stops, func(a, b GradientStop) int {
			switch {
			case a.OffsetPct < b.OffsetPct:
				return -1
			case a.OffsetPct > b.OffsetPct:
				return 1
			}
			return 0
		})
		return stops
	}

	if lg := p.Legacy; lg.present() {
		mid := float64(legacyMidpointPct)
		if lg.MidpointPct != nil {
			mid = clampPct(*lg.MidpointPct, legacyMidpointPct)
		}
		return []GradientStop{
			{OffsetPct: 0, Color: NormalizeHex(lg.TopColor, legacyTopColor)},
			{OffsetPct: mid, Color: NormalizeHex(lg.MidColor, legacyMidColor)},
			{OffsetPct: 100, Color: NormalizeHex(lg.BottomColor, legacyBottomColor)},
		}
	}
	return DefaultStops()
}

// present reports whether any legacy field was set.
func (lg *LegacyGradient) present() bool {
	if lg == nil {
		return false
	}
	return lg.TopColor != "" || lg.MidColor != "" || lg.BottomColor != "" || lg.MidpointPct != nil
}

// ColorRamp converts normalized stops to surface color stops with offsets
// in [0, 1].
func ColorRamp(stops []GradientStop) []surface.ColorStop {
	out := make([]surface.ColorStop, len(stops))
	for i, s := range stops {
		out[i] = surface.ColorStop{
			Offset: clampPct(s.OffsetPct, 0) / 100,
			Color:  hexColor(s.Color, DefaultFillColor, 1),
		}
	}
	return out
}

// nearestMidIndex returns the index of the stop closest to 50%, the first
// one on ties, or -1 for no stops.
func nearestMidIndex(stops []GradientStop) int {
	best, bestDist := -1, math.Inf(1)
	for i, s := range stops {
		if d := math.Abs(clampPct(s.OffsetPct, 0) - 50); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// clampPct clamps v to [0, 100], using fallback for non-finite values.
func clampPct(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = fallback
	}
	return math.Max(0, math.Min(100, v))
}
