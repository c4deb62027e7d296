package preset

import "github.com/gogpu/textfx"

// legacyMidpoint is the midpoint of documents that stored a mid color
// without one.
const legacyMidpoint = 55

// migrateGradient rewrites p to the stop list form and drops its legacy
// fields. hasStops reports whether the source carried a stop list at all.
//
// An existing list is kept, except that an empty one becomes a single 50%
// stop of fallback (black when fallback is empty). Without a list the
// stops are built from the legacy top, mid and bottom colors that are
// present, or from the default warm gradient with fallback in the middle.
func migrateGradient(p textfx.GradientFillParams, hasStops bool, fallback string) textfx.GradientFillParams {
	lg := p.Legacy
	p.Legacy = nil

	if hasStops {
		if len(p.Stops) == 0 {
			p.Stops = []textfx.GradientStop{{OffsetPct: 50, Color: orColor(fallback, "#000000")}}
		}
		return p
	}

	var stops []textfx.GradientStop
	if lg != nil {
		mid := float64(legacyMidpoint)
		if lg.MidpointPct != nil {
			mid = *lg.MidpointPct
		}
		if lg.TopColor != "" {
			stops = append(stops, textfx.GradientStop{OffsetPct: 0, Color: lg.TopColor})
		}
		if lg.MidColor != "" {
			stops = append(stops, textfx.GradientStop{OffsetPct: mid, Color: lg.MidColor})
		}
		if lg.BottomColor != "" {
			stops = append(stops, textfx.GradientStop{OffsetPct: 100, Color: lg.BottomColor})
		}
	}
	if len(stops) == 0 {
		stops = textfx.DefaultStops()
		if fallback != "" {
			stops[1].Color = fallback
		}
	}
	p.Stops = stops
	return p
}

func orColor(c, def string) string {
	if c == "" {
		return def
	}
	return c
}
