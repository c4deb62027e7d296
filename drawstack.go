package textfx

import "slices"

// DrawPhase orders layer types within a render.
type DrawPhase int

const (
	// PhaseEffect draws behind the glyphs: shadows, glows and extrusions.
	PhaseEffect DrawPhase = iota
	// PhaseBaseFill draws the single base fill.
	PhaseBaseFill
	// PhaseOther draws layers of unknown type.
	PhaseOther
	// PhaseStroke draws outside strokes last.
	PhaseStroke
)

func (p DrawPhase) String() string {
	switch p {
	case PhaseEffect:
		return "effect"
	case PhaseBaseFill:
		return "base-fill"
	case PhaseOther:
		return "other"
	case PhaseStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// PhaseOf returns the draw phase of layers of type t.
func PhaseOf(t LayerType) DrawPhase {
	switch t {
	case TypeDropShadow, TypeOuterGlow, TypeExtrusion:
		return PhaseEffect
	case TypeFill, TypeGradientFill:
		return PhaseBaseFill
	case TypeStroke:
		return PhaseStroke
	default:
		return PhaseOther
	}
}

// RenderStack is the draw sequence derived from a layer stack.
type RenderStack struct {
	// Enabled holds every enabled layer in stack order.
	Enabled []Layer
	// Draw holds the layers to draw, in draw order.
	Draw []Layer
}

// BuildRenderStack derives the draw sequence of layers.
//
// Only enabled layers take part. At most one fill is drawn: the last enabled
// gradient fill, or else the last enabled solid fill. Layers are drawn by
// phase (effects, base fill, other, strokes) and keep their stack order
// within a phase.
func BuildRenderStack(layers []Layer) RenderStack {
	enabled := make([]Layer, 0, len(layers))
	for _, l := range layers {
		if l.Enabled {
			enabled = append(enabled, l)
		}
	}

	base := -1
	for i, l := range enabled {
		if l.Type() == TypeGradientFill {
			base = i
		}
	}
	if base < 0 {
		for i, l := range enabled {
			if l.Type() == TypeFill {
				base = i
			}
		}
	}

	draw := make([]Layer, 0, len(enabled))
	for i, l := range enabled {
		if PhaseOf(l.Type()) == PhaseBaseFill && i != base {
			continue
		}
		draw = append(draw, l)
	}
	slices.SortStableFunc(draw, func(a, b Layer) int {
		return int(PhaseOf(a.Type())) - int(PhaseOf(b.Type()))
	})
	return RenderStack{Enabled: enabled, Draw: draw}
}
