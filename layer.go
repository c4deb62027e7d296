package textfx

import (
	"maps"
	"slices"
)

// LayerType identifies the kind of a layer.
type LayerType string

// Known layer types. Layers of any other type are preserved but never drawn.
const (
	TypeFill         LayerType = "fill"
	TypeGradientFill LayerType = "gradientFill"
	TypeDropShadow   LayerType = "dropShadow"
	TypeStroke       LayerType = "stroke"
	TypeOuterGlow    LayerType = "outerGlow"
	TypeExtrusion    LayerType = "extrusion"
)

// LayerTypes returns the known layer types in menu order.
func LayerTypes() []LayerType {
	return []LayerType{TypeFill, TypeGradientFill, TypeDropShadow, TypeStroke, TypeOuterGlow, TypeExtrusion}
}

// Known reports whether t is one of the built-in layer types.
func (t LayerType) Known() bool {
	return slices.Contains(LayerTypes(), t)
}

// DisplayName returns the default layer name for t.
func (t LayerType) DisplayName() string {
	switch t {
	case TypeFill:
		return "Fill"
	case TypeGradientFill:
		return "Gradient Fill"
	case TypeDropShadow:
		return "Drop Shadow"
	case TypeStroke:
		return "Stroke"
	case TypeOuterGlow:
		return "Outer Glow"
	case TypeExtrusion:
		return "Extrusion"
	default:
		return string(t)
	}
}

// Default colors per layer type.
const (
	DefaultFillColor      = "#000000"
	DefaultShadowColor    = "#000000"
	DefaultStrokeColor    = "#000000"
	DefaultGlowColor      = "#6E00AF"
	DefaultExtrusionColor = "#DE5221"
)

// Params holds the type-specific parameters of a layer.
type Params interface {
	// LayerType returns the type the params belong to.
	LayerType() LayerType
}

// Layer is one entry of a layer stack.
type Layer struct {
	ID      string
	Name    string
	Enabled bool
	Params  Params
}

// Type returns the layer type derived from its params. A layer without
// params has the empty type.
func (l Layer) Type() LayerType {
	if l.Params == nil {
		return ""
	}
	return l.Params.LayerType()
}

// Clone returns a deep copy of l.
func (l Layer) Clone() Layer {
	l.Params = cloneParams(l.Params)
	return l
}

// FillParams configures a solid fill.
type FillParams struct {
	Color string
}

// LayerType implements Params.
func (FillParams) LayerType() LayerType { return TypeFill }

// GradientStop is one color stop of a gradient fill.
type GradientStop struct {
	OffsetPct float64
	Color     string
}

// LegacyGradient holds the three-color gradient fields of old configs.
// Empty colors and a nil midpoint mean the field was absent.
type LegacyGradient struct {
	TopColor    string
	MidColor    string
	BottomColor string
	MidpointPct *float64
}

// GradientFillParams configures a linear gradient fill. AngleDeg is the
// gradient axis measured from +x with y pointing down, so 90 runs top to
// bottom. An explicit 0 runs left to right; the browser editor read 0 as
// unset, so its saved presets with angle 0 rendered top to bottom there.
type GradientFillParams struct {
	Stops    []GradientStop
	AngleDeg float64
	Legacy   *LegacyGradient
}

// LayerType implements Params.
func (GradientFillParams) LayerType() LayerType { return TypeGradientFill }

// ShadowBlend is the compositing mode of a drop shadow.
type ShadowBlend string

const (
	ShadowNormal   ShadowBlend = "normal"
	ShadowMultiply ShadowBlend = "multiply"
)

// DropShadowParams configures a drop shadow.
type DropShadowParams struct {
	Blend      ShadowBlend
	Color      string
	OpacityPct float64
	AngleDeg   float64
	DistancePx float64
	SpreadPct  float64
	SizePx     float64
}

// LayerType implements Params.
func (DropShadowParams) LayerType() LayerType { return TypeDropShadow }

// StrokeParams configures an outside stroke.
type StrokeParams struct {
	Color      string
	OpacityPct float64
	WidthPx    float64
}

// LayerType implements Params.
func (StrokeParams) LayerType() LayerType { return TypeStroke }

// OuterGlowParams configures a glow outside the glyphs.
type OuterGlowParams struct {
	Color      string
	OpacityPct float64
	SizePx     float64
	DX         float64
	DY         float64
}

// LayerType implements Params.
func (OuterGlowParams) LayerType() LayerType { return TypeOuterGlow }

// ExtrusionParams configures a stepped extrusion trail. Steps may be
// fractional; the last partial step is drawn at reduced opacity.
type ExtrusionParams struct {
	Color      string
	OpacityPct float64
	Steps      float64
	DX         float64
	DY         float64
	BlurPx     float64
}

// LayerType implements Params.
func (ExtrusionParams) LayerType() LayerType { return TypeExtrusion }

// UnknownParams keeps the raw fields of a layer type this version does not
// know, so documents round-trip without loss.
type UnknownParams struct {
	TypeName string
	Fields   map[string]any
}

// LayerType implements Params.
func (p UnknownParams) LayerType() LayerType { return LayerType(p.TypeName) }

// DefaultStops returns the warm three-stop gradient used for new gradient
// fills and as the normalizer fallback.
func DefaultStops() []GradientStop {
	return []GradientStop{
		{OffsetPct: 0, Color: "#FF8F1F"},
		{OffsetPct: 55, Color: "#FFD33A"},
		{OffsetPct: 100, Color: "#FFF2A6"},
	}
}

// DefaultParams returns the factory params for t. Unknown types get empty
// UnknownParams.
func DefaultParams(t LayerType) Params {
	switch t {
	case TypeFill:
		return FillParams{Color: DefaultFillColor}
	case TypeGradientFill:
		return GradientFillParams{Stops: DefaultStops(), AngleDeg: 90}
	case TypeDropShadow:
		return DropShadowParams{
			Blend:      ShadowNormal,
			Color:      DefaultShadowColor,
			OpacityPct: 19,
			AngleDeg:   66,
			DistancePx: 7,
			SpreadPct:  15,
			SizePx:     10,
		}
	case TypeStroke:
		return StrokeParams{Color: DefaultStrokeColor, OpacityPct: 100, WidthPx: 4}
	case TypeOuterGlow:
		return OuterGlowParams{Color: DefaultGlowColor, OpacityPct: 55, SizePx: 14, DY: 8}
	case TypeExtrusion:
		return ExtrusionParams{Color: DefaultExtrusionColor, OpacityPct: 96, Steps: 7, DY: 3}
	default:
		return UnknownParams{TypeName: string(t), Fields: map[string]any{}}
	}
}

// NewLayer creates an enabled layer of type t with default params and the
// type's display name.
func NewLayer(id string, t LayerType) Layer {
	return Layer{
		ID:      id,
		Name:    t.DisplayName(),
		Enabled: true,
		Params:  DefaultParams(t),
	}
}

func cloneParams(p Params) Params {
	switch v := p.(type) {
	case GradientFillParams:
		v.Stops = slices.Clone(v.Stops)
		if v.Legacy != nil {
			lg := *v.Legacy
			if lg.MidpointPct != nil {
				mp := *lg.MidpointPct
				lg.MidpointPct = &mp
			}
			v.Legacy = &lg
		}
		return v
	case UnknownParams:
		v.Fields = maps.Clone(v.Fields)
		return v
	default:
		return p
	}
}

func cloneLayers(layers []Layer) []Layer {
	out := make([]Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}
