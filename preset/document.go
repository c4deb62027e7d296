package preset

import (
	"math"
	"maps"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/text"
)

// Version is the document version written by Export.
const Version = 1

// Request defaults applied by Session.Request.
const (
	DefaultFontSize = 143
	MinFontSize     = 8
	MaxFontSize     = 500

	DefaultPadding = 24
	MaxPadding     = 300

	MaxScale = 8
)

// Document is the encoded form of a layer stack.
type Document struct {
	Version int         `json:"version" yaml:"version" toml:"version"`
	Layers  []WireLayer `json:"layers" yaml:"layers" toml:"layers"`
	Session *Session    `json:"session,omitempty" yaml:"session,omitempty" toml:"session,omitempty"`
}

// WireLayer is one encoded layer. Params is a plain map so every codec
// writes it the same way.
type WireLayer struct {
	ID      string         `json:"id" yaml:"id" toml:"id"`
	Type    string         `json:"type" yaml:"type" toml:"type"`
	Name    string         `json:"name" yaml:"name" toml:"name"`
	Enabled bool           `json:"enabled" yaml:"enabled" toml:"enabled"`
	Params  map[string]any `json:"params" yaml:"params" toml:"params"`
}

// Session holds the text and request settings a document was saved with.
// Zero fields select the defaults; Padding is a pointer so an explicit 0
// survives.
type Session struct {
	Text      string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	FontSize  float64  `json:"fontSize,omitempty" yaml:"fontSize,omitempty" toml:"fontSize,omitempty"`
	Alignment string   `json:"alignment,omitempty" yaml:"alignment,omitempty" toml:"alignment,omitempty"`
	Padding   *float64 `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	Scale     float64  `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	ArcPct    float64  `json:"arcPct,omitempty" yaml:"arcPct,omitempty" toml:"arcPct,omitempty"`
	ShowBg    bool     `json:"showBg,omitempty" yaml:"showBg,omitempty" toml:"showBg,omitempty"`
	BgColor   string   `json:"bgColor,omitempty" yaml:"bgColor,omitempty" toml:"bgColor,omitempty"`
	FillColor string   `json:"fillColor,omitempty" yaml:"fillColor,omitempty" toml:"fillColor,omitempty"`
}

// Request returns the render request described by s. A nil session gives
// the defaults. Font size is clamped to [MinFontSize, MaxFontSize],
// padding to [0, MaxPadding] and scale to [1, MaxScale].
func (s *Session) Request() textfx.Request {
	var v Session
	if s != nil {
		v = *s
	}
	pad := float64(DefaultPadding)
	if v.Padding != nil && finite(*v.Padding) {
		pad = *v.Padding
	}
	return textfx.Request{
		Text:           v.Text,
		FontSize:       clamp(orDefault(v.FontSize, DefaultFontSize), MinFontSize, MaxFontSize),
		Align:          text.ParseAlign(v.Alignment),
		Padding:        clamp(pad, 0, MaxPadding),
		Scale:          clamp(orDefault(v.Scale, 1), 1, MaxScale),
		ArcPct:         clamp(orDefault(v.ArcPct, 0), 0, 100),
		ShowBackground: v.ShowBg,
		Background:     textfx.NormalizeHex(v.BgColor, textfx.DefaultBackground),
	}
}

// Export returns the document for layers. Gradient params are migrated to
// stop lists and non-finite numbers are written as 0.
func Export(layers []textfx.Layer, session *Session) Document {
	doc := Document{
		Version: Version,
		Layers:  make([]WireLayer, 0, len(layers)),
		Session: session,
	}
	for _, l := range layers {
		p := l.Params
		if g, ok := p.(textfx.GradientFillParams); ok {
			p = migrateGradient(g, g.Stops != nil || g.Legacy == nil, "")
		}
		doc.Layers = append(doc.Layers, WireLayer{
			ID:      l.ID,
			Type:    string(l.Type()),
			Name:    l.Name,
			Enabled: l.Enabled,
			Params:  encodeParams(p),
		})
	}
	return doc
}

// Encode encodes d with c.
func (d Document) Encode(c Codec) ([]byte, error) {
	return c.Marshal(d)
}

func encodeParams(p textfx.Params) map[string]any {
	switch v := p.(type) {
	case textfx.FillParams:
		return map[string]any{"color": v.Color}
	case textfx.GradientFillParams:
		stops := make([]map[string]any, len(v.Stops))
		for i, s := range v.Stops {
			stops[i] = map[string]any{"offsetPct": num(s.OffsetPct), "color": s.Color}
		}
		return map[string]any{"stops": stops, "angleDeg": num(v.AngleDeg)}
	case textfx.DropShadowParams:
		blend := v.Blend
		if blend == "" {
			blend = textfx.ShadowNormal
		}
		return map[string]any{
			"blend":      string(blend),
			"color":      v.Color,
			"opacityPct": num(v.OpacityPct),
			"angleDeg":   num(v.AngleDeg),
			"distancePx": num(v.DistancePx),
			"spreadPct":  num(v.SpreadPct),
			"sizePx":     num(v.SizePx),
		}
	case textfx.StrokeParams:
		return map[string]any{
			"color":      v.Color,
			"opacityPct": num(v.OpacityPct),
			"widthPx":    num(v.WidthPx),
		}
	case textfx.OuterGlowParams:
		return map[string]any{
			"color":      v.Color,
			"opacityPct": num(v.OpacityPct),
			"sizePx":     num(v.SizePx),
			"dx":         num(v.DX),
			"dy":         num(v.DY),
		}
	case textfx.ExtrusionParams:
		return map[string]any{
			"color":      v.Color,
			"opacityPct": num(v.OpacityPct),
			"steps":      num(v.Steps),
			"dx":         num(v.DX),
			"dy":         num(v.DY),
			"blurPx":     num(v.BlurPx),
		}
	case textfx.UnknownParams:
		if v.Fields == nil {
			return map[string]any{}
		}
		return maps.Clone(v.Fields)
	default:
		return map[string]any{}
	}
}

func num(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func orDefault(v, def float64) float64 {
	if v == 0 || !finite(v) {
		return def
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
