package preset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/textfx"
)

// Config is an imported document.
type Config struct {
	// Stack holds the imported layers with the first one selected.
	Stack *textfx.Stack

	// Session is nil when the document has no session block.
	Session *Session
}

// Import decodes data with c and builds a layer stack from it.
//
// fallback is the fill color of the caller's session. It colors a base
// fill created or repaired during import and may be empty.
func Import(data []byte, c Codec, fallback string) (*Config, error) {
	var root map[string]any
	if err := c.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Format: c.Name, Err: err}
	}
	if root == nil {
		return nil, &DecodeError{Format: c.Name, Err: ErrNotDocument}
	}
	fallback = textfx.NormalizeHex(fallback, "")
	log := textfx.Logger()

	if v, ok := root["version"]; ok {
		if n, ok := toFloat(v); !ok || n != Version {
			log.Warn("preset: unexpected version", "version", v)
		}
	}

	var raw []any
	switch v := root["layers"].(type) {
	case []any:
		raw = v
	case nil:
	default:
		log.Warn("preset: layers is not a list", "type", fmt.Sprintf("%T", v))
	}

	layers := make([]textfx.Layer, 0, len(raw)+1)
	for i, entry := range raw {
		m, _ := entry.(map[string]any)
		id, okID := m["id"].(string)
		typ, okType := m["type"].(string)
		if !okID || !okType {
			log.Warn("preset: dropped layer without id or type", "index", i)
			continue
		}
		layers = append(layers, decodeLayer(id, textfx.LayerType(typ), m, fallback))
	}

	stack := textfx.NewStack(layers, "")
	base := stack.BaseFillIndex()
	if base < 0 {
		g := textfx.NewLayer(stack.NextID(), textfx.TypeGradientFill)
		if fallback != "" {
			p := g.Params.(textfx.GradientFillParams)
			p.Stops[1].Color = fallback
			g.Params = p
		}
		layers = append([]textfx.Layer{g}, layers...)
		base = 0
	}

	b := &layers[base]
	b.Enabled = true
	b.Name = b.Type().DisplayName()
	if f, ok := b.Params.(textfx.FillParams); ok && f.Color == "" {
		f.Color = orColor(fallback, textfx.DefaultFillColor)
		b.Params = f
	}

	cfg := &Config{Stack: textfx.NewStack(layers, layers[0].ID)}
	if m, ok := root["session"].(map[string]any); ok {
		cfg.Session = decodeSession(m)
	}
	return cfg, nil
}

func decodeLayer(id string, t textfx.LayerType, m map[string]any, fallback string) textfx.Layer {
	name, ok := m["name"].(string)
	if !ok {
		name = t.DisplayName()
	}
	params, _ := m["params"].(map[string]any)
	return textfx.Layer{
		ID:      id,
		Name:    name,
		Enabled: toBool(m["enabled"]),
		Params:  decodeParams(t, params, fallback),
	}
}

func decodeParams(t textfx.LayerType, m map[string]any, fallback string) textfx.Params {
	switch t {
	case textfx.TypeFill:
		return textfx.FillParams{Color: str(m, "color")}
	case textfx.TypeGradientFill:
		return decodeGradient(m, fallback)
	case textfx.TypeDropShadow:
		return textfx.DropShadowParams{
			Blend:      textfx.ShadowBlend(str(m, "blend")),
			Color:      str(m, "color"),
			OpacityPct: number(m, "opacityPct"),
			AngleDeg:   number(m, "angleDeg"),
			DistancePx: number(m, "distancePx"),
			SpreadPct:  number(m, "spreadPct"),
			SizePx:     number(m, "sizePx"),
		}
	case textfx.TypeStroke:
		return textfx.StrokeParams{
			Color:      str(m, "color"),
			OpacityPct: number(m, "opacityPct"),
			WidthPx:    number(m, "widthPx"),
		}
	case textfx.TypeOuterGlow:
		return textfx.OuterGlowParams{
			Color:      str(m, "color"),
			OpacityPct: number(m, "opacityPct"),
			SizePx:     number(m, "sizePx"),
			DX:         number(m, "dx"),
			DY:         number(m, "dy"),
		}
	case textfx.TypeExtrusion:
		return textfx.ExtrusionParams{
			Color:      str(m, "color"),
			OpacityPct: number(m, "opacityPct"),
			Steps:      number(m, "steps"),
			DX:         number(m, "dx"),
			DY:         number(m, "dy"),
			BlurPx:     number(m, "blurPx"),
		}
	default:
		if m == nil {
			m = map[string]any{}
		}
		return textfx.UnknownParams{TypeName: string(t), Fields: m}
	}
}

func decodeGradient(m map[string]any, fallback string) textfx.GradientFillParams {
	p := textfx.GradientFillParams{AngleDeg: 90}
	if v, ok := toFloat(m["angleDeg"]); ok {
		p.AngleDeg = v
	}

	list, hasStops := m["stops"].([]any)
	if hasStops {
		p.Stops = make([]textfx.GradientStop, 0, len(list))
		for _, e := range list {
			sm, ok := e.(map[string]any)
			if !ok {
				continue
			}
			p.Stops = append(p.Stops, textfx.GradientStop{
				OffsetPct: number(sm, "offsetPct"),
				Color:     str(sm, "color"),
			})
		}
	}

	lg := &textfx.LegacyGradient{
		TopColor:    str(m, "topColor"),
		MidColor:    str(m, "midColor"),
		BottomColor: str(m, "bottomColor"),
	}
	if v, ok := toFloat(m["midpointPct"]); ok {
		lg.MidpointPct = &v
	}
	p.Legacy = lg
	return migrateGradient(p, hasStops, fallback)
}

func decodeSession(m map[string]any) *Session {
	s := &Session{
		Text:      str(m, "text"),
		FontSize:  number(m, "fontSize"),
		Alignment: str(m, "alignment"),
		Scale:     number(m, "scale"),
		ArcPct:    number(m, "arcPct"),
		ShowBg:    toBool(m["showBg"]),
		BgColor:   str(m, "bgColor"),
		FillColor: str(m, "fillColor"),
	}
	if v, ok := toFloat(m["padding"]); ok {
		s.Padding = &v
	}
	return s
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// number returns the finite number stored under key, or 0.
func number(m map[string]any, key string) float64 {
	v, ok := toFloat(m[key])
	if !ok {
		return 0
	}
	return v
}

// toFloat converts the numeric types produced by the codecs, and numeric
// strings, to a finite float64.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(n), 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	return f, finite(f)
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if p, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return p
		}
		return b != ""
	case nil:
		return false
	}
	f, ok := toFloat(v)
	return ok && f != 0
}
