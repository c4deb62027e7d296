package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/gogpu/textfx"
)

// layerColor returns the color a layer is shown with in listings.
func layerColor(l textfx.Layer) string {
	switch p := l.Params.(type) {
	case textfx.FillParams:
		return textfx.NormalizeHex(p.Color, textfx.DefaultFillColor)
	case textfx.GradientFillParams:
		return textfx.GradientMidColor(p, textfx.DefaultFillColor)
	case textfx.DropShadowParams:
		return textfx.NormalizeHex(p.Color, textfx.DefaultShadowColor)
	case textfx.StrokeParams:
		return textfx.NormalizeHex(p.Color, textfx.DefaultStrokeColor)
	case textfx.OuterGlowParams:
		return textfx.NormalizeHex(p.Color, textfx.DefaultGlowColor)
	case textfx.ExtrusionParams:
		return textfx.NormalizeHex(p.Color, textfx.DefaultExtrusionColor)
	}
	return ""
}

// printer writes layer listings, with color swatches when w is a color
// terminal.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: termenv.NewOutput(w)}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// swatch returns a two-cell block of hex followed by the hex code.
func (p *printer) swatch(hex string) string {
	if hex == "" {
		return "-"
	}
	block := p.out.String("  ").Background(p.out.Color(hex)).String()
	return block + " " + hex
}

func (p *printer) layer(prefix string, l textfx.Layer) {
	mark := " "
	if l.Enabled {
		mark = "*"
	}
	p.printf("%s%s %-10s %-14s %-16q %s\n", prefix, mark, l.ID, l.Type(), l.Name, p.swatch(layerColor(l)))
}
