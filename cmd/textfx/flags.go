package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/preset"
)

// requestFlags are the render settings shared by render, inspect, watch
// and batch. Flags that are set override the preset session.
type requestFlags struct {
	text     string
	fontSize float64
	padding  float64
	align    string
	scale    float64
	arc      float64
	stretchX float64
	stretchY float64

	width, height    float64
	anchor           string
	offsetX, offsetY float64

	showBg bool
	bg     string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.text, "text", "t", "", "text to render; \\n separates lines")
	fs.Float64Var(&f.fontSize, "font-size", preset.DefaultFontSize, "font size in pixels")
	fs.Float64Var(&f.padding, "padding", preset.DefaultPadding, "padding around the text in pixels")
	fs.StringVar(&f.align, "align", "center", "line alignment: left, center or right")
	fs.Float64Var(&f.scale, "scale", 1, "export scale, 1 to 8")
	fs.Float64Var(&f.arc, "arc", 0, "arc bend in percent")
	fs.Float64Var(&f.stretchX, "stretch-x", 1, "horizontal glyph stretch")
	fs.Float64Var(&f.stretchY, "stretch-y", 1, "vertical glyph stretch")
	fs.Float64Var(&f.width, "width", 0, "fixed canvas width")
	fs.Float64Var(&f.height, "height", 0, "fixed canvas height")
	fs.StringVar(&f.anchor, "anchor", "", "block anchor: topleft or center (center when a size is fixed)")
	fs.Float64Var(&f.offsetX, "offset-x", 0, "horizontal block offset")
	fs.Float64Var(&f.offsetY, "offset-y", 0, "vertical block offset")
	fs.BoolVar(&f.showBg, "show-bg", false, "fill the background")
	fs.StringVar(&f.bg, "bg", "", "background color; implies --show-bg")
}

// request merges the flags that were set into the session and returns the
// resulting request.
func (f *requestFlags) request(cmd *cobra.Command, s *preset.Session) (textfx.Request, error) {
	var sess preset.Session
	if s != nil {
		sess = *s
	}
	changed := cmd.Flags().Changed
	if changed("text") {
		sess.Text = unescapeNewlines(f.text)
	}
	if changed("font-size") {
		sess.FontSize = f.fontSize
	}
	if changed("padding") {
		pad := f.padding
		sess.Padding = &pad
	}
	if changed("align") {
		sess.Alignment = f.align
	}
	if changed("scale") {
		sess.Scale = f.scale
	}
	if changed("arc") {
		sess.ArcPct = f.arc
	}
	if changed("bg") {
		sess.ShowBg = true
		sess.BgColor = f.bg
	}
	if changed("show-bg") {
		sess.ShowBg = f.showBg
	}

	req := sess.Request()
	req.ScaleX = f.stretchX
	req.ScaleY = f.stretchY
	req.OffsetX = f.offsetX
	req.OffsetY = f.offsetY
	if changed("width") {
		w := f.width
		req.TargetWidth = &w
	}
	if changed("height") {
		h := f.height
		req.TargetHeight = &h
	}

	anchor := f.anchor
	if anchor == "" && (req.TargetWidth != nil || req.TargetHeight != nil) {
		anchor = "center"
	}
	a, err := textfx.ParseAnchor(anchor)
	if err != nil {
		return textfx.Request{}, err
	}
	req.Anchor = a
	return req, nil
}

// unescapeNewlines turns a literal \n typed on the command line into a
// line break.
func unescapeNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == 'n' {
			out = append(out, '\n')
			i++
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
