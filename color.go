package textfx

import (
	"image/color"
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hexPattern accepts exactly six hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a 6-digit hex color such as "#FFD33A" or
// "ffd33a". Surrounding whitespace is ignored.
func ValidHex(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// NormalizeHex returns s as "#RRGGBB" in upper case, or fallback when s is
// not a valid hex color.
func NormalizeHex(s, fallback string) string {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return fallback
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#"))
}

// parseHex parses a hex color, falling back to black.
func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(NormalizeHex(s, "#000000"))
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// hexColor returns the color of hex (or fallback when hex is invalid) with
// alpha clamped to [0, 1].
func hexColor(hex, fallback string, alpha float64) color.NRGBA {
	c := parseHex(NormalizeHex(hex, fallback))
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
