package text

import "strings"

// Align is the horizontal alignment of lines within a text block.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// String returns the canonical name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlign parses "left", "center" or "right". Anything else is center.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}

// Offset returns how far a line of the given advance starts from its
// anchor: 0 for left, -advance/2 for center, -advance for right.
func (a Align) Offset(advance float64) float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return -advance
	default:
		return -advance / 2
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(b []byte) error {
	*a = ParseAlign(string(b))
	return nil
}
