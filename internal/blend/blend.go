// Package blend implements the compositing operators used by the software
// surface.
//
// All operations work with premultiplied alpha values in the range 0-255,
// the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	SourceOver      Mode = iota // S + D*(1-Sa) [default]
	Source                      // S
	DestinationOver             // S*(1-Da) + D
	DestinationOut              // D*(1-Sa)
	DestinationIn               // D*Sa
	Multiply                    // separable B(Cs, Cd) = Cs*Cd
)

// String returns the canvas name of the mode.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case Source:
		return "copy"
	case DestinationOver:
		return "destination-over"
	case DestinationOut:
		return "destination-out"
	case DestinationIn:
		return "destination-in"
	case Multiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// Func blends one premultiplied source pixel onto one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Get returns the blend function for mode.
// Unknown modes fall back to SourceOver.
func Get(mode Mode) Func {
	switch mode {
	case Source:
		return blendSource
	case DestinationOver:
		return blendDestinationOver
	case DestinationOut:
		return blendDestinationOut
	case DestinationIn:
		return blendDestinationIn
	case Multiply:
		return blendMultiply
	default:
		return blendSourceOver
	}
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// blendDestinationOut keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// blendDestinationIn keeps destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// blendMultiply multiplies source and destination colors.
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// separableBlend applies a per-channel blend function B on unmultiplied
// channels: Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc).
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur, sug, sub := unpremultiply(sr, sa), unpremultiply(sg, sa), unpremultiply(sb, sa)
	dur, dug, dub := unpremultiply(dr, da), unpremultiply(dg, da), unpremultiply(db, da)

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	channel := func(s, d, su, du byte) byte {
		c := addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa))
		return addClamp(c, mulDiv255(saDa, blendChan(su, du)))
	}

	return channel(sr, dr, sur, dur),
		channel(sg, dg, sug, dug),
		channel(sb, db, sub, dub),
		addClamp(sa, mulDiv255(da, invSa))
}

func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}
