package flexui

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// --- Dimension ---

type dimensionKind uint8

const (
	dimensionAbsolute dimensionKind = iota
	dimensionPercent
	dimensionAuto
)

// Dimension is either an absolute pixel value or a percentage string such as
// "50%" resolved against a reference extent. The zero value is an absolute 0.
type Dimension struct {
	kind    dimensionKind
	value   float64
	percent string
}

// Px returns an absolute Dimension.
func Px(v float64) Dimension {
	return Dimension{kind: dimensionAbsolute, value: v}
}

// Percent returns a percentage Dimension. The string is parsed lazily at
// resolution time; malformed strings resolve to 0.
func Percent(s string) Dimension {
	return Dimension{kind: dimensionPercent, percent: s}
}

// Pct is shorthand for Percent with a numeric argument: Pct(50) == Percent("50%").
func Pct(v float64) Dimension {
	return Percent(strconv.FormatFloat(v, 'f', -1, 64) + "%")
}

// Auto returns a Dimension sized from the node's content metrics (measured
// text, loaded texture). Outside of child sizing it resolves to 0.
func Auto() Dimension {
	return Dimension{kind: dimensionAuto}
}

// ParseDimension reads "N%" as a percentage and anything else as an absolute
// number. Unparsable input yields an absolute 0. "auto" yields Auto().
func ParseDimension(s string) Dimension {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return Auto()
	}
	if strings.HasSuffix(s, "%") {
		return Percent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Px(0)
	}
	return Px(v)
}

// IsPercent reports whether d is a percentage Dimension.
func (d Dimension) IsPercent() bool { return d.kind == dimensionPercent }

// IsAuto reports whether d is sized from content.
func (d Dimension) IsAuto() bool { return d.kind == dimensionAuto }

func (d Dimension) String() string {
	switch d.kind {
	case dimensionPercent:
		return d.percent
	case dimensionAuto:
		return "auto"
	}
	return strconv.FormatFloat(d.value, 'f', -1, 64)
}

// parsePercent parses a numeric prefix followed by '%' and returns the
// fraction (50% -> 0.5).
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v / 100, true
}

// ResolveDimension resolves d against an available extent. Absolute values
// pass through; percentages are clamped to [0%, 100%] of extent.
func ResolveDimension(extent float64, d Dimension) float64 {
	switch d.kind {
	case dimensionAbsolute:
		return d.value
	case dimensionPercent:
		f, ok := parsePercent(d.percent)
		if !ok {
			return 0
		}
		return clamp(f, 0, 1) * extent
	case dimensionAuto:
		return 0
	}
	return 0
}

// resolveHalfClamped resolves one side of a UniQuad (or a border width)
// against the shorter side of a box. Results never exceed half of it.
func resolveHalfClamped(shortSide float64, d Dimension) float64 {
	if shortSide < 0 || math.IsNaN(shortSide) {
		shortSide = 0
	}
	half := shortSide * 0.5
	switch d.kind {
	case dimensionAbsolute:
		if math.IsNaN(d.value) {
			return 0
		}
		return clamp(d.value, 0, half)
	case dimensionPercent:
		f, ok := parsePercent(d.percent)
		if !ok {
			return 0
		}
		return clamp(f, 0, 0.5) * shortSide
	case dimensionAuto:
		return 0
	}
	return 0
}

// --- UniQuad ---

type uniQuadKind uint8

const (
	uniQuadUniform uniQuadKind = iota
	uniQuadSides
)

// UniQuad is a value applied either uniformly to all four sides (or corners)
// of a box, or independently per side. A uniform UniQuad may carry per-side
// overrides via With. The zero value is a uniform absolute 0.
type UniQuad struct {
	kind      uniQuadKind
	master    Dimension
	sides     [4]Dimension
	overrides uint8 // bit i set: sides[i] replaces master
}

// Uniform returns a UniQuad applying d to all four sides.
func Uniform(d Dimension) UniQuad {
	return UniQuad{kind: uniQuadUniform, master: d}
}

// Sides returns a UniQuad with independent values. For padding and margin the
// order is left, right, top, bottom; for corner radii it is top-left,
// top-right, bottom-right, bottom-left.
func Sides(a, b, c, d Dimension) UniQuad {
	return UniQuad{kind: uniQuadSides, sides: [4]Dimension{a, b, c, d}}
}

// With returns a copy of q whose side i is overridden by d.
func (q UniQuad) With(i int, d Dimension) UniQuad {
	if i < 0 || i > 3 {
		return q
	}
	q.sides[i] = d
	if q.kind == uniQuadUniform {
		q.overrides |= 1 << i
	}
	return q
}

// Side returns the unresolved Dimension that applies to side i.
func (q UniQuad) Side(i int) Dimension {
	switch q.kind {
	case uniQuadSides:
		return q.sides[i]
	case uniQuadUniform:
		if q.overrides&(1<<i) != 0 {
			return q.sides[i]
		}
		return q.master
	}
	return Dimension{}
}

// ResolveUniQuad resolves each side of q against min(ref.X, ref.Y). Every side
// lands in [0, 0.5*min(ref.X, ref.Y)] so radii, borders and offsets never
// exceed half the shorter side.
func ResolveUniQuad(ref Vec2, q UniQuad) Quad {
	short := ref.Min()
	var out Quad
	switch q.kind {
	case uniQuadUniform:
		v := resolveHalfClamped(short, q.master)
		for i := range out {
			if q.overrides&(1<<i) != 0 {
				out[i] = resolveHalfClamped(short, q.sides[i])
			} else {
				out[i] = v
			}
		}
	case uniQuadSides:
		for i := range out {
			out[i] = resolveHalfClamped(short, q.sides[i])
		}
	}
	return out
}

// --- Color ---

type colorKind uint8

const (
	colorNone colorKind = iota
	colorRGB
	colorRGBA
	colorHex
	colorNative
)

// Color is an unresolved color: RGB bytes, RGBA bytes, a "#RRGGBB" or
// "#RRGGBBAA" hex string, or a native color value. The zero value is
// fully transparent.
type Color struct {
	kind colorKind
	rgba color.NRGBA
	hex  string
}

// Transparent is the zero Color.
var Transparent = Color{}

// RGB returns an opaque Color from byte components.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, rgba: color.NRGBA{R: r, G: g, B: b, A: 255}}
}

// RGBA returns a Color from byte components with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{kind: colorRGBA, rgba: color.NRGBA{R: r, G: g, B: b, A: a}}
}

// Hex returns a Color parsed from "#RRGGBB" or "#RRGGBBAA" at resolution time.
func Hex(s string) Color {
	return Color{kind: colorHex, hex: s}
}

// Native wraps a color.Color value. It is converted to non-premultiplied
// bytes once and then passes through resolution unchanged.
func Native(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	return Color{kind: colorNative, rgba: color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// IsSet reports whether c is anything other than the zero Color.
func (c Color) IsSet() bool { return c.kind != colorNone }

var opaqueBlack = color.NRGBA{A: 255}

// ResolveColor converts c to concrete non-premultiplied RGBA bytes.
// Malformed hex strings fail closed to opaque black.
func ResolveColor(c Color) color.NRGBA {
	switch c.kind {
	case colorNone:
		return color.NRGBA{}
	case colorRGB:
		out := c.rgba
		out.A = 255
		return out
	case colorRGBA, colorNative:
		return c.rgba
	case colorHex:
		return parseHexColor(c.hex)
	}
	return opaqueBlack
}

func parseHexColor(s string) color.NRGBA {
	s = strings.TrimSpace(s)
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return opaqueBlack
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return opaqueBlack
	}
	if len(s) == 7 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
