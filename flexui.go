package flexui

import (
	"image"
	"math"
)

// Vec2 is a 2D vector used for sizes, offsets and render-target extents
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Min returns the shorter of the two components.
func (v Vec2) Min() float64 {
	return math.Min(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlapping region of r and other. Disjoint
// rectangles produce a zero-size rectangle positioned at the clamped origin.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks the rectangle by the given per-side amounts.
// Negative results are clamped to zero size.
func (r Rect) Inset(q Quad) Rect {
	out := Rect{
		X:      r.X + q[SideLeft],
		Y:      r.Y + q[SideTop],
		Width:  r.Width - q[SideLeft] - q[SideRight],
		Height: r.Height - q[SideTop] - q[SideBottom],
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// imageRect converts to integer pixel bounds, rounding outward.
func (r Rect) imageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// Quad holds four resolved values. Box sides are indexed with SideLeft,
// SideRight, SideTop and SideBottom; rounded corners with the Corner constants.
type Quad [4]float64

// Side indices into a Quad used for padding and margin.
const (
	SideLeft   = 0
	SideRight  = 1
	SideTop    = 2
	SideBottom = 3
)

// Corner indices into a Quad used for corner radii.
const (
	CornerTopLeft     = 0
	CornerTopRight    = 1
	CornerBottomRight = 2
	CornerBottomLeft  = 3
)

// Horizontal returns left + right.
func (q Quad) Horizontal() float64 { return q[SideLeft] + q[SideRight] }

// Vertical returns top + bottom.
func (q Quad) Vertical() float64 { return q[SideTop] + q[SideBottom] }

// Direction selects the primary axis along which children are distributed.
type Direction uint8

const (
	DirectionVertical   Direction = iota // children stack top to bottom (default)
	DirectionHorizontal                  // children stack left to right
)

// AlignPrimary distributes children along the primary axis.
type AlignPrimary uint8

const (
	AlignPrimaryStart        AlignPrimary = iota // pack against the leading edge (default)
	AlignPrimaryEnd                              // pack against the trailing edge
	AlignPrimaryCenter                           // pack around the midpoint
	AlignPrimarySpaceBetween                     // equal gaps between children, none at the edges
	AlignPrimarySpaceAround                      // half-size gaps at the edges
	AlignPrimarySpaceEvenly                      // equal gaps everywhere
)

// AlignSecondary places each child on the cross axis.
type AlignSecondary uint8

const (
	AlignSecondaryStart  AlignSecondary = iota // leading cross edge (default)
	AlignSecondaryEnd                          // trailing cross edge
	AlignSecondaryCenter                       // cross midpoint
)

var directionNames = [...]string{"vertical", "horizontal"}

var alignPrimaryNames = [...]string{"start", "end", "center", "space-between", "space-around", "space-evenly"}

var alignSecondaryNames = [...]string{"start", "end", "center"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return directionNames[0]
}

func (a AlignPrimary) String() string {
	if int(a) < len(alignPrimaryNames) {
		return alignPrimaryNames[a]
	}
	return alignPrimaryNames[0]
}

func (a AlignSecondary) String() string {
	if int(a) < len(alignSecondaryNames) {
		return alignSecondaryNames[a]
	}
	return alignSecondaryNames[0]
}

// ParseDirection maps a keyword to a Direction. Unknown keywords fall back to
// DirectionVertical.
func ParseDirection(s string) Direction {
	for i, name := range directionNames {
		if name == s {
			return Direction(i)
		}
	}
	return DirectionVertical
}

// ParseAlignPrimary maps a keyword to an AlignPrimary. Unknown keywords fall
// back to AlignPrimaryStart.
func ParseAlignPrimary(s string) AlignPrimary {
	for i, name := range alignPrimaryNames {
		if name == s {
			return AlignPrimary(i)
		}
	}
	return AlignPrimaryStart
}

// ParseAlignSecondary maps a keyword to an AlignSecondary. Unknown keywords
// fall back to AlignSecondaryStart.
func ParseAlignSecondary(s string) AlignSecondary {
	for i, name := range alignSecondaryNames {
		if name == s {
			return AlignSecondary(i)
		}
	}
	return AlignSecondaryStart
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
