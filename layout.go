package flexui

import (
	"image"
	"math"
)

// Coord is an optional explicit coordinate. The zero value means "not set":
// the node is placed by its parent's alignment pass.
type Coord struct {
	set bool
	dim Dimension
}

// At returns an explicit coordinate. Explicit coordinates are absolute
// render-target positions and bypass alignment entirely.
func At(d Dimension) Coord {
	return Coord{set: true, dim: d}
}

// IsSet reports whether an explicit coordinate was given.
func (c Coord) IsSet() bool { return c.set }

// LayoutSpec is the user-authored layout description of a node.
type LayoutSpec struct {
	Direction      Direction
	AlignPrimary   AlignPrimary
	AlignSecondary AlignSecondary
	Width, Height  Dimension
	Padding        UniQuad
	Margin         UniQuad
	X, Y           Coord
}

// ComputedLayout is the resolved box of a node, recomputed every update pass.
// Position is absolute render-target space, never parent-relative.
type ComputedLayout struct {
	Direction      Direction
	AlignPrimary   AlignPrimary
	AlignSecondary AlignSecondary
	Size           Vec2
	Position       image.Point
	Padding        Quad
	Margin         Quad
}

// Bounds returns the node's border box.
func (c ComputedLayout) Bounds() Rect {
	return Rect{X: float64(c.Position.X), Y: float64(c.Position.Y), Width: c.Size.X, Height: c.Size.Y}
}

// ContentBox returns the bounds minus padding. Children are laid out and
// clipped to this rectangle.
func (c ComputedLayout) ContentBox() Rect {
	return c.Bounds().Inset(c.Padding)
}

// ChildLayoutSlot is the parent-computed geometry of one child, index-aligned
// with the parent's child list.
type ChildLayoutSlot struct {
	Size     Vec2
	Position image.Point
	Margin   Quad
}

// childMetrics carries what the distribution pass needs from each child.
type childMetrics struct {
	spec    LayoutSpec
	content Vec2 // measured content size, used by Auto dimensions
}

// resolveRootBox computes the size and position of a node that has no slot
// pushed into it: percentages resolve against the render target and the box
// is centered unless explicit coordinates are given.
func resolveRootBox(spec LayoutSpec, target, content Vec2) (Vec2, image.Point) {
	size := Vec2{
		X: resolveExtent(target.X, spec.Width, content.X),
		Y: resolveExtent(target.Y, spec.Height, content.Y),
	}
	x := (target.X - size.X) / 2
	y := (target.Y - size.Y) / 2
	if spec.X.set {
		x = ResolveDimension(target.X, spec.X.dim)
	}
	if spec.Y.set {
		y = ResolveDimension(target.Y, spec.Y.dim)
	}
	return size, image.Point{X: roundPx(x), Y: roundPx(y)}
}

func resolveExtent(avail float64, d Dimension, content float64) float64 {
	if d.kind == dimensionAuto {
		return content
	}
	return ResolveDimension(avail, d)
}

func roundPx(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// axis helpers: primary index 0 is X for horizontal, Y for vertical.
func mainOf(v Vec2, dir Direction) float64 {
	if dir == DirectionHorizontal {
		return v.X
	}
	return v.Y
}

func crossOf(v Vec2, dir Direction) float64 {
	if dir == DirectionHorizontal {
		return v.Y
	}
	return v.X
}

// leadTrail returns the leading and trailing margin along the given axis.
func leadTrail(m Quad, horizontal bool) (float64, float64) {
	if horizontal {
		return m[SideLeft], m[SideRight]
	}
	return m[SideTop], m[SideBottom]
}

// layoutChildren sizes and positions every child inside the parent's content
// box. slots is reused when its capacity allows; the returned slice is
// index-aligned with children.
func layoutChildren(parent ComputedLayout, children []childMetrics, slots []ChildLayoutSlot) []ChildLayoutSlot {
	n := len(children)
	if cap(slots) < n {
		slots = make([]ChildLayoutSlot, n)
	}
	slots = slots[:n]
	if n == 0 {
		return slots
	}

	content := parent.ContentBox()
	contentSize := Vec2{X: content.Width, Y: content.Height}
	dir := parent.Direction
	horizontal := dir == DirectionHorizontal

	// Sizes and margins. Margins are a parent-owned cutout and resolve
	// against the parent's size, not the child's.
	pos := make([]Vec2, n)
	flowing := 0
	total := 0.0
	for i, c := range children {
		size := Vec2{
			X: resolveExtent(contentSize.X, c.spec.Width, c.content.X),
			Y: resolveExtent(contentSize.Y, c.spec.Height, c.content.Y),
		}
		margin := ResolveUniQuad(parent.Size, c.spec.Margin)
		slots[i].Size = size
		slots[i].Margin = margin
		if explicitMain(c.spec, horizontal) {
			continue
		}
		lead, trail := leadTrail(margin, horizontal)
		total += mainOf(size, dir) + lead + trail
		flowing++
	}

	contentMain := content.Y
	mainStart := content.Y
	if horizontal {
		contentMain = content.Width
		mainStart = content.X
	}
	offset, gap := primaryDistribution(parent.AlignPrimary, flowing, contentMain-total)

	cursor := mainStart + offset
	for i, c := range children {
		if explicitMain(c.spec, horizontal) {
			continue
		}
		lead, trail := leadTrail(slots[i].Margin, horizontal)
		cursor += lead
		if horizontal {
			pos[i].X = cursor
		} else {
			pos[i].Y = cursor
		}
		cursor += mainOf(slots[i].Size, dir) + trail + gap
	}

	// Secondary axis: independent per child, no gaps.
	crossStart, crossExtent := content.X, content.Width
	if horizontal {
		crossStart, crossExtent = content.Y, content.Height
	}
	for i := range children {
		lead, trail := leadTrail(slots[i].Margin, !horizontal)
		cross := crossOf(slots[i].Size, dir)
		var p float64
		switch parent.AlignSecondary {
		case AlignSecondaryEnd:
			p = crossStart + crossExtent - cross - trail
		case AlignSecondaryCenter:
			p = crossStart + (crossExtent-(cross+lead+trail))/2 + lead
		default:
			p = crossStart + lead
		}
		if horizontal {
			pos[i].Y = p
		} else {
			pos[i].X = p
		}
	}

	// Explicit coordinates are used as-is.
	for i, c := range children {
		if c.spec.X.set {
			pos[i].X = ResolveDimension(contentSize.X, c.spec.X.dim)
		}
		if c.spec.Y.set {
			pos[i].Y = ResolveDimension(contentSize.Y, c.spec.Y.dim)
		}
		slots[i].Position = image.Point{X: roundPx(pos[i].X), Y: roundPx(pos[i].Y)}
	}
	return slots
}

func explicitMain(spec LayoutSpec, horizontal bool) bool {
	if horizontal {
		return spec.X.set
	}
	return spec.Y.set
}

// primaryDistribution returns the offset of the first child from the leading
// content edge and the gap inserted after every child, for n flowing children
// and the given free space along the primary axis.
//
// The same formulas apply when free is negative: overflowing children
// overlap by the (negative) gap.
func primaryDistribution(align AlignPrimary, n int, free float64) (offset, gap float64) {
	if n == 0 {
		return 0, 0
	}
	switch align {
	case AlignPrimaryEnd:
		return free, 0
	case AlignPrimaryCenter:
		return free / 2, 0
	case AlignPrimarySpaceBetween:
		if n == 1 {
			return free / 2, 0
		}
		return 0, free / float64(n-1)
	case AlignPrimarySpaceAround:
		return free / float64(2*n), free / float64(n)
	case AlignPrimarySpaceEvenly:
		g := free / float64(n+1)
		return g, g
	}
	return 0, 0
}
