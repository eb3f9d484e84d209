package flexui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry is an indexed triangle list in absolute render-target space,
// drawn with the shared white pixel as source.
type Geometry struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Reset empties the geometry, keeping its buffers.
func (g *Geometry) Reset() {
	g.Vertices = g.Vertices[:0]
	g.Indices = g.Indices[:0]
}

// Empty reports whether the geometry has no triangles.
func (g *Geometry) Empty() bool {
	return len(g.Indices) == 0
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (g *Geometry) Bounds() Rect {
	verts := g.Vertices
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// tessellator appends shapes to a Geometry at a fixed origin and color.
type tessellator struct {
	g      *Geometry
	ox, oy float64
	col    vertexColor
}

func (t *tessellator) vertex(x, y float64) uint16 {
	idx := uint16(len(t.g.Vertices))
	t.g.Vertices = append(t.g.Vertices, ebiten.Vertex{
		DstX:   float32(t.ox + x),
		DstY:   float32(t.oy + y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: t.col.R,
		ColorG: t.col.G,
		ColorB: t.col.B,
		ColorA: t.col.A,
	})
	return idx
}

// rect emits two triangles covering [x0,x1]x[y0,y1]. Degenerate rects emit
// nothing.
func (t *tessellator) rect(x0, y0, x1, y1 float64) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	a := t.vertex(x0, y0)
	b := t.vertex(x1, y0)
	c := t.vertex(x1, y1)
	d := t.vertex(x0, y1)
	t.g.Indices = append(t.g.Indices, a, b, c, a, c, d)
}

// arcSegments is the triangle count used to approximate a quarter circle.
func arcSegments(r float64) int {
	s := int(r * 0.25)
	if s < 4 {
		return 4
	}
	if s > 12 {
		return 12
	}
	return s
}

// fan emits a filled circular sector around (cx, cy).
func (t *tessellator) fan(cx, cy, r, a0, a1 float64) {
	if r <= 0 {
		return
	}
	segs := arcSegments(r)
	center := t.vertex(cx, cy)
	prev := t.vertex(cx+r*math.Cos(a0), cy+r*math.Sin(a0))
	for i := 1; i <= segs; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segs)
		cur := t.vertex(cx+r*math.Cos(a), cy+r*math.Sin(a))
		t.g.Indices = append(t.g.Indices, center, prev, cur)
		prev = cur
	}
}

// ring emits a hollow arc between inner and outer radii. An inner radius of
// zero degenerates into a fan.
func (t *tessellator) ring(cx, cy, outer, inner, a0, a1 float64) {
	if outer <= 0 {
		return
	}
	if inner <= 0 {
		t.fan(cx, cy, outer, a0, a1)
		return
	}
	segs := arcSegments(outer)
	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	po := t.vertex(cx+outer*cos0, cy+outer*sin0)
	pi := t.vertex(cx+inner*cos0, cy+inner*sin0)
	for i := 1; i <= segs; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segs)
		c, s := math.Cos(a), math.Sin(a)
		co := t.vertex(cx+outer*c, cy+outer*s)
		ci := t.vertex(cx+inner*c, cy+inner*s)
		t.g.Indices = append(t.g.Indices, po, co, ci, po, ci, pi)
		po, pi = co, ci
	}
}

// Quarter-circle angle ranges per corner, Y pointing down.
var cornerArcs = [4][2]float64{
	CornerTopLeft:     {math.Pi, 1.5 * math.Pi},
	CornerTopRight:    {1.5 * math.Pi, 2 * math.Pi},
	CornerBottomRight: {0, 0.5 * math.Pi},
	CornerBottomLeft:  {0.5 * math.Pi, math.Pi},
}

// cornerCenters returns the arc center of every corner of a w x h box.
func cornerCenters(w, h float64, r Quad) [4]Vec2 {
	return [4]Vec2{
		CornerTopLeft:     {X: r[CornerTopLeft], Y: r[CornerTopLeft]},
		CornerTopRight:    {X: w - r[CornerTopRight], Y: r[CornerTopRight]},
		CornerBottomRight: {X: w - r[CornerBottomRight], Y: h - r[CornerBottomRight]},
		CornerBottomLeft:  {X: r[CornerBottomLeft], Y: h - r[CornerBottomLeft]},
	}
}

// appendRoundedRect emits a filled rounded rectangle as non-overlapping
// bands plus one fan per rounded corner. Radii must already be clamped to
// half the shorter side.
func appendRoundedRect(g *Geometry, origin, size Vec2, radii Quad, c color.NRGBA) {
	w, h := size.X, size.Y
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	t := tessellator{g: g, ox: origin.X, oy: origin.Y, col: toVertexColor(c)}
	tl, tr := radii[CornerTopLeft], radii[CornerTopRight]
	br, bl := radii[CornerBottomRight], radii[CornerBottomLeft]
	top := math.Max(tl, tr)
	bottom := math.Max(bl, br)

	t.rect(0, top, w, h-bottom)

	t.rect(tl, 0, w-tr, top)
	t.rect(0, tl, tl, top)
	t.rect(w-tr, tr, w, top)

	t.rect(bl, h-bottom, w-br, h)
	t.rect(0, h-bottom, bl, h-bl)
	t.rect(w-br, h-bottom, w, h-br)

	centers := cornerCenters(w, h, radii)
	for i := range centers {
		t.fan(centers[i].X, centers[i].Y, radii[i], cornerArcs[i][0], cornerArcs[i][1])
	}
}

// appendBorder emits a hollow rounded outline of width bw drawn inward from
// the box edge.
func appendBorder(g *Geometry, origin, size Vec2, radii Quad, bw float64, c color.NRGBA) {
	w, h := size.X, size.Y
	if w <= 0 || h <= 0 || bw <= 0 || c.A == 0 {
		return
	}
	t := tessellator{g: g, ox: origin.X, oy: origin.Y, col: toVertexColor(c)}
	tl, tr := radii[CornerTopLeft], radii[CornerTopRight]
	br, bl := radii[CornerBottomRight], radii[CornerBottomLeft]

	t.rect(tl, 0, w-tr, bw)
	t.rect(bl, h-bw, w-br, h)
	t.rect(0, math.Max(tl, bw), bw, h-math.Max(bl, bw))
	t.rect(w-bw, math.Max(tr, bw), w, h-math.Max(br, bw))

	// Borders thicker than a radius leave a gap between the arc and the
	// side strip.
	t.rect(0, tl, tl, bw)
	t.rect(w-tr, tr, w, bw)
	t.rect(w-br, h-bw, w, h-br)
	t.rect(0, h-bw, bl, h-bl)

	centers := cornerCenters(w, h, radii)
	for i := range centers {
		t.ring(centers[i].X, centers[i].Y, radii[i], math.Max(0, radii[i]-bw), cornerArcs[i][0], cornerArcs[i][1])
	}
}

// shadowLayerInset is the per-layer shrink applied to every side.
const shadowLayerInset = 1.0

// shadowLayerAlpha returns the alpha of layer i of n, falling off
// quadratically from base at the outermost layer to 0 at the innermost.
func shadowLayerAlpha(base float64, i, n int) float64 {
	if n <= 1 {
		return base
	}
	f := float64(i) / float64(n-1)
	return base * (1 - f*f)
}

// appendShadow emits the inset shadow stack: n copies of the rounded rect,
// each shrunk by shadowLayerInset and faded by shadowLayerAlpha.
func appendShadow(g *Geometry, origin, size Vec2, style ComputedStyle) {
	base := style.ShadowFillColor
	if base.A == 0 {
		return
	}
	n := style.ShadowLayers()
	o := Vec2{X: origin.X + style.ShadowOffset.X, Y: origin.Y + style.ShadowOffset.Y}
	for i := 0; i < n; i++ {
		inset := float64(i) * shadowLayerInset
		ls := Vec2{X: size.X - 2*inset, Y: size.Y - 2*inset}
		if ls.X <= 0 || ls.Y <= 0 {
			break
		}
		a := shadowLayerAlpha(float64(base.A), i, n)
		if a <= 0 {
			continue
		}
		var r Quad
		for k := range r {
			r[k] = math.Max(0, style.CornerRadius[k]-inset)
		}
		appendRoundedRect(g, Vec2{X: o.X + inset, Y: o.Y + inset}, ls, r, withAlpha(base, a))
	}
}
