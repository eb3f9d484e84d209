package flexui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// batcher coalesces consecutive triangle commands that share a clip
// rectangle into a single DrawTriangles32 call.
type batcher struct {
	verts     []ebiten.Vertex
	inds      []uint32
	clip      Rect
	drawCalls int
}

// sameBatch reports whether two commands can be merged into one draw call.
func sameBatch(a, b *DrawCommand) bool {
	return a.Type == CommandTriangles && b.Type == CommandTriangles && a.Clip == b.Clip
}

// countBatches counts contiguous groups of commands that submit as a single
// draw call.
func countBatches(commands []DrawCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(commands); i++ {
		if !sameBatch(&commands[i-1], &commands[i]) {
			count++
		}
	}
	return count
}

// countVertices sums the vertices of all triangle commands.
func countVertices(commands []DrawCommand) int {
	n := 0
	for i := range commands {
		if commands[i].Geometry != nil {
			n += len(commands[i].Geometry.Vertices)
		}
	}
	return n
}

// submit draws every command to target in order. Clipping is applied by
// drawing into a SubImage, which keeps the parent's coordinate space.
func (b *batcher) submit(target *ebiten.Image, commands []DrawCommand) {
	b.drawCalls = 0
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]

	for i := range commands {
		cmd := &commands[i]
		if cmd.Type == CommandTriangles {
			if len(b.verts) > 0 && cmd.Clip != b.clip {
				b.flush(target)
			}
			b.clip = cmd.Clip
			b.append(cmd.Geometry)
			continue
		}
		b.flush(target)
		sub := clipImage(target, cmd.Clip)
		if sub == nil {
			continue
		}
		switch cmd.Type {
		case CommandImage:
			submitImage(sub, cmd)
		case CommandText:
			submitText(sub, cmd)
		}
		b.drawCalls++
	}
	b.flush(target)
}

func (b *batcher) append(g *Geometry) {
	base := uint32(len(b.verts))
	b.verts = append(b.verts, g.Vertices...)
	for _, idx := range g.Indices {
		b.inds = append(b.inds, base+uint32(idx))
	}
}

func (b *batcher) flush(target *ebiten.Image) {
	if len(b.inds) == 0 {
		b.verts = b.verts[:0]
		return
	}
	if sub := clipImage(target, b.clip); sub != nil {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
		sub.DrawTriangles32(b.verts, b.inds, ensureWhitePixel(), &op)
		b.drawCalls++
	}
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// clipImage returns the region of target covered by clip, or nil when the
// intersection is empty.
func clipImage(target *ebiten.Image, clip Rect) *ebiten.Image {
	r := clip.imageRect().Intersect(target.Bounds())
	if r.Empty() {
		return nil
	}
	return target.SubImage(r).(*ebiten.Image)
}

func submitImage(dst *ebiten.Image, cmd *DrawCommand) {
	w, h := cmd.Image.Bounds().Dx(), cmd.Image.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(cmd.Dst.Width/float64(w), cmd.Dst.Height/float64(h))
	op.GeoM.Translate(cmd.Dst.X, cmd.Dst.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(cmd.Image, &op)
}

func submitText(dst *ebiten.Image, cmd *DrawCommand) {
	face := cmd.Font.Face()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.TextPos.X, cmd.TextPos.Y)
	op.ColorScale.ScaleWithColor(cmd.TextColor)
	op.LineSpacing = cmd.Font.LineHeight()
	text.Draw(dst, cmd.Text, face, op)
}

// --- White pixel singleton (no sync.Once, rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Tessellated vertices sample its center.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
