package flexui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandTriangles CommandType = iota // tessellated geometry, DrawTriangles
	CommandImage                        // texture stretched over a rect, DrawImage
	CommandText                         // a single run of text
)

// DrawCommand is a single draw instruction recorded during traversal. Every
// command carries the clip rectangle that was active when it was recorded.
type DrawCommand struct {
	Type CommandType
	Clip Rect

	// CommandTriangles. A pointer into the owning node; valid until the
	// node's next update.
	Geometry *Geometry

	// CommandImage.
	Image *ebiten.Image
	Dst   Rect

	// CommandText.
	Text      string
	Font      Font
	TextPos   Vec2
	TextColor color.NRGBA
}

// DrawContext records draw commands against an explicit clip-rect stack.
// Widgets receive it in Draw and DrawOverlay; they never touch graphics
// state directly.
type DrawContext struct {
	commands []DrawCommand
	clips    []Rect
	target   Vec2
}

func (dc *DrawContext) reset(target Vec2) {
	dc.commands = dc.commands[:0]
	dc.clips = dc.clips[:0]
	dc.target = target
	dc.clips = append(dc.clips, Rect{Width: target.X, Height: target.Y})
}

// Target returns the render-target size of the current pass.
func (dc *DrawContext) Target() Vec2 {
	return dc.target
}

// Clip returns the active clip rectangle.
func (dc *DrawContext) Clip() Rect {
	return dc.clips[len(dc.clips)-1]
}

// PushClip intersects r with the active clip and makes the result active.
func (dc *DrawContext) PushClip(r Rect) {
	dc.clips = append(dc.clips, dc.Clip().Intersect(r))
}

// PopClip restores the clip that was active before the matching PushClip.
// The root clip is never popped.
func (dc *DrawContext) PopClip() {
	if len(dc.clips) > 1 {
		dc.clips = dc.clips[:len(dc.clips)-1]
	}
}

// resetClip replaces the whole stack with the full render target. Used by
// the overlay pass, which is not subject to ancestor clips.
func (dc *DrawContext) resetClip() {
	dc.clips = dc.clips[:1]
}

// Commands returns the commands recorded so far. The returned slice MUST NOT
// be mutated by the caller.
func (dc *DrawContext) Commands() []DrawCommand {
	return dc.commands
}

// DrawGeometry records g under the active clip. Empty geometry and
// fully-clipped commands are dropped.
func (dc *DrawContext) DrawGeometry(g *Geometry) {
	if g == nil || g.Empty() {
		return
	}
	dc.record(DrawCommand{Type: CommandTriangles, Geometry: g})
}

// DrawImage records img stretched over dst.
func (dc *DrawContext) DrawImage(img *ebiten.Image, dst Rect) {
	if img == nil || dst.Empty() {
		return
	}
	dc.record(DrawCommand{Type: CommandImage, Image: img, Dst: dst})
}

// DrawText records s with its top-left corner at pos.
func (dc *DrawContext) DrawText(s string, font Font, pos Vec2, c color.NRGBA) {
	if s == "" || font == nil || c.A == 0 {
		return
	}
	dc.record(DrawCommand{Type: CommandText, Text: s, Font: font, TextPos: pos, TextColor: c})
}

func (dc *DrawContext) record(cmd DrawCommand) {
	clip := dc.Clip()
	if clip.Empty() {
		return
	}
	cmd.Clip = clip
	dc.commands = append(dc.commands, cmd)
}
