package flexui

import (
	"image/color"
	"testing"
)

func TestClipStack(t *testing.T) {
	var dc DrawContext
	dc.reset(Vec2{X: 100, Y: 80})
	root := Rect{Width: 100, Height: 80}
	if dc.Clip() != root {
		t.Fatalf("root clip = %v", dc.Clip())
	}
	dc.PushClip(Rect{X: 50, Y: 40, Width: 100, Height: 100})
	if want := (Rect{X: 50, Y: 40, Width: 50, Height: 40}); dc.Clip() != want {
		t.Errorf("pushed clip = %v, want %v", dc.Clip(), want)
	}
	dc.PushClip(Rect{X: 0, Y: 0, Width: 60, Height: 60})
	if want := (Rect{X: 50, Y: 40, Width: 10, Height: 20}); dc.Clip() != want {
		t.Errorf("nested clip = %v, want %v", dc.Clip(), want)
	}
	dc.PopClip()
	dc.PopClip()
	dc.PopClip()
	if dc.Clip() != root {
		t.Errorf("root clip popped: %v", dc.Clip())
	}
}

func TestRecordDropsEmpty(t *testing.T) {
	var dc DrawContext
	dc.reset(Vec2{X: 100, Y: 100})
	var g Geometry
	appendRoundedRect(&g, Vec2{}, Vec2{X: 10, Y: 10}, Quad{}, color.NRGBA{A: 255})

	dc.DrawGeometry(&Geometry{})
	dc.DrawGeometry(nil)
	dc.DrawText("", DefaultFont(12), Vec2{}, color.NRGBA{A: 255})
	dc.DrawText("x", DefaultFont(12), Vec2{}, color.NRGBA{})
	dc.DrawImage(nil, Rect{Width: 1, Height: 1})
	if n := len(dc.Commands()); n != 0 {
		t.Fatalf("recorded %d empty commands", n)
	}

	dc.PushClip(Rect{X: 200, Y: 200, Width: 10, Height: 10})
	dc.DrawGeometry(&g)
	dc.PopClip()
	if n := len(dc.Commands()); n != 0 {
		t.Fatalf("recorded %d fully clipped commands", n)
	}

	dc.DrawGeometry(&g)
	cmds := dc.Commands()
	if len(cmds) != 1 || cmds[0].Clip != (Rect{Width: 100, Height: 100}) {
		t.Errorf("commands = %+v", cmds)
	}
}

func TestCountBatches(t *testing.T) {
	var g Geometry
	appendRoundedRect(&g, Vec2{}, Vec2{X: 10, Y: 10}, Quad{}, color.NRGBA{A: 255})
	a := Rect{Width: 100, Height: 100}
	b := Rect{Width: 50, Height: 50}
	cmds := []DrawCommand{
		{Type: CommandTriangles, Clip: a, Geometry: &g},
		{Type: CommandTriangles, Clip: a, Geometry: &g},
		{Type: CommandTriangles, Clip: b, Geometry: &g},
		{Type: CommandText, Clip: b},
		{Type: CommandTriangles, Clip: b, Geometry: &g},
	}
	if got := countBatches(cmds); got != 4 {
		t.Errorf("countBatches = %d, want 4", got)
	}
	if got := countBatches(nil); got != 0 {
		t.Errorf("countBatches(nil) = %d", got)
	}
	if got := countVertices(cmds); got != 4*len(g.Vertices) {
		t.Errorf("countVertices = %d, want %d", got, 4*len(g.Vertices))
	}
}
