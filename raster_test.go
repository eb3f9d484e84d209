package flexui

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRasterizeFill(t *testing.T) {
	root := filled("root", 50, 50)
	target := Vec2{X: 100, Y: 100}
	s := updateTree(root, target)

	img, err := NewRasterizer().Rasterize(100, 100, s.BuildCommands(target))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{50, 50, color.RGBA{R: 255, A: 255}},
		{30, 70, color.RGBA{R: 255, A: 255}},
		{10, 10, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{90, 50, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := rgbaAt(img, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeRespectsClip(t *testing.T) {
	var g Geometry
	appendRoundedRect(&g, Vec2{}, Vec2{X: 100, Y: 100}, Quad{}, color.NRGBA{B: 255, A: 255})
	cmds := []DrawCommand{
		{Type: CommandTriangles, Clip: Rect{Width: 50, Height: 100}, Geometry: &g},
		{Type: CommandTriangles, Clip: Rect{X: 80, Y: 80}, Geometry: &g},
	}
	r := NewRasterizer()
	r.Background = color.Black
	img, err := r.Rasterize(100, 100, cmds)
	if err != nil {
		t.Fatal(err)
	}
	if got := rgbaAt(img, 25, 50); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("inside clip = %v, want blue", got)
	}
	if got := rgbaAt(img, 75, 50); got != (color.RGBA{A: 255}) {
		t.Errorf("outside clip = %v, want black", got)
	}
	if got := rgbaAt(img, 90, 90); got != (color.RGBA{A: 255}) {
		t.Errorf("empty-clip command drew %v", got)
	}
}

func TestRasterizeText(t *testing.T) {
	root := box("root", 200, 100)
	label := NewLabel("title", "HHHH", DefaultFont(32))
	root.AddChild(label)
	target := Vec2{X: 200, Y: 100}
	s := updateTree(root, target)

	img, err := NewRasterizer().Rasterize(200, 100, s.BuildCommands(target))
	if err != nil {
		t.Fatal(err)
	}
	b := label.Bounds()
	dark := 0
	for y := int(b.Y); y < int(b.Y+b.Height); y++ {
		for x := int(b.X); x < int(b.X+b.Width); x++ {
			if rgbaAt(img, x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text pixels inside the label bounds")
	}
	if got := rgbaAt(img, 150, 90); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("background pixel = %v", got)
	}
}

func TestRasterizerSavePNG(t *testing.T) {
	root := filled("root", 10, 10)
	target := Vec2{X: 20, Y: 20}
	s := updateTree(root, target)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := NewRasterizer().SavePNG(path, 20, 20, s.BuildCommands(target)); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
	if err := NewRasterizer().SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), 20, 20, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
