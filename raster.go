package flexui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Rasterizer renders recorded draw commands on the CPU with gg. It needs no
// running game loop, so it backs headless snapshots and golden tests.
//
// Image commands are skipped: ebiten textures cannot be read back outside
// the game loop. Text is drawn with Go Regular at the command font's size.
type Rasterizer struct {
	Background color.Color

	faces map[float64]font.Face
	ttf   *opentype.Font
}

// NewRasterizer creates a rasterizer with a white background.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{Background: color.White, faces: map[float64]font.Face{}}
}

// Rasterize draws commands into a new w x h image.
func (r *Rasterizer) Rasterize(w, h int, commands []DrawCommand) (image.Image, error) {
	dc := gg.NewContext(w, h)
	if r.Background != nil {
		dc.SetColor(r.Background)
		dc.Clear()
	}
	for i := range commands {
		cmd := &commands[i]
		if cmd.Clip.Empty() {
			continue
		}
		dc.Push()
		dc.DrawRectangle(cmd.Clip.X, cmd.Clip.Y, cmd.Clip.Width, cmd.Clip.Height)
		dc.Clip()
		switch cmd.Type {
		case CommandTriangles:
			fillGeometry(dc, cmd.Geometry)
		case CommandText:
			if err := r.drawText(dc, cmd); err != nil {
				dc.Pop()
				return nil, err
			}
		}
		dc.Pop()
	}
	return dc.Image(), nil
}

// SavePNG rasterizes commands and writes them to path.
func (r *Rasterizer) SavePNG(path string, w, h int, commands []DrawCommand) error {
	img, err := r.Rasterize(w, h, commands)
	if err != nil {
		return err
	}
	if err := writePNG(path, img); err != nil {
		return fmt.Errorf("flexui: %w", err)
	}
	return nil
}

// fillGeometry fills runs of same-colored triangles as one path so adjacent
// triangles do not leave anti-aliasing seams.
func fillGeometry(dc *gg.Context, g *Geometry) {
	if g == nil || g.Empty() {
		return
	}
	var cur color.NRGBA
	open := false
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]]
		b := g.Vertices[g.Indices[i+1]]
		c := g.Vertices[g.Indices[i+2]]
		col := color.NRGBA{
			R: uint8(a.ColorR*255 + 0.5),
			G: uint8(a.ColorG*255 + 0.5),
			B: uint8(a.ColorB*255 + 0.5),
			A: uint8(a.ColorA*255 + 0.5),
		}
		if open && col != cur {
			dc.SetColor(cur)
			dc.Fill()
			open = false
		}
		cur = col
		open = true
		dc.MoveTo(float64(a.DstX), float64(a.DstY))
		dc.LineTo(float64(b.DstX), float64(b.DstY))
		dc.LineTo(float64(c.DstX), float64(c.DstY))
		dc.ClosePath()
	}
	if open {
		dc.SetColor(cur)
		dc.Fill()
	}
}

func (r *Rasterizer) drawText(dc *gg.Context, cmd *DrawCommand) error {
	if cmd.Font == nil || cmd.Text == "" {
		return nil
	}
	size := cmd.Font.LineHeight()
	if sized, ok := cmd.Font.(interface{ Size() float64 }); ok {
		size = sized.Size()
	}
	face, err := r.face(size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(cmd.TextColor)
	ascent := float64(face.Metrics().Ascent.Ceil())
	lh := cmd.Font.LineHeight()
	for i, line := range strings.Split(cmd.Text, "\n") {
		dc.DrawString(line, cmd.TextPos.X, cmd.TextPos.Y+ascent+float64(i)*lh)
	}
	return nil
}

func (r *Rasterizer) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	if r.ttf == nil {
		ttf, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("flexui: parse Go Regular: %w", err)
		}
		r.ttf = ttf
	}
	f, err := opentype.NewFace(r.ttf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("flexui: font face %.1f: %w", size, err)
	}
	if r.faces == nil {
		r.faces = map[float64]font.Face{}
	}
	r.faces[size] = f
	return f, nil
}
