package flexui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// LerpColor blends two resolved colors. t is clamped to [0, 1]; t == 0 returns
// a and t == 1 returns b exactly. RGB is blended with go-colorful, alpha is
// interpolated linearly.
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp(t, 0, 1)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// vertexColor is a straight-alpha color in [0, 1] written into ebiten vertices.
type vertexColor struct {
	R, G, B, A float32
}

func toVertexColor(c color.NRGBA) vertexColor {
	return vertexColor{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp(a+0.5, 0, 255))
	return c
}
