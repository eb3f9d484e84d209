package flexui

import (
	"image/color"
	"testing"
)

func TestLerpColorEndpoints(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	b := color.NRGBA{R: 200, G: 150, B: 100, A: 250}
	if got := LerpColor(a, b, 0); got != a {
		t.Errorf("t=0: %v, want %v", got, a)
	}
	if got := LerpColor(a, b, 1); got != b {
		t.Errorf("t=1: %v, want %v", got, b)
	}
	if got := LerpColor(a, b, -3); got != a {
		t.Errorf("t<0: %v, want %v", got, a)
	}
	if got := LerpColor(a, b, 7); got != b {
		t.Errorf("t>1: %v, want %v", got, b)
	}
}

func TestLerpColorMidpoint(t *testing.T) {
	black := color.NRGBA{A: 0}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	got := LerpColor(black, white, 0.5)
	for _, c := range []uint8{got.R, got.G, got.B} {
		if c < 127 || c > 128 {
			t.Errorf("channel = %d, want 127 or 128", c)
		}
	}
	if got.A != 100 {
		t.Errorf("alpha = %d, want 100", got.A)
	}
}

func TestWithAlphaClamps(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if got := withAlpha(c, 300).A; got != 255 {
		t.Errorf("alpha 300 = %d, want 255", got)
	}
	if got := withAlpha(c, -1).A; got != 0 {
		t.Errorf("alpha -1 = %d, want 0", got)
	}
	if got := withAlpha(c, 187.5).A; got != 188 {
		t.Errorf("alpha 187.5 = %d, want 188", got)
	}
}
