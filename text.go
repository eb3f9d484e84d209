package flexui

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the text measurement service consumed by layout. Results are
// treated as already-resolved content metrics.
type Font interface {
	// Measure returns the size of s laid out with LineHeight spacing.
	Measure(s string) (width, height float64)
	LineHeight() float64
	// CharPosition returns the x offset of the rune at index runeIndex
	// within s. Indices past the end return the full advance.
	CharPosition(s string, runeIndex int) float64
	// Face returns the face used to render text, or nil for measurement-only
	// fonts.
	Face() text.Face
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("flexui: parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// defaultSource is parsed once on first use (single-threaded, no sync.Once).
var defaultSource *text.GoTextFaceSource

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) *TTFFont {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("flexui: embedded Go Regular font: " + err.Error())
		}
		defaultSource = src
	}
	return newTTFFont(defaultSource, size)
}

// Measure returns the width and height of the rendered text.
func (f *TTFFont) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// CharPosition returns the advance of the first runeIndex runes of s.
func (f *TTFFont) CharPosition(s string, runeIndex int) float64 {
	if runeIndex <= 0 {
		return 0
	}
	return text.Advance(s[:runeByteOffset(s, runeIndex)], f.face)
}

// Face returns the underlying GoTextFace.
func (f *TTFFont) Face() text.Face {
	return f.face
}

// runeByteOffset converts a rune index into a byte offset, clamped to len(s).
func runeByteOffset(s string, runeIndex int) int {
	off := 0
	for i := 0; i < runeIndex && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
