package flexui

import "image/color"

// Label draws a single run of text. Its width and height default to Auto,
// sizing the node to the measured text.
type Label struct {
	Node
	Text  string
	Font  Font
	Color Color

	textColor color.NRGBA
	measured  string
	measuredF Font
}

// NewLabel creates a label. A nil font uses DefaultFont(16).
func NewLabel(id, s string, font Font) *Label {
	if font == nil {
		font = DefaultFont(16)
	}
	l := &Label{Text: s, Font: font, Color: RGB(0x20, 0x20, 0x20)}
	l.ID = id
	l.Layout.Width = Auto()
	l.Layout.Height = Auto()
	return l
}

// PreUpdate snapshots Layout and Style and re-measures the text when it changed.
func (l *Label) PreUpdate() {
	l.Node.PreUpdate()
	if l.Text == l.measured && sameFont(l.Font, l.measuredF) {
		return
	}
	l.measured, l.measuredF = l.Text, l.Font
	if l.Font == nil || l.Text == "" {
		l.SetContentSize(Vec2{})
		return
	}
	w, h := l.Font.Measure(l.Text)
	l.SetContentSize(Vec2{X: w, Y: h})
}

// Update lays out the node and resolves the text color.
func (l *Label) Update(target Vec2) {
	l.Node.Update(target)
	l.textColor = ResolveColor(l.Color)
}

// Draw draws the node's box and then the text at the content box origin.
func (l *Label) Draw(dc *DrawContext) {
	l.Node.Draw(dc)
	cb := l.ContentBox()
	dc.DrawText(l.Text, l.Font, Vec2{X: cb.X, Y: cb.Y}, l.textColor)
}

// TextColor returns the color resolved by the last update.
func (l *Label) TextColor() color.NRGBA {
	return l.textColor
}

// sameFont compares two fonts. Fonts whose dynamic type is not comparable
// are never considered the same, so they are re-measured every frame.
func sameFont(a, b Font) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
