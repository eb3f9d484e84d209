package flexui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button label inset used when the button is Auto sized.
const (
	buttonPadX = 14
	buttonPadY = 8
)

// Button is a clickable box with a centered label. Its label, focus ring
// and tooltip are private sub-components: the owning button updates and
// draws them, the scene never visits them.
//
// Hovering fades the fill from Color to HoverColor with a timing animation.
// Pressing focuses the button, which springs the focus ring out to
// RingOffset. The ring and the tooltip are drawn in the overlay pass so
// they are not clipped by the button's ancestors.
type Button struct {
	Node
	Text    string
	Tooltip string
	OnClick func()

	Color      Color
	HoverColor Color
	PressColor Color
	RingColor  Color
	RingOffset float64

	label *Label
	ring  *Node
	tip   *Label

	hover *Animation
	focus *Animation

	hovered bool
	pressed bool
	focused bool
	pointer Vec2
}

// NewButton creates a button. A nil font uses DefaultFont(16).
func NewButton(id, text string, font Font) *Button {
	b := &Button{
		Text:       text,
		Color:      Hex("#3b82f6"),
		HoverColor: Hex("#2563eb"),
		PressColor: Hex("#1d4ed8"),
		RingColor:  Hex("#93c5fd"),
		RingOffset: 3,
	}
	b.ID = id
	b.Layout.Width = Auto()
	b.Layout.Height = Auto()
	b.Style.CornerRadius = Uniform(Px(6))

	b.label = NewLabel(id+".label", text, font)
	b.label.Color = RGB(255, 255, 255)

	b.ring = NewContainer(id + ".ring")
	b.ring.Style.BorderWidth = Px(2)

	b.tip = NewLabel(id+".tooltip", "", b.label.Font)
	b.tip.Color = RGB(255, 255, 255)
	b.tip.Layout.Padding = Uniform(Px(4))
	b.tip.Style.FillColor = RGBA(20, 20, 24, 230)
	b.tip.Style.CornerRadius = Uniform(Px(4))

	b.hover = b.Animate(Timing(0, 0, 0.12, EaseOutQuad))
	b.focus = b.Animate(Spring(0, 0, DefaultSpringConfig()))
	return b
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether the left button went down on the button and has
// not been released yet.
func (b *Button) Pressed() bool { return b.pressed }

// Focused reports whether the button has keyboard focus.
func (b *Button) Focused() bool { return b.focused }

// SetFocused moves focus to or away from the button.
func (b *Button) SetFocused(focused bool) {
	if focused == b.focused {
		return
	}
	b.focused = focused
	if focused {
		b.focus.Retarget(b.RingOffset)
	} else {
		b.focus.Retarget(0)
	}
}

// Click invokes OnClick.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// HandleEvent applies hover, press, focus and keyboard activation.
func (b *Button) HandleEvent(ev Event) {
	switch ev.Type {
	case EventMouseMove:
		b.pointer = Vec2{X: ev.X, Y: ev.Y}
		inside := b.Contains(ev.X, ev.Y)
		if inside != b.hovered {
			b.hovered = inside
			if inside {
				b.hover.Retarget(1)
			} else {
				b.hover.Retarget(0)
			}
		}
	case EventMouseDown:
		if ev.Button != MouseButtonLeft {
			break
		}
		inside := b.Contains(ev.X, ev.Y)
		b.pressed = inside
		b.SetFocused(inside)
	case EventMouseUp:
		if ev.Button != MouseButtonLeft || !b.pressed {
			break
		}
		b.pressed = false
		if b.Contains(ev.X, ev.Y) {
			b.Click()
		}
	case EventKeyDown:
		if b.focused && (ev.Key == ebiten.KeyEnter || ev.Key == ebiten.KeySpace) {
			b.Click()
		}
	}
	b.Node.HandleEvent(ev)
}

// PreUpdate forwards text into the private labels and measures them.
func (b *Button) PreUpdate() {
	b.Node.PreUpdate()
	b.label.Text = b.Text
	b.label.PreUpdate()
	b.tip.Text = b.Tooltip
	b.tip.PreUpdate()
	b.ring.PreUpdate()
	ls := b.label.ContentSize()
	b.SetContentSize(Vec2{X: ls.X + 2*buttonPadX, Y: ls.Y + 2*buttonPadY})
}

// Update resolves the fill from the hover and press state, lays out the
// button and then its private sub-components.
func (b *Button) Update(target Vec2) {
	fill := LerpColor(ResolveColor(b.Color), ResolveColor(b.HoverColor), b.hover.Value())
	if b.pressed {
		fill = ResolveColor(b.PressColor)
	}
	b.Style.FillColor = Native(fill)
	b.Node.Update(target)

	cb := b.ContentBox()
	ls := b.label.ContentSize()
	b.label.UpdateChildFromParent(ChildLayoutSlot{
		Size:     ls,
		Position: image.Pt(roundPx(cb.X+(cb.Width-ls.X)/2), roundPx(cb.Y+(cb.Height-ls.Y)/2)),
	})
	b.label.Update(target)

	off := b.focus.Value()
	bb := b.Bounds()
	b.ring.Style.BorderColor = b.RingColor
	b.ring.Style.CornerRadius = Uniform(Px(b.style.CornerRadius[CornerTopLeft] + off))
	b.ring.UpdateChildFromParent(ChildLayoutSlot{
		Size:     Vec2{X: bb.Width + 2*off, Y: bb.Height + 2*off},
		Position: image.Pt(roundPx(bb.X-off), roundPx(bb.Y-off)),
	})
	b.ring.Update(target)

	ts := b.tip.ContentSize()
	b.tip.UpdateChildFromParent(ChildLayoutSlot{
		Size:     Vec2{X: ts.X + 8, Y: ts.Y + 8},
		Position: image.Pt(roundPx(b.pointer.X), roundPx(bb.Y+bb.Height+6)),
	})
	b.tip.Update(target)
}

// Draw draws the button box and its label.
func (b *Button) Draw(dc *DrawContext) {
	b.Node.Draw(dc)
	b.label.Draw(dc)
}

// DrawOverlay draws the focus ring and, once the hover transition has
// settled, the tooltip.
func (b *Button) DrawOverlay(dc *DrawContext) {
	if b.focused || b.focus.Value() > 0.5 {
		b.ring.Draw(dc)
	}
	if b.hovered && b.Tooltip != "" && !b.hover.IsAnimating() {
		b.tip.Draw(dc)
	}
}
