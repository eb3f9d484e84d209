package flexui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource produces the events for one frame.
type inputSource interface {
	poll(buf []Event) []Event
}

// inputPoller turns ebiten's polled input state into Events. Only changes
// produce events: the cursor must move, a button or key must change state,
// the wheel must turn or characters must be typed.
type inputPoller struct {
	lastX, lastY int
	havePos      bool
	keys         []ebiten.Key
	chars        []rune
}

var pollButtons = [...]struct {
	eb ebiten.MouseButton
	mb MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// poll appends this frame's events to buf and returns it.
func (p *inputPoller) poll(buf []Event) []Event {
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if !p.havePos || mx != p.lastX || my != p.lastY {
		p.lastX, p.lastY, p.havePos = mx, my, true
		buf = append(buf, Event{Type: EventMouseMove, X: x, Y: y, Modifiers: mods})
	}

	for _, b := range pollButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			buf = append(buf, Event{Type: EventMouseDown, X: x, Y: y, Button: b.mb, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			buf = append(buf, Event{Type: EventMouseUp, X: x, Y: y, Button: b.mb, Modifiers: mods})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		buf = append(buf, Event{Type: EventMouseWheel, X: x, Y: y, WheelX: wx, WheelY: wy, Modifiers: mods})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, Event{Type: EventKeyDown, Key: k, Modifiers: mods})
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, Event{Type: EventKeyUp, Key: k, Modifiers: mods})
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		buf = append(buf, Event{Type: EventTextInput, Rune: r, Modifiers: mods})
	}
	return buf
}
