package flexui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newButtonScene() (*Scene, *Button, *fakeClock) {
	root := box("root", 300, 200)
	btn := NewButton("ok", "OK", nil)
	root.AddChild(btn)
	clock := newFakeClock()
	btn.SetAnimationClock(clock)
	s := newTestScene(root)
	s.Update(Vec2{X: 300, Y: 200})
	return s, btn, clock
}

func center(w Widget) (float64, float64) {
	b := w.Base().Bounds()
	return b.X + b.Width/2, b.Y + b.Height/2
}

func hasText(cmds []DrawCommand, s string) bool {
	for _, cmd := range cmds {
		if cmd.Type == CommandText && cmd.Text == s {
			return true
		}
	}
	return false
}

func TestButtonAutoSize(t *testing.T) {
	_, btn, _ := newButtonScene()
	ls := btn.label.ContentSize()
	if ls.X <= 0 || ls.Y <= 0 {
		t.Fatalf("label not measured: %v", ls)
	}
	want := Vec2{X: ls.X + 2*buttonPadX, Y: ls.Y + 2*buttonPadY}
	if got := btn.ComputedLayout().Size; got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestButtonHover(t *testing.T) {
	s, btn, clock := newButtonScene()
	cx, cy := center(btn)

	s.HandleEvent(Event{Type: EventMouseMove, X: cx, Y: cy})
	if !btn.Hovered() {
		t.Fatal("button should be hovered")
	}
	clock.advance(0.2)
	s.Update(Vec2{X: 300, Y: 200})
	if got, want := btn.ComputedStyle().FillColor, ResolveColor(btn.HoverColor); got != want {
		t.Errorf("fill = %v, want hover color %v", got, want)
	}

	s.HandleEvent(Event{Type: EventMouseMove, X: 299, Y: 199})
	if btn.Hovered() {
		t.Error("button should not be hovered")
	}
	clock.advance(0.2)
	s.Update(Vec2{X: 300, Y: 200})
	if got, want := btn.ComputedStyle().FillColor, ResolveColor(btn.Color); got != want {
		t.Errorf("fill = %v, want base color %v", got, want)
	}
}

func TestButtonClickViaInjection(t *testing.T) {
	s, btn, _ := newButtonScene()
	clicks := 0
	btn.OnClick = func() { clicks++ }
	cx, cy := center(btn)

	s.InjectClick(cx, cy)
	for i := 0; i < 3; i++ {
		if err := s.Frame(Vec2{X: 300, Y: 200}); err != nil {
			t.Fatal(err)
		}
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !btn.Focused() || btn.Pressed() {
		t.Errorf("focused %v pressed %v, want focused and released", btn.Focused(), btn.Pressed())
	}
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	s, btn, _ := newButtonScene()
	clicks := 0
	btn.OnClick = func() { clicks++ }
	cx, cy := center(btn)

	s.HandleEvent(Event{Type: EventMouseDown, X: cx, Y: cy, Button: MouseButtonLeft})
	if !btn.Pressed() {
		t.Fatal("button should be pressed")
	}
	s.Update(Vec2{X: 300, Y: 200})
	if got, want := btn.ComputedStyle().FillColor, ResolveColor(btn.PressColor); got != want {
		t.Errorf("pressed fill = %v, want %v", got, want)
	}
	s.HandleEvent(Event{Type: EventMouseUp, X: 299, Y: 199, Button: MouseButtonLeft})
	if clicks != 0 || btn.Pressed() {
		t.Errorf("clicks %d pressed %v, want no click", clicks, btn.Pressed())
	}

	s.HandleEvent(Event{Type: EventMouseDown, X: 299, Y: 199, Button: MouseButtonLeft})
	if btn.Focused() {
		t.Error("pressing elsewhere should drop focus")
	}
}

func TestButtonKeyboardActivation(t *testing.T) {
	s, btn, _ := newButtonScene()
	clicks := 0
	btn.OnClick = func() { clicks++ }

	tests := []struct {
		focused bool
		key     ebiten.Key
		want    int
	}{
		{false, ebiten.KeyEnter, 0},
		{true, ebiten.KeyEnter, 1},
		{true, ebiten.KeySpace, 2},
		{true, ebiten.KeyA, 2},
	}
	for _, tt := range tests {
		btn.SetFocused(tt.focused)
		s.HandleEvent(Event{Type: EventKeyDown, Key: tt.key})
		if clicks != tt.want {
			t.Errorf("focused=%v key=%v: clicks = %d, want %d", tt.focused, tt.key, clicks, tt.want)
		}
	}
}

func TestButtonFocusRingSprings(t *testing.T) {
	s, btn, clock := newButtonScene()
	btn.SetFocused(true)
	for i := 0; i < 600 && !btn.focus.IsComplete(); i++ {
		clock.advance(1.0 / 60)
		s.Update(Vec2{X: 300, Y: 200})
	}
	if btn.focus.Value() != btn.RingOffset {
		t.Fatalf("ring offset = %v, want %v", btn.focus.Value(), btn.RingOffset)
	}
	s.Update(Vec2{X: 300, Y: 200})
	bb, rb := btn.Bounds(), btn.ring.Bounds()
	if rb.X != bb.X-3 || rb.Width != bb.Width+6 {
		t.Errorf("ring bounds %v around button %v", rb, bb)
	}
}

func TestButtonTooltipAfterHoverSettles(t *testing.T) {
	s, btn, clock := newButtonScene()
	btn.Tooltip = "Save"
	target := Vec2{X: 300, Y: 200}
	cx, cy := center(btn)

	s.HandleEvent(Event{Type: EventMouseMove, X: cx, Y: cy})
	s.Update(target)
	if hasText(s.BuildCommands(target), "Save") {
		t.Error("tooltip shown while hover is animating")
	}
	clock.advance(0.2)
	s.Update(target)
	if !hasText(s.BuildCommands(target), "Save") {
		t.Error("tooltip not shown after hover settled")
	}

	s.HandleEvent(Event{Type: EventMouseMove, X: 299, Y: 199})
	clock.advance(0.2)
	s.Update(target)
	if hasText(s.BuildCommands(target), "Save") {
		t.Error("tooltip shown without hover")
	}
}
