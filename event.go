package flexui

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies the kind of input event delivered to the tree.
type EventType uint8

const (
	EventMouseMove  EventType = iota // pointer moved
	EventMouseDown                   // button pressed
	EventMouseUp                     // button released
	EventMouseWheel                  // wheel scrolled
	EventKeyDown                     // key pressed
	EventKeyUp                       // key released
	EventTextInput                   // character typed
	EventResize                      // render target resized
)

var eventTypeNames = [...]string{
	"mousemove", "mousedown", "mouseup", "mousewheel",
	"keydown", "keyup", "textinput", "resize",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a single input event. Every node in the tree receives every event;
// nodes decide relevance from their own resolved bounds.
type Event struct {
	Type EventType

	// Pointer position in render-target space (mouse events).
	X, Y   float64
	Button MouseButton

	// Wheel deltas (EventMouseWheel).
	WheelX, WheelY float64

	// Keyboard (EventKeyDown, EventKeyUp, EventTextInput).
	Key       ebiten.Key
	Rune      rune
	Modifiers KeyModifiers

	// New render-target size (EventResize).
	Width, Height int
}

// IsPointer reports whether the event carries a pointer position.
func (e Event) IsPointer() bool {
	switch e.Type {
	case EventMouseMove, EventMouseDown, EventMouseUp, EventMouseWheel:
		return true
	}
	return false
}

// EventSink receives every event the scene dispatches, after the tree has
// handled it. Used by the ecs bridge.
type EventSink interface {
	EmitEvent(event Event)
}
