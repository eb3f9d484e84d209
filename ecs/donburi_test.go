package ecs

import (
	"testing"

	"github.com/phanxgames/flexui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []flexui.Event
	EventType.Subscribe(world, func(w donburi.World, e flexui.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(flexui.Event{
		Type:   flexui.EventMouseDown,
		X:      100,
		Y:      200,
		Button: flexui.MouseButtonLeft,
	})
	sink.EmitEvent(flexui.Event{
		Type:   flexui.EventMouseWheel,
		WheelY: -1.5,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	EventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != flexui.EventMouseDown || e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != flexui.EventMouseWheel || e1.WheelY != -1.5 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	EventType.Subscribe(world, func(w donburi.World, e flexui.Event) {
		count1++
	})
	EventType.Subscribe(world, func(w donburi.World, e flexui.Event) {
		count2++
	})

	sink.EmitEvent(flexui.Event{Type: flexui.EventKeyDown})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_SceneForwarding(t *testing.T) {
	world := donburi.NewWorld()
	scene := flexui.NewScene(flexui.NewContainer("root"))
	scene.SetEventSink(NewDonburiSink(world))

	var got []flexui.EventType
	EventType.Subscribe(world, func(w donburi.World, e flexui.Event) {
		got = append(got, e.Type)
	})

	scene.HandleEvent(flexui.Event{Type: flexui.EventMouseMove, X: 1, Y: 2})
	scene.HandleEvent(flexui.Event{Type: flexui.EventResize, Width: 640, Height: 480})
	EventType.ProcessEvents(world)

	want := []flexui.EventType{flexui.EventMouseMove, flexui.EventResize}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}
