package flexui

// InjectEvent queues a synthetic event. Queued events are dispatched one per
// Frame, after the events polled from real input.
func (s *Scene) InjectEvent(ev Event) {
	s.injectQueue = append(s.injectQueue, ev)
}

// InjectMove queues a pointer move to (x, y).
func (s *Scene) InjectMove(x, y float64) {
	s.InjectEvent(Event{Type: EventMouseMove, X: x, Y: y})
}

// InjectPress queues a left-button press at (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.InjectEvent(Event{Type: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.InjectEvent(Event{Type: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a move, a press and a release at
// the same coordinates. Consumes three frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectMove(x, y)
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at (x, y).
func (s *Scene) InjectWheel(x, y, dx, dy float64) {
	s.InjectEvent(Event{Type: EventMouseWheel, X: x, Y: y, WheelX: dx, WheelY: dy})
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// popInjected removes and returns the oldest queued event.
func (s *Scene) popInjected() (Event, bool) {
	if len(s.injectQueue) == 0 {
		return Event{}, false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return ev, true
}
