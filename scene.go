package flexui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene owns a widget tree and drives it once per frame: events, then the
// two update passes, then draw. A scene with a nil root does nothing.
type Scene struct {
	root  Widget
	sink  EventSink
	debug bool
	stats debugStats

	// ClearColor, when non-nil, fills the screen before drawing.
	ClearColor color.Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	dc      DrawContext
	batch   batcher
	queue   []Widget
	walking bool
	target  Vec2
	updateF func() error

	input           inputSource
	events          []Event
	injectQueue     []Event
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewScene creates a scene around root. root may be nil and set later.
func NewScene(root Widget) *Scene {
	return &Scene{
		root:          root,
		ScreenshotDir: "screenshots",
		input:         &inputPoller{},
		dc:            DrawContext{commands: make([]DrawCommand, 0, defaultCommandCap)},
	}
}

// Root returns the root widget.
func (s *Scene) Root() Widget {
	return s.root
}

// SetRoot replaces the root widget.
func (s *Scene) SetRoot(root Widget) {
	s.root = root
}

// SetEventSink sets an optional receiver for every dispatched event.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a callback invoked once per Frame, after events are
// dispatched and before the tree is updated. A returned error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateF = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and per-frame
// timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// bfs visits the public tree in level order. Returning false from fn skips
// the node's children. Private sub-components are never visited.
func (s *Scene) bfs(fn func(w Widget) bool) {
	if s.root == nil {
		return
	}
	// Nested walks (FindByID from an event handler) get their own queue.
	var q []Widget
	nested := s.walking
	if !nested {
		s.walking = true
		q = s.queue[:0]
		// Runs even when fn panics, so later walks reuse the queue.
		defer func() {
			for i := range q {
				q[i] = nil
			}
			s.queue = q[:0]
			s.walking = false
		}()
	}
	q = append(q, s.root)
	for i := 0; i < len(q); i++ {
		w := q[i]
		if fn(w) {
			q = append(q, w.Base().children...)
		}
	}
}

// Walk visits every node of the public tree once in breadth-first order.
func (s *Scene) Walk(fn func(w Widget)) {
	s.bfs(func(w Widget) bool {
		fn(w)
		return true
	})
}

// HandleEvent delivers ev to every node exactly once, in breadth-first
// order, then forwards it to the event sink.
func (s *Scene) HandleEvent(ev Event) {
	if s.root == nil {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.bfs(func(w Widget) bool {
		w.HandleEvent(ev)
		return true
	})
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
	if s.debug {
		s.stats.eventTime += time.Since(t0)
	}
}

// Update runs the two breadth-first update passes against a render target
// of the given size: every node snapshots Layout and Style, then every node advances
// its animations, lays itself out and pushes slots into its children.
func (s *Scene) Update(target Vec2) {
	if s.root == nil {
		return
	}
	s.target = target
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.bfs(func(w Widget) bool {
		w.PreUpdate()
		return true
	})
	if s.debug {
		s.stats.preUpdateTime = time.Since(t0)
		t0 = time.Now()
	}
	nodes := 0
	s.bfs(func(w Widget) bool {
		w.Base().UpdateAnimations()
		w.Update(target)
		nodes++
		return true
	})
	if s.debug {
		s.stats.updateTime = time.Since(t0)
		s.stats.nodeCount = nodes
	}
}

// BuildCommands records the draw commands for a render target of the given
// size without touching the GPU. The depth-first pass clips every subtree
// to its parent's content box; the overlay pass that follows is clipped
// only to the render target.
func (s *Scene) BuildCommands(target Vec2) []DrawCommand {
	s.dc.reset(target)
	if s.root == nil {
		return s.dc.commands
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.drawNode(s.root)
	if s.debug {
		s.stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}
	s.dc.resetClip()
	s.bfs(func(w Widget) bool {
		if w.Base().Hidden {
			return false
		}
		w.DrawOverlay(&s.dc)
		return true
	})
	if s.debug {
		s.stats.overlayTime = time.Since(t0)
	}
	return s.dc.commands
}

func (s *Scene) drawNode(w Widget) {
	n := w.Base()
	if n.Hidden {
		return
	}
	w.Draw(&s.dc)
	if len(n.children) == 0 {
		return
	}
	s.dc.PushClip(n.ContentBox())
	for _, child := range n.children {
		s.drawNode(child)
	}
	s.dc.PopClip()
}

// Draw clears the screen, records commands and submits them.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor != nil {
		screen.Fill(s.ClearColor)
	}
	b := screen.Bounds()
	cmds := s.BuildCommands(Vec2{X: float64(b.Dx()), Y: float64(b.Dy())})

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.batch.submit(screen, cmds)
	if s.debug {
		s.stats.submitTime = time.Since(t0)
		s.stats.commandCount = len(cmds)
		s.stats.batchCount = countBatches(cmds)
		s.stats.vertexCount = countVertices(cmds)
		s.stats.drawCallCount = s.batch.drawCalls
		s.debugLog(s.stats)
		s.stats = debugStats{}
	}

	s.flushScreenshots(screen)
}

// Frame runs one frame of input handling and update: polled and injected
// events are dispatched, the test runner and update callback run, and the
// tree is updated against target. Run calls it from ebiten's Update.
func (s *Scene) Frame(target Vec2) error {
	s.events = s.input.poll(s.events[:0])
	if ev, ok := s.popInjected(); ok {
		s.events = append(s.events, ev)
	}
	for _, ev := range s.events {
		s.HandleEvent(ev)
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if s.updateF != nil {
		if err := s.updateF(); err != nil {
			return err
		}
	}
	s.Update(target)
	return nil
}

// FindByID returns the first node in breadth-first order whose ID matches,
// or nil.
func (s *Scene) FindByID(id string) Widget {
	var found Widget
	s.bfs(func(w Widget) bool {
		if found != nil {
			return false
		}
		if w.Base().ID == id {
			found = w
			return false
		}
		return true
	})
	return found
}

// Find returns the node with the given ID as a T. ok is false when no node
// matches or the node is not a T.
func Find[T Widget](s *Scene, id string) (T, bool) {
	w, ok := s.FindByID(id).(T)
	return w, ok
}

// HitTest returns the topmost visible node whose bounds contain (x, y), or
// nil. Later siblings are on top of earlier ones.
func (s *Scene) HitTest(x, y float64) Widget {
	if s.root == nil {
		return nil
	}
	return hitTest(s.root, x, y)
}

func hitTest(w Widget, x, y float64) Widget {
	n := w.Base()
	if n.Hidden || !n.Contains(x, y) {
		return nil
	}
	if n.ContentBox().Contains(x, y) {
		for i := len(n.children) - 1; i >= 0; i-- {
			if hit := hitTest(n.children[i], x, y); hit != nil {
				return hit
			}
		}
	}
	return w
}
