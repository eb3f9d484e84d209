// Package flexui is a retained-mode UI layout and rendering engine for
// [Ebitengine].
//
// A tree of styled nodes is resolved every frame into pixel-exact boxes,
// tessellated into triangle geometry (rounded backgrounds, borders and
// layered shadows) and drawn with one clip rectangle per subtree. Widgets
// drive transitions with timing, spring and decay animations.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	root := flexui.NewContainer("root")
//	root.Layout.Width = flexui.Percent("100%")
//	root.Layout.Height = flexui.Percent("100%")
//	root.AddChild(flexui.NewButton("ok", "OK", nil))
//	flexui.Run(flexui.NewScene(root), flexui.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Frame] and [Scene.Draw] directly:
//
//	type Game struct{ scene *flexui.Scene }
//
//	func (g *Game) Update() error        { return g.scene.Frame(flexui.Vec2{X: 640, Y: 480}) }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Layout
//
// Every node carries a [LayoutSpec]. Children are stacked along the primary
// axis chosen by [Direction] and distributed by [AlignPrimary]; each child is
// placed on the cross axis by [AlignSecondary]. Sizes are [Dimension] values:
// absolute pixels, a percentage of the parent's content box, or Auto to use
// the node's measured content. Padding, margin and corner radii are
// [UniQuad] values, clamped to half the shorter side of the reference box.
//
// Positions are absolute render-target coordinates. A parent computes a
// [ChildLayoutSlot] for every child and pushes it with
// [Node.UpdateChildFromParent] before the child updates.
//
// # Frame protocol
//
// [Scene.HandleEvent] delivers each event to every node in breadth-first
// order. [Scene.Update] runs two breadth-first passes: PreUpdate snapshots
// specs, then Update lays out, resolves style and re-tessellates when
// anything changed. Drawing is depth-first with a clip stack; a final
// breadth-first DrawOverlay pass is clipped only to the render target, for
// focus rings and tooltips.
//
// Composite widgets ([Button], [Slider]) own private sub-components that the
// scene never visits; the owner updates and draws them itself.
//
// # Documents
//
// [LoadDocument] builds a tree from TOML. [Rasterizer] renders recorded
// commands on the CPU, which the flexshot command uses for headless PNGs.
//
// # Testing
//
// [Scene.InjectClick] and friends queue synthetic input, [LoadTestScript]
// replays JSON scripts and [Scene.Screenshot] captures frames. Animations
// accept a [Clock] so tests can control time.
//
// [Ebitengine]: https://ebitengine.org
package flexui
