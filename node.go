package flexui

// Widget is the per-node lifecycle contract. Concrete widgets embed Node and
// override the hooks they care about; Node's own implementations give plain
// container behavior.
type Widget interface {
	// Base returns the embedded tree node.
	Base() *Node
	HandleEvent(ev Event)
	PreUpdate()
	Update(target Vec2)
	Draw(dc *DrawContext)
	DrawOverlay(dc *DrawContext)
}

// Node is the tree element every widget embeds. It owns the user-authored
// specs, the computed layout and style, its public children and its
// animations. The parent pointer is a non-owning back-reference.
type Node struct {
	ID     string
	Layout LayoutSpec
	Style  StyleSpec

	// Hidden nodes are still visited by events and updates but neither they
	// nor their subtree are drawn.
	Hidden bool

	UserData any

	// OnEvent, when set, is called from the default HandleEvent.
	OnEvent func(Event)

	parent   *Node
	children []Widget
	slots    []ChildLayoutSlot
	metrics  []childMetrics

	slot    ChildLayoutSlot
	hasSlot bool

	contentSize Vec2

	layout ComputedLayout
	style  ComputedStyle

	// Spec snapshot taken in PreUpdate.
	prevLayout  LayoutSpec
	prevStyle   StyleSpec
	specChanged bool
	tessellated bool

	shadow     Geometry
	background Geometry
	border     Geometry

	animations []*Animation

	disposed bool
}

// NewContainer creates a node with no content of its own.
func NewContainer(id string) *Node {
	return &Node{ID: id}
}

// Base implements Widget.
func (n *Node) Base() *Node { return n }

// --- Tree manipulation ---

// AddChild appends child to this node's children and allocates its layout
// slot. If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child Widget) {
	n.insertChild(child, len(n.children), "AddChild")
}

// AddChildren appends every child in order.
func (n *Node) AddChildren(children ...Widget) {
	for _, c := range children {
		n.AddChild(c)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child Widget, index int) {
	if index < 0 || index > len(n.children) {
		panic("flexui: child index out of range")
	}
	n.insertChild(child, index, "AddChildAt")
}

func (n *Node) insertChild(child Widget, index int, op string) {
	c := baseOf(child)
	if c == nil {
		panic("flexui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(c, op+" (child)")
	}
	if c.disposed {
		panic("flexui: cannot add disposed node")
	}
	if isAncestor(c, n) {
		panic("flexui: adding child would create a cycle")
	}
	if c.parent != nil {
		c.parent.removeChildByPtr(c)
		if c.parent == n && index > len(n.children) {
			index = len(n.children)
		}
	}
	c.parent = n
	c.hasSlot = false
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.slots = append(n.slots, ChildLayoutSlot{})
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. Panics if child is not a child
// of this node.
func (n *Node) RemoveChild(child Widget) {
	c := child.Base()
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(c, "RemoveChild (child)")
	}
	if c.parent != n {
		panic("flexui: child's parent is not this node")
	}
	n.removeChildByPtr(c)
	c.detach()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) Widget {
	if index < 0 || index >= len(n.children) {
		panic("flexui: child index out of range")
	}
	child := n.children[index]
	n.removeIndex(index)
	child.Base().detach()
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.removeChildByPtr(n)
	n.detach()
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Base().detach()
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.slots = n.slots[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []Widget {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) Widget {
	return n.children[index]
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildSlot returns the layout slot computed for the child at index during
// the last update.
func (n *Node) ChildSlot(index int) ChildLayoutSlot {
	return n.slots[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, terminates its animations and
// recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		c := child.Base()
		c.parent = nil
		c.dispose()
	}
	for _, a := range n.animations {
		a.Terminate()
	}
	n.animations = nil
	n.children = nil
	n.slots = nil
	n.metrics = nil
	n.parent = nil
	n.UserData = nil
	n.OnEvent = nil
	n.shadow = Geometry{}
	n.background = Geometry{}
	n.border = Geometry{}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Layout slot and results ---

// UpdateChildFromParent is the single path by which an owner pushes resolved
// geometry into a node. Once a node has a slot it adopts it verbatim instead
// of sizing itself against the render target.
func (n *Node) UpdateChildFromParent(slot ChildLayoutSlot) {
	n.slot = slot
	n.hasSlot = true
}

// SetContentSize records the node's intrinsic content metrics (measured text,
// texture size). Auto dimensions resolve to it.
func (n *Node) SetContentSize(size Vec2) {
	n.contentSize = size
}

// ContentSize returns the last value passed to SetContentSize.
func (n *Node) ContentSize() Vec2 {
	return n.contentSize
}

// ComputedLayout returns the layout resolved by the last update.
func (n *Node) ComputedLayout() ComputedLayout {
	return n.layout
}

// ComputedStyle returns the style resolved by the last update.
func (n *Node) ComputedStyle() ComputedStyle {
	return n.style
}

// Bounds returns the node's resolved border box in render-target space.
func (n *Node) Bounds() Rect {
	return n.layout.Bounds()
}

// ContentBox returns the resolved bounds minus padding.
func (n *Node) ContentBox() Rect {
	return n.layout.ContentBox()
}

// Contains reports whether (x, y) lies inside the node's resolved bounds.
func (n *Node) Contains(x, y float64) bool {
	b := n.layout.Bounds()
	if b.Empty() {
		return false
	}
	return b.Contains(x, y)
}

// SpecChanged reports whether the layout or style spec differed from the
// previous frame's snapshot at the last PreUpdate.
func (n *Node) SpecChanged() bool {
	return n.specChanged
}

// --- Lifecycle (default container behavior) ---

// HandleEvent forwards to OnEvent when set.
func (n *Node) HandleEvent(ev Event) {
	if n.OnEvent != nil {
		n.OnEvent(ev)
	}
}

// PreUpdate snapshots Layout and Style for change detection.
func (n *Node) PreUpdate() {
	n.specChanged = n.Layout != n.prevLayout || n.Style != n.prevStyle
	n.prevLayout = n.Layout
	n.prevStyle = n.Style
}

// Update resolves the node's own box, lays out its public children, resolves
// its style, re-tessellates when anything visible changed and pushes a slot
// into every child.
func (n *Node) Update(target Vec2) {
	var size Vec2
	var layout ComputedLayout
	if n.hasSlot {
		size = n.slot.Size
		layout.Position = n.slot.Position
		layout.Margin = n.slot.Margin
	} else {
		size, layout.Position = resolveRootBox(n.Layout, target, n.contentSize)
	}
	layout.Size = size
	layout.Direction = n.Layout.Direction
	layout.AlignPrimary = n.Layout.AlignPrimary
	layout.AlignSecondary = n.Layout.AlignSecondary
	layout.Padding = ResolveUniQuad(size, n.Layout.Padding)

	n.metrics = n.metrics[:0]
	for _, child := range n.children {
		c := child.Base()
		n.metrics = append(n.metrics, childMetrics{spec: c.Layout, content: c.contentSize})
	}
	n.slots = layoutChildren(layout, n.metrics, n.slots)

	style := resolveStyle(size, n.Style)
	if n.specChanged || !n.tessellated || layout != n.layout || style != n.style {
		n.layout = layout
		n.style = style
		n.tessellate()
	}

	for i, child := range n.children {
		child.Base().UpdateChildFromParent(n.slots[i])
	}
}

// tessellate rebuilds the shadow, background and border batches from the
// computed layout and style.
func (n *Node) tessellate() {
	origin := Vec2{X: float64(n.layout.Position.X), Y: float64(n.layout.Position.Y)}
	size := n.layout.Size
	n.shadow.Reset()
	n.background.Reset()
	n.border.Reset()
	appendShadow(&n.shadow, origin, size, n.style)
	appendRoundedRect(&n.background, origin, size, n.style.CornerRadius, n.style.FillColor)
	appendBorder(&n.border, origin, size, n.style.CornerRadius, n.style.BorderWidth, n.style.BorderColor)
	n.tessellated = true
}

// Draw emits the node's shadow, background and border, in that order.
func (n *Node) Draw(dc *DrawContext) {
	dc.DrawGeometry(&n.shadow)
	dc.DrawGeometry(&n.background)
	dc.DrawGeometry(&n.border)
}

// DrawOverlay is a no-op for plain containers.
func (n *Node) DrawOverlay(dc *DrawContext) {}

// --- Animations ---

// Animate creates an animation owned by this node. The scene advances it
// before every Update; it is terminated when the node is disposed.
func (n *Node) Animate(cfg AnimationConfig) *Animation {
	a := NewAnimation(cfg)
	n.animations = append(n.animations, a)
	return a
}

// AddAnimation attaches an existing animation to this node.
func (n *Node) AddAnimation(a *Animation) {
	n.animations = append(n.animations, a)
}

// RemoveAnimation detaches a without terminating it.
func (n *Node) RemoveAnimation(a *Animation) {
	for i, cur := range n.animations {
		if cur == a {
			copy(n.animations[i:], n.animations[i+1:])
			n.animations[len(n.animations)-1] = nil
			n.animations = n.animations[:len(n.animations)-1]
			return
		}
	}
}

// Animations returns the node's animations. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Animations() []*Animation {
	return n.animations
}

// SetAnimationClock sets the time source of every animation owned by the
// node.
func (n *Node) SetAnimationClock(c Clock) {
	for _, a := range n.animations {
		a.SetClock(c)
	}
}

// UpdateAnimations advances every running animation owned by this node.
// Private sub-components are not visited by the scene, so their owners call
// this explicitly.
func (n *Node) UpdateAnimations() {
	for _, a := range n.animations {
		a.Update()
	}
}

// --- Helpers ---

// baseOf returns w's node, or nil for a nil widget. A typed nil such as
// (*Button)(nil) panics inside the promoted Base and is reported as nil too.
func baseOf(w Widget) (n *Node) {
	if w == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			n = nil
		}
	}()
	return w.Base()
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) detach() {
	n.parent = nil
	n.hasSlot = false
}

// removeChildByPtr removes child and its slot without clearing child.parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c.Base() == child {
			n.removeIndex(i)
			return
		}
	}
}

func (n *Node) removeIndex(i int) {
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	copy(n.slots[i:], n.slots[i+1:])
	n.slots = n.slots[:len(n.slots)-1]
}
