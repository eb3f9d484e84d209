package flexui

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestTreeEditingPanics(t *testing.T) {
	root, a, a1, _ := sampleTree()
	mustPanic(t, "nil child", func() { root.AddChild(nil) })
	mustPanic(t, "self", func() { a.AddChild(a) })
	mustPanic(t, "cycle", func() { a1.AddChild(root) })
	mustPanic(t, "index", func() { root.AddChildAt(box("x", 1, 1), 5) })
	mustPanic(t, "not a child", func() { root.RemoveChild(a1) })

	d := box("d", 1, 1)
	d.Dispose()
	mustPanic(t, "disposed", func() { root.AddChild(d) })
}

func TestReparent(t *testing.T) {
	root, a, a1, b := sampleTree()
	b.AddChild(a1)
	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if a1.Parent() != b || b.ChildAt(0) != Widget(a1) {
		t.Error("a1 not moved under b")
	}

	root.AddChildAt(b, 0)
	if root.ChildAt(0) != Widget(b) || root.ChildAt(1) != Widget(a) {
		t.Error("AddChildAt on own parent should reorder")
	}
	if root.NumChildren() != 2 {
		t.Errorf("children = %d, want 2", root.NumChildren())
	}
}

func TestRemoveChild(t *testing.T) {
	root, a, _, b := sampleTree()
	got := root.RemoveChildAt(0)
	if got != Widget(a) || a.Parent() != nil {
		t.Error("RemoveChildAt(0) should detach a")
	}
	b.RemoveFromParent()
	if root.NumChildren() != 0 || b.Parent() != nil {
		t.Error("RemoveFromParent should detach b")
	}
	b.RemoveFromParent()
}

func TestSlotsStayIndexAligned(t *testing.T) {
	root := box("root", 100, 100)
	a, b, c := box("a", 10, 10), box("b", 20, 20), box("c", 30, 30)
	root.AddChildren(a, b, c)
	s := updateTree(root, Vec2{X: 100, Y: 100})
	root.RemoveChild(b)
	s.Update(Vec2{X: 100, Y: 100})
	if root.ChildSlot(1).Size != (Vec2{X: 30, Y: 30}) {
		t.Errorf("slot 1 = %v, want c's size", root.ChildSlot(1).Size)
	}
}

func TestDisposeRecursive(t *testing.T) {
	root, a, a1, _ := sampleTree()
	anim := a1.Animate(Timing(0, 1, 1, EaseLinear))
	anim.Start()
	a.Dispose()
	if !a.IsDisposed() || !a1.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 1 {
		t.Errorf("root children = %d, want 1", root.NumChildren())
	}
	if !anim.IsComplete() {
		t.Error("descendant animations should be terminated")
	}
	a.Dispose()
}

func TestSpecChangedDetection(t *testing.T) {
	root := box("root", 10, 10)
	s := updateTree(root, Vec2{X: 10, Y: 10})
	s.Update(Vec2{X: 10, Y: 10})
	if root.SpecChanged() {
		t.Error("unchanged spec reported as changed")
	}
	root.Style.FillColor = Hex("#000000")
	s.Update(Vec2{X: 10, Y: 10})
	if !root.SpecChanged() {
		t.Error("style change not detected")
	}
	if root.background.Empty() {
		t.Error("background not re-tessellated after fill change")
	}
}

func TestAddTypedNilChildPanics(t *testing.T) {
	tests := []struct {
		name  string
		child Widget
	}{
		{"nil interface", nil},
		{"nil node", (*Node)(nil)},
		{"nil button", (*Button)(nil)},
		{"nil label", (*Label)(nil)},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if r := recover(); r != "flexui: cannot add nil child" {
					t.Errorf("%s: recovered %v", tt.name, r)
				}
			}()
			box("root", 10, 10).AddChild(tt.child)
		}()
	}
}
