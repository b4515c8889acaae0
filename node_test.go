package glide

import (
	"bytes"
	"strings"
	"testing"
)

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.X != 0 || n.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", n.X, n.Y)
	}
	if len(n.Components()) != 0 || n.NumChildren() != 0 {
		t.Error("new node should have no components or children")
	}
}

func TestComponentDefaults(t *testing.T) {
	if NewGraphic().Color != ColorWhite {
		t.Error("Graphic should default to white")
	}
	if NewSprite().Color != ColorWhite {
		t.Error("Sprite should default to white")
	}
	l := NewLine(Vec2{}, Vec2{X: 1})
	if l.StartColor != ColorWhite || l.EndColor != ColorWhite || l.Width != 1 || len(l.Points) != 2 {
		t.Errorf("Line defaults = %+v", l)
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	child := NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewNode("p").AddChild(nil) }},
		{"cycle", func() {
			a := NewNode("a")
			b := NewNode("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"self", func() {
			a := NewNode("a")
			a.AddChild(a)
		}},
		{"index out of range", func() { NewNode("p").AddChildAt(NewNode("c"), 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestAddChildAt(t *testing.T) {
	p := NewNode("p")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)

	for i, want := range []*Node{a, b, c} {
		if p.ChildAt(i) != want {
			t.Errorf("ChildAt(%d) = %q, want %q", i, p.ChildAt(i).Name, want.Name)
		}
	}
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	p := NewNode("p")
	c := NewNode("c")
	p.AddChild(c)
	p.RemoveChild(c)

	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	NewNode("p").RemoveChild(NewNode("stranger"))
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewNode("orphan").RemoveFromParent() // must not panic
}

// --- Traversal ---

func TestDescendantsPreOrder(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a1 := NewNode("a1")
	a2 := NewNode("a2")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	a.AddChild(a2)

	got := root.Descendants()
	want := []string{"a", "a1", "a2", "b"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].(*Node).Name != name {
			t.Errorf("[%d] = %q, want %q", i, got[i].(*Node).Name, name)
		}
	}
}

func TestFindChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	deep := NewNode("deep")
	root.AddChild(a)
	a.AddChild(deep)

	if root.FindChild("deep") != deep {
		t.Error("FindChild should find nested nodes")
	}
	if root.FindChild("missing") != nil {
		t.Error("FindChild should return nil for unknown names")
	}
	if root.FindChild("root") != nil {
		t.Error("FindChild should not match the node itself")
	}
}

// --- Components ---

func TestAddComponentOrder(t *testing.T) {
	s := NewSprite()
	g := NewGraphic()
	n := NewNode("n").AddComponent(s).AddComponent(g)

	cs := n.Components()
	if len(cs) != 2 || cs[0] != Component(s) || cs[1] != Component(g) {
		t.Errorf("Components = %v", cs)
	}
	if s.owner != n || g.owner != n {
		t.Error("components should be bound to n")
	}
}

func TestAddComponentTwiceIsNoOp(t *testing.T) {
	s := NewSprite()
	n := NewNode("n").AddComponent(s).AddComponent(s)
	if len(n.Components()) != 1 {
		t.Errorf("len = %d, want 1", len(n.Components()))
	}
}

func TestAddComponentOwnedElsewherePanics(t *testing.T) {
	s := NewSprite()
	NewNode("a").AddComponent(s)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	NewNode("b").AddComponent(s)
}

func TestRemoveComponentUnbinds(t *testing.T) {
	s := NewSprite()
	n := NewNode("n").AddComponent(s)
	n.RemoveComponent(s)

	if s.owner != nil {
		t.Error("removed component should be unbound")
	}
	NewNode("other").AddComponent(s) // can be reattached
}

// --- Transform ---

func TestLocalPosition(t *testing.T) {
	n := NewNode("n")
	n.SetLocalPosition(Vec2{3, 4})
	if got := n.LocalPosition(); got != (Vec2{3, 4}) {
		t.Errorf("LocalPosition = %+v, want (3, 4)", got)
	}
}

// --- Disposal ---

func TestDisposeRecursive(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	s := NewSprite()
	child.AddComponent(s)
	root.AddChild(child)

	parent := NewNode("parent")
	parent.AddChild(root)
	root.Dispose()

	if !root.IsDisposed() || !child.IsDisposed() {
		t.Error("root and child should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("root should be removed from its parent")
	}
	if s.attached() {
		t.Error("child's components should be detached")
	}
	if root.ID != 0 {
		t.Errorf("ID = %d after dispose, want 0", root.ID)
	}
	root.Dispose() // second call is a no-op
}

func TestSetLocalPositionAfterDispose(t *testing.T) {
	n := NewNode("n")
	n.X = 5
	n.Dispose()
	n.SetLocalPosition(Vec2{9, 9})
	if n.X != 5 {
		t.Errorf("X = %v, want 5", n.X)
	}
}

// --- Debug mode ---

func TestDebugDisposedNodePanics(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	n := NewNode("dead")
	n.Dispose()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), `AddComponent on disposed node "dead"`) {
			t.Errorf("panic = %v", r)
		}
	}()
	n.AddComponent(NewSprite())
}

func TestDebugTreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	s := NewSceneWithConfig(Config{FrameRate: 60, Debug: true, LogWriter: &buf})
	defer s.SetDebugMode(false)

	parent := s.Root()
	for i := 0; i < debugMaxTreeDepth; i++ {
		child := NewNode("deep")
		parent.AddChild(child)
		parent = child
	}
	out := buf.String()
	if !strings.Contains(out, "[glide] warning: tree depth 33 exceeds 32") {
		t.Errorf("expected depth warning in the scene log writer, got %q", out)
	}
	if strings.Count(out, "warning") != 1 {
		t.Errorf("expected one warning, got %q", out)
	}
}
