package glide

// --- ID counter ---

// nodeIDCounter is a plain counter; glide is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is glide's reference scene-graph element. It satisfies both Target and
// Transform, so every Animator operation accepts it directly. Hosts with
// their own scene graph implement those interfaces instead.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local position in the parent's space.
	X, Y float64

	// Metadata
	UserData any

	components []Component
	disposed   bool
}

// NewNode creates an empty node with no components.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name}
}

// IsNil implements Nilable.
func (n *Node) IsNil() bool {
	return n == nil
}

// --- Components ---

// AddComponent attaches c after any existing components and returns n for
// chaining. Panics if c is nil or already attached to a different node.
func (n *Node) AddComponent(c Component) *Node {
	if c == nil {
		panic("glide: cannot add nil component")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddComponent")
	}
	if oc, ok := c.(ownedComponent); ok {
		if oc.bound() == n {
			return n
		}
		oc.bind(n)
	}
	n.components = append(n.components, c)
	return n
}

// RemoveComponent detaches c from this node. Paintables built for c become
// inert. No-op if c is not attached here.
func (n *Node) RemoveComponent(c Component) {
	for i, existing := range n.components {
		if existing != c {
			continue
		}
		copy(n.components[i:], n.components[i+1:])
		n.components[len(n.components)-1] = nil
		n.components = n.components[:len(n.components)-1]
		if oc, ok := c.(ownedComponent); ok {
			oc.unbind()
		}
		return
	}
}

// Components returns the attached components in attachment order. The
// returned slice MUST NOT be mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// --- Transform ---

// LocalPosition returns (X, Y).
func (n *Node) LocalPosition() Vec2 {
	return Vec2{n.X, n.Y}
}

// SetLocalPosition writes (X, Y). No-op on a disposed node.
func (n *Node) SetLocalPosition(p Vec2) {
	if n.disposed {
		return
	}
	n.X, n.Y = p.X, p.Y
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("glide: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("glide: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("glide: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("glide: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("glide: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("glide: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Descendants returns every node below n in depth-first pre-order.
func (n *Node) Descendants() []Target {
	var out []Target
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// FindChild returns the first descendant named name in depth-first
// pre-order, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens still running against the
// node keep ticking but no longer write to it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	for _, c := range n.components {
		if oc, ok := c.(ownedComponent); ok {
			oc.unbind()
		}
	}
	n.components = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
