package glide

// Component is a capability attached to a node. glide recognizes four
// paintable kinds (Graphic, Sprite, Line, Mesh); hosts may attach any other
// Component and the resolver passes over it.
type Component interface {
	ComponentName() string
}

// binding ties a component to the node that owns it. A component with no
// owner, or whose owner has been disposed, is treated as absent.
type binding struct {
	owner *Node
}

func (b *binding) bound() *Node { return b.owner }

// attached reports whether the component still belongs to a live node.
func (b *binding) attached() bool {
	return b.owner != nil && !b.owner.disposed
}

func (b *binding) bind(n *Node) {
	if b.owner != nil && b.owner != n {
		panic("glide: component is already attached to another node")
	}
	b.owner = n
}

func (b *binding) unbind() { b.owner = nil }

// ownedComponent is implemented by the components that carry a binding.
type ownedComponent interface {
	Component
	bound() *Node
	bind(*Node)
	unbind()
}

// Graphic is a UI graphic with a single tint color.
type Graphic struct {
	binding
	Color Color
}

// NewGraphic returns a white UI graphic.
func NewGraphic() *Graphic { return &Graphic{Color: ColorWhite} }

// ComponentName implements Component.
func (*Graphic) ComponentName() string { return "graphic" }

// Sprite is a textured quad with a single tint color.
type Sprite struct {
	binding
	Color Color
}

// NewSprite returns a white sprite.
func NewSprite() *Sprite { return &Sprite{Color: ColorWhite} }

// ComponentName implements Component.
func (*Sprite) ComponentName() string { return "sprite" }

// Line is a polyline with a color at each end. Width is in local units.
type Line struct {
	binding
	Points     []Vec2
	Width      float64
	StartColor Color
	EndColor   Color
}

// NewLine returns a white line through the given points.
func NewLine(points ...Vec2) *Line {
	return &Line{Points: points, Width: 1, StartColor: ColorWhite, EndColor: ColorWhite}
}

// ComponentName implements Component.
func (*Line) ComponentName() string { return "line" }

// Material holds the shading parameters a mesh is drawn with.
type Material struct {
	Name  string
	Color Color
}

// Mesh is arbitrary geometry drawn with one or more materials. Only the first
// material's color is animated.
type Mesh struct {
	binding
	Vertices  []Vec2
	Indices   []uint16
	Materials []*Material
}

// NewMesh returns a mesh bound to the given materials.
func NewMesh(materials ...*Material) *Mesh {
	return &Mesh{Materials: materials}
}

// ComponentName implements Component.
func (*Mesh) ComponentName() string { return "mesh" }

// material returns the first bound material, or nil.
func (m *Mesh) material() *Material {
	if len(m.Materials) == 0 {
		return nil
	}
	return m.Materials[0]
}
