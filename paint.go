package glide

// Paintable is a gettable and settable color slot on a renderable component.
//
// Implementations never panic on a missing component: Color returns
// ColorClear and SetColor does nothing once the component is nil or its node
// has been disposed.
type Paintable interface {
	Color() Color
	SetColor(Color)
}

type graphicPaint struct{ c *Graphic }

func (p graphicPaint) Color() Color {
	if p.c == nil || !p.c.attached() {
		return ColorClear
	}
	return p.c.Color
}

func (p graphicPaint) SetColor(c Color) {
	if p.c == nil || !p.c.attached() {
		return
	}
	p.c.Color = c
}

type spritePaint struct{ c *Sprite }

func (p spritePaint) Color() Color {
	if p.c == nil || !p.c.attached() {
		return ColorClear
	}
	return p.c.Color
}

func (p spritePaint) SetColor(c Color) {
	if p.c == nil || !p.c.attached() {
		return
	}
	p.c.Color = c
}

// linePaint reads the start color and writes both ends, so the line stays
// uniform while it animates.
type linePaint struct{ c *Line }

func (p linePaint) Color() Color {
	if p.c == nil || !p.c.attached() {
		return ColorClear
	}
	return p.c.StartColor
}

func (p linePaint) SetColor(c Color) {
	if p.c == nil || !p.c.attached() {
		return
	}
	p.c.StartColor = c
	p.c.EndColor = c
}

type meshPaint struct{ c *Mesh }

func (p meshPaint) Color() Color {
	if p.c == nil || !p.c.attached() {
		return ColorClear
	}
	if m := p.c.material(); m != nil {
		return m.Color
	}
	return ColorClear
}

func (p meshPaint) SetColor(c Color) {
	if p.c == nil || !p.c.attached() {
		return
	}
	if m := p.c.material(); m != nil {
		m.Color = c
	}
}
