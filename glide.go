package glide

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color. Components are nominally in [0, 1] but glide
// never clamps them; the host applies any final clamping when it draws.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint of a freshly attached component.
var ColorWhite = Color{1, 1, 1, 1}

// ColorClear is the fully transparent zero color. Paintables return it when
// their underlying component is gone.
var ColorClear = Color{}

// Add returns the component-wise sum c + o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Sub returns the component-wise difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

// Scale multiplies every component, alpha included, by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A * k}
}

// at returns channel i in R, G, B, A order.
func (c Color) at(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

// ColorScale converts c to an ebiten.ColorScale for drawing. Ebitengine
// expects premultiplied alpha.
func (c Color) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.SetR(float32(c.R * c.A))
	cs.SetG(float32(c.G * c.A))
	cs.SetB(float32(c.B * c.A))
	cs.SetA(float32(c.A))
	return cs
}

// ParseColor parses an HTML hex color: "#rgb", "#rrggbb" or "#rrggbbaa".
// Alpha defaults to 1 when omitted.
func ParseColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		v, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float64(v) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color: %w", err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Vec2 is a 2D vector. glide uses it for a node's local position in its
// parent's coordinate space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

func (v Vec2) at(i int) float64 {
	if i == 0 {
		return v.X
	}
	return v.Y
}

// scalar is a single-channel value, used for alpha tweens.
type scalar float64

func (s scalar) Add(o scalar) scalar { return s + o }
func (s scalar) Sub(o scalar) scalar { return s - o }
func (s scalar) Scale(k float64) scalar { return s * scalar(k) }
func (s scalar) at(int) float64 { return float64(s) }
