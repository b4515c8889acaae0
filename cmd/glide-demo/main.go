// Command glide-demo shows glide's tweens on a handful of nodes: a panel
// that fades with its children, a sprite that cycles colors, a line and a
// mesh, and a marker that shifts back and forth. When every tween has
// finished the cycle starts again.
//
// Pass -script to play an animation script instead of the built-in cycle,
// and -config to load an Animator config file.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/glide"
)

const (
	windowTitle = "glide demo"
	screenW     = 640
	screenH     = 480
	boxSize     = 48
)

// demo holds the scene and the nodes the built-in cycle animates.
type demo struct {
	scene *glide.Scene
	pixel *ebiten.Image

	panel  *glide.Node
	sprite *glide.Node
	line   *glide.Node
	mesh   *glide.Node
	marker *glide.Node

	scripted bool
	cycle    int
}

func main() {
	configPath := flag.String("config", "", "path to a YAML animator config")
	scriptPath := flag.String("script", "", "path to a YAML animation script")
	flag.Parse()

	cfg := glide.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = glide.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	ebiten.SetTPS(cfg.FrameRate)

	d := newDemo(glide.NewSceneWithConfig(cfg))

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("failed to read script: %v", err)
		}
		runner, err := glide.LoadScript(data)
		if err != nil {
			log.Fatalf("failed to load script: %v", err)
		}
		d.scene.SetScriptRunner(runner)
		d.scripted = true
	} else {
		d.startCycle()
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}

func newDemo(scene *glide.Scene) *demo {
	d := &demo{scene: scene}
	d.pixel = ebiten.NewImage(1, 1)
	d.pixel.Fill(color.White)

	root := scene.Root()

	d.panel = glide.NewNode("panel").AddComponent(glide.NewGraphic())
	d.panel.X, d.panel.Y = 60, 60
	root.AddChild(d.panel)
	for i := 0; i < 3; i++ {
		child := glide.NewNode("panel-item").AddComponent(glide.NewSprite())
		child.X = float64(i+1) * (boxSize + 8)
		d.panel.AddChild(child)
	}

	d.sprite = glide.NewNode("sprite").AddComponent(glide.NewSprite())
	d.sprite.X, d.sprite.Y = 60, 160
	root.AddChild(d.sprite)

	d.line = glide.NewNode("line").AddComponent(glide.NewLine(glide.Vec2{}, glide.Vec2{X: 200, Y: 0}))
	d.line.X, d.line.Y = 60, 260
	root.AddChild(d.line)

	d.mesh = glide.NewNode("mesh").AddComponent(glide.NewMesh(&glide.Material{Name: "flat", Color: glide.ColorWhite}))
	d.mesh.X, d.mesh.Y = 300, 160
	root.AddChild(d.mesh)

	d.marker = glide.NewNode("marker").AddComponent(glide.NewSprite())
	d.marker.X, d.marker.Y = 60, 340
	root.AddChild(d.marker)

	return d
}

func (d *demo) startCycle() {
	a := d.scene.Animator()
	d.cycle++

	from, to := 1.0, 0.2
	if d.cycle%2 == 0 {
		from, to = to, from
	}
	check(a.AnimateAlpha(d.panel, from, to, 1.5, 0, true))
	check(a.AnimateColorFromCurrent(d.sprite, paletteColor(d.cycle), 1.2, 0.3, false))
	check(a.AnimateColor(d.line, glide.Color{R: 1, G: 0.4, B: 0.2, A: 1}, glide.Color{R: 0.2, G: 0.6, B: 1, A: 1}, 1.0, 0))
	check(a.AnimateAlphaFromCurrent(d.mesh, to, 0.8, 0.5, false))

	shift := glide.Vec2{X: 240}
	if d.cycle%2 == 0 {
		shift.X = -240
	}
	check(a.AnimatePositionShift(d.marker, shift, 1.0, 0.2))
}

func (d *demo) Update() error {
	d.scene.Update()
	if !d.scripted && d.scene.Animator().Idle() {
		d.startCycle()
	}
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff})
	d.drawNode(screen, d.scene.Root(), 0, 0)
}

// drawNode draws every paintable component of n and recurses into children.
func (d *demo) drawNode(screen *ebiten.Image, n *glide.Node, ox, oy float64) {
	x, y := ox+n.X, oy+n.Y
	for _, c := range n.Components() {
		switch v := c.(type) {
		case *glide.Graphic:
			d.drawBox(screen, x, y, boxSize, v.Color)
		case *glide.Sprite:
			d.drawBox(screen, x, y, boxSize, v.Color)
		case *glide.Mesh:
			if len(v.Materials) > 0 {
				d.drawBox(screen, x, y, boxSize*2, v.Materials[0].Color)
			}
		case *glide.Line:
			for i := 1; i < len(v.Points); i++ {
				p0, p1 := v.Points[i-1], v.Points[i]
				vector.StrokeLine(screen,
					float32(x+p0.X), float32(y+p0.Y), float32(x+p1.X), float32(y+p1.Y),
					float32(v.Width*4), toRGBA(v.StartColor), true)
			}
		}
	}
	for _, child := range n.Children() {
		d.drawNode(screen, child, x, y)
	}
}

func (d *demo) drawBox(screen *ebiten.Image, x, y, size float64, c glide.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale = c.ColorScale()
	screen.DrawImage(d.pixel, op)
}

func (d *demo) Layout(w, h int) (int, int) {
	return screenW, screenH
}

func toRGBA(c glide.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	a := clamp(c.A)
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint16(clamp(c.R)) * uint16(a) / 255),
		G: uint8(uint16(clamp(c.G)) * uint16(a) / 255),
		B: uint8(uint16(clamp(c.B)) * uint16(a) / 255),
		A: a,
	}
}

// paletteColor returns a bright color that changes every cycle.
func paletteColor(cycle int) glide.Color {
	palette := []glide.Color{
		{R: 1.0, G: 0.4, B: 0.7, A: 1},
		{R: 0.4, G: 0.8, B: 1.0, A: 1},
		{R: 0.6, G: 1.0, B: 0.4, A: 1},
		{R: 0.9, G: 0.9, B: 0.3, A: 1},
	}
	return palette[cycle%len(palette)]
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
