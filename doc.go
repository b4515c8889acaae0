// Package glide is a frame-stepped property tweening engine for 2D scene
// graphs.
//
// glide linearly moves one visual property of a node (alpha, RGBA color, or
// local position) from a start value to a finish value over a duration,
// optionally after a delay and optionally across every descendant. Each
// tween advances exactly one step per frame tick; there are no easing curves.
//
// # Quick start
//
// The simplest host is [Scene], which owns a [Node] tree and an [Animator]:
//
//	scene := glide.NewScene()
//	hero := glide.NewNode("hero").AddComponent(glide.NewSprite())
//	scene.Root().AddChild(hero)
//
//	anim := scene.Animator()
//	anim.AnimateAlphaFromCurrent(hero, 0, 0.5, 0, false)
//	anim.AnimatePositionShift(hero, glide.Vec2{X: 100}, 1, 0.25)
//
// Call [Scene.Update] once per frame, for example from ebiten.Game.Update.
//
// # Paintable components
//
// Color and alpha tweens write through a [Paintable], resolved once per
// target when the tween starts. A node's components are scanned in
// attachment order and the first [Graphic], [Sprite], [Line] or [Mesh] wins.
// Nodes without one are skipped silently. Once a node is disposed its
// Paintables stop writing, and running tweens finish without effect.
//
// # Custom hosts
//
// Any scene graph can be animated by implementing [Target] (components and
// descendants) and [Transform] (local position) for its node type.
//
// # Stepping
//
// A tween writes its start value immediately, waits out its delay, and then
// adds (finish-start)/duration/frameRate every tick until the first channel
// that differs between start and finish reaches its finish value. The finish
// value is then written exactly. The frame rate is captured from the
// Animator when the tween is created.
//
// Lifecycle events can be forwarded to a [Donburi] world with glide/ecs.
//
// [Donburi]: https://github.com/yohamta/donburi
package glide
