package glide

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and the Animator
// that tweens it.
type Scene struct {
	root     *Node
	animator *Animator
	runner   *ScriptRunner
	debug    bool
}

// NewScene creates a new scene with a pre-created root node and an Animator
// using DefaultConfig.
func NewScene() *Scene {
	return NewSceneWithConfig(DefaultConfig())
}

// NewSceneWithConfig creates a scene whose Animator is built from cfg.
func NewSceneWithConfig(cfg Config) *Scene {
	s := &Scene{
		root:     NewNode("root"),
		animator: NewAnimator(cfg),
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scene's Animator.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Update advances all tweens by one frame, then runs the attached script
// runner, if any. Call it from ebiten.Game.Update.
//
// Tweens a script launches this frame take their first step now and their
// next one on the following Update.
func (s *Scene) Update() {
	s.animator.Update(s.frameTime())
	if s.runner != nil {
		s.runner.step(s)
	}
}

// frameTime is the length of one tick in seconds. Ebitengine reports a
// non-positive TPS when ticks are synced to the display, in which case the
// animator's own frame rate is used.
func (s *Scene) frameTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = s.animator.FrameRate()
	}
	return 1.0 / float64(tps)
}

// SetScriptRunner attaches a ScriptRunner. Its next step runs at the end of
// each Update. Pass nil to detach.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// tree operations panic, and deep-tree warnings and tween lifecycle lines go
// to the Animator's log writer.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.animator.SetDebugMode(enabled)
	globalDebug = enabled
	if enabled {
		debugLog = s.animator.log
	} else {
		debugLog = os.Stderr
	}
}
