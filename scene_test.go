package glide

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewSceneHasRoot(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root() should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("Root().Name = %q, want %q", s.Root().Name, "root")
	}
	if s.Animator() == nil || s.Animator().FrameRate() != DefaultFrameRate {
		t.Error("scene should own a default Animator")
	}
}

func TestSceneUpdateAdvancesTweens(t *testing.T) {
	s := NewScene()
	n := NewNode("mover")
	s.Root().AddChild(n)

	// Half a second at the default 60 TPS is 30 steps of 0.5.
	if err := s.Animator().AnimatePosition(n, Vec2{0, 0}, Vec2{15, 0}, 0.5, 0); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 15; i++ {
		s.Update()
	}
	if n.X != 7.5 {
		t.Errorf("X = %v after 15 updates, want 7.5", n.X)
	}
	for i := 0; i < 20; i++ {
		s.Update()
	}
	if n.X != 15 {
		t.Errorf("X = %v, want 15", n.X)
	}
}

func TestSceneFrameTime(t *testing.T) {
	s := NewScene()
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = s.Animator().FrameRate()
	}
	if got, want := s.frameTime(), 1.0/float64(tps); got != want {
		t.Errorf("frameTime = %v, want %v", got, want)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	var buf bytes.Buffer
	s := NewSceneWithConfig(Config{FrameRate: 60, LogWriter: &buf})
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	if !globalDebug || !s.Animator().debug {
		t.Error("debug mode should reach the node helpers and the Animator")
	}
	if debugLog != io.Writer(&buf) {
		t.Error("node warnings should go to the Animator's log writer")
	}

	s.SetDebugMode(false)
	if globalDebug || debugLog != io.Writer(os.Stderr) {
		t.Error("disabling debug mode should restore the defaults")
	}
}
