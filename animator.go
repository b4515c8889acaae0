package glide

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	// ErrInvalidDuration is returned when a tween duration is not a positive,
	// finite number of seconds.
	ErrInvalidDuration = errors.New("duration must be positive and finite")
	// ErrInvalidDelay is returned when a delay is negative or not finite.
	ErrInvalidDelay = errors.New("delay must be non-negative and finite")
)

// Animator drives frame-stepped tweens. Call the Animate methods to launch
// tweens and Update once per frame to advance them.
//
// Every Animate method is fire-and-forget: targets are resolved, one Tween is
// launched per target, and the call returns. Targets without anything to
// animate are skipped silently. There is no cancellation; two tweens on the
// same property both write every frame and the last one wins.
//
// Animator is not safe for concurrent use.
type Animator struct {
	frameRate int
	tweens    []*Tween
	pending   []*Tween
	updating  bool

	sink  EventSink
	debug bool
	log   io.Writer
}

// NewAnimator creates an Animator from cfg. A zero FrameRate selects the
// default.
func NewAnimator(cfg Config) *Animator {
	a := &Animator{
		frameRate: cfg.FrameRate,
		debug:     cfg.Debug,
		log:       cfg.LogWriter,
	}
	if a.frameRate <= 0 {
		a.frameRate = DefaultFrameRate
	}
	if a.log == nil {
		a.log = os.Stderr
	}
	return a
}

// FrameRate returns the frames per second used to size per-frame steps.
func (a *Animator) FrameRate() int {
	return a.frameRate
}

// SetFrameRate changes the frame rate for tweens launched from now on.
// Tweens already running keep the rate they started with.
// Panics if fps is not positive.
func (a *Animator) SetFrameRate(fps int) {
	if fps <= 0 {
		panic("glide: frame rate must be positive")
	}
	a.frameRate = fps
}

// SetEventSink sets the optional lifecycle event sink. Pass nil to remove it.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode enables or disables debug logging of tween starts, skips,
// completions and per-tick counts.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Len returns the number of tweens still running or waiting on a delay.
func (a *Animator) Len() int {
	return len(a.tweens) + len(a.pending)
}

// Idle reports whether no tweens are in flight.
func (a *Animator) Idle() bool {
	return a.Len() == 0
}

// Update resumes every in-flight tween once. dt is the frame time in seconds
// and only advances delays; running tweens step once per call regardless of
// dt. Tweens launched from inside Update start stepping on the next call.
func (a *Animator) Update(dt float64) {
	a.updating = true
	finished := 0
	live := a.tweens[:0]
	for _, tw := range a.tweens {
		tw.update(dt)
		if tw.Done() {
			finished++
			a.finish(tw)
			continue
		}
		live = append(live, tw)
	}
	for i := len(live); i < len(a.tweens); i++ {
		a.tweens[i] = nil
	}
	a.tweens = append(live, a.pending...)
	for i := range a.pending {
		a.pending[i] = nil
	}
	a.pending = a.pending[:0]
	a.updating = false

	if a.debug && (finished > 0 || len(a.tweens) > 0) {
		a.logf("tick: active %d | finished %d", len(a.tweens), finished)
	}
}

// Play launches tw: it writes the start value now and joins the set advanced
// by Update. A nil tw is ignored, so the result of PositionTween or
// ShiftTween can be passed straight through. Playing a tween twice has no
// effect.
func (a *Animator) Play(tw *Tween) {
	if tw == nil || tw.state != tweenIdle {
		return
	}
	tw.launch()
	a.emit(TweenEvent{Type: EventTweenStarted, Kind: tw.Kind, Target: tw.Target})
	if a.debug {
		a.logf("start %s tween on %s", tw.Kind, targetName(tw.Target))
	}
	if tw.Done() {
		a.finish(tw)
		return
	}
	if a.updating {
		a.pending = append(a.pending, tw)
		return
	}
	a.tweens = append(a.tweens, tw)
}

// --- Alpha ---

// AnimateAlpha sets the alpha of node (and, with includeDescendants, of every
// descendant) to startAlpha, then tweens it to finishAlpha over time seconds
// after waiting delay seconds. RGB channels keep the values read at launch.
func (a *Animator) AnimateAlpha(node Target, startAlpha, finishAlpha, time, delay float64, includeDescendants bool) error {
	if err := checkTiming("AnimateAlpha", time, delay); err != nil {
		return err
	}
	for _, t := range collectTargets(node, includeDescendants) {
		p := Resolve(t)
		if p == nil {
			a.skip(TweenAlpha, t)
			continue
		}
		a.Play(a.alphaTween(t, p, startAlpha, finishAlpha, time, delay))
	}
	return nil
}

// AnimateAlphaFromCurrent is AnimateAlpha with each target's current alpha as
// its own start value, read once before any delay.
func (a *Animator) AnimateAlphaFromCurrent(node Target, finishAlpha, time, delay float64, includeDescendants bool) error {
	if err := checkTiming("AnimateAlphaFromCurrent", time, delay); err != nil {
		return err
	}
	for _, t := range collectTargets(node, includeDescendants) {
		p := Resolve(t)
		if p == nil {
			a.skip(TweenAlpha, t)
			continue
		}
		a.Play(a.alphaTween(t, p, p.Color().A, finishAlpha, time, delay))
	}
	return nil
}

func (a *Animator) alphaTween(t Target, p Paintable, startAlpha, finishAlpha, time, delay float64) *Tween {
	base := p.Color()
	write := func(v scalar) {
		c := base
		c.A = float64(v)
		p.SetColor(c)
	}
	s := newTrack(scalar(startAlpha), scalar(finishAlpha), 1, time, float64(a.frameRate), write)
	return newTween(TweenAlpha, t, s, delay)
}

// --- Color ---

// AnimateColor sets the color of node to start, then tweens it to finish.
// Unlike the other color and alpha operations it never touches descendants.
func (a *Animator) AnimateColor(node Target, start, finish Color, time, delay float64) error {
	if err := checkTiming("AnimateColor", time, delay); err != nil {
		return err
	}
	if isNilTarget(node) {
		return nil
	}
	p := Resolve(node)
	if p == nil {
		a.skip(TweenColor, node)
		return nil
	}
	a.Play(a.colorTween(node, p, start, finish, time, delay))
	return nil
}

// AnimateColorFromCurrent tweens each target from its current color, read
// once before any delay, to finish.
func (a *Animator) AnimateColorFromCurrent(node Target, finish Color, time, delay float64, includeDescendants bool) error {
	if err := checkTiming("AnimateColorFromCurrent", time, delay); err != nil {
		return err
	}
	for _, t := range collectTargets(node, includeDescendants) {
		p := Resolve(t)
		if p == nil {
			a.skip(TweenColor, t)
			continue
		}
		a.Play(a.colorTween(t, p, p.Color(), finish, time, delay))
	}
	return nil
}

// colorTween scans R, G, B for the driving channel; alpha never drives.
func (a *Animator) colorTween(t Target, p Paintable, start, finish Color, time, delay float64) *Tween {
	s := newTrack(start, finish, 3, time, float64(a.frameRate), p.SetColor)
	return newTween(TweenColor, t, s, delay)
}

// --- Position ---

// AnimatePosition moves t from start to finish in local space.
func (a *Animator) AnimatePosition(t Transform, start, finish Vec2, time, delay float64) error {
	tw, err := a.positionTween("AnimatePosition", t, start, finish, time, delay)
	if err != nil {
		return err
	}
	a.Play(tw)
	return nil
}

// AnimatePositionFromCurrent moves t from where it is now to finish.
func (a *Animator) AnimatePositionFromCurrent(t Transform, finish Vec2, time, delay float64) error {
	if err := checkTiming("AnimatePositionFromCurrent", time, delay); err != nil {
		return err
	}
	if isNilTransform(t) {
		a.skip(TweenPosition, t)
		return nil
	}
	tw, err := a.positionTween("AnimatePositionFromCurrent", t, t.LocalPosition(), finish, time, delay)
	if err != nil {
		return err
	}
	a.Play(tw)
	return nil
}

// AnimatePositionShift moves t by shift relative to its current position.
func (a *Animator) AnimatePositionShift(t Transform, shift Vec2, time, delay float64) error {
	tw, err := a.ShiftTween(t, shift, time, delay)
	if err != nil {
		return err
	}
	a.Play(tw)
	return nil
}

// PositionTween builds, without launching, the tween AnimatePosition would
// run. Launch it with Play and poll Done to wait for it. Returns a nil Tween
// and nil error when t is nil.
func (a *Animator) PositionTween(t Transform, start, finish Vec2, time, delay float64) (*Tween, error) {
	return a.positionTween("PositionTween", t, start, finish, time, delay)
}

// ShiftTween builds, without launching, the tween AnimatePositionShift would
// run. The finish position is the current position plus shift, read now.
func (a *Animator) ShiftTween(t Transform, shift Vec2, time, delay float64) (*Tween, error) {
	if err := checkTiming("ShiftTween", time, delay); err != nil {
		return nil, err
	}
	if isNilTransform(t) {
		a.skip(TweenPosition, t)
		return nil, nil
	}
	start := t.LocalPosition()
	return a.positionTween("ShiftTween", t, start, start.Add(shift), time, delay)
}

func (a *Animator) positionTween(op string, t Transform, start, finish Vec2, time, delay float64) (*Tween, error) {
	if err := checkTiming(op, time, delay); err != nil {
		return nil, err
	}
	if isNilTransform(t) {
		a.skip(TweenPosition, t)
		return nil, nil
	}
	s := newTrack(start, finish, 2, time, float64(a.frameRate), t.SetLocalPosition)
	return newTween(TweenPosition, t, s, delay), nil
}

// --- Helpers ---

func checkTiming(op string, time, delay float64) error {
	if !(time > 0) || math.IsInf(time, 1) {
		return fmt.Errorf("glide: %s: %w (got %v)", op, ErrInvalidDuration, time)
	}
	if !(delay >= 0) || math.IsInf(delay, 1) {
		return fmt.Errorf("glide: %s: %w (got %v)", op, ErrInvalidDelay, delay)
	}
	return nil
}

func (a *Animator) finish(tw *Tween) {
	a.emit(TweenEvent{Type: EventTweenFinished, Kind: tw.Kind, Target: tw.Target, Frames: tw.frames})
	if a.debug {
		a.logf("finish %s tween on %s after %d frames", tw.Kind, targetName(tw.Target), tw.frames)
	}
}

func (a *Animator) skip(kind TweenKind, target any) {
	a.emit(TweenEvent{Type: EventTargetSkipped, Kind: kind, Target: target})
	if a.debug {
		a.logf("skip %s: %s has nothing to animate", kind, targetName(target))
	}
}

func (a *Animator) emit(e TweenEvent) {
	if a.sink != nil {
		a.sink.EmitEvent(e)
	}
}
