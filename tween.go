package glide

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// steppable is a value glide can interpolate channel by channel.
type steppable[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	at(i int) float64
}

// drivingDim returns the first of the n leading channels where start and
// finish differ, or n-1 when they all match. Only that channel is tested for
// termination; the others move in lockstep with it.
func drivingDim[V steppable[V]](start, finish V, n int) int {
	for i := 0; i < n; i++ {
		if start.at(i) != finish.at(i) {
			return i
		}
	}
	return n - 1
}

// track is the per-task stepping state for one value type.
type track[V steppable[V]] struct {
	start   V
	current V
	finish  V
	delta   V
	dim     int
	dir     float64
	slack   float64
	write   func(V)
}

// stepSlack is the fraction of one step by which the driving channel may fall
// short of finish and still count as arrived. It absorbs the rounding that
// accumulates over repeated additions of delta.
const stepSlack = 1e-6

func newTrack[V steppable[V]](start, finish V, dims int, time, frameRate float64, write func(V)) *track[V] {
	t := &track[V]{
		start:   start,
		current: start,
		finish:  finish,
		delta:   finish.Sub(start).Scale(1 / time / frameRate),
		dim:     drivingDim(start, finish, dims),
		dir:     1,
		write:   write,
	}
	if finish.at(t.dim) < start.at(t.dim) {
		t.dir = -1
	}
	t.slack = math.Abs(t.delta.at(t.dim)) * stepSlack
	return t
}

func (t *track[V]) begin() {
	t.write(t.start)
}

// advance runs one loop iteration. It returns false once the driving channel
// has reached finish, after writing the exact finish value.
func (t *track[V]) advance() bool {
	if t.dir*t.current.at(t.dim) >= t.dir*t.finish.at(t.dim)-t.slack {
		t.write(t.finish)
		return false
	}
	t.write(t.current)
	t.current = t.current.Add(t.delta)
	return true
}

// stepper is the type-erased view of a track.
type stepper interface {
	begin()
	advance() bool
}

// TweenKind names the property a Tween animates.
type TweenKind uint8

const (
	TweenAlpha    TweenKind = iota // alpha channel of a Paintable
	TweenColor                     // all four channels of a Paintable
	TweenPosition                  // local position of a Transform
)

func (k TweenKind) String() string {
	switch k {
	case TweenAlpha:
		return "alpha"
	case TweenColor:
		return "color"
	case TweenPosition:
		return "position"
	default:
		return "unknown"
	}
}

type tweenState uint8

const (
	tweenIdle tweenState = iota
	tweenDelayed
	tweenRunning
	tweenDone
)

// Tween is one in-flight stepping task. It is created by an Animator, which
// also drives it; the zero value is not usable.
//
// A Tween writes its start value when launched, optionally waits out a delay,
// then writes one step per frame tick until the driving channel reaches the
// finish value, which it writes exactly.
type Tween struct {
	Kind TweenKind
	// Target is the node the tween writes to, for logging and events.
	Target any

	track stepper
	// delay times the wait before the first step. elapsed is kept in float64
	// and handed to the timer whole, so float32 rounding is not summed per tick.
	delay   *gween.Tween
	elapsed float64
	state   tweenState
	frames  int
}

func newTween(kind TweenKind, target any, s stepper, delay float64) *Tween {
	tw := &Tween{Kind: kind, Target: target, track: s}
	if delay > 0 {
		tw.delay = gween.New(0, float32(delay), float32(delay), ease.Linear)
	}
	return tw
}

// Done reports whether the tween has written its finish value.
func (tw *Tween) Done() bool {
	return tw.state == tweenDone
}

// Frames returns how many frame ticks the tween has stepped through,
// excluding ticks spent waiting out the delay.
func (tw *Tween) Frames() int {
	return tw.frames
}

// launch writes the start value and either arms the delay or runs the first
// loop iteration immediately.
func (tw *Tween) launch() {
	if tw.state != tweenIdle {
		return
	}
	tw.track.begin()
	if tw.delay != nil {
		tw.state = tweenDelayed
		return
	}
	tw.state = tweenRunning
	tw.run()
}

// update resumes the tween for one frame tick of dt seconds.
func (tw *Tween) update(dt float64) {
	switch tw.state {
	case tweenDelayed:
		tw.elapsed += dt
		if _, finished := tw.delay.Set(float32(tw.elapsed)); !finished {
			return
		}
		tw.state = tweenRunning
		tw.run()
	case tweenRunning:
		tw.frames++
		tw.run()
	}
}

func (tw *Tween) run() {
	if !tw.track.advance() {
		tw.state = tweenDone
	}
}
