package glide

// EventSink receives tween lifecycle events from an Animator. Set one with
// Animator.SetEventSink; see glide/ecs for a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event TweenEvent)
}

// EventType identifies a kind of tween lifecycle event.
type EventType uint8

const (
	EventTweenStarted  EventType = iota // fires after a tween writes its start value
	EventTweenFinished                  // fires after a tween writes its finish value
	EventTargetSkipped                  // fires when a target has nothing to animate
)

func (e EventType) String() string {
	switch e {
	case EventTweenStarted:
		return "started"
	case EventTweenFinished:
		return "finished"
	case EventTargetSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// TweenEvent carries lifecycle data for the event sink.
type TweenEvent struct {
	Type   EventType
	Kind   TweenKind
	Target any
	// Frames is the number of ticks the tween stepped through. Only set for
	// EventTweenFinished.
	Frames int
}
