package twine

// EventSink is the interface for optional lifecycle event forwarding, for
// example into an ECS world. Set it with Scheduler.SetEventSink.
type EventSink interface {
	EmitTweenEvent(event TweenEvent)
}

// EventType identifies a tween lifecycle event.
type EventType uint8

const (
	EventCompleted EventType = iota // the final pass finished
	EventRepeated                   // a pass finished and another one begins
	EventReplaced                   // a newer tween on the same target took over
	EventDropped                    // the target could not be written; tween removed
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventCompleted:
		return "completed"
	case EventRepeated:
		return "repeated"
	case EventReplaced:
		return "replaced"
	case EventDropped:
		return "dropped"
	}
	return "unknown"
}

// TweenEvent carries a lifecycle event for one tween.
type TweenEvent struct {
	Type    EventType
	TweenID string
	Name    string
}
