package submission

// Event is the trigger of a submission. PreventDefault is called exactly once,
// before anything else, so the front end keeps the page in place and only the
// result area updates.
type Event interface {
	PreventDefault()
}

// NoopEvent is used by front ends that have no default navigation to suppress,
// such as the terminal.
type NoopEvent struct{}

// PreventDefault does nothing.
func (NoopEvent) PreventDefault() {}

// EventFunc adapts a function to Event.
type EventFunc func()

// PreventDefault calls f.
func (f EventFunc) PreventDefault() {
	if f != nil {
		f()
	}
}
