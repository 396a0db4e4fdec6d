package observability

import "context"

// NoOpObserver discards all events. It is the observer an Automaton uses when
// none is configured.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
