package automaton

import "github.com/tailored-agentic-units/automaton/observability"

const (
	EventGraphBuild  observability.EventType = "automaton.graph.build"
	EventRunStart    observability.EventType = "automaton.run.start"
	EventTransition  observability.EventType = "automaton.state.transition"
	EventRunComplete observability.EventType = "automaton.run.complete"
	EventRunFailed   observability.EventType = "automaton.run.failed"
)
