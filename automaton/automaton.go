package automaton

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/automaton/config"
	"github.com/tailored-agentic-units/automaton/observability"
)

const defaultName = "automaton"

// Automaton drives a state graph over caller-owned data.
//
// The graph is produced by a builder function that runs lazily on the first
// Run, so constructing an Automaton costs nothing until it is used.
type Automaton[Id comparable, D any] struct {
	name     string
	build    func() *Handle[Id, D]
	start    *Handle[Id, D]
	fresh    bool
	observer observability.Observer
}

type options struct {
	name     string
	observer observability.Observer
	fresh    bool
}

// Option configures an Automaton.
type Option func(*options)

// WithName sets the name reported as the Source of emitted events.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithObserver sets the observer receiving run events. A nil observer is
// replaced with NoOpObserver.
func WithObserver(observer observability.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithFreshGraph makes every Run build a new graph from the builder.
func WithFreshGraph() Option {
	return func(o *options) {
		o.fresh = true
	}
}

// New creates an Automaton whose initial state is produced by build.
//
// Example:
//
//	a := automaton.New(func() *automaton.Handle[int, *Data] {
//	    return buildGraph()
//	}, automaton.WithName("parser"))
func New[Id comparable, D any](build func() *Handle[Id, D], opts ...Option) *Automaton[Id, D] {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}

	if o.observer == nil {
		o.observer = observability.NoOpObserver{}
	}
	if o.name == "" {
		o.name = defaultName
	}

	return &Automaton[Id, D]{
		name:     o.name,
		build:    build,
		fresh:    o.fresh,
		observer: o.observer,
	}
}

// NewFromConfig creates an Automaton from configuration, resolving the
// observer by name from the observability registry. A comma-separated list
// of names fans events out to every listed observer.
func NewFromConfig[Id comparable, D any](cfg config.Config, build func() *Handle[Id, D]) (*Automaton[Id, D], error) {
	observer, err := resolveObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	opts := []Option{WithName(cfg.Name), WithObserver(observer)}
	if cfg.FreshGraph {
		opts = append(opts, WithFreshGraph())
	}

	return New(build, opts...), nil
}

func resolveObserver(names string) (observability.Observer, error) {
	if !strings.Contains(names, ",") {
		return observability.GetObserver(strings.TrimSpace(names))
	}

	var observers []observability.Observer
	for name := range strings.SplitSeq(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		obs, err := observability.GetObserver(name)
		if err != nil {
			return nil, err
		}
		observers = append(observers, obs)
	}
	return observability.NewMultiObserver(observers...), nil
}

// Name returns the automaton name.
func (a *Automaton[Id, D]) Name() string {
	return a.name
}

// Built reports whether a graph is currently held for the next run.
func (a *Automaton[Id, D]) Built() bool {
	return a.start != nil
}

// Reset discards the built graph; the next Run invokes the builder again.
func (a *Automaton[Id, D]) Reset() {
	a.start = nil
}

// Run executes the automaton against data until a terminal outcome.
//
// Execution follows this algorithm:
//  1. Build the graph if it is not built yet (or on every run with WithFreshGraph)
//  2. Ask the current state to transition with data
//  3. Continue: make the carried state current and repeat from step 2
//  4. NotFound: stop with StatusNoNextState
//  5. End: stop with StatusEndOfInput
//  6. Error: stop with StatusFailed; the error is kept unchanged
//
// Run never mutates data itself and never retries a failed transition.
func (a *Automaton[Id, D]) Run(data D) Result[Id] {
	ctx := context.Background()
	runID := uuid.NewString()

	current := a.initial(ctx)
	if current == nil {
		var zero Id
		return a.finish(ctx, Failed(zero, ErrNoInitialState).withRun(runID, 0))
	}

	a.emit(ctx, EventRunStart, observability.LevelInfo, map[string]any{
		"run_id":        runID,
		"initial_state": current.ID(),
	})

	steps := 0
	for {
		if current.borrowed {
			return a.finish(ctx, Failed(current.ID(), ErrStateBorrowed).withRun(runID, steps))
		}

		outcome, err := current.state.Transition(data)
		steps++

		if err != nil {
			return a.finish(ctx, Failed(current.ID(), err).withRun(runID, steps))
		}

		switch outcome.kind {
		case outcomeContinue:
			a.emit(ctx, EventTransition, observability.LevelVerbose, map[string]any{
				"run_id": runID,
				"from":   current.ID(),
				"to":     outcome.next.ID(),
				"step":   steps,
			})
			current = outcome.next
		case outcomeEnd:
			return a.finish(ctx, StoppedEndOfInput(current.ID()).withRun(runID, steps))
		default:
			return a.finish(ctx, StoppedNoNextState(current.ID()).withRun(runID, steps))
		}
	}
}

func (a *Automaton[Id, D]) initial(ctx context.Context) *Handle[Id, D] {
	if a.build == nil {
		return nil
	}

	if a.start == nil || a.fresh {
		start := a.build()
		if start == nil || start.state == nil {
			a.start = nil
			return nil
		}
		a.start = start

		a.emit(ctx, EventGraphBuild, observability.LevelVerbose, map[string]any{
			"initial_state": start.ID(),
		})
	}

	return a.start
}

func (a *Automaton[Id, D]) finish(ctx context.Context, result Result[Id]) Result[Id] {
	data := map[string]any{
		"run_id": result.runID,
		"status": result.status.String(),
		"state":  result.stateID,
		"steps":  result.steps,
	}

	if result.IsFailed() {
		data["error"] = result.err.Error()
		a.emit(ctx, EventRunFailed, observability.LevelError, data)
		return result
	}

	a.emit(ctx, EventRunComplete, observability.LevelInfo, data)
	return result
}

func (a *Automaton[Id, D]) emit(ctx context.Context, eventType observability.EventType, level observability.Level, data map[string]any) {
	a.observer.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    a.name,
		Data:      data,
	})
}
