package automaton

// Status classifies how a run ended.
type Status uint8

const (
	// StatusNoNextState means the current state had no viable transition.
	StatusNoNextState Status = iota + 1

	// StatusEndOfInput means the data source was exhausted.
	StatusEndOfInput

	// StatusFailed means a transition returned an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNoNextState:
		return "no_next_state"
	case StatusEndOfInput:
		return "end_of_input"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes how one run ended. Exactly one status applies and the
// value is immutable once returned.
//
// StateID is the identifier of the state the run stopped in: the state that
// found no successor, observed the end of input, or failed.
type Result[Id comparable] struct {
	status  Status
	stateID Id
	err     error
	steps   int
	runID   string
}

// StoppedNoNextState builds a result for a run that ended in state id because
// no next state was found.
func StoppedNoNextState[Id comparable](id Id) Result[Id] {
	return Result[Id]{status: StatusNoNextState, stateID: id}
}

// StoppedEndOfInput builds a result for a run that ended in state id because
// the input was exhausted.
func StoppedEndOfInput[Id comparable](id Id) Result[Id] {
	return Result[Id]{status: StatusEndOfInput, stateID: id}
}

// Failed builds a result for a run that failed in state id with err.
func Failed[Id comparable](id Id, err error) Result[Id] {
	return Result[Id]{status: StatusFailed, stateID: id, err: err}
}

func (r Result[Id]) withRun(runID string, steps int) Result[Id] {
	r.runID = runID
	r.steps = steps
	return r
}

func (r Result[Id]) Status() Status {
	return r.status
}

func (r Result[Id]) IsNoNextState() bool {
	return r.status == StatusNoNextState
}

func (r Result[Id]) IsEndOfInput() bool {
	return r.status == StatusEndOfInput
}

func (r Result[Id]) IsFailed() bool {
	return r.status == StatusFailed
}

// Err returns the error a failed run stopped with, exactly as the state
// returned it, and nil for any other status.
func (r Result[Id]) Err() error {
	return r.err
}

// StateID returns the identifier of the state the run stopped in.
func (r Result[Id]) StateID() Id {
	return r.stateID
}

// Steps returns the number of transitions attempted, including the last one.
func (r Result[Id]) Steps() int {
	return r.steps
}

// RunID returns the identifier assigned to the run, empty for results built
// outside the driver.
func (r Result[Id]) RunID() string {
	return r.runID
}

// AsError returns nil unless the run failed, in which case it returns an
// *ExecutionError carrying the run context and wrapping Err.
func (r Result[Id]) AsError() error {
	if r.status != StatusFailed {
		return nil
	}
	return &ExecutionError[Id]{
		StateID: r.stateID,
		RunID:   r.runID,
		Steps:   r.steps,
		Err:     r.err,
	}
}
