package simple_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/automaton/automaton"
	"github.com/tailored-agentic-units/automaton/keys"
	"github.com/tailored-agentic-units/automaton/simple"
)

// textMatching records where "ab" occurrences start in a text.
type textMatching struct {
	*keys.Runes
	matches []int
	bs      []int
}

type textKey = keys.Indexed[rune]

var newTextState = simple.New[textKey, int, *textMatching]

func char(c rune) simple.Matcher[textKey] {
	return simple.Field(keys.Value[rune], simple.Equal(c))
}

func abAutomaton() *automaton.Automaton[int, *textMatching] {
	return automaton.New(func() *automaton.Handle[int, *textMatching] {
		nonMatch := newTextState(0)
		nonMatch.Register(simple.NewConnectionNoAction[textKey, int, *textMatching](simple.Not(char('a')), nonMatch))

		a := newTextState(1)
		nonMatch.Register(simple.NewConnectionNoAction[textKey, int, *textMatching](char('a'), a))
		a.Connect(char('a'), nil, a)
		a.Connect(simple.Not(char('b')), nil, nonMatch)

		b := newTextState(2)
		a.Register(simple.NewConnection(char('b'), func(d *textMatching, k textKey) error {
			d.matches = append(d.matches, k.Index-1)
			d.bs = append(d.bs, k.Index)
			return nil
		}, automaton.Ref[int, *textMatching](b)))
		b.Connect(char('a'), nil, a)
		b.Connect(simple.Not(char('a')), nil, nonMatch)

		return nonMatch.Handle()
	})
}

func TestPatternMatching(t *testing.T) {
	data := &textMatching{Runes: keys.NewRunes("aabbacacaabab")}

	result := abAutomaton().Run(data)

	assert.Equal(t, []int{1, 9, 11}, data.matches)
	assert.Equal(t, []int{2, 10, 12}, data.bs)
	assert.True(t, result.IsEndOfInput())
	assert.Equal(t, 2, result.StateID(), "input ends right after the last match")
	assert.Equal(t, 14, result.Steps(), "13 keys plus the exhausted pull")
}

func TestPatternMatching_Deterministic(t *testing.T) {
	a := abAutomaton()

	first := &textMatching{Runes: keys.NewRunes("xxabyab")}
	second := &textMatching{Runes: keys.NewRunes("xxabyab")}
	r1 := a.Run(first)
	r2 := a.Run(second)

	assert.Equal(t, first.matches, second.matches)
	assert.Equal(t, []int{2, 5}, first.matches)
	assert.Equal(t, r1.Status(), r2.Status())
	assert.Equal(t, r1.StateID(), r2.StateID())
}

func TestEmptyInput(t *testing.T) {
	data := &textMatching{Runes: keys.NewRunes("")}

	result := abAutomaton().Run(data)

	assert.True(t, result.IsEndOfInput())
	assert.False(t, result.IsNoNextState())
	assert.Empty(t, data.matches)
	assert.Equal(t, 0, result.StateID())
	assert.Equal(t, 1, result.Steps())
}

func TestState_ExhaustionPrecedence(t *testing.T) {
	s := newTextState(5)
	for range 4 {
		s.Connect(simple.Any[textKey](), func(*textMatching, textKey) error {
			t.Fatal("no action may run on exhausted input")
			return nil
		}, s)
	}

	outcome, err := s.Transition(&textMatching{Runes: keys.NewRunes("")})
	require.NoError(t, err)
	assert.True(t, outcome.IsEnd())
}

func TestState_NoConnections(t *testing.T) {
	a := automaton.New(func() *automaton.Handle[int, *textMatching] {
		return newTextState(1).Handle()
	})

	data := &textMatching{Runes: keys.NewRunes("z")}
	result := a.Run(data)

	assert.True(t, result.IsNoNextState())
	assert.Equal(t, 1, result.StateID())
}

func TestState_FirstMatchWins(t *testing.T) {
	var taken []string
	record := func(name string) simple.Action[textKey, *textMatching] {
		return func(*textMatching, textKey) error {
			taken = append(taken, name)
			return nil
		}
	}

	start := newTextState(0)
	first := newTextState(1)
	second := newTextState(2)
	third := newTextState(3)

	start.Connect(char('x'), record("first"), first)
	start.Connect(simple.Any[textKey](), record("second"), second)
	start.Connect(char('x'), record("third"), third)
	require.Equal(t, 3, start.Connections())

	tests := []struct {
		input string
		want  int
		taken []string
	}{
		{input: "x", want: 1, taken: []string{"first"}},
		{input: "y", want: 2, taken: []string{"second"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			taken = nil
			outcome, err := start.Transition(&textMatching{Runes: keys.NewRunes(tt.input)})
			require.NoError(t, err)
			require.True(t, outcome.IsContinue())
			assert.Equal(t, tt.want, outcome.Next().ID())
			assert.Equal(t, tt.taken, taken)
		})
	}
}

func TestState_ActionErrorShortCircuits(t *testing.T) {
	errAction := errors.New("action failed")
	laterRan := false

	a := automaton.New(func() *automaton.Handle[int, *textMatching] {
		start := newTextState(0)
		next := newTextState(1)
		start.Connect(char('a'), func(d *textMatching, k textKey) error {
			d.matches = append(d.matches, k.Index)
			return errAction
		}, next)
		next.Connect(simple.Any[textKey](), func(*textMatching, textKey) error {
			laterRan = true
			return nil
		}, next)
		return start.Handle()
	})

	data := &textMatching{Runes: keys.NewRunes("aaa")}
	result := a.Run(data)

	require.True(t, result.IsFailed())
	assert.Same(t, errAction, result.Err())
	assert.Equal(t, 0, result.StateID())
	assert.False(t, laterRan)
	assert.Equal(t, []int{0}, data.matches, "effects before the failure are kept")
	assert.Equal(t, 1, data.Consumed())
}

func TestState_ActionSeesMatchedKey(t *testing.T) {
	var seen []textKey
	s := newTextState(0)
	s.Connect(nil, func(_ *textMatching, k textKey) error {
		seen = append(seen, k)
		return nil
	}, s)

	a := automaton.New(func() *automaton.Handle[int, *textMatching] { return s.Handle() })
	result := a.Run(&textMatching{Runes: keys.NewRunes("hé")})

	assert.True(t, result.IsEndOfInput())
	assert.Equal(t, []textKey{{Index: 0, Value: 'h'}, {Index: 1, Value: 'é'}}, seen)
}

func TestState_ConnectionWithoutTarget(t *testing.T) {
	ran := false
	s := newTextState(0)
	s.Connect(simple.Any[textKey](), func(*textMatching, textKey) error {
		ran = true
		return nil
	}, nil)

	a := automaton.New(func() *automaton.Handle[int, *textMatching] { return s.Handle() })
	result := a.Run(&textMatching{Runes: keys.NewRunes("q")})

	assert.True(t, ran)
	assert.True(t, result.IsNoNextState())
}

func TestState_HandleIsShared(t *testing.T) {
	target := newTextState(9)
	left := newTextState(1)
	right := newTextState(2)
	left.Connect(nil, nil, target)
	right.Connect(nil, nil, target)

	data := &textMatching{Runes: keys.NewRunes("ab")}
	outL, err := left.Transition(data)
	require.NoError(t, err)
	outR, err := right.Transition(data)
	require.NoError(t, err)

	assert.Same(t, target.Handle(), outL.Next())
	assert.Same(t, outL.Next(), outR.Next())
	assert.Same(t, target, outL.Next().State())

	var missing *simple.State[textKey, int, *textMatching]
	assert.Nil(t, missing.Handle())
}

func TestConnection(t *testing.T) {
	target := newTextState(1)

	withAction := simple.NewConnection(char('a'), func(*textMatching, textKey) error { return nil }, automaton.Ref[int, *textMatching](target))
	assert.True(t, withAction.HasAction())
	assert.True(t, withAction.Matches(textKey{Value: 'a'}))
	assert.False(t, withAction.Matches(textKey{Value: 'b'}))
	assert.Same(t, target.Handle(), withAction.Target())

	noAction := simple.NewConnectionNoAction[textKey, int, *textMatching](nil, target)
	assert.False(t, noAction.HasAction())
	assert.True(t, noAction.Matches(textKey{Value: 'z'}), "nil matcher accepts every key")

	noTarget := simple.NewConnectionNoAction[textKey, int, *textMatching](nil, nil)
	assert.Nil(t, noTarget.Target())
}

func ExampleState() {
	a := abAutomaton()
	data := &textMatching{Runes: keys.NewRunes("aabbacacaabab")}

	result := a.Run(data)
	fmt.Println(data.matches, result.Status())
	// Output: [1 9 11] end_of_input
}
