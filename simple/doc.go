// Package simple provides a ready-made automaton state driven by an ordered
// list of guarded connections, for pattern-matching automatons over a stream
// of keys.
//
// A State pulls one key from the data on every transition. Connections are
// evaluated in registration order and the first whose matcher accepts the key
// wins: its action (if any) runs against the data and the automaton moves to
// its target. Registration order is therefore the tie-break rule for
// overlapping matchers.
//
// # Example: finding "ab"
//
//	type text struct {
//	    *keys.Runes
//	    matches []int
//	}
//
//	newState := simple.New[keys.Indexed[rune], int, *text]
//	isA := simple.Field(keys.Value[rune], simple.Equal('a'))
//	isB := simple.Field(keys.Value[rune], simple.Equal('b'))
//
//	a := automaton.New(func() *automaton.Handle[int, *text] {
//	    none, seenA, seenAB := newState(0), newState(1), newState(2)
//
//	    none.Connect(simple.Not(isA), nil, none)
//	    none.Connect(isA, nil, seenA)
//	    seenA.Connect(isA, nil, seenA)
//	    seenA.Connect(simple.Not(isB), nil, none)
//	    seenA.Connect(isB, func(d *text, k keys.Indexed[rune]) error {
//	        d.matches = append(d.matches, k.Index-1)
//	        return nil
//	    }, seenAB)
//	    seenAB.Connect(isA, nil, seenA)
//	    seenAB.Connect(simple.Not(isA), nil, none)
//
//	    return none.Handle()
//	})
//
//	data := &text{Runes: keys.NewRunes("aabbacacaabab")}
//	a.Run(data) // data.matches == [1 9 11], result.IsEndOfInput()
//
// # Matchers
//
// Matchers compose like edge predicates: Any, Equal, OneOf, Not, And, Or and
// Field, which projects a key (for example an indexed rune to its rune) before
// matching.
package simple
