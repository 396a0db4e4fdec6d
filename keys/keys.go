// Package keys provides one-shot key sources for simple states: the runes of
// a string, the elements of a slice and the tokens of an io.Reader, each
// paired with its position.
//
// Sources are not rewindable. Once NextKey reports exhaustion it keeps doing
// so. Embed a source in the data type passed to an automaton to satisfy
// simple.KeyProvider:
//
//	type Data struct {
//	    *keys.Runes
//	    matches []int
//	}
package keys

// Indexed pairs a value with its zero-based position in the source.
type Indexed[T any] struct {
	Index int
	Value T
}

// Value returns the value of k. It is handy as a projection for
// simple.Field.
func Value[T any](k Indexed[T]) T {
	return k.Value
}

// Index returns the position of k.
func Index[T any](k Indexed[T]) int {
	return k.Index
}
