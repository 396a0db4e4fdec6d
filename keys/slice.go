package keys

// Slice yields the elements of a slice with their indices.
type Slice[T any] struct {
	items []T
	pos   int
}

// NewSlice creates a source over items. The slice is not copied.
func NewSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

func (s *Slice[T]) NextKey() (Indexed[T], bool) {
	if s.pos >= len(s.items) {
		return Indexed[T]{}, false
	}

	k := Indexed[T]{Index: s.pos, Value: s.items[s.pos]}
	s.pos++
	return k, true
}

// Remaining returns how many elements are left.
func (s *Slice[T]) Remaining() int {
	return len(s.items) - s.pos
}
