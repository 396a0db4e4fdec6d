package keys

// Runes yields the runes of a string with their rune positions.
type Runes struct {
	runes []rune
	pos   int
}

// NewRunes creates a source over text.
func NewRunes(text string) *Runes {
	return &Runes{runes: []rune(text)}
}

func (r *Runes) NextKey() (Indexed[rune], bool) {
	if r.pos >= len(r.runes) {
		return Indexed[rune]{}, false
	}

	k := Indexed[rune]{Index: r.pos, Value: r.runes[r.pos]}
	r.pos++
	return k, true
}

// Consumed returns how many runes have been produced.
func (r *Runes) Consumed() int {
	return r.pos
}

// Remaining returns how many runes are left.
func (r *Runes) Remaining() int {
	return len(r.runes) - r.pos
}
