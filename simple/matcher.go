package simple

// Matcher reports whether a connection accepts a key.
type Matcher[K any] func(key K) bool

// Any returns a matcher that accepts every key.
func Any[K any]() Matcher[K] {
	return func(K) bool { return true }
}

// Equal returns a matcher that accepts keys equal to want.
func Equal[K comparable](want K) Matcher[K] {
	return func(key K) bool { return key == want }
}

// OneOf returns a matcher that accepts any of the given keys.
//
// Example:
//
//	vowel := simple.OneOf('a', 'e', 'i', 'o', 'u')
func OneOf[K comparable](values ...K) Matcher[K] {
	set := make(map[K]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(key K) bool {
		_, ok := set[key]
		return ok
	}
}

// Not inverts a matcher.
//
// Example:
//
//	notA := simple.Not(simple.Equal('a'))
func Not[K any](m Matcher[K]) Matcher[K] {
	return func(key K) bool { return !m(key) }
}

// And combines matchers with logical AND (all must accept).
func And[K any](matchers ...Matcher[K]) Matcher[K] {
	return func(key K) bool {
		for _, m := range matchers {
			if !m(key) {
				return false
			}
		}
		return true
	}
}

// Or combines matchers with logical OR (at least one must accept).
func Or[K any](matchers ...Matcher[K]) Matcher[K] {
	return func(key K) bool {
		for _, m := range matchers {
			if m(key) {
				return true
			}
		}
		return false
	}
}

// Field projects a key with get and applies m to the projection.
//
// Example:
//
//	isB := simple.Field(func(k keys.Indexed[rune]) rune { return k.Value }, simple.Equal('b'))
func Field[K, V any](get func(K) V, m Matcher[V]) Matcher[K] {
	return func(key K) bool { return m(get(key)) }
}
