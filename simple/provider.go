package simple

// KeyProvider is implemented by data that can supply the key a State matches
// its connections against.
//
// NextKey advances the provider and is not rewindable. Returning false
// reports exhaustion; after that the provider is never asked to resume.
type KeyProvider[K any] interface {
	NextKey() (K, bool)
}
