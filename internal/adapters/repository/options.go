package repository

// Option applies a configuration option to the TreapStore.
type Option func(*TreapStore)

// WithCapacity preallocates the id index for n people.
func WithCapacity(n int) Option {
	return func(s *TreapStore) {
		if n > 0 {
			s.byID = make(map[string]scoreFP, n)
		}
	}
}
