package cmdline

// value is a two-state slot, unset until the external parser injects a
// parsed value and set afterwards. Injection is the only mutator.
type value[T any] struct {
	v  T
	ok bool
}

func (s *value[T]) inject(v T) {
	s.v = v
	s.ok = true
}

func (s value[T]) get() (T, bool) {
	return s.v, s.ok
}
