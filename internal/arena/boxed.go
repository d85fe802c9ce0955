package arena

// Box is a copyable, comparable wrapper around an arena-owned value.
// Two boxes compare equal iff they wrap the same arena allocation.
type Box[T any] struct {
	ref *T
}

// Ref returns the underlying arena reference.
func (b Box[T]) Ref() *T {
	return b.ref
}

// Value returns a copy of the boxed value.
func (b Box[T]) Value() T {
	return *b.ref
}
