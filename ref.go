package tuple

// Ref is a non-owning handle to a value stored elsewhere. A tuple of
// Ref elements aliases its referents rather than holding values of
// its own: reads and writes through the handle are reads and writes
// of the original variable, and copying the tuple copies the
// handles, not the values. A Ref is only valid for as long as the
// value it points to; nothing extends the referent's lifetime.
type Ref[T any] struct {
	p *T
}

// NewRef returns a handle to the value that p points to.
func NewRef[T any](p *T) Ref[T] {
	return Ref[T]{p}
}

// Get returns the referenced value.
func (r Ref[T]) Get() T {
	return *r.p
}

// Set replaces the referenced value.
func (r Ref[T]) Set(v T) {
	*r.p = v
}

// Ptr returns the underlying pointer.
func (r Ref[T]) Ptr() *T {
	return r.p
}
