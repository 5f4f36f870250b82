package tuple

// Equal reports whether a and b are equal. Values of distinct
// types - in particular tuples of different arity, or of the same
// arity with different element types - are never equal. Unlike ==,
// Equal therefore compiles for any pair of comparable tuple shapes,
// which lets shape-generic test code compare whatever it's handed.
func Equal[A, B comparable](a A, b B) bool {
	if v, ok := any(a).(B); ok {
		return v == b
	}
	return false
}
