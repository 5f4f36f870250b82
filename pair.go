package tuple

// Pair is a two-element tuple with named accessors. It's an alias
// for T2, so every T2 combinator applies to it unchanged; Zipn
// returns tuples of Pair.
type Pair[A, B any] = T2[A, B]

// First returns the first element of the pair.
func (t T2[A, B]) First() A {
	return t.A
}

// Second returns the second element of the pair.
func (t T2[A, B]) Second() B {
	return t.B
}
