// Package tuple provides fixed-arity heterogeneous value types
// and a library of functional combinators over them.
//
// A tuple type Tn holds n values of possibly different types as
// plain exported struct fields (A, B, C, ...), one per position in
// declaration order, so a tuple occupies exactly the memory that a
// hand-written struct with the same field types would. Positional
// access is field access and is checked at compile time; there is
// no runtime bookkeeping, boxing or dispatch anywhere in the
// package, and no operation can fail at runtime - a tuple misuse is
// a type error at the call site.
//
// Go has no variadic type parameters, so each arity is a distinct
// type and the combinators come in arity-suffixed families: Head3
// takes a T3, Reverse4 a T4, and so on. A function's numeric suffix
// is the arity of its tuple argument; when the operation name itself
// ends in a digit, or the function takes two tuples of independent
// arity, an underscore separates the numbers:
//
//	Foldl1_3   seedless left fold of a T3 (Haskell's foldl1)
//	Concat_2_3 concatenation of a T2 and a T3
//
// The homogeneous aliases Nn (N3[int] = T3[int, int, int]) name
// tuples whose elements share one type; combinators that thread a
// single function value across every element (fold, scan, zipwith,
// apply, foreach) are defined on those, since one Go function value
// cannot be applied at several distinct element types. Fully
// heterogeneous tuples are consumed with Forwardn, which expands the
// elements into an argument list, or with the adapters in the
// tuplefunc subpackage.
//
// Tuples of Ref elements, built with Tien or TieArrayn, alias
// caller-owned variables instead of holding values; see Ref.
//
// The arity families are produced by generate.go and currently
// extend through arity 8.
package tuple

//go:generate go run generate.go
