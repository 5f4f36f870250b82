// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and their single-argument, single-return
// equivalents. This makes it trivial to pass arbitrary functions to generic
// operations that are designed to operate on arbitrary functions, and to
// build a value of any type from a tuple's elements by forwarding them to a
// constructor function.
//
// The names of the functions in this package match the following regular
// expression:
//
//	(To|From)C?A?R?E?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the function being converted:
//
//	C - context.Context argument
//	A - argument parameters gathered into a tuple
//	R - return parameters gathered into a tuple
//	E - error return
//
// The first number is the number of argument parameters (not including
// context.Context for a C function); the second number is the number of
// return parameters (not including error for an E function).
//
// So, for example:
//
//	ToR_1_3
//
// converts from (for some types A0, R0, R1 and R2)
//
//	func(A0) (R0, R1, R2)
//
// to:
//
//	func(A0) tuple.T3[R0, R1, R2]
//
// while FromA_3_1 turns a func(tuple.T3[A0, A1, A2]) R0 back into a plain
// three-argument function.
//
// These files are produced by the tuple package's generate.go alongside the
// arity families themselves.
package tuplefunc
