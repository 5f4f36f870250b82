//go:build ignore

// This program generates the arity families of the tuple package
// (the *_gen.go files in this directory and in tuplefunc).
// Run it with go generate; change maxArity and regenerate to grow
// the families.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 8

const header = "// Code generated by generate.go; DO NOT EDIT.\n\npackage %s\n"

const tuplePkg = "github.com/rogpeppe/tuple"

func main() {
	genTypes()
	genNTuple()
	genOps()
	genConcat()
	genZip()
	genFold()
	genTie()
	genCompare()
	genFuncArgs()
	genFuncReturns()
	genFuncErrors()
	genFuncContext()
}

type emitter struct {
	bytes.Buffer
}

func (e *emitter) p(f string, args ...any) {
	fmt.Fprintf(e, f+"\n", args...)
}

// write formats the accumulated source and writes it to name.
func (e *emitter) write(name string) {
	src, err := format.Source(e.Bytes())
	if err != nil {
		log.Fatalf("cannot format %s: %v", name, err)
	}
	if err := os.WriteFile(name, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func newEmitter(pkg string, imports ...string) *emitter {
	e := new(emitter)
	e.p(header, pkg)
	switch len(imports) {
	case 0:
	case 1:
		e.p("import %q\n", imports[0])
	default:
		e.p("import (")
		for _, imp := range imports {
			e.p("\t%q", imp)
		}
		e.p(")\n")
	}
	return e
}

// letters returns the first n upper-case position names (A, B, C, ...).
func letters(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = string(rune('A' + i))
	}
	return s
}

// lows is like letters but lower-case, for parameter names.
func lows(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = string(rune('a' + i))
	}
	return s
}

// numbered returns prefix0, prefix1, ... prefix{n-1}.
func numbered(prefix string, n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return s
}

func join(s []string) string {
	return strings.Join(s, ", ")
}

// typ names the tuple type of arity n instantiated with args.
func typ(n int, args []string) string {
	if n == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", n, join(args))
}

// fields lists the positional fields of variable v at arity n.
func fields(n int, v string) []string {
	s := make([]string, n)
	for i, c := range letters(n) {
		s[i] = v + "." + c
	}
	return s
}

func reversed(s []string) []string {
	r := make([]string, len(s))
	for i, x := range s {
		r[len(s)-1-i] = x
	}
	return r
}

func each(s []string, f func(string) string) []string {
	r := make([]string, len(s))
	for i, x := range s {
		r[i] = f(x)
	}
	return r
}

func genTypes() {
	e := newEmitter("tuple", "fmt")
	e.p("// T0 is the empty tuple.")
	e.p("type T0 struct{}\n")
	e.p("// New0 returns the empty tuple.")
	e.p("func New0() T0 {\n\treturn T0{}\n}\n")
	e.p("// Len returns 0.")
	e.p("func (T0) Len() int {\n\treturn 0\n}\n")
	e.p("// String implements fmt.Stringer.")
	e.p("func (T0) String() string {\n\treturn \"()\"\n}\n")
	for n := 1; n <= maxArity; n++ {
		ls := letters(n)
		tn := typ(n, ls)
		desc := fmt.Sprintf("%d values of possibly different types", n)
		if n == 1 {
			desc = "a single value"
		}
		e.p("// T%d holds %s.", n, desc)
		e.p("type T%d[%s any] struct {", n, join(ls))
		for _, c := range ls {
			e.p("\t%s %s", c, c)
		}
		e.p("}\n")
		var args []string
		for i, c := range ls {
			args = append(args, lows(n)[i]+" "+c)
		}
		e.p("// New%d returns a T%d holding the given values.", n, n)
		e.p("func New%d[%s any](%s) %s {\n\treturn %s{%s}\n}\n",
			n, join(ls), join(args), tn, tn, join(lows(n)))
		e.p("// Len returns %d.", n)
		e.p("func (%s) Len() int {\n\treturn %d\n}\n", tn, n)
		verbs := strings.TrimSuffix(strings.Repeat("%%v, ", n), ", ")
		e.p("// String implements fmt.Stringer.")
		e.p("func (t %s) String() string {\n\treturn fmt.Sprintf(\"("+verbs+")\", %s)\n}\n",
			tn, join(fields(n, "t")))
	}
	e.write("tuple_gen.go")
}

func genNTuple() {
	e := newEmitter("tuple")
	for n := 1; n <= maxArity; n++ {
		same := make([]string, n)
		for i := range same {
			same[i] = "T"
		}
		plural := "s"
		if n == 1 {
			plural = ""
		}
		e.p("// N%d is a tuple of %d element%s of the same type.", n, n, plural)
		e.p("type N%d[T any] = %s\n", n, typ(n, same))
		idx := make([]string, n)
		for i := range idx {
			idx[i] = fmt.Sprintf("a[%d]", i)
		}
		e.p("// FromArray%d returns a tuple holding the elements of a, in index order.", n)
		e.p("func FromArray%d[T any](a [%d]T) N%d[T] {\n\treturn N%d[T]{%s}\n}\n",
			n, n, n, n, join(idx))
		e.p("// ToArray%d returns the elements of t as an array.", n)
		e.p("func ToArray%d[T any](t N%d[T]) [%d]T {\n\treturn [%d]T{%s}\n}\n",
			n, n, n, n, join(fields(n, "t")))
	}
	e.write("ntuple_gen.go")
}

func genOps() {
	e := newEmitter("tuple")
	e.p("// Reverse0 returns the empty tuple unchanged.")
	e.p("func Reverse0(t T0) T0 {\n\treturn t\n}\n")
	e.p("// Append0 returns a one-element tuple holding x.")
	e.p("func Append0[X any](t T0, x X) T1[X] {\n\treturn T1[X]{x}\n}\n")
	e.p("// Prepend0 returns a one-element tuple holding x.")
	e.p("func Prepend0[X any](t T0, x X) T1[X] {\n\treturn T1[X]{x}\n}\n")
	for n := 1; n <= maxArity; n++ {
		ls := letters(n)
		tn := typ(n, ls)
		fs := fields(n, "t")
		e.p("// Head%d returns the first element of t.", n)
		e.p("func Head%d[%s any](t %s) A {\n\treturn t.A\n}\n", n, join(ls), tn)
		e.p("// Last%d returns the last element of t.", n)
		e.p("func Last%d[%s any](t %s) %s {\n\treturn %s\n}\n",
			n, join(ls), tn, ls[n-1], fs[n-1])
		if n == 1 {
			e.p("// Tail1 returns t without its first element.")
			e.p("func Tail1[A any](t T1[A]) T0 {\n\treturn T0{}\n}\n")
			e.p("// Init1 returns t without its last element.")
			e.p("func Init1[A any](t T1[A]) T0 {\n\treturn T0{}\n}\n")
		} else {
			tail := typ(n-1, ls[1:])
			e.p("// Tail%d returns t without its first element.", n)
			e.p("func Tail%d[%s any](t %s) %s {\n\treturn %s{%s}\n}\n",
				n, join(ls), tn, tail, tail, join(fs[1:]))
			init := typ(n-1, ls[:n-1])
			e.p("// Init%d returns t without its last element.", n)
			e.p("func Init%d[%s any](t %s) %s {\n\treturn %s{%s}\n}\n",
				n, join(ls), tn, init, init, join(fs[:n-1]))
		}
		rev := typ(n, reversed(ls))
		e.p("// Reverse%d returns t with its elements in reverse order.", n)
		e.p("func Reverse%d[%s any](t %s) %s {\n\treturn %s{%s}\n}\n",
			n, join(ls), tn, rev, rev, join(reversed(fs)))
		if n < maxArity {
			app := typ(n+1, append(letters(n), "X"))
			e.p("// Append%d returns t with x added at the end.", n)
			e.p("func Append%d[%s, X any](t %s, x X) %s {\n\treturn %s{%s, x}\n}\n",
				n, join(ls), tn, app, app, join(fs))
			pre := typ(n+1, append([]string{"X"}, ls...))
			e.p("// Prepend%d returns t with x added at the start.", n)
			e.p("func Prepend%d[%s, X any](t %s, x X) %s {\n\treturn %s{x, %s}\n}\n",
				n, join(ls), tn, pre, pre, join(fs))
		}
	}
	e.write("ops_gen.go")
}

func genConcat() {
	e := newEmitter("tuple")
	for m := 0; m <= maxArity; m++ {
		for n := 0; m+n <= maxArity; n++ {
			if m == 0 && n == 0 {
				e.p("// Concat_0_0 returns the empty tuple.")
				e.p("func Concat_0_0(a, b T0) T0 {\n\treturn T0{}\n}\n")
				continue
			}
			am, bn := numbered("A", m), numbered("B", n)
			ret := typ(m+n, append(append([]string{}, am...), bn...))
			var body string
			switch {
			case m == 0:
				body = "return b"
			case n == 0:
				body = "return a"
			default:
				body = fmt.Sprintf("return %s{%s}", ret,
					join(append(fields(m, "a"), fields(n, "b")...)))
			}
			e.p("// Concat_%d_%d returns the elements of a followed by the elements of b.", m, n)
			e.p("func Concat_%d_%d[%s any](a %s, b %s) %s {\n\t%s\n}\n",
				m, n, join(append(append([]string{}, am...), bn...)),
				typ(m, am), typ(n, bn), ret, body)
		}
	}
	e.write("concat_gen.go")
}

func genZip() {
	e := newEmitter("tuple")
	e.p("// Forward0 calls f with no arguments.")
	e.p("func Forward0[R any](t T0, f func() R) R {\n\treturn f()\n}\n")
	for n := 1; n <= maxArity; n++ {
		an, bn := numbered("A", n), numbered("B", n)
		fa, fb, ft := fields(n, "a"), fields(n, "b"), fields(n, "t")
		pairs := make([]string, n)
		elems := make([]string, n)
		for i := range pairs {
			pairs[i] = fmt.Sprintf("Pair[%s, %s]", an[i], bn[i])
			elems[i] = fmt.Sprintf("%s{%s, %s}", pairs[i], fa[i], fb[i])
		}
		zt := typ(n, pairs)
		tp := join(append(append([]string{}, an...), bn...))
		e.p("// Zip%d pairs the elements of a and b position by position.", n)
		if n == 1 {
			e.p("func Zip1[%s any](a %s, b %s) %s {\n\treturn %s{%s}\n}\n",
				tp, typ(n, an), typ(n, bn), zt, zt, elems[0])
		} else {
			e.p("func Zip%d[%s any](a %s, b %s) %s {\n\treturn %s{\n\t\t%s,\n\t}\n}\n",
				n, tp, typ(n, an), typ(n, bn), zt, zt,
				strings.Join(elems, ",\n\t\t"))
		}
		e.p("// Unzip%d splits a tuple of pairs into the tuple of first and the\n// tuple of second elements.", n)
		e.p("func Unzip%d[%s any](t %s) (%s, %s) {\n\treturn %s{%s}, %s{%s}\n}\n",
			n, tp, zt, typ(n, an), typ(n, bn),
			typ(n, an), join(each(ft, func(f string) string { return f + ".A" })),
			typ(n, bn), join(each(ft, func(f string) string { return f + ".B" })))
		e.p("// ZipWith%d combines a and b position by position with f.", n)
		e.p("func ZipWith%d[A, B, R any](a N%d[A], b N%d[B], f func(A, B) R) N%d[R] {\n\treturn N%d[R]{%s}\n}\n",
			n, n, n, n, n, join(each2(fa, fb, "f(%s, %s)")))
		e.p("// Apply%d applies f independently to each element of t.", n)
		e.p("func Apply%d[E, R any](t N%d[E], f func(E) R) N%d[R] {\n\treturn N%d[R]{%s}\n}\n",
			n, n, n, n, join(each(ft, func(f string) string { return "f(" + f + ")" })))
		e.p("// ForEach%d calls f on each element of t, first to last.", n)
		e.p("func ForEach%d[E any](t N%d[E], f func(E)) {", n, n)
		for _, f := range ft {
			e.p("\tf(%s)", f)
		}
		e.p("}\n")
		e.p("// RForEach%d calls f on each element of t, last to first.", n)
		e.p("func RForEach%d[E any](t N%d[E], f func(E)) {", n, n)
		for _, f := range reversed(ft) {
			e.p("\tf(%s)", f)
		}
		e.p("}\n")
		ls := letters(n)
		e.p("// Forward%d calls f with the elements of t as its argument list.", n)
		e.p("func Forward%d[%s, R any](t %s, f func(%s) R) R {\n\treturn f(%s)\n}\n",
			n, join(ls), typ(n, ls), join(ls), join(ft))
	}
	e.write("zip_gen.go")
}

// each2 formats corresponding pairs from a and b with the format f.
func each2(a, b []string, f string) []string {
	r := make([]string, len(a))
	for i := range a {
		r[i] = fmt.Sprintf(f, a[i], b[i])
	}
	return r
}

func genFold() {
	e := newEmitter("tuple")
	e.p("// Foldl0 returns base: folding the empty tuple applies f zero times.")
	e.p("func Foldl0[E, R any](t T0, f func(R, E) R, base R) R {\n\treturn base\n}\n")
	e.p("// Foldr0 returns base: folding the empty tuple applies f zero times.")
	e.p("func Foldr0[E, R any](t T0, f func(E, R) R, base R) R {\n\treturn base\n}\n")
	e.p("// Scanl0 returns a one-element tuple holding base.")
	e.p("func Scanl0[E, R any](t T0, f func(R, E) R, base R) T1[R] {\n\treturn T1[R]{base}\n}\n")
	e.p("// Scanr0 returns a one-element tuple holding base.")
	e.p("func Scanr0[E, R any](t T0, f func(E, R) R, base R) T1[R] {\n\treturn T1[R]{base}\n}\n")
	for n := 1; n <= maxArity; n++ {
		fs := fields(n, "t")
		foldl := "base"
		for _, f := range fs {
			foldl = fmt.Sprintf("f(%s, %s)", foldl, f)
		}
		foldl1 := fs[0]
		for _, f := range fs[1:] {
			foldl1 = fmt.Sprintf("f(%s, %s)", foldl1, f)
		}
		foldr := "base"
		for _, f := range reversed(fs) {
			foldr = fmt.Sprintf("f(%s, %s)", f, foldr)
		}
		foldr1 := fs[n-1]
		for _, f := range reversed(fs[:n-1]) {
			foldr1 = fmt.Sprintf("f(%s, %s)", f, foldr1)
		}
		e.p("// Foldl%d left-folds t with f, starting from base.", n)
		e.p("func Foldl%d[E, R any](t N%d[E], f func(R, E) R, base R) R {\n\treturn %s\n}\n", n, n, foldl)
		e.p("// Foldl1_%d left-folds t with f, seeding the fold with the first element.", n)
		e.p("func Foldl1_%d[E any](t N%d[E], f func(E, E) E) E {\n\treturn %s\n}\n", n, n, foldl1)
		e.p("// Foldr%d right-folds t with f, starting from base.", n)
		e.p("func Foldr%d[E, R any](t N%d[E], f func(E, R) R, base R) R {\n\treturn %s\n}\n", n, n, foldr)
		e.p("// Foldr1_%d right-folds t with f, seeding the fold with the last element.", n)
		e.p("func Foldr1_%d[E any](t N%d[E], f func(E, E) E) E {\n\treturn %s\n}\n", n, n, foldr1)
		if n < maxArity {
			rs := numbered("r", n+1)
			rt := typ(n+1, repeat("R", n+1))
			e.p("// Scanl%d left-folds t with f and returns every intermediate\n// accumulator, starting with base.", n)
			e.p("func Scanl%d[E, R any](t N%d[E], f func(R, E) R, base R) %s {", n, n, rt)
			e.p("\tr0 := base")
			for i := 0; i < n; i++ {
				e.p("\t%s := f(%s, %s)", rs[i+1], rs[i], fs[i])
			}
			e.p("\treturn %s{%s}\n}\n", rt, join(rs))
			e.p("// Scanr%d right-folds t with f and returns every intermediate\n// accumulator, ending with base.", n)
			e.p("func Scanr%d[E, R any](t N%d[E], f func(E, R) R, base R) %s {", n, n, rt)
			e.p("\t%s := base", rs[n])
			for i := n - 1; i >= 0; i-- {
				e.p("\t%s := f(%s, %s)", rs[i], fs[i], rs[i+1])
			}
			e.p("\treturn %s{%s}\n}\n", rt, join(rs))
		}
		rs := numbered("r", n)
		e.p("// Scanl1_%d left-folds t with f and returns every intermediate\n// accumulator, seeding the scan with the first element.", n)
		e.p("func Scanl1_%d[E any](t N%d[E], f func(E, E) E) N%d[E] {", n, n, n)
		e.p("\tr0 := t.A")
		for i := 1; i < n; i++ {
			e.p("\t%s := f(%s, %s)", rs[i], rs[i-1], fs[i])
		}
		e.p("\treturn N%d[E]{%s}\n}\n", n, join(rs))
		e.p("// Scanr1_%d right-folds t with f and returns every intermediate\n// accumulator, seeding the scan with the last element.", n)
		e.p("func Scanr1_%d[E any](t N%d[E], f func(E, E) E) N%d[E] {", n, n, n)
		e.p("\t%s := %s", rs[n-1], fs[n-1])
		for i := n - 2; i >= 0; i-- {
			e.p("\t%s := f(%s, %s)", rs[i], fs[i], rs[i+1])
		}
		e.p("\treturn N%d[E]{%s}\n}\n", n, join(rs))
	}
	e.write("fold_gen.go")
}

func repeat(s string, n int) []string {
	r := make([]string, n)
	for i := range r {
		r[i] = s
	}
	return r
}

func genTie() {
	e := newEmitter("tuple")
	for n := 1; n <= maxArity; n++ {
		ls := letters(n)
		refs := each(ls, func(c string) string { return "Ref[" + c + "]" })
		rt := typ(n, refs)
		var args, news, derefs []string
		for i, c := range ls {
			args = append(args, lows(n)[i]+" *"+c)
			news = append(news, "NewRef("+lows(n)[i]+")")
			derefs = append(derefs, fields(n, "t")[i]+".Get()")
		}
		e.p("// Tie%d returns a tuple of handles aliasing the given variables.\n// The tuple owns nothing: its validity is bounded by the lifetimes\n// of the pointed-to values.", n)
		e.p("func Tie%d[%s any](%s) %s {\n\treturn %s{%s}\n}\n",
			n, join(ls), join(args), rt, rt, join(news))
		idx := make([]string, n)
		for i := range idx {
			idx[i] = fmt.Sprintf("NewRef(&a[%d])", i)
		}
		e.p("// TieArray%d returns a tuple of handles aliasing the elements of a.", n)
		e.p("func TieArray%d[T any](a *[%d]T) N%d[Ref[T]] {\n\treturn N%d[Ref[T]]{%s}\n}\n",
			n, n, n, n, join(idx))
		e.p("// Deref%d reads a tuple of handles into a tuple of values.", n)
		e.p("func Deref%d[%s any](t %s) %s {\n\treturn %s{%s}\n}\n",
			n, join(ls), rt, typ(n, ls), typ(n, ls), join(derefs))
		e.p("// Assign%d writes the elements of src through the handles in dst.", n)
		e.p("func Assign%d[%s any](dst %s, src %s) {", n, join(ls), rt, typ(n, ls))
		for _, c := range ls {
			e.p("\tdst.%s.Set(src.%s)", c, c)
		}
		e.p("}\n")
	}
	e.write("tie_gen.go")
}

func genCompare() {
	e := newEmitter("tuple", "cmp")
	for n := 1; n <= maxArity; n++ {
		fa, fb := fields(n, "a"), fields(n, "b")
		e.p("// Compare%d compares a and b lexicographically.", n)
		e.p("func Compare%d[E cmp.Ordered](a, b N%d[E]) int {\n\treturn CompareFunc%d(a, b, cmp.Compare[E])\n}\n", n, n, n)
		e.p("// CompareFunc%d compares a and b lexicographically using cmp.", n)
		e.p("func CompareFunc%d[E any](a, b N%d[E], cmp func(x, y E) int) int {", n, n)
		for i := 0; i < n-1; i++ {
			e.p("\tif c := cmp(%s, %s); c != 0 {\n\t\treturn c\n\t}", fa[i], fb[i])
		}
		e.p("\treturn cmp(%s, %s)\n}\n", fa[n-1], fb[n-1])
		e.p("// Less%d reports whether a orders before b.", n)
		e.p("func Less%d[E cmp.Ordered](a, b N%d[E]) bool {\n\treturn Compare%d(a, b) < 0\n}\n", n, n, n)
		e.p("// EqualFunc%d reports whether corresponding elements of a and b are\n// equal according to eq.", n)
		e.p("func EqualFunc%d[A, B any](a N%d[A], b N%d[B], eq func(A, B) bool) bool {\n\treturn %s\n}\n",
			n, n, n, strings.Join(each2(fa, fb, "eq(%s, %s)"), " && "))
	}
	e.write("compare_gen.go")
}

// qtyp names a tuple type of arity n from outside the tuple package.
func qtyp(n int, args []string) string {
	return "tuple." + typ(n, args)
}

func genFuncArgs() {
	e := newEmitter("tuplefunc", tuplePkg)
	for a := 0; a <= maxArity; a++ {
		for r := 0; r <= 1; r++ {
			if a == 0 && r == 0 {
				e.p("// ToA_0_0 converts f to a function taking its arguments as a tuple.")
				e.p("func ToA_0_0(f func()) func(tuple.T0) {\n\treturn func(tuple.T0) {\n\t\tf()\n\t}\n}\n")
				e.p("// FromA_0_0 converts f to a function taking its arguments separately.")
				e.p("func FromA_0_0(f func(tuple.T0)) func() {\n\treturn func() {\n\t\tf(tuple.T0{})\n\t}\n}\n")
				continue
			}
			an, low := numbered("A", a), numbered("a", a)
			tt := qtyp(a, an)
			ret := ""
			tps := an
			if r == 1 {
				ret = " R0"
				tps = append(append([]string{}, an...), "R0")
			}
			call := "f(" + join(fields(a, "t")) + ")"
			stmt := "\t\t" + call
			if r == 1 {
				stmt = "\t\treturn " + call
			}
			tvar := "t "
			if a == 0 {
				tvar, stmt = "", "\t\treturn f()"
				if r == 0 {
					stmt = "\t\tf()"
				}
			}
			e.p("// ToA_%d_%d converts f to a function taking its arguments as a tuple.", a, r)
			e.p("func ToA_%d_%d[%s any](f func(%s)%s) func(%s)%s {\n\treturn func(%s%s)%s {\n%s\n\t}\n}\n",
				a, r, join(tps), join(an), ret, tt, ret, tvar, tt, ret, stmt)
			lit := tt + "{" + join(low) + "}"
			if a == 0 {
				lit = "tuple.T0{}"
			}
			var fargs []string
			for i := range an {
				fargs = append(fargs, low[i]+" "+an[i])
			}
			stmt = "\t\tf(" + lit + ")"
			if r == 1 {
				stmt = "\t\treturn f(" + lit + ")"
			}
			e.p("// FromA_%d_%d converts f to a function taking its arguments separately.", a, r)
			e.p("func FromA_%d_%d[%s any](f func(%s)%s) func(%s)%s {\n\treturn func(%s)%s {\n%s\n\t}\n}\n",
				a, r, join(tps), tt, ret, join(an), ret, join(fargs), ret, stmt)
		}
	}
	e.write("tuplefunc/args_gen.go")
}

func genFuncReturns() {
	e := newEmitter("tuplefunc", tuplePkg)
	for a := 0; a <= 1; a++ {
		for r := 2; r <= maxArity; r++ {
			an, low := numbered("A", a), numbered("a", a)
			rn, rl := numbered("R", r), numbered("r", r)
			tt := qtyp(r, rn)
			var fargs []string
			for i := range an {
				fargs = append(fargs, low[i]+" "+an[i])
			}
			e.p("// ToR_%d_%d converts f to a function returning its results as a tuple.", a, r)
			e.p("func ToR_%d_%d[%s any](f func(%s) (%s)) func(%s) %s {\n\treturn func(%s) %s {\n\t\t%s := f(%s)\n\t\treturn %s{%s}\n\t}\n}\n",
				a, r, join(append(append([]string{}, an...), rn...)), join(an), join(rn), join(an), tt,
				join(fargs), tt, join(rl), join(low), tt, join(rl))
			e.p("// FromR_%d_%d converts f to a function returning its results separately.", a, r)
			e.p("func FromR_%d_%d[%s any](f func(%s) %s) func(%s) (%s) {\n\treturn func(%s) (%s) {\n\t\tt := f(%s)\n\t\treturn %s\n\t}\n}\n",
				a, r, join(append(append([]string{}, an...), rn...)), join(an), tt, join(an), join(rn),
				join(fargs), join(rn), join(low), join(fields(r, "t")))
		}
	}
	e.write("tuplefunc/returns_gen.go")
}

func genFuncErrors() {
	e := newEmitter("tuplefunc", tuplePkg)
	for a := 0; a <= 1; a++ {
		for r := 2; r <= 4; r++ {
			an, low := numbered("A", a), numbered("a", a)
			rn, rl := numbered("R", r), numbered("r", r)
			tt := qtyp(r, rn)
			var fargs []string
			for i := range an {
				fargs = append(fargs, low[i]+" "+an[i])
			}
			e.p("// ToRE_%d_%d is like ToR_%d_%d for a function with a trailing error\n// result; the error stays outside the tuple.", a, r, a, r)
			e.p("func ToRE_%d_%d[%s any](f func(%s) (%s, error)) func(%s) (%s, error) {\n\treturn func(%s) (%s, error) {\n\t\t%s, err := f(%s)\n\t\treturn %s{%s}, err\n\t}\n}\n",
				a, r, join(append(append([]string{}, an...), rn...)), join(an), join(rn), join(an), tt,
				join(fargs), tt, join(rl), join(low), tt, join(rl))
			e.p("// FromRE_%d_%d is the inverse of ToRE_%d_%d.", a, r, a, r)
			e.p("func FromRE_%d_%d[%s any](f func(%s) (%s, error)) func(%s) (%s, error) {\n\treturn func(%s) (%s, error) {\n\t\tt, err := f(%s)\n\t\treturn %s, err\n\t}\n}\n",
				a, r, join(append(append([]string{}, an...), rn...)), join(an), tt, join(an), join(rn),
				join(fargs), join(rn), join(low), join(fields(r, "t")))
		}
	}
	e.write("tuplefunc/errors_gen.go")
}

func genFuncContext() {
	e := newEmitter("tuplefunc", "context", tuplePkg)
	for r := 2; r <= 3; r++ {
		rn, rl := numbered("R", r), numbered("r", r)
		tt := qtyp(r, rn)
		tps := append([]string{"A0"}, rn...)
		e.p("// ToCRE_1_%d is like ToRE_1_%d for a function whose first argument\n// is a context.Context.", r, r)
		e.p("func ToCRE_1_%d[%s any](f func(context.Context, A0) (%s, error)) func(context.Context, A0) (%s, error) {\n\treturn func(ctx context.Context, a0 A0) (%s, error) {\n\t\t%s, err := f(ctx, a0)\n\t\treturn %s{%s}, err\n\t}\n}\n",
			r, join(tps), join(rn), tt, tt, join(rl), tt, join(rl))
		e.p("// FromCRE_1_%d is the inverse of ToCRE_1_%d.", r, r)
		e.p("func FromCRE_1_%d[%s any](f func(context.Context, A0) (%s, error)) func(context.Context, A0) (%s, error) {\n\treturn func(ctx context.Context, a0 A0) (%s, error) {\n\t\tt, err := f(ctx, a0)\n\t\treturn %s, err\n\t}\n}\n",
			r, join(tps), tt, join(rn), join(rn), join(fields(r, "t")))
	}
	e.write("tuplefunc/context_gen.go")
}
