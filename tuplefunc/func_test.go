package tuplefunc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/tuple"
)

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func checkedDivmod(a, b int) (int, int, error) {
	if b == 0 {
		return 0, 0, errors.New("division by zero")
	}
	q, r := divmod(a, b)
	return q, r, nil
}

func TestToA(t *testing.T) {
	f := ToA_2_1(strings.Repeat)
	qt.Assert(t, qt.Equals(f(tuple.New2("ab", 3)), "ababab"))
}

func TestFromA(t *testing.T) {
	f := FromA_2_1(func(v tuple.T2[string, int]) string {
		return strings.Repeat(v.A, v.B)
	})
	qt.Assert(t, qt.Equals(f("ab", 3), "ababab"))
}

func TestToAFromARoundTrip(t *testing.T) {
	f := FromA_2_1(ToA_2_1(strings.Repeat))
	qt.Assert(t, qt.Equals(f("xy", 2), "xyxy"))
}

func TestToANoResults(t *testing.T) {
	var got []int
	f := ToA_3_0(func(a, b, c int) {
		got = append(got, a, b, c)
	})
	f(tuple.New3(1, 2, 3))
	qt.Assert(t, qt.DeepEquals(got, []int{1, 2, 3}))
}

func TestToAEmpty(t *testing.T) {
	f := ToA_0_1(func() int { return 42 })
	qt.Assert(t, qt.Equals(f(tuple.T0{}), 42))
}

func TestToR(t *testing.T) {
	f := ToR_1_2(func(a int) (int, int) {
		return divmod(a, 3)
	})
	qt.Assert(t, qt.Equals(f(17), tuple.New2(5, 2)))
}

func TestFromR(t *testing.T) {
	f := FromR_1_2(func(a int) tuple.T2[int, int] {
		q, r := divmod(a, 3)
		return tuple.New2(q, r)
	})
	q, r := f(17)
	qt.Assert(t, qt.Equals(q, 5))
	qt.Assert(t, qt.Equals(r, 2))
}

func TestToRNoArgs(t *testing.T) {
	f := ToR_0_3(func() (int, string, bool) {
		return 1, "a", true
	})
	qt.Assert(t, qt.Equals(f(), tuple.New3(1, "a", true)))
}

func TestToRE(t *testing.T) {
	f := ToRE_1_2(func(a int) (int, int, error) {
		return checkedDivmod(a, 3)
	})
	v, err := f(17)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, tuple.New2(5, 2)))
}

func TestToREError(t *testing.T) {
	f := ToRE_1_2(func(a int) (int, int, error) {
		return checkedDivmod(a, 0)
	})
	_, err := f(17)
	qt.Assert(t, qt.ErrorMatches(err, "division by zero"))
}

func TestFromRE(t *testing.T) {
	f := FromRE_1_2(ToRE_1_2(func(a int) (int, int, error) {
		return checkedDivmod(a, 3)
	}))
	q, r, err := f(17)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(q, 5))
	qt.Assert(t, qt.Equals(r, 2))
}

func TestToCRE(t *testing.T) {
	f := ToCRE_1_2(func(ctx context.Context, a int) (int, int, error) {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		return checkedDivmod(a, 3)
	})

	v, err := f(context.Background(), 17)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, tuple.New2(5, 2)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f(ctx, 17)
	qt.Assert(t, qt.ErrorIs(err, context.Canceled))
}
