package langext

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type point struct {
	x, y int
}

func TestFrom_PresentAndAbsent(t *testing.T) {
	t.Parallel()

	m := From(42)
	if !m.IsSome() || m.IsNone() {
		t.Fatalf("expected Some, got %v", m)
	}
	if !m.Equal(Some(42)) {
		t.Fatalf("expected From(42) == Some(42), got %v", m)
	}

	var p *int
	n := From(p)
	if !n.IsNone() || n.IsSome() {
		t.Fatalf("expected None for nil pointer, got %v", n)
	}
	if !n.Equal(None[*int]()) {
		t.Fatalf("expected None, got %v", n)
	}

	var err error
	if e := From(err); !e.IsNone() {
		t.Fatalf("expected None for nil interface, got %v", e)
	}
	if s := From([]int(nil)); !s.IsNone() {
		t.Fatalf("expected None for nil slice, got %v", s)
	}
	if s := From([]int{}); !s.IsSome() {
		t.Fatalf("expected Some for empty slice, got %v", s)
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	v := 7
	if m := FromPtr(&v); !m.Equal(Some(7)) {
		t.Fatalf("expected Some(7), got %v", m)
	}
	if m := FromPtr[int](nil); !m.IsNone() {
		t.Fatalf("expected None, got %v", m)
	}
}

func TestFromOk(t *testing.T) {
	t.Parallel()

	table := map[string]int{"k": 42}

	v, ok := table["k"]
	if m := FromOk(v, ok); !m.Equal(Some(42)) {
		t.Fatalf("expected Some(42), got %v", m)
	}

	v, ok = table["missing"]
	if m := FromOk(v, ok); !m.IsNone() {
		t.Fatalf("expected None, got %v", m)
	}
}

func TestSome_PanicsOnAbsent(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Some(nil) to panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNilValue) {
			t.Fatalf("expected ErrNilValue, got %v", r)
		}
	}()

	var p *point
	_ = Some(p)
}

func TestTrySome(t *testing.T) {
	t.Parallel()

	var p *point
	m, err := TrySome(p)
	if !errors.Is(err, ErrNilValue) || !m.IsNone() {
		t.Fatalf("expected ErrNilValue and None, got %v, %v", m, err)
	}

	m, err = TrySome(&point{1, 2})
	if err != nil || !m.IsSome() {
		t.Fatalf("expected Some, got %v, %v", m, err)
	}
}

func TestSomeUnit(t *testing.T) {
	t.Parallel()

	if m := SomeUnit(); !m.IsSome() || m.String() != "Some(())" {
		t.Fatalf("expected Some(()), got %v", m)
	}
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var m Maybe[string]
	if !m.IsNone() || m != None[string]() {
		t.Fatalf("expected zero value to be None, got %v", m)
	}
}

func TestGetOr(t *testing.T) {
	t.Parallel()

	if v := Some(3).GetOr(9); v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}
	if v := None[int]().GetOr(9); v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}
}

func TestGetOrElse_Lazy(t *testing.T) {
	t.Parallel()

	called := false
	v := Some(3).GetOrElse(func() int {
		called = true
		return 9
	})
	if v != 3 || called {
		t.Fatalf("expected 3 without calling default, got %d, called=%v", v, called)
	}

	v = None[int]().GetOrElse(func() int {
		called = true
		return 9
	})
	if v != 9 || !called {
		t.Fatalf("expected 9 from default, got %d, called=%v", v, called)
	}
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	t.Parallel()

	someCalls, noneCalls := 0, 0
	got := 0
	Some(5).Match(func(v int) { someCalls++; got = v }, func() { noneCalls++ })
	if someCalls != 1 || noneCalls != 0 || got != 5 {
		t.Fatalf("expected only some branch with 5; some=%d none=%d got=%d", someCalls, noneCalls, got)
	}

	someCalls, noneCalls = 0, 0
	None[int]().Match(func(v int) { someCalls++ }, func() { noneCalls++ })
	if someCalls != 0 || noneCalls != 1 {
		t.Fatalf("expected only none branch; some=%d none=%d", someCalls, noneCalls)
	}
}

func TestOrElse_Lazy(t *testing.T) {
	t.Parallel()

	called := false
	m := Some(1).OrElse(func() Maybe[int] {
		called = true
		return Some(2)
	})
	if !m.Equal(Some(1)) || called {
		t.Fatalf("expected Some(1) without calling else, got %v, called=%v", m, called)
	}

	m = None[int]().OrElse(func() Maybe[int] {
		called = true
		return Some(2)
	})
	if !m.Equal(Some(2)) || !called {
		t.Fatalf("expected Some(2), got %v, called=%v", m, called)
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()

	if m := Some(1).Or(Some(2)); !m.Equal(Some(1)) {
		t.Fatalf("expected Some(1), got %v", m)
	}
	if m := None[int]().Or(Some(2)); !m.Equal(Some(2)) {
		t.Fatalf("expected Some(2), got %v", m)
	}
	if m := None[int]().Or(None[int]()); !m.IsNone() {
		t.Fatalf("expected None, got %v", m)
	}

	if m := Some(1).And(Some(2)); !m.Equal(Some(2)) {
		t.Fatalf("expected Some(2), got %v", m)
	}
	if m := None[int]().And(Some(2)); !m.IsNone() {
		t.Fatalf("expected None, got %v", m)
	}
	if m := Some(1).And(None[int]()); !m.IsNone() {
		t.Fatalf("expected None, got %v", m)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Some(point{1, 2}).Equal(Some(point{1, 2})) {
		t.Fatalf("expected equal payloads to be equal")
	}
	if Some(point{1, 2}).Equal(Some(point{2, 1})) {
		t.Fatalf("expected different payloads to differ")
	}
	if Some(0).Equal(None[int]()) || None[int]().Equal(Some(0)) {
		t.Fatalf("expected Some(0) and None to differ")
	}
	if !None[int]().Equal(None[int]()) {
		t.Fatalf("expected None == None")
	}
	if Some(&point{1, 2}).Equal(Some(&point{1, 2})) {
		t.Fatalf("expected distinct pointers to differ")
	}
	if !Some([]int{1, 2}).Equal(Some([]int{1, 2})) {
		t.Fatalf("expected equal slices to be equal")
	}

	now := time.Now()
	if !Some(now).Equal(Some(now.UTC())) {
		t.Fatalf("expected time payloads to use time.Equal")
	}

	boom := errors.New("boom")
	if !Some(boom).Equal(Some(boom)) {
		t.Fatalf("expected identical errors to be equal")
	}
	if Some(boom).Equal(Some(errors.New("boom"))) {
		t.Fatalf("expected distinct errors with the same text to differ")
	}
}

func TestEqual_SymmetricWithMatchingHash(t *testing.T) {
	t.Parallel()

	x, y := 42, 42
	p := &point{1, 2}
	boom := errors.New("boom")
	now := time.Now()

	tests := []struct {
		name  string
		a, b  Maybe[any]
		equal bool
	}{
		{"same pointer", Some[any](&x), Some[any](&x), true},
		{"distinct pointers to equal ints", Some[any](&x), Some[any](&y), false},
		{"same struct pointer", Some[any](p), Some[any](p), true},
		{"distinct struct pointers", Some[any](p), Some[any](&point{1, 2}), false},
		{"slices sharing a pointer", Some[any]([]*int{&x}), Some[any]([]*int{&x}), true},
		{"slices of distinct pointers", Some[any]([]*int{&x}), Some[any]([]*int{&y}), false},
		{"same error", Some[any](boom), Some[any](boom), true},
		{"wrapping error", Some[any](fmt.Errorf("ctx: %w", boom)), Some[any](boom), false},
		{"null result instances", Some[any](ErrNullResult), Some[any](&NullResultError{}), true},
		{"null result wrapped", Some[any](fmt.Errorf("other: %w", ErrNullResult)), Some[any](ErrNullResult), false},
		{"time in another location", Some[any](now), Some[any](now.UTC()), true},
		{"equal structs", Some[any](point{1, 2}), Some[any](point{1, 2}), true},
		{"none and some", None[any](), Some[any](0), false},
	}

	for _, tt := range tests {
		got, back := tt.a.Equal(tt.b), tt.b.Equal(tt.a)
		if got != tt.equal || back != tt.equal {
			t.Fatalf("%s: expected Equal both ways to be %v, got %v and %v", tt.name, tt.equal, got, back)
		}
		if tt.equal && tt.a.Hash() != tt.b.Hash() {
			t.Fatalf("%s: expected equal values to hash equally", tt.name)
		}
	}
}

func TestNonStrictEqual(t *testing.T) {
	t.Parallel()

	if !Nothing.NonStrictEqual(None[int]()) {
		t.Fatalf("expected Nothing to equal None[int] non-strictly")
	}
	if !None[int]().NonStrictEqual(Nothing) {
		t.Fatalf("expected None[int] to equal Nothing non-strictly")
	}
	if Nothing.NonStrictEqual(Some(1)) {
		t.Fatalf("expected Nothing to differ from Some(1)")
	}
	if Some(1).NonStrictEqual(Nothing) {
		t.Fatalf("expected Some(1) to differ from Nothing")
	}
	if !Some(1).NonStrictEqual(Some(1)) {
		t.Fatalf("expected Some(1) to equal Some(1)")
	}
	if Some(1).NonStrictEqual(Some(int64(1))) {
		t.Fatalf("expected payloads of different types to differ")
	}
	if Some(1).NonStrictEqual(nil) {
		t.Fatalf("expected nil Optional to differ")
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	if None[int]().Hash() != None[string]().Hash() {
		t.Fatalf("expected None to hash to a fixed constant")
	}
	if Some(5).Hash() != Some(5).Hash() {
		t.Fatalf("expected equal values to hash equally")
	}
	if Some(5).Hash() == None[int]().Hash() {
		t.Fatalf("expected Some and None hashes to differ")
	}
	if Some(ErrNullResult).Hash() != Some(NullResultError{}).Hash() {
		t.Fatalf("expected NullResultError payload to use its own hash")
	}

	set := map[Maybe[int]]bool{Some(1): true, None[int](): true}
	if !set[Some(1)] || !set[None[int]()] || set[Some(2)] {
		t.Fatalf("expected comparable Maybe to work as a map key")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if s := Some(42).String(); s != "Some(42)" {
		t.Fatalf("expected Some(42), got %s", s)
	}
	if s := None[int]().String(); s != "None" {
		t.Fatalf("expected None, got %s", s)
	}
}

func TestToOutcome(t *testing.T) {
	t.Parallel()

	if o := Some(3).ToOutcome(); !o.Equal(Success[int, Unit](3)) {
		t.Fatalf("expected Success(3), got %v", o)
	}
	if o := None[int]().ToOutcome(); !o.Equal(Failure[int](Unit{})) {
		t.Fatalf("expected Failure(()), got %v", o)
	}
}
