package minikanren

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func termEqualComparer() cmp.Option {
	return cmp.Comparer(func(a, b Term) bool { return a.Equal(b) })
}

func TestTermEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Term
		want bool
	}{
		{"null-null", Null, Null, true},
		{"value-same", Value(1), Value(1), true},
		{"value-diff", Value(1), Value(2), false},
		{"str-same", Str("a"), Str("a"), true},
		{"str-diff", Str("a"), Str("b"), false},
		{"var-same-id", VarTerm(0, AnyType), VarTerm(0, NumberType), true},
		{"var-diff-id", VarTerm(0, AnyType), VarTerm(1, AnyType), false},
		{"cons-equal", Cons(Value(1), Null), Cons(Value(1), Null), true},
		{"cons-diff", Cons(Value(1), Null), Cons(Value(2), Null), false},
		{"kind-mismatch", Value(1), Str("1"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.want {
				t.Fatalf("Equal() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestListConstructors(t *testing.T) {
	got := List(Value(1), Value(2), Value(3))
	want := Cons(Value(1), Cons(Value(2), Cons(Value(3), Null)))
	if diff := cmp.Diff(want, got, termEqualComparer()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	dotted := DottedList(VarTerm(9, AnyType), Value(1), Value(2))
	wantDotted := Cons(Value(1), Cons(Value(2), VarTerm(9, AnyType)))
	if diff := cmp.Diff(wantDotted, dotted, termEqualComparer()); diff != "" {
		t.Fatalf("DottedList() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyTypeLattice(t *testing.T) {
	cases := []struct {
		name    string
		a, b    TermType
		want    TermType
		wantOk  bool
	}{
		{"any-any", AnyType, AnyType, AnyType, true},
		{"any-number", AnyType, NumberType, NumberType, true},
		{"number-any", NumberType, AnyType, NumberType, true},
		{"number-number", NumberType, NumberType, NumberType, true},
		{"number-string", NumberType, StringType, AnyType, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := unifyType(c.a, c.b)
			if ok != c.wantOk {
				t.Fatalf("ok = %v, want %v", ok, c.wantOk)
			}
			if ok && got != c.want {
				t.Fatalf("got = %v, want %v", got, c.want)
			}
		})
	}
}
