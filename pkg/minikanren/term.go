// Package minikanren implements a miniKanren-style relational logic engine:
// a term model with type-constrained variables, unification, a disequality
// constraint store, a goal algebra evaluated over a lazy interleaving search
// stream, and answer projection.
//
// The engine is single-threaded and cooperative: there is no ambient
// parallelism and no I/O on the evaluation path. Goal evaluation has exactly
// three outcomes — succeed with a state, fail (the normal absence of an
// answer, not an error), or suspend — and never returns a runtime error.
package minikanren

import "fmt"

// VarID is a logic variable's identifier, allocated monotonically from a
// per-query counter. Two variables are equal iff their identifiers are.
type VarID int32

// TermType is a lattice sentinel constraining what a variable may be bound
// to: AnyType is top, NumberType and StringType are incomparable leaves.
type TermType uint8

const (
	AnyType TermType = iota
	NumberType
	StringType
)

func (t TermType) String() string {
	switch t {
	case NumberType:
		return "number"
	case StringType:
		return "string"
	default:
		return "any"
	}
}

// unifyType computes the meet of two type bounds along the lattice. It
// fails only when both bounds are distinct non-Any leaves.
func unifyType(a, b TermType) (TermType, bool) {
	switch {
	case a == b:
		return a, true
	case a == AnyType:
		return b, true
	case b == AnyType:
		return a, true
	default:
		return AnyType, false
	}
}

type kind uint8

const (
	kindNull kind = iota
	kindValue
	kindStr
	kindType
	kindVar
	kindCons
)

// cell is the shared payload of a Cons pair. Terms are never mutated after
// construction, so sub-terms may be shared freely between larger terms.
type cell struct {
	head, tail Term
}

// Term is a value in the core data model: the empty list, a 32-bit integer
// atom, a string atom, a type sentinel, a logic variable carrying a type
// bound, or a cons pair. Terms are immutable; equality is structural.
type Term struct {
	k    kind
	num  int32
	str  string
	typ  TermType
	id   VarID
	pair *cell
}

// Null is the empty list.
var Null = Term{k: kindNull}

// ANY, NUM, and STR are the type sentinels, usable directly as goal
// operands (e.g. Eq(x, NUM)) or term positions.
var (
	ANY = Term{k: kindType, typ: AnyType}
	NUM = Term{k: kindType, typ: NumberType}
	STR = Term{k: kindType, typ: StringType}
)

// Value constructs a 32-bit integer atom.
func Value(i int32) Term { return Term{k: kindValue, num: i} }

// Str constructs a string atom.
func Str(s string) Term { return Term{k: kindStr, str: s} }

// VarTerm constructs a logic variable term with the given identifier and
// type bound. Most callers allocate variables via Fresh instead of calling
// this directly.
func VarTerm(id VarID, t TermType) Term { return Term{k: kindVar, id: id, typ: t} }

// Cons builds a pair with the given head and tail.
func Cons(head, tail Term) Term { return Term{k: kindCons, pair: &cell{head: head, tail: tail}} }

// List builds a proper list [x1 .. xn], right-nested pairs terminated by
// Null.
func List(xs ...Term) Term {
	out := Null
	for i := len(xs) - 1; i >= 0; i-- {
		out = Cons(xs[i], out)
	}
	return out
}

// DottedList builds [x1 .. xn . tail], leaving tail as the final cdr instead
// of terminating with Null.
func DottedList(tail Term, xs ...Term) Term {
	out := tail
	for i := len(xs) - 1; i >= 0; i-- {
		out = Cons(xs[i], out)
	}
	return out
}

func (t Term) IsNull() bool  { return t.k == kindNull }
func (t Term) IsValue() bool { return t.k == kindValue }
func (t Term) IsStr() bool   { return t.k == kindStr }
func (t Term) IsType() bool  { return t.k == kindType }
func (t Term) IsVar() bool   { return t.k == kindVar }
func (t Term) IsCons() bool  { return t.k == kindCons }

// VarID returns the variable identifier. Only meaningful when IsVar is true.
func (t Term) VarID() VarID { return t.id }

// TypeBound returns the type bound carried by a Var or Type term.
func (t Term) TypeBound() TermType { return t.typ }

// Int returns the integer value of a Value term.
func (t Term) Int() int32 { return t.num }

// Text returns the string value of a Str term.
func (t Term) Text() string { return t.str }

// Head returns the car of a Cons term.
func (t Term) Head() Term { return t.pair.head }

// Tail returns the cdr of a Cons term.
func (t Term) Tail() Term { return t.pair.tail }

// Equal reports whether two terms are structurally identical without
// consulting any substitution — distinct from unification.
func (t Term) Equal(o Term) bool {
	if t.k != o.k {
		return false
	}
	switch t.k {
	case kindNull:
		return true
	case kindValue:
		return t.num == o.num
	case kindStr:
		return t.str == o.str
	case kindType:
		return t.typ == o.typ
	case kindVar:
		return t.id == o.id
	case kindCons:
		return t.pair.head.Equal(o.pair.head) && t.pair.tail.Equal(o.pair.tail)
	default:
		return false
	}
}

// String is a minimal debug rendering; Render (render.go) is the reference
// textual form the test suite compares against.
func (t Term) String() string {
	switch t.k {
	case kindNull:
		return "()"
	case kindValue:
		return fmt.Sprintf("%d", t.num)
	case kindStr:
		return fmt.Sprintf("%q", t.str)
	case kindType:
		return "#<" + t.typ.String() + ">"
	case kindVar:
		return fmt.Sprintf("_%d", t.id)
	case kindCons:
		return "(" + t.Head().String() + " . " + t.Tail().String() + ")"
	default:
		return "?"
	}
}
