package minikanren

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisequalitySurvivesUnderFurtherBinding(t *testing.T) {
	answers := RunAll1(func(q Term) Goal {
		return Fresh1(func(x Term) Goal {
			return All(Neq(Value(5), q), Eq(x, q), Neq(Value(6), x))
		})
	})
	if len(answers) != 1 {
		t.Fatalf("expected exactly one answer, got %d: %+v", len(answers), answers)
	}
	a := answers[0]
	if !a.Terms[0].IsVar() {
		t.Fatalf("q should remain unbound, got %s", a.Terms[0])
	}
	if len(a.Constraints) != 2 {
		t.Fatalf("expected two residual constraints, got %d: %s", len(a.Constraints), RenderAnswer(a))
	}
	got := RenderAnswer(a)
	want := "_0 : ((_0 . 5)), ((_0 . 6))"
	if got != want {
		t.Fatalf("RenderAnswer = %q, want %q", got, want)
	}
}

func TestStructuralDisequalityDecomposition(t *testing.T) {
	answers := RunAll2(func(x, y Term) Goal {
		return Neq(Cons(Value(5), x), Cons(Value(5), y))
	})
	if len(answers) != 1 {
		t.Fatalf("expected exactly one answer, got %d", len(answers))
	}
	a := answers[0]
	if len(a.Constraints) != 1 || len(a.Constraints[0]) != 1 {
		t.Fatalf("expected one single-pair residual constraint, got %+v", a.Constraints)
	}
	got := RenderAnswer(a)
	want := "_0 _1 : ((_1 . _0))"
	if got != want {
		t.Fatalf("RenderAnswer = %q, want %q", got, want)
	}
}

func TestTypeBoundedVariableScenario(t *testing.T) {
	answers := RunAll1(func(x Term) Goal {
		return All(Neq(x, Value(1)), Numo(x))
	})
	if len(answers) != 1 {
		t.Fatalf("expected exactly one answer, got %d", len(answers))
	}
	a := answers[0]
	if !a.Terms[0].IsVar() || a.Terms[0].TypeBound() != NumberType {
		t.Fatalf("x should remain an unbound number-typed variable, got %s (%v)", a.Terms[0], a.Terms[0].TypeBound())
	}
	got := RenderAnswer(a)
	want := "_0 : ((_0 . 1))"
	if got != want {
		t.Fatalf("RenderAnswer = %q, want %q", got, want)
	}
}

func TestPurificationIsIdempotent(t *testing.T) {
	s := emptyState()
	s, vars := s.fresh(1)
	x := vars[0]

	s2 := evalAndCheck(t, Neq(x, Value(1)), s)

	reified := []Term{DeepWalk(VarTerm(0, AnyType), s2.subst)}
	first := purify(s2, reified)
	second := purify(s2.withStore(first), reified)

	if len(first) != len(second) {
		t.Fatalf("purify should be idempotent: %+v vs %+v", first, second)
	}
	for i := range first {
		if !first[i].equalSet(second[i]) {
			t.Fatalf("purify should be idempotent at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}

	termEq := cmp.Comparer(func(a, b Term) bool { return a.Equal(b) })
	if diff := cmp.Diff(first, second, termEq); diff != "" {
		t.Fatalf("purify should be idempotent (-first +second):\n%s", diff)
	}
}

func TestReificationTotality(t *testing.T) {
	answers := RunAll2(func(x, y Term) Goal { return Eq(x, Value(1)) })
	if len(answers) != 1 {
		t.Fatalf("expected one answer, got %d", len(answers))
	}
	a := answers[0]
	if len(a.Terms) != 2 {
		t.Fatalf("reify<2> should always return a 2-length sequence, got %d", len(a.Terms))
	}
	if !a.Terms[0].Equal(Value(1)) {
		t.Fatalf("x should be bound to 1, got %s", a.Terms[0])
	}
	if !a.Terms[1].IsVar() {
		t.Fatalf("y should remain a walked variable term, got %s", a.Terms[1])
	}
}

// evalAndCheck evaluates g against s and fails the test if it does not
// succeed with exactly one resulting state.
func evalAndCheck(t *testing.T, g Goal, s State) State {
	t.Helper()
	it := newIterator(g.call(s))
	st, ok := it.Next()
	if !ok {
		t.Fatal("expected goal to succeed")
	}
	return st
}
