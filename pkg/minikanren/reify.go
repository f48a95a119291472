package minikanren

import (
	"fmt"
	"sort"
	"strings"
)

// Answer is a query answer: the reified query terms, plus the purified
// residual constraint set that survives against them.
type Answer struct {
	Terms       []Term
	Constraints Store
}

// reifyAnswer deep-walks the first k variable identifiers (the query
// variables) and purifies the state's constraint store against them.
func reifyAnswer(s State, k int) Answer {
	terms := make([]Term, k)
	for i := 0; i < k; i++ {
		terms[i] = DeepWalk(VarTerm(VarID(i), AnyType), s.subst)
	}
	return Answer{Terms: terms, Constraints: purify(s, terms)}
}

// reachable collects every variable identifier occurring in terms,
// walking Cons structure.
func reachable(terms []Term) map[VarID]bool {
	seen := map[VarID]bool{}
	var visit func(Term)
	visit = func(t Term) {
		switch {
		case t.IsVar():
			seen[t.VarID()] = true
		case t.IsCons():
			visit(t.Head())
			visit(t.Tail())
		}
	}
	for _, t := range terms {
		visit(t)
	}
	return seen
}

// varsSubsetOf reports whether every variable occurring in t is in R.
func varsSubsetOf(t Term, r map[VarID]bool) bool {
	switch {
	case t.IsVar():
		return r[t.VarID()]
	case t.IsCons():
		return varsSubsetOf(t.Head(), r) && varsSubsetOf(t.Tail(), r)
	default:
		return true
	}
}

// purify computes the minimal, query-visible constraint store: each pair
// of each live constraint is deep-walked and kept
// only when its variable and its term's variables are all reachable from
// the reified query terms; a constraint that loses every pair is dropped;
// the survivors are re-minimized and canonically ordered.
func purify(s State, reified []Term) Store {
	r := reachable(reified)
	var kept Store
	for _, c := range s.store {
		var dw Constraint
		for _, p := range c {
			if !r[p.Var] {
				continue
			}
			t := DeepWalk(p.Term, s.subst)
			if !varsSubsetOf(t, r) {
				continue
			}
			dw = append(dw, Pair{Var: p.Var, Term: t})
		}
		if len(dw) == 0 {
			continue
		}
		sortConstraint(dw)
		kept = kept.insert(dw)
	}
	sortStore(kept)
	return kept
}

func constraintKey(c Constraint) string {
	var b strings.Builder
	for _, p := range c {
		fmt.Fprintf(&b, "%d:%s;", p.Var, p.Term.String())
	}
	return b.String()
}

func sortStore(st Store) {
	sort.Slice(st, func(i, j int) bool {
		return constraintKey(st[i]) < constraintKey(st[j])
	})
}
