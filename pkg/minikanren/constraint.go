package minikanren

import "sort"

// Pair is one required binding of a disequality constraint: the
// constraint is violated only when every pair's variable is bound to its
// term simultaneously.
type Pair struct {
	Var  VarID
	Term Term
}

func (p Pair) equal(o Pair) bool {
	return p.Var == o.Var && p.Term.Equal(o.Term)
}

// Constraint is a set of required pairs, kept sorted for canonical
// comparison and display.
type Constraint []Pair

func newConstraint(added []Binding) Constraint {
	c := make(Constraint, len(added))
	for i, b := range added {
		c[i] = Pair{Var: b.Var, Term: b.Term}
	}
	sortConstraint(c)
	return c
}

func sortConstraint(c Constraint) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Var != c[j].Var {
			return c[i].Var < c[j].Var
		}
		return c[i].Term.String() < c[j].Term.String()
	})
}

func (c Constraint) contains(p Pair) bool {
	for _, q := range c {
		if q.equal(p) {
			return true
		}
	}
	return false
}

// subsetOrEqual reports whether every pair of a also occurs in b.
func subsetOrEqual(a, b Constraint) bool {
	for _, p := range a {
		if !b.contains(p) {
			return false
		}
	}
	return true
}

func (c Constraint) equalSet(o Constraint) bool {
	return subsetOrEqual(c, o) && subsetOrEqual(o, c)
}

// Store holds the live disequality constraints attached to a State.
type Store []Constraint

// insert applies the minimization rule: a candidate that is a superset of
// (or equal to) an existing constraint is weaker and discarded outright;
// otherwise every existing constraint that is a superset of the candidate
// is dropped (the candidate, being a subset, is the stronger claim), and
// the candidate is appended.
func (st Store) insert(cand Constraint) Store {
	if len(cand) == 0 {
		return st
	}
	for _, e := range st {
		if subsetOrEqual(e, cand) {
			return st
		}
	}
	out := make(Store, 0, len(st)+1)
	for _, e := range st {
		if subsetOrEqual(cand, e) {
			continue
		}
		out = append(out, e)
	}
	out = append(out, cand)
	return out
}

// evalNeq implements the neq(a, b) semantics: attempt a trial
// unification discarded afterward. Returns the resulting store and
// whether the goal succeeds.
func evalNeq(a, b Term, s Subst, store Store) (Store, bool) {
	_, added, ok := Unify(a, b, s)
	if !ok {
		return store, true
	}
	if len(added) == 0 {
		return store, false
	}
	return store.insert(newConstraint(added)), true
}

// verify re-checks every live constraint against a substitution that an
// eq goal just extended. Returns the updated store (discharged constraints
// dropped, live ones re-normalized) and false when some constraint is
// violated, which fails the whole state.
func verify(store Store, s Subst) (Store, bool) {
	next := make(Store, 0, len(store))
	for _, c := range store {
		cur := s
		var added []Binding
		ok := true
		for _, p := range c {
			var a2 []Binding
			cur, a2, ok = unify(VarTerm(p.Var, AnyType), p.Term, cur, added)
			if !ok {
				break
			}
			added = a2
		}
		switch {
		case !ok:
			// discharged
		case len(added) == 0:
			return nil, false
		default:
			next = next.insert(newConstraint(added))
		}
	}
	return next, true
}
