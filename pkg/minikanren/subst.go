package minikanren

// Subst is a partial function from variables to terms. The engine performs
// no occurs check, so walking any variable through a Subst built exclusively
// via Bind is guaranteed to terminate only as long as client goals never
// bind a variable to a term containing itself.
type Subst struct {
	bindings map[VarID]Term
}

func emptySubst() Subst {
	return Subst{bindings: map[VarID]Term{}}
}

// Bind returns a new substitution extending s with v ↦ term, leaving s
// itself unmodified.
func (s Subst) Bind(v VarID, term Term) Subst {
	next := make(map[VarID]Term, len(s.bindings)+1)
	for k, val := range s.bindings {
		next[k] = val
	}
	next[v] = term
	return Subst{bindings: next}
}

func (s Subst) lookup(v VarID) (Term, bool) {
	t, ok := s.bindings[v]
	return t, ok
}

// Walk resolves t to the head of its binding chain: if t is a bound
// variable it follows the chain, otherwise it returns t unchanged. A
// variable bound to itself (the type-narrowing self-binding Unify
// installs when a Var-Var or Var-Type unification narrows a type bound)
// terminates the walk, returning the self-binding's narrower-typed term
// rather than the term the caller started with.
func Walk(t Term, s Subst) Term {
	for t.IsVar() {
		bound, ok := s.lookup(t.VarID())
		if !ok {
			return t
		}
		if bound.IsVar() && bound.VarID() == t.VarID() {
			return bound
		}
		t = bound
	}
	return t
}

// DeepWalk walks t, then recursively deep-walks the head and tail of any
// Cons, so the result contains no internally-resolvable variable.
func DeepWalk(t Term, s Subst) Term {
	t = Walk(t, s)
	if t.IsCons() {
		return Cons(DeepWalk(t.Head(), s), DeepWalk(t.Tail(), s))
	}
	return t
}
