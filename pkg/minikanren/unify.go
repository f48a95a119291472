package minikanren

// Binding records one extension a successful unification made, in the
// order performed. The constraint verifier replays these to re-derive a
// constraint's normalized form.
type Binding struct {
	Var  VarID
	Term Term
}

// Unify extends s until a and b are structurally equal, or fails. It
// returns the extended substitution and the ordered list of bindings it
// added; on failure it returns the original substitution and a nil list.
func Unify(a, b Term, s Subst) (Subst, []Binding, bool) {
	return unify(a, b, s, nil)
}

func unify(a, b Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	a = Walk(a, s)
	b = Walk(b, s)

	switch {
	case a.IsVar() && b.IsVar():
		if a.VarID() == b.VarID() {
			return s, added, true
		}
		return unifyVars(a, b, s, added)
	case a.IsVar():
		return bindVar(a, b, s, added)
	case b.IsVar():
		return bindVar(b, a, s, added)
	case a.IsType() || b.IsType():
		return unifyTypeTerm(a, b, s, added)
	case a.IsNull() && b.IsNull():
		return s, added, true
	case a.IsValue() && b.IsValue():
		if a.Int() == b.Int() {
			return s, added, true
		}
		return s, nil, false
	case a.IsStr() && b.IsStr():
		if a.Text() == b.Text() {
			return s, added, true
		}
		return s, nil, false
	case a.IsCons() && b.IsCons():
		s2, added2, ok := unify(a.Head(), b.Head(), s, added)
		if !ok {
			return s, nil, false
		}
		s3, added3, ok := unify(a.Tail(), b.Tail(), s2, added2)
		if !ok {
			return s, nil, false
		}
		return s3, added3, true
	default:
		return s, nil, false
	}
}

// unifyVars unifies two distinct variables: the smaller identifier is kept
// as the representative. The larger is bound to a Var term naming the
// representative, carrying the meet of both type bounds; if that meet
// narrows below Any, the representative is additionally rebound to itself
// tagged with the narrower bound so the bound is observable through either
// variable.
func unifyVars(a, b Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	lo, hi := a, b
	if hi.VarID() < lo.VarID() {
		lo, hi = hi, lo
	}
	t, ok := unifyType(lo.TypeBound(), hi.TypeBound())
	if !ok {
		return s, nil, false
	}
	rhs := VarTerm(lo.VarID(), t)
	s = s.Bind(hi.VarID(), rhs)
	added = append(added, Binding{Var: hi.VarID(), Term: rhs})
	if t != AnyType {
		self := VarTerm(lo.VarID(), t)
		s = s.Bind(lo.VarID(), self)
		added = append(added, Binding{Var: lo.VarID(), Term: self})
	}
	return s, added, true
}

// bindVar unifies variable v against a walked non-Var term x.
func bindVar(v, x Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	if x.IsType() {
		return unifyTypeTerm(v, x, s, added)
	}
	switch v.TypeBound() {
	case AnyType:
		s = s.Bind(v.VarID(), x)
		return s, append(added, Binding{Var: v.VarID(), Term: x}), true
	case NumberType:
		if !x.IsValue() {
			return s, nil, false
		}
	case StringType:
		if !x.IsStr() {
			return s, nil, false
		}
	}
	s = s.Bind(v.VarID(), x)
	return s, append(added, Binding{Var: v.VarID(), Term: x}), true
}

// unifyTypeTerm handles every pairing where at least one side, after
// walking, is a Type sentinel.
func unifyTypeTerm(a, b Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	switch {
	case a.IsType() && b.IsType():
		// Two sentinels unify only when identical; ANY does not absorb
		// NUM or STR in sentinel position.
		if a.TypeBound() == b.TypeBound() {
			return s, added, true
		}
		return s, nil, false
	case a.IsVar() && b.IsType():
		return bindVarType(a, b, s, added)
	case b.IsVar() && a.IsType():
		return bindVarType(b, a, s, added)
	case a.IsType():
		return typeMatchesAtom(a, b, s, added)
	default:
		return typeMatchesAtom(b, a, s, added)
	}
}

// bindVarType unifies a variable against a walked Type sentinel: a
// matching bound succeeds unchanged, an untyped variable is promoted to
// the sentinel's bound, and everything else fails — a variable already
// narrowed to Number or String does not unify with the ANY sentinel.
func bindVarType(v, typ Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	switch {
	case typ.TypeBound() == v.TypeBound():
		return s, added, true
	case v.TypeBound() == AnyType:
		promoted := VarTerm(v.VarID(), typ.TypeBound())
		s = s.Bind(v.VarID(), promoted)
		return s, append(added, Binding{Var: v.VarID(), Term: promoted}), true
	default:
		return s, nil, false
	}
}

// typeMatchesAtom unifies a walked Type sentinel against a non-Var term.
func typeMatchesAtom(typ, x Term, s Subst, added []Binding) (Subst, []Binding, bool) {
	switch typ.TypeBound() {
	case AnyType:
		return s, added, true
	case NumberType:
		if x.IsValue() {
			return s, added, true
		}
		return s, nil, false
	case StringType:
		if x.IsStr() {
			return s, added, true
		}
		return s, nil, false
	default:
		return s, nil, false
	}
}
