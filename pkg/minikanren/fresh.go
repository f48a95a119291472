package minikanren

// freshGoal introduces k fresh variables from the enclosing state's
// counter and calls f once per state to build the child goal. Fresh does
// not memoize its child goal across states: the same Fresh node can be
// evaluated against states with diverging counters (notably Both's right
// operand via mappend), and a memoized child would capture the variable
// identifiers from whichever state reached it first.
type freshGoal struct {
	k int
	f func(vars []Term) Goal
}

// Fresh allocates k new variables and calls f with them to build the
// child goal, which is then evaluated against the extended state. k must
// be in 0..8.
func Fresh(k int, f func(vars []Term) Goal) Goal {
	return freshGoal{k: k, f: f}
}

func (g freshGoal) call(s State) Stream {
	s2, vars := s.fresh(g.k)
	return g.f(vars).call(s2)
}

// Fresh1 through Fresh8 are typed conveniences over Fresh for the common
// fixed arities, avoiding slice indexing at call sites.

func Fresh1(f func(a Term) Goal) Goal {
	return Fresh(1, func(v []Term) Goal { return f(v[0]) })
}

func Fresh2(f func(a, b Term) Goal) Goal {
	return Fresh(2, func(v []Term) Goal { return f(v[0], v[1]) })
}

func Fresh3(f func(a, b, c Term) Goal) Goal {
	return Fresh(3, func(v []Term) Goal { return f(v[0], v[1], v[2]) })
}

func Fresh4(f func(a, b, c, d Term) Goal) Goal {
	return Fresh(4, func(v []Term) Goal { return f(v[0], v[1], v[2], v[3]) })
}

func Fresh5(f func(a, b, c, d, e Term) Goal) Goal {
	return Fresh(5, func(v []Term) Goal { return f(v[0], v[1], v[2], v[3], v[4]) })
}

func Fresh6(f func(a, b, c, d, e, g Term) Goal) Goal {
	return Fresh(6, func(v []Term) Goal { return f(v[0], v[1], v[2], v[3], v[4], v[5]) })
}

func Fresh7(f func(a, b, c, d, e, g, h Term) Goal) Goal {
	return Fresh(7, func(v []Term) Goal { return f(v[0], v[1], v[2], v[3], v[4], v[5], v[6]) })
}

func Fresh8(f func(a, b, c, d, e, g, h, i Term) Goal) Goal {
	return Fresh(8, func(v []Term) Goal {
		return f(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
	})
}

// yieldMemo holds a Yield node's forced child goal. The engine is
// single-threaded, so a plain bool guard is sufficient — no locking.
type yieldMemo struct {
	thunk  func() Goal
	cached Goal
	forced bool
}

type yieldGoal struct {
	memo *yieldMemo
}

// Yield defers invoking f until the scheduler resumes this branch; the
// resulting goal is memoized so repeated resumption does not re-build it.
// Every recursive relation call must be guarded by Yield or the search
// diverges before emitting an answer.
func Yield(f func() Goal) Goal {
	return yieldGoal{memo: &yieldMemo{thunk: f}}
}

func (g yieldGoal) call(s State) Stream {
	return Stream{immature: []func() Stream{
		func() Stream {
			if !g.memo.forced {
				g.memo.cached = g.memo.thunk()
				g.memo.forced = true
			}
			s.depth++
			return g.memo.cached.call(s)
		},
	}}
}
