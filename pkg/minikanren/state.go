package minikanren

// State is the engine's unit of progress: a substitution, a disequality
// constraint store, the counter that issues fresh variable identifiers,
// and the number of cooperative suspensions taken along this derivation.
// Depth is a scheduling hint only; it carries no logical meaning. States
// are value-like — every transition produces a new State; nothing is
// mutated in place.
type State struct {
	subst   Subst
	store   Store
	counter VarID
	depth   int
}

func emptyState() State {
	return State{subst: emptySubst(), counter: 0}
}

// fresh allocates n new variables from s's counter, returning the
// extended state and the allocated terms in ascending identifier order.
func (s State) fresh(n int) (State, []Term) {
	vars := make([]Term, n)
	id := s.counter
	for i := 0; i < n; i++ {
		if int64(id)+1 > int64(maxVarID) {
			fatalf("variable counter overflow: exceeded %d live variables", maxVarID)
		}
		vars[i] = VarTerm(id, AnyType)
		id++
	}
	s.counter = id
	return s, vars
}

func (s State) withSubst(sub Subst) State {
	s.subst = sub
	return s
}

func (s State) withStore(store Store) State {
	s.store = store
	return s
}
