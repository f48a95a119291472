package minikanren

// Query drives a goal tree built from k fresh query variables, retaining
// the partially-consumed stream between calls to Next so pulling the next
// answer costs only the work to produce it.
type Query struct {
	k  int
	it *Iterator
}

// NewQuery allocates k fresh variables from an empty state, calls build
// with them to obtain the root goal, and evaluates it to get the root
// stream.
func NewQuery(k int, build func(vars []Term) Goal) *Query {
	s, vars := emptyState().fresh(k)
	stream := build(vars).call(s)
	return &Query{k: k, it: newIterator(stream)}
}

// Next pulls one more answer, or reports exhaustion.
func (q *Query) Next() (Answer, bool) {
	st, ok := q.it.Next()
	if !ok {
		return Answer{}, false
	}
	return reifyAnswer(st, q.k), true
}

// Run returns at most n answers for a k-ary query.
func Run(n, k int, build func(vars []Term) Goal) []Answer {
	q := NewQuery(k, build)
	out := make([]Answer, 0, n)
	for len(out) < n {
		a, ok := q.Next()
		if !ok {
			break
		}
		out = append(out, a)
	}
	return out
}

// RunAll returns every answer for a k-ary query. The goal must denote a
// finite relation, or this never returns.
func RunAll(k int, build func(vars []Term) Goal) []Answer {
	q := NewQuery(k, build)
	var out []Answer
	for {
		a, ok := q.Next()
		if !ok {
			return out
		}
		out = append(out, a)
	}
}

// Run1 through Run8 and RunAll1 through RunAll8 are typed conveniences
// over Run/RunAll for the common fixed arities.

func Run1(n int, build func(a Term) Goal) []Answer {
	return Run(n, 1, func(v []Term) Goal { return build(v[0]) })
}

func Run2(n int, build func(a, b Term) Goal) []Answer {
	return Run(n, 2, func(v []Term) Goal { return build(v[0], v[1]) })
}

func Run3(n int, build func(a, b, c Term) Goal) []Answer {
	return Run(n, 3, func(v []Term) Goal { return build(v[0], v[1], v[2]) })
}

func Run4(n int, build func(a, b, c, d Term) Goal) []Answer {
	return Run(n, 4, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3]) })
}

func Run5(n int, build func(a, b, c, d, e Term) Goal) []Answer {
	return Run(n, 5, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3], v[4]) })
}

func Run6(n int, build func(a, b, c, d, e, g Term) Goal) []Answer {
	return Run(n, 6, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3], v[4], v[5]) })
}

func Run7(n int, build func(a, b, c, d, e, g, h Term) Goal) []Answer {
	return Run(n, 7, func(v []Term) Goal {
		return build(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
	})
}

func Run8(n int, build func(a, b, c, d, e, g, h, i Term) Goal) []Answer {
	return Run(n, 8, func(v []Term) Goal {
		return build(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
	})
}

func RunAll1(build func(a Term) Goal) []Answer {
	return RunAll(1, func(v []Term) Goal { return build(v[0]) })
}

func RunAll2(build func(a, b Term) Goal) []Answer {
	return RunAll(2, func(v []Term) Goal { return build(v[0], v[1]) })
}

func RunAll3(build func(a, b, c Term) Goal) []Answer {
	return RunAll(3, func(v []Term) Goal { return build(v[0], v[1], v[2]) })
}

func RunAll4(build func(a, b, c, d Term) Goal) []Answer {
	return RunAll(4, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3]) })
}

func RunAll5(build func(a, b, c, d, e Term) Goal) []Answer {
	return RunAll(5, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3], v[4]) })
}

func RunAll6(build func(a, b, c, d, e, g Term) Goal) []Answer {
	return RunAll(6, func(v []Term) Goal { return build(v[0], v[1], v[2], v[3], v[4], v[5]) })
}

func RunAll7(build func(a, b, c, d, e, g, h Term) Goal) []Answer {
	return RunAll(7, func(v []Term) Goal {
		return build(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
	})
}

func RunAll8(build func(a, b, c, d, e, g, h, i Term) Goal) []Answer {
	return RunAll(8, func(v []Term) Goal {
		return build(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
	})
}
