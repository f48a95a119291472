package minikanren

// Stream is the lazy result of evaluating a Goal against a State: a batch
// of already-realized states (mature) and a batch of pending suspensions
// (immature), each of which produces another Stream when invoked. Streams
// are never forced eagerly; only the pull iterator drives them forward.
type Stream struct {
	mature   []State
	immature []func() Stream
}

var emptyStream = Stream{}

func single(s State) Stream {
	return Stream{mature: []State{s}}
}

// appendStream concatenates two streams: mature-of-a then mature-of-b,
// immature-of-a then immature-of-b.
func appendStream(a, b Stream) Stream {
	if len(a.mature) == 0 && len(a.immature) == 0 {
		return b
	}
	if len(b.mature) == 0 && len(b.immature) == 0 {
		return a
	}
	mature := make([]State, 0, len(a.mature)+len(b.mature))
	mature = append(mature, a.mature...)
	mature = append(mature, b.mature...)
	immature := make([]func() Stream, 0, len(a.immature)+len(b.immature))
	immature = append(immature, a.immature...)
	immature = append(immature, b.immature...)
	return Stream{mature: mature, immature: immature}
}

// mappend (bind) applies g to every mature state of in, concatenating the
// results, and lifts the immature continuations into new suspensions that
// bind g into the continuation.
func mappend(g Goal, in Stream) Stream {
	out := emptyStream
	for _, st := range in.mature {
		out = appendStream(out, g.call(st))
	}
	for _, k := range in.immature {
		k := k
		out = appendStream(out, Stream{immature: []func() Stream{
			func() Stream { return mappend(g, k()) },
		}})
	}
	return out
}

// Iterator pulls answers from a Stream one at a time, retaining the
// partially-consumed stream so that pulling the next answer costs only
// the work to produce it, not the whole remaining search.
type Iterator struct {
	cur Stream
}

func newIterator(s Stream) *Iterator {
	return &Iterator{cur: s}
}

// Next drains the current mature batch first; when it is empty, it
// promotes the next immature suspension into a stream and merges it. This
// round-robins among branches that suspend so an infinite left branch
// cannot starve a productive right branch.
func (it *Iterator) Next() (State, bool) {
	for {
		if len(it.cur.mature) > 0 {
			st := it.cur.mature[0]
			it.cur.mature = it.cur.mature[1:]
			return st, true
		}
		if len(it.cur.immature) == 0 {
			return State{}, false
		}
		k := it.cur.immature[0]
		rest := it.cur.immature[1:]
		promoted := k()
		immature := make([]func() Stream, 0, len(rest)+len(promoted.immature))
		immature = append(immature, rest...)
		immature = append(immature, promoted.immature...)
		it.cur = Stream{mature: promoted.mature, immature: immature}
	}
}
