package minikanren

import "testing"

func stateWithCounter(n VarID) State {
	s := emptyState()
	s.counter = n
	return s
}

func TestAppendStreamOrder(t *testing.T) {
	a := single(stateWithCounter(1))
	b := single(stateWithCounter(2))
	out := appendStream(a, b)
	if len(out.mature) != 2 || out.mature[0].counter != 1 || out.mature[1].counter != 2 {
		t.Fatalf("appendStream did not preserve a-before-b order: %+v", out.mature)
	}
}

func TestIteratorDrainsMatureBeforeImmature(t *testing.T) {
	s := Stream{
		mature: []State{stateWithCounter(1)},
		immature: []func() Stream{
			func() Stream { return single(stateWithCounter(2)) },
		},
	}
	it := newIterator(s)

	st, ok := it.Next()
	if !ok || st.counter != 1 {
		t.Fatalf("expected mature state first, got %+v ok=%v", st, ok)
	}
	st, ok = it.Next()
	if !ok || st.counter != 2 {
		t.Fatalf("expected promoted immature state second, got %+v ok=%v", st, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected exhaustion")
	}
}

func TestIteratorRoundRobinsSuspendedBranches(t *testing.T) {
	// Two infinite branches, each producing one mature state per pull.
	// Without round-robin interleaving, the first branch would starve
	// the second forever.
	var branchA, branchB func() Stream
	branchA = func() Stream {
		return Stream{
			mature:   []State{stateWithCounter(100)},
			immature: []func() Stream{branchA},
		}
	}
	branchB = func() Stream {
		return Stream{
			mature:   []State{stateWithCounter(200)},
			immature: []func() Stream{branchB},
		}
	}

	s := appendStream(
		Stream{immature: []func() Stream{branchA}},
		Stream{immature: []func() Stream{branchB}},
	)
	it := newIterator(s)

	seenA, seenB := false, false
	for i := 0; i < 4; i++ {
		st, ok := it.Next()
		if !ok {
			t.Fatal("unexpected exhaustion")
		}
		if st.counter == 100 {
			seenA = true
		}
		if st.counter == 200 {
			seenB = true
		}
	}
	if !seenA || !seenB {
		t.Fatal("expected both branches to produce answers within the first few pulls")
	}
}

func TestMappendBindsEveryMatureState(t *testing.T) {
	g := goalFunc(func(s State) Stream {
		s.counter += 10
		return single(s)
	})
	in := Stream{mature: []State{stateWithCounter(1), stateWithCounter(2)}}
	out := mappend(g, in)
	if len(out.mature) != 2 || out.mature[0].counter != 11 || out.mature[1].counter != 12 {
		t.Fatalf("mappend did not apply g to every mature state: %+v", out.mature)
	}
}

func TestYieldIncrementsDepth(t *testing.T) {
	g := Yield(func() Goal { return goalFunc(single) })
	it := newIterator(g.call(emptyState()))
	st, ok := it.Next()
	if !ok {
		t.Fatal("expected the suspension to produce a state")
	}
	if st.depth != 1 {
		t.Fatalf("depth = %d after one suspension, want 1", st.depth)
	}
}
