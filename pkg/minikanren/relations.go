package minikanren

// Appendo relates three lists such that a ++ b == ab. Every recursive
// call is guarded by Yield so the search stream stays productive.
func Appendo(a, b, ab Term) Goal {
	baseCase := Both(Eq(a, Null), Eq(b, ab))
	recurCase := Fresh3(func(h, t, rt Term) Goal {
		return All(
			Eq(a, Cons(h, t)),
			Eq(ab, Cons(h, rt)),
			Yield(func() Goal { return Appendo(t, b, rt) }),
		)
	})
	return Either(baseCase, recurCase)
}

// Containso relates list and x such that x occurs somewhere in list.
func Containso(list, x Term) Goal {
	return Fresh2(func(h, t Term) Goal {
		return All(
			Eq(list, Cons(h, t)),
			Either(
				Eq(h, x),
				Yield(func() Goal { return Containso(t, x) }),
			),
		)
	})
}

// NotEmptyo relates list to any non-empty list shape.
func NotEmptyo(list Term) Goal {
	return Fresh2(func(h, t Term) Goal {
		return Eq(list, Cons(h, t))
	})
}

// AtLeastTwoo relates list to any list shape with two or more elements.
func AtLeastTwoo(list Term) Goal {
	return Fresh3(func(h1, h2, t Term) Goal {
		return Eq(list, Cons(h1, Cons(h2, t)))
	})
}
