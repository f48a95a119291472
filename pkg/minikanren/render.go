package minikanren

import (
	"fmt"
	"strings"
)

// Render is the reference textual form for a Term: variables as _n,
// integer and string atoms literally, Null as (), type sentinels as
// #<any|number|string>, and Cons chains in list notation with a dot
// before an improper tail. This is the only format the test suite
// compares against.
func Render(t Term) string {
	switch {
	case t.IsCons():
		return "(" + renderListBody(t) + ")"
	default:
		return t.String()
	}
}

func renderListBody(t Term) string {
	var parts []string
	for t.IsCons() {
		parts = append(parts, Render(t.Head()))
		t = t.Tail()
	}
	if t.IsNull() {
		return strings.Join(parts, " ")
	}
	return strings.Join(parts, " ") + " . " + Render(t)
}

// RenderConstraint renders one disequality constraint as a parenthesized,
// space-joined list of (_v . term) pairs.
func RenderConstraint(c Constraint) string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = fmt.Sprintf("(_%d . %s)", p.Var, Render(p.Term))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// RenderAnswer renders an Answer as its space-joined terms, followed by
// " : " and the comma-joined constraints when any are present.
func RenderAnswer(a Answer) string {
	terms := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = Render(t)
	}
	body := strings.Join(terms, " ")
	if len(a.Constraints) == 0 {
		return body
	}
	cs := make([]string, len(a.Constraints))
	for i, c := range a.Constraints {
		cs[i] = RenderConstraint(c)
	}
	return body + " : " + strings.Join(cs, ", ")
}
