package domain

// Membership is an optional list constraint on a categorical axis.
// An empty (or absent) list is the unconstrained variant: it allows
// every value. A non-empty list allows only the listed values.
type Membership []string

// Declared reports whether the axis carries a constraint at all.
func (m Membership) Declared() bool { return len(m) > 0 }

// Allows reports whether v satisfies the constraint.
// Unconstrained allows everything.
func (m Membership) Allows(v string) bool {
	if len(m) == 0 {
		return true
	}
	for _, s := range m {
		if s == v {
			return true
		}
	}
	return false
}

// AllowsAny reports whether at least one of vs satisfies the constraint.
// Intersection semantics, not full coverage.
func (m Membership) AllowsAny(vs []string) bool {
	if len(m) == 0 {
		return true
	}
	for _, v := range vs {
		for _, s := range m {
			if s == v {
				return true
			}
		}
	}
	return false
}

// Intersection counts how many constraint entries appear in vs.
func (m Membership) Intersection(vs []string) int {
	n := 0
	for _, s := range m {
		for _, v := range vs {
			if s == v {
				n++
				break
			}
		}
	}
	return n
}

// MinValue is an optional lower bound. Zero (or absent in JSON) is the
// unconstrained variant: every value satisfies it.
type MinValue float64

// Declared reports whether the bound carries a constraint at all.
func (m MinValue) Declared() bool { return m > 0 }

// Satisfied reports whether v meets the bound (inclusive).
func (m MinValue) Satisfied(v float64) bool {
	return m <= 0 || v >= float64(m)
}
