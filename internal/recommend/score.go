package recommend

import (
	"math"
	"sort"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

// Score caps per factor; they sum to 100.
const (
	maxZoneScore        = 40
	maxAreaScore        = 20
	categoricalAxis     = 10 // type, occupants, mobility
	heightLoftAxis      = 5  // height bound, loft requirement
	undeclaredZoneScore = 10
	undeclaredAreaScore = 10
)

// MatchLayouts scores the eligible layouts and returns them sorted by
// descending score. Ties keep catalog order. The ranking is a heuristic,
// not an optimality guarantee; eligibility is decided before scoring and
// never overridden by it.
func (e *Engine) MatchLayouts(p domain.SpaceProfile) []domain.MatchedLayout {
	out := make([]domain.MatchedLayout, 0, len(e.catalog.Layouts))
	for _, lp := range e.catalog.Layouts {
		if !layoutEligible(p, lp) {
			continue
		}
		out = append(out, domain.MatchedLayout{
			LayoutPattern: lp,
			MatchScore:    scoreLayout(p, lp),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out
}

func scoreLayout(p domain.SpaceProfile, lp domain.LayoutPattern) int {
	score := zoneScore(p, lp) + areaScore(p, lp) + categoricalScore(p, lp) + heightLoftScore(p, lp)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// zoneScore scales with the share of the layout's declared zones the
// profile covers. Layouts that declare no zones get a flat 10.
func zoneScore(p domain.SpaceProfile, lp domain.LayoutPattern) int {
	zones := lp.RecommendedFor.Zones
	if !zones.Declared() {
		return undeclaredZoneScore
	}
	matched := zones.Intersection(p.Zones)
	return int(math.Round(maxZoneScore * float64(matched) / float64(len(zones))))
}

// areaScore falls off linearly with distance between the profile area and
// the layout's minArea, hitting zero at 20 m². Layouts with no minArea get
// a flat 10.
func areaScore(p domain.SpaceProfile, lp domain.LayoutPattern) int {
	if !lp.MinArea.Declared() {
		return undeclaredAreaScore
	}
	dist := math.Abs(p.Area() - float64(lp.MinArea))
	return int(math.Round(maxAreaScore - math.Min(dist, maxAreaScore)))
}

// categoricalScore rewards specificity: a declared type/occupants list that
// contains the profile value earns points, while an undeclared list passes
// eligibility but contributes nothing here. An absent mobility constraint
// counts as satisfied.
func categoricalScore(p domain.SpaceProfile, lp domain.LayoutPattern) int {
	rf := lp.RecommendedFor
	s := 0
	if rf.Type.Declared() && rf.Type.Allows(p.Type) {
		s += categoricalAxis
	}
	if rf.Occupants.Declared() && rf.Occupants.Allows(p.Occupants) {
		s += categoricalAxis
	}
	if rf.Mobility.Allows(p.Mobility) {
		s += categoricalAxis
	}
	return s
}

// heightLoftScore awards both halves when the constraints are satisfied or
// absent.
func heightLoftScore(p domain.SpaceProfile, lp domain.LayoutPattern) int {
	s := 0
	if !(p.Height > 0) || lp.RecommendedFor.MinHeight.Satisfied(p.Height) {
		s += heightLoftAxis
	}
	if !lp.RequiresLoft || p.Loft {
		s += heightLoftAxis
	}
	return s
}
