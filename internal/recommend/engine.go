package recommend

import (
	"github.com/amirSA5/tiny-home-guide/internal/catalog"
	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

// Engine filters and scores catalog entries against a canonical profile.
// The catalog is read-only; an Engine is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// EligibleLayouts returns the layout patterns the profile qualifies for,
// in catalog order.
func (e *Engine) EligibleLayouts(p domain.SpaceProfile) []domain.LayoutPattern {
	out := make([]domain.LayoutPattern, 0, len(e.catalog.Layouts))
	for _, lp := range e.catalog.Layouts {
		if layoutEligible(p, lp) {
			out = append(out, lp)
		}
	}
	return out
}

// EligibleFurniture returns furniture that fits at least one profile zone.
// Items with no declared zones fit any profile.
func (e *Engine) EligibleFurniture(p domain.SpaceProfile) []domain.FurnitureItem {
	out := make([]domain.FurnitureItem, 0, len(e.catalog.Furniture))
	for _, item := range e.catalog.Furniture {
		if item.Zones.AllowsAny(p.Zones) {
			out = append(out, item)
		}
	}
	return out
}

// EligibleArrangements returns zone arrangements whose criteria the profile
// meets, in catalog order.
func (e *Engine) EligibleArrangements(p domain.SpaceProfile) []domain.ZoneArrangement {
	out := make([]domain.ZoneArrangement, 0, len(e.catalog.Arrangements))
	for _, za := range e.catalog.Arrangements {
		if arrangementEligible(p, za) {
			out = append(out, za)
		}
	}
	return out
}

// layoutEligible checks every constraint axis of a layout pattern. Absent
// axes never disqualify. A non-positive profile height is treated as
// unknown rather than failing height bounds.
func layoutEligible(p domain.SpaceProfile, lp domain.LayoutPattern) bool {
	if !lp.MinArea.Satisfied(p.Area()) {
		return false
	}
	if p.Height > 0 && !lp.RecommendedFor.MinHeight.Satisfied(p.Height) {
		return false
	}
	if lp.RequiresLoft && !p.Loft {
		return false
	}
	if !lp.RecommendedFor.Type.Allows(p.Type) {
		return false
	}
	if !lp.RecommendedFor.Occupants.Allows(p.Occupants) {
		return false
	}
	if !lp.RecommendedFor.Mobility.Allows(p.Mobility) {
		return false
	}
	return lp.RecommendedFor.Zones.AllowsAny(p.Zones)
}

func arrangementEligible(p domain.SpaceProfile, za domain.ZoneArrangement) bool {
	if p.Height > 0 && !za.Criteria.MinHeight.Satisfied(p.Height) {
		return false
	}
	if za.Criteria.RequiresLoft && !p.Loft {
		return false
	}
	if !za.Criteria.Mobility.Allows(p.Mobility) {
		return false
	}
	return za.Criteria.Zones.AllowsAny(p.Zones)
}
