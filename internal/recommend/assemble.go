package recommend

import "github.com/amirSA5/tiny-home-guide/internal/domain"

// Build assembles the full recommendation payload for a canonical profile:
// scored layouts, zone-filtered furniture, matching arrangements, and the
// pass-through reference collections. It is a pure function of the profile
// and the catalog snapshot and cannot fail; empty layout or furniture sets
// are valid outcomes, not errors.
func (e *Engine) Build(p domain.SpaceProfile) domain.Recommendations {
	layouts := e.MatchLayouts(p)
	furniture := e.EligibleFurniture(p)
	arrangements := e.EligibleArrangements(p)

	return domain.Recommendations{
		Profile: p,
		Area:    p.Area(),
		Stats: domain.Stats{
			LayoutCount:           len(layouts),
			FurnitureCount:        len(furniture),
			DesignTipsCount:       len(e.catalog.DesignTips),
			ArrangementIdeasCount: len(arrangements),
			MinimalismCount:       len(e.catalog.Minimalism),
			PlannerSections:       e.catalog.Planner.Sections(),
		},
		Layouts:          layouts,
		Furniture:        furniture,
		DesignTips:       e.catalog.DesignTips,
		ArrangementIdeas: arrangements,
		Minimalism:       e.catalog.Minimalism,
		ProjectPlanner:   e.catalog.Planner,
	}
}
