// Package catalog holds the static reference collections the planner serves
// from: layout patterns, furniture, zone arrangements, design tips,
// minimalism guides, and the project planner template. Collections are
// loaded once at startup and never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

// Catalog is an immutable snapshot of all reference collections.
// Callers must not modify the returned slices.
type Catalog struct {
	Layouts      []domain.LayoutPattern   `json:"layouts"`
	Furniture    []domain.FurnitureItem   `json:"furniture"`
	Arrangements []domain.ZoneArrangement `json:"arrangements"`
	DesignTips   []domain.DesignTip       `json:"designTips"`
	Minimalism   []domain.MinimalismGuide `json:"minimalism"`
	Planner      domain.ProjectPlanner    `json:"projectPlanner"`
}

// New validates a catalog snapshot. Empty matchable collections mean the
// process has nothing useful to serve, so we fail fast at startup instead
// of silently returning empty recommendation sets.
func New(c Catalog) (*Catalog, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Catalog) validate() error {
	if len(c.Layouts) == 0 {
		return fmt.Errorf("catalog unavailable: no layout patterns")
	}
	if len(c.Furniture) == 0 {
		return fmt.Errorf("catalog unavailable: no furniture items")
	}
	seen := make(map[string]struct{}, len(c.Layouts))
	for _, lp := range c.Layouts {
		if lp.ID == "" {
			return fmt.Errorf("catalog unavailable: layout pattern without id")
		}
		if _, dup := seen[lp.ID]; dup {
			return fmt.Errorf("catalog unavailable: duplicate layout id %q", lp.ID)
		}
		seen[lp.ID] = struct{}{}
	}
	return nil
}
