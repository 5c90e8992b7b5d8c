package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirSA5/tiny-home-guide/internal/catalog"
	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

func defaultEngine() *Engine {
	return NewEngine(catalog.Default())
}

func layoutIDs(layouts []domain.LayoutPattern) []string {
	ids := make([]string, 0, len(layouts))
	for _, lp := range layouts {
		ids = append(ids, lp.ID)
	}
	return ids
}

func TestEligibleLayouts_LoftProfile(t *testing.T) {
	t.Parallel()

	p, err := Normalize(validProfile()) // 4x3, height 3, tiny_house, solo, sleep+work, mobile, loft
	require.NoError(t, err)

	ids := layoutIDs(defaultEngine().EligibleLayouts(p))

	assert.Contains(t, ids, "loft-bed-stairs-desk")
	assert.Contains(t, ids, "loft-over-desk-split")
	// family-only and fixed-only layouts must be out
	assert.NotContains(t, ids, "bunk-bed-family-corner")
	assert.NotContains(t, ids, "u-kitchen-fixed")
}

func TestEligibleLayouts_NoLoftExcludesLoftPatterns(t *testing.T) {
	t.Parallel()

	p, err := Normalize(domain.SpaceProfile{
		Length:    4,
		Width:     2,
		Type:      domain.TypeVan,
		Occupants: domain.OccupantsCouple,
		Zones:     []string{domain.ZoneSleep, domain.ZoneDining},
	})
	require.NoError(t, err)

	ids := layoutIDs(defaultEngine().EligibleLayouts(p))

	assert.NotContains(t, ids, "loft-bed-stairs-desk")
	assert.Contains(t, ids, "sofa-bed-fold-table")
}

func TestEligibleLayouts_MinAreaBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	// sofa-bed-fold-table declares minArea 8; an area of exactly 8 qualifies.
	p, err := Normalize(domain.SpaceProfile{
		Length:    4,
		Width:     2,
		Type:      domain.TypeVan,
		Occupants: domain.OccupantsCouple,
		Zones:     []string{domain.ZoneSleep},
	})
	require.NoError(t, err)
	require.Equal(t, 8.0, p.Area())

	assert.Contains(t, layoutIDs(defaultEngine().EligibleLayouts(p)), "sofa-bed-fold-table")

	p.Width = 1.9 // area 7.6, just under the bound
	assert.NotContains(t, layoutIDs(defaultEngine().EligibleLayouts(p)), "sofa-bed-fold-table")
}

func TestEligibleLayouts_AddingZoneNeverShrinksEligibility(t *testing.T) {
	t.Parallel()

	base, err := Normalize(validProfile())
	require.NoError(t, err)

	before := layoutIDs(defaultEngine().EligibleLayouts(base))

	for _, extra := range []string{domain.ZoneDining, domain.ZoneKitchen, domain.ZonePet, domain.ZoneStorage} {
		grown := base
		grown.Zones = append(append([]string(nil), base.Zones...), extra)
		after := layoutIDs(defaultEngine().EligibleLayouts(grown))
		for _, id := range before {
			assert.Contains(t, after, id, "adding zone %q dropped layout %q", extra, id)
		}
	}
}

func TestEligibleLayouts_UndeclaredAxesNeverDisqualify(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(catalog.Catalog{
		Layouts: []domain.LayoutPattern{
			{ID: "unconstrained", Title: "anything goes"},
		},
		Furniture: catalog.Default().Furniture,
	})
	require.NoError(t, err)

	p, err := Normalize(domain.SpaceProfile{
		Length:    2,
		Width:     1.5,
		Type:      domain.TypeStudio,
		Occupants: domain.OccupantsFamily,
		Zones:     []string{domain.ZonePet},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"unconstrained"}, layoutIDs(NewEngine(cat).EligibleLayouts(p)))
}

func TestEligibleFurniture(t *testing.T) {
	t.Parallel()

	p, err := Normalize(domain.SpaceProfile{
		Length:    4,
		Width:     3,
		Type:      domain.TypeCabin,
		Occupants: domain.OccupantsSolo,
		Zones:     []string{domain.ZoneSleep},
	})
	require.NoError(t, err)

	items := defaultEngine().EligibleFurniture(p)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	assert.Contains(t, ids, "stairs-with-drawers")  // zones include sleep
	assert.NotContains(t, ids, "wall-mounted-desk") // work only
	assert.NotContains(t, ids, "pet-corner-unit")   // pet only
}

func TestEligibleFurniture_EmptyZonesFitsEverywhere(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(catalog.Catalog{
		Layouts: catalog.Default().Layouts,
		Furniture: []domain.FurnitureItem{
			{ID: "universal-stool", Name: "Folding stool"},
			{ID: "sleep-only", Name: "Bed wedge", Zones: domain.Membership{domain.ZoneSleep}},
		},
	})
	require.NoError(t, err)
	engine := NewEngine(cat)

	for _, zones := range [][]string{
		{domain.ZoneSleep},
		{domain.ZoneKitchen},
		{domain.ZonePet, domain.ZoneEntry},
	} {
		p, err := Normalize(domain.SpaceProfile{
			Length: 3, Width: 3,
			Type: domain.TypeStudio, Occupants: domain.OccupantsSolo,
			Zones: zones,
		})
		require.NoError(t, err)

		items := engine.EligibleFurniture(p)
		ids := make([]string, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		assert.Contains(t, ids, "universal-stool", "zones=%v", zones)
		if p.HasZone(domain.ZoneSleep) {
			assert.Contains(t, ids, "sleep-only")
		} else {
			assert.NotContains(t, ids, "sleep-only")
		}
	}
}

func TestEligibleArrangements(t *testing.T) {
	t.Parallel()

	p, err := Normalize(validProfile())
	require.NoError(t, err)

	arr := defaultEngine().EligibleArrangements(p)
	ids := make([]string, 0, len(arr))
	for _, za := range arr {
		ids = append(ids, za.ID)
	}

	assert.Contains(t, ids, "loft-over-desk")
	assert.Contains(t, ids, "loft-over-kitchen")
	assert.NotContains(t, ids, "split-sleep-lounge")      // fixed-only
	assert.NotContains(t, ids, "pet-nook-under-stairs")   // no zone overlap
	assert.NotContains(t, ids, "galley-kitchen-wet-wall") // no zone overlap
}

func TestEligibleArrangements_NoCriteriaZonesMatchesAnyProfile(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(catalog.Catalog{
		Layouts:   catalog.Default().Layouts,
		Furniture: catalog.Default().Furniture,
		Arrangements: []domain.ZoneArrangement{
			{ID: "open-plan", Title: "Open plan", Detail: "No constraints."},
		},
	})
	require.NoError(t, err)

	p, err := Normalize(domain.SpaceProfile{
		Length: 3, Width: 2,
		Type: domain.TypeVan, Occupants: domain.OccupantsSolo,
		Zones: []string{domain.ZoneEntry},
	})
	require.NoError(t, err)

	arr := NewEngine(cat).EligibleArrangements(p)
	require.Len(t, arr, 1)
	assert.Equal(t, "open-plan", arr[0].ID)
}
