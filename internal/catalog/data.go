package catalog

import "github.com/amirSA5/tiny-home-guide/internal/domain"

// Default returns the built-in catalog. It is used when no catalog file is
// configured and as the baseline for tests.
func Default() *Catalog {
	return &Catalog{
		Layouts:      defaultLayouts(),
		Furniture:    defaultFurniture(),
		Arrangements: defaultArrangements(),
		DesignTips:   defaultDesignTips(),
		Minimalism:   defaultMinimalism(),
		Planner:      defaultPlanner(),
	}
}

func defaultLayouts() []domain.LayoutPattern {
	return []domain.LayoutPattern{
		{
			ID:               "loft-bed-stairs-desk",
			Title:            "Loft bed + storage stairs + wall-mounted desk",
			Description:      "Raise the bed to create headroom underneath. Use stairs with drawers for storage and mount a compact desk on the wall.",
			RequiredFeatures: []string{"loft", "storage stairs", "wall-mounted desk"},
			Pros: []string{
				"Frees main floor for living",
				"Stairs double as storage",
				"Great for remote work setups",
			},
			Cons: []string{"Needs generous ceiling height", "Loft heat can be higher in summer"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeCabin, domain.TypeStudio},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneWork, domain.ZoneStorage},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple},
				MinHeight: 2.9,
			},
			MinArea:      12,
			RequiresLoft: true,
		},
		{
			ID:               "sofa-bed-fold-table",
			Title:            "Sofa-bed + fold-down dining table",
			Description:      "Use a quality sofa-bed as main seating and sleeping, with a fold-down table that only opens for meals or work.",
			RequiredFeatures: []string{"sofa-bed", "fold-down table", "sturdy wall backing"},
			Pros: []string{
				"Maximizes flexibility in a small footprint",
				"Fast to transition between modes",
				"Great for mobile layouts",
			},
			Cons: []string{"Daily bed setup required", "Fewer hidden storage options"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeStudio, domain.TypeVan, domain.TypeCabin},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneDining, domain.ZoneWork},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple},
			},
			MinArea: 8,
		},
		{
			ID:               "raised-platform-storage",
			Title:            "Raised platform bed with drawers",
			Description:      "Build a raised platform with pull-out drawers underneath for clothes, bedding and seasonal items.",
			RequiredFeatures: []string{"platform bed", "deep drawers", "ventilated base"},
			Pros: []string{
				"Adds significant hidden storage",
				"Keeps floor clear",
				"Easy to build in fixed cabins/studios",
			},
			Cons: []string{"Heavier build for mobile homes", "Harder to reconfigure later"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeCabin, domain.TypeStudio},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneStorage},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple, domain.OccupantsFamily},
			},
			MinArea: 10,
		},
		{
			ID:               "bunk-bed-family-corner",
			Title:            "Compact bunk bed + family corner",
			Description:      "Use bunk beds or a loft + lower bed combo to sleep multiple people while keeping a small shared sitting area.",
			RequiredFeatures: []string{"bunk or loft + lower bed", "guard rails", "ladder"},
			Pros: []string{
				"Sleeps multiple people",
				"Keeps a small lounge area intact",
				"Works in modest footprints",
			},
			Cons: []string{"Ladder safety for kids", "Limited standing height near bunks"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeCabin},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneDining, domain.ZoneStorage},
				Occupants: domain.Membership{domain.OccupantsFamily},
			},
			MinArea: 13,
		},
		{
			ID:               "galley-kitchen-mobile",
			Title:            "Galley kitchen + wet bath core",
			Description:      "Keep plumbing on one wall with a galley kitchen and compact wet bath across; ideal for mobile tiny homes.",
			RequiredFeatures: []string{"galley kitchen", "shared wet wall", "compact wet bath"},
			Pros: []string{
				"Simplifies plumbing runs",
				"Great for mobile builds",
				"Keeps floor open for circulation",
			},
			Cons: []string{"Limited counter depth near wet bath", "Can feel tight without windows"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeVan},
				Zones:     domain.Membership{domain.ZoneKitchen, domain.ZoneDining, domain.ZoneWork},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple},
				Mobility:  domain.Membership{domain.MobilityMobile},
			},
			MinArea: 9,
		},
		{
			ID:               "loft-over-entry",
			Title:            "Loft above entry with lounge below",
			Description:      "Place the loft bed above the entry or bath volume to free the main area for seating and dining.",
			RequiredFeatures: []string{"loft", "compact stairs or ladder", "skylight preferred"},
			Pros: []string{
				"Preserves main floor for daytime use",
				"Works well with tall windows",
				"Keeps circulation clear",
			},
			Cons: []string{"Requires tall ceiling", "Ladder can dominate entry if not tucked"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeCabin, domain.TypeStudio},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneDining, domain.ZoneStorage},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple},
				Mobility:  domain.Membership{domain.MobilityMobile, domain.MobilityFixed},
				MinHeight: 3,
			},
			MinArea:      10,
			RequiresLoft: true,
		},
		{
			ID:               "u-kitchen-fixed",
			Title:            "U-shaped kitchen + pocket door",
			Description:      "For fixed cabins and studios, use a compact U-kitchen with a pocket door to the bath; keep dining/work opposite.",
			RequiredFeatures: []string{"U-shaped kitchen", "pocket door", "ventilation"},
			Pros: []string{
				"Max counter space in small area",
				"Pocket door saves swing clearance",
				"Great for cooks",
			},
			Cons: []string{"Best in fixed builds (heavier)", "Less open sightline"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeCabin, domain.TypeStudio},
				Zones:     domain.Membership{domain.ZoneKitchen, domain.ZoneDining, domain.ZoneWork},
				Occupants: domain.Membership{domain.OccupantsCouple, domain.OccupantsFamily},
				Mobility:  domain.Membership{domain.MobilityFixed},
				MinHeight: 2.5,
			},
			MinArea: 14,
		},
		{
			ID:               "loft-over-desk-split",
			Title:            "Loft bed over workspace + sliding partition",
			Description:      "Use a loft bed over a desk and add a light sliding panel to separate work from sleep without losing light.",
			RequiredFeatures: []string{"loft", "desk under loft", "sliding panel"},
			Pros: []string{
				"Creates visual separation for work",
				"Maximizes vertical volume",
				"Great for remote workers",
			},
			Cons: []string{"Loft heat and headroom considerations", "Panel adds weight in mobile builds"},
			RecommendedFor: domain.RecommendedFor{
				Type:      domain.Membership{domain.TypeTinyHouse, domain.TypeCabin, domain.TypeStudio},
				Zones:     domain.Membership{domain.ZoneSleep, domain.ZoneWork},
				Occupants: domain.Membership{domain.OccupantsSolo, domain.OccupantsCouple},
				MinHeight: 3,
			},
			MinArea:      9,
			RequiresLoft: true,
		},
	}
}

func defaultFurniture() []domain.FurnitureItem {
	return []domain.FurnitureItem{
		{
			ID:           "wall-mounted-desk",
			Name:         "Wall-mounted folding desk",
			Category:     "desk",
			Style:        "fold_down",
			BestLocation: "Along a free wall or under a window.",
			Zones:        domain.Membership{domain.ZoneWork},
			Footprint:    &domain.Footprint{FoldedDepth: 10, OpenDepth: 60, Width: 90},
		},
		{
			ID:           "fold-down-table",
			Name:         "Fold-down dining / work table",
			Category:     "table",
			Style:        "fold_down",
			BestLocation: "Kitchen or living area wall.",
			Zones:        domain.Membership{domain.ZoneDining, domain.ZoneWork},
			Footprint:    &domain.Footprint{FoldedDepth: 8, OpenDepth: 70, Width: 100},
		},
		{
			ID:           "storage-ottoman",
			Name:         "Storage ottoman / bench",
			Category:     "seating",
			Style:        "storage_inside",
			BestLocation: "Next to sofa or at foot of bed.",
			Zones:        domain.Membership{domain.ZoneDining, domain.ZoneStorage},
			Footprint:    &domain.Footprint{OpenDepth: 40, Width: 90},
		},
		{
			ID:           "stairs-with-drawers",
			Name:         "Stairs with built-in drawers",
			Category:     "storage",
			Style:        "modular",
			BestLocation: "Accessing a loft bed or mezzanine.",
			Zones:        domain.Membership{domain.ZoneSleep, domain.ZoneStorage},
			Footprint:    &domain.Footprint{OpenDepth: 90, Width: 60},
		},
		{
			ID:           "pet-corner-unit",
			Name:         "Compact pet corner unit",
			Category:     "storage",
			Style:        "modular",
			BestLocation: "In a corner near the entrance or window.",
			Zones:        domain.Membership{domain.ZonePet},
			Footprint:    &domain.Footprint{OpenDepth: 50, Width: 50},
		},
	}
}

func defaultArrangements() []domain.ZoneArrangement {
	return []domain.ZoneArrangement{
		{
			ID:     "loft-over-desk",
			Title:  "Loft bed above workspace",
			Detail: "Place a lofted bed above a desk to give the main floor to living and dining. Keep 1.9m clearance below and add a task light on the underside.",
			Criteria: domain.ArrangementCriteria{
				Zones:        domain.Membership{domain.ZoneSleep, domain.ZoneWork},
				RequiresLoft: true,
				MinHeight:    2.8,
			},
		},
		{
			ID:     "galley-kitchen-wet-wall",
			Title:  "Galley kitchen along a wet wall",
			Detail: "Align sink, cooktop, and bath on one side to consolidate plumbing. Opposite wall can host fold-down dining or a sofa-bed.",
			Criteria: domain.ArrangementCriteria{
				Zones:    domain.Membership{domain.ZoneKitchen, domain.ZoneDining},
				Mobility: domain.Membership{domain.MobilityMobile, domain.MobilityFixed},
			},
		},
		{
			ID:     "pet-nook-under-stairs",
			Title:  "Pet nook under stairs",
			Detail: "Use the void under loft stairs for a pet bed and storage cubbies; add a sliding gate if you need to contain the space.",
			Criteria: domain.ArrangementCriteria{
				Zones:        domain.Membership{domain.ZonePet, domain.ZoneStorage},
				RequiresLoft: true,
			},
		},
		{
			ID:     "split-sleep-lounge",
			Title:  "Split sleep and lounge with a sliding partition",
			Detail: "Use a light sliding panel between bed and lounge to block clutter without closing off light. Works well in fixed cabins/studios.",
			Criteria: domain.ArrangementCriteria{
				Zones:    domain.Membership{domain.ZoneSleep, domain.ZoneDining},
				Mobility: domain.Membership{domain.MobilityFixed},
			},
		},
		{
			ID:     "loft-over-kitchen",
			Title:  "Loft above kitchen block",
			Detail: "Stack the loft over the galley kitchen and bath volume to leave the rest of the floor open. Add a skylight for headroom.",
			Criteria: domain.ArrangementCriteria{
				Zones:        domain.Membership{domain.ZoneSleep, domain.ZoneKitchen},
				RequiresLoft: true,
				MinHeight:    2.9,
			},
		},
	}
}

func defaultDesignTips() []domain.DesignTip {
	return []domain.DesignTip{
		{
			ID:       "space-light-color",
			Category: "space_feeling",
			Type:     "quick",
			Title:    "Use light, continuous surfaces",
			Bullets: []string{
				"Light walls + one continuous floor make the footprint feel larger.",
				"Low-contrast cabinets/readers reduce visual clutter.",
			},
		},
		{
			ID:       "space-mirrors-lines",
			Category: "space_feeling",
			Type:     "quick",
			Title:    "Mirror and line tricks",
			Bullets: []string{
				"Place mirrors opposite windows to double perceived depth.",
				"Use long lines: a runner rug or ceiling beam to stretch the room.",
			},
		},
		{
			ID:       "safety-basics",
			Category: "safety",
			Type:     "checklist",
			Title:    "Safety essentials",
			Bullets: []string{
				"Smoke + CO detector near sleep and cook zones.",
				"Two exits or egress (door + window) kept unblocked.",
				"Secure tall furniture to walls; add child locks if needed.",
			},
		},
		{
			ID:       "safety-heat",
			Category: "safety",
			Type:     "quick",
			Title:    "Heat & cook safely",
			Bullets: []string{
				"Keep 90cm clearance around cooktop; store fuel outside living zone.",
				"Fire extinguisher reachable from kitchen and entry.",
			},
		},
		{
			ID:       "comfort-lighting",
			Category: "comfort",
			Type:     "quick",
			Title:    "Layered lighting",
			Bullets: []string{
				"Ceiling or track for general light, wall lamps for tasks, warm lamps for evenings.",
				"Dimmer on main circuit to avoid harsh glare in small volumes.",
			},
		},
		{
			ID:       "comfort-airflow",
			Category: "comfort",
			Type:     "quick",
			Title:    "Airflow & acoustics",
			Bullets: []string{
				"Cross-ventilate: window + vent/skylight to move heat from lofts.",
				"Soft rugs/panels to cut echo; door seals to reduce street noise.",
			},
		},
		{
			ID:       "org-zones",
			Category: "organization",
			Type:     "quick",
			Title:    "Define storage zones",
			Bullets: []string{
				"Entry: shoes, coats, keys together; hooks + narrow bench.",
				"Bed: linens + off-season items under/near sleep.",
			},
		},
		{
			ID:       "org-reset",
			Category: "organization",
			Type:     "checklist",
			Title:    "Weekly reset",
			Bullets: []string{
				"Clear flat surfaces nightly; return items to labeled bins.",
				"Donate/rotate 1-2 items per week to avoid creep.",
			},
		},
	}
}

func defaultMinimalism() []domain.MinimalismGuide {
	return []domain.MinimalismGuide{
		{
			ID:    "flow-clothes",
			Type:  "flow",
			Title: "Declutter flow: clothes",
			Steps: []string{
				"Pull all items into one pile by category (tops, bottoms, outerwear).",
				"Keep 7–10 daily outfits max; donate duplicates or rarely worn pieces.",
				"Prefer merino/quick-dry to reduce laundry volume.",
				"Store seasonals in one compressed bin; label with the season.",
			},
		},
		{
			ID:    "flow-kitchen",
			Type:  "flow",
			Title: "Declutter flow: kitchen",
			Steps: []string{
				"Limit to 2–4 of each daily dish; donate extras.",
				"Keep one multitool (chef’s knife) and 1–2 pans; remove single-use gadgets.",
				"Use nesting bowls/pots; swap bulky drying rack for a folding mat.",
				"Move bulk pantry items into square stackable containers.",
			},
		},
		{
			ID:    "flow-books",
			Type:  "flow",
			Title: "Declutter flow: books/media",
			Steps: []string{
				"Digitize: manuals, reference PDFs, receipts.",
				"Keep a 20–30 book cap; rotate via library/ebooks.",
				"Use a slim wall rail instead of deep shelves.",
			},
		},
		{
			ID:      "rule-one-in-one-out",
			Type:    "rule",
			Title:   "One-in-one-out",
			Summary: "Each new item replaces an old one—prevents accumulation.",
		},
		{
			ID:      "rule-capsule-wardrobe",
			Type:    "rule",
			Title:   "Capsule wardrobe",
			Summary: "Build a 20–35 piece set that mixes across seasons and roles.",
		},
		{
			ID:    "challenge-30-day",
			Type:  "challenge",
			Title: "30-day tiny home declutter",
			Steps: []string{
				"Days 1–5: surfaces only (counters, desk, entry).",
				"Days 6–12: clothes + shoes (set caps).",
				"Days 13–18: kitchen + pantry.",
				"Days 19–23: books/papers—digitize where possible.",
				"Days 24–26: hobby gear; set a container limit.",
				"Days 27–30: storage audit + donation drop.",
			},
		},
		{
			ID:    "checklist-before-move",
			Type:  "checklist",
			Title: "Before moving into a tiny home",
			Items: []string{
				"Measure: keep only what fits defined storage zones.",
				"Reduce duplicates; keep 1 multipurpose tool per task.",
				"Scan docs; keep originals of IDs/legal only.",
				"Plan 3–4 bins: entry, kitchen, bed, hobby.",
			},
		},
		{
			ID:    "checklist-digitize",
			Type:  "checklist",
			Title: "What to digitize vs keep",
			Items: []string{
				"Digitize: manuals, receipts, reference docs, photos (with backup).",
				"Keep physical: passports/IDs, titles, select sentimental items (1 box).",
				"Use a labeled fireproof pouch for must-keep papers.",
			},
		},
	}
}

func defaultPlanner() domain.ProjectPlanner {
	return domain.ProjectPlanner{
		Budget: domain.PlannerBudget{
			Intro: "Estimate core costs and add a buffer. Use local pricing to refine.",
			Categories: []domain.BudgetCategory{
				{ID: "trailer_shell", Label: "Trailer / shell", Checklist: []string{"Trailer or prefab shell purchase", "Inspection and registration", "Delivery"}},
				{ID: "structure", Label: "Structure", Checklist: []string{"Framing + sheathing", "Roofing + flashing", "Windows + doors"}},
				{ID: "systems", Label: "Systems", Checklist: []string{"Electrical rough + panel", "Plumbing rough + fixtures", "HVAC / ventilation", "Insulation"}},
				{ID: "interior", Label: "Interior", Checklist: []string{"Walls, flooring, finishes", "Cabinetry + storage", "Appliances"}},
				{ID: "permit_buffer", Label: "Permits + buffer", Checklist: []string{"Permits/fees", "Contingency 10-15%"}},
			},
		},
		Timeline: []domain.TimelinePhase{
			{Phase: "Design", Tasks: []string{"Define layout + zones", "Weight/axle calculations", "Utility strategy (on/off-grid)"}, Duration: "2-4 weeks"},
			{Phase: "Permits/Approvals", Tasks: []string{"Check zoning / parking rules", "Utility hookups or off-grid plan", "Trailer registration/inspection"}, Duration: "2-6 weeks"},
			{Phase: "Build", Tasks: []string{"Structure + envelope", "Rough-in systems", "Insulation", "Interior fit-out"}, Duration: "8-16 weeks"},
			{Phase: "Install/Commission", Tasks: []string{"Hookups / tests", "Safety checks (smoke/CO, egress)", "Weight balance check"}, Duration: "1-2 weeks"},
		},
		Checklists: []domain.PlannerChecklist{
			{
				ID:    "before-trailer",
				Title: "Before buying a trailer",
				Items: []string{
					"Verify weight rating and axle count match your design.",
					"Check rust, frame integrity, brakes, lights, VIN.",
					"Confirm legal dimensions for towing in your region.",
					"Plan utility runs (underslung tanks vs interior).",
				},
			},
			{
				ID:    "before-move-in",
				Title: "Before moving in",
				Items: []string{
					"Test smoke/CO alarms and GFCI outlets.",
					"Balance weight; secure all furniture to walls.",
					"Weatherproof checks: seals, flashing, vents.",
					"Confirm gray/black water handling and disposal plan.",
				},
			},
			{
				ID:    "first-30-days",
				Title: "First 30 days in a tiny home",
				Items: []string{
					"Track condensation; adjust ventilation/dehumidifier.",
					"Dial storage: adjust shelves, hooks, bins based on daily use.",
					"Test off-grid systems (solar, batteries) under real load.",
					"Set a monthly donate/rotate habit to prevent clutter creep.",
				},
			},
		},
	}
}
