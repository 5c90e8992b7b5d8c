package domain

import "time"

// Space types a profile can describe.
const (
	TypeTinyHouse = "tiny_house"
	TypeCabin     = "cabin"
	TypeVan       = "van"
	TypeStudio    = "studio"
)

// Occupancy options.
const (
	OccupantsSolo   = "solo"
	OccupantsCouple = "couple"
	OccupantsFamily = "family"
)

// Activity zones.
const (
	ZoneSleep   = "sleep"
	ZoneWork    = "work"
	ZoneDining  = "dining"
	ZoneKitchen = "kitchen"
	ZoneEntry   = "entry"
	ZonePet     = "pet"
	ZoneStorage = "storage"
)

// Mobility options.
const (
	MobilityMobile = "mobile"
	MobilityFixed  = "fixed"
)

// SpaceProfile describes the user's living space. Dimensions are in meters.
// A profile coming off the wire must pass through recommend.Normalize before
// it is used for matching.
type SpaceProfile struct {
	Length    float64  `json:"length" validate:"required,gt=0,lte=100"`
	Width     float64  `json:"width" validate:"required,gt=0,lte=100"`
	Height    float64  `json:"height,omitempty" validate:"omitempty,lte=10"`
	Type      string   `json:"type" validate:"required,oneof=tiny_house cabin van studio"`
	Occupants string   `json:"occupants" validate:"required,oneof=solo couple family"`
	Zones     []string `json:"zones" validate:"omitempty,dive,oneof=sleep work dining kitchen entry pet storage"`
	Mobility  string   `json:"mobility,omitempty"`
	Loft      bool     `json:"loft,omitempty"`
}

// Area returns length × width in square meters.
func (p SpaceProfile) Area() float64 {
	return p.Length * p.Width
}

// HasZone reports whether the profile asks for the given zone.
func (p SpaceProfile) HasZone(zone string) bool {
	for _, z := range p.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// RecommendedFor narrows which profiles a layout pattern suits.
// Every axis is optional: an absent axis places no constraint.
type RecommendedFor struct {
	Type      Membership `json:"type,omitempty"`
	Zones     Membership `json:"zones,omitempty"`
	Occupants Membership `json:"occupants,omitempty"`
	Mobility  Membership `json:"mobility,omitempty"`
	MinHeight MinValue   `json:"minHeight,omitempty"`
}

// LayoutPattern is a catalog entry describing a furnishing/layout idea.
type LayoutPattern struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	RequiredFeatures []string       `json:"requiredFeatures,omitempty"`
	Pros             []string       `json:"pros,omitempty"`
	Cons             []string       `json:"cons,omitempty"`
	RecommendedFor   RecommendedFor `json:"recommendedFor"`
	MinArea          MinValue       `json:"minArea,omitempty"`
	RequiresLoft     bool           `json:"requiresLoft,omitempty"`
}

// MatchedLayout is a layout pattern annotated with its match score (0..100).
type MatchedLayout struct {
	LayoutPattern
	MatchScore int `json:"matchScore"`
}

// Footprint gives approximate furniture dimensions in centimeters.
type Footprint struct {
	FoldedDepth float64 `json:"foldedDepth,omitempty"`
	OpenDepth   float64 `json:"openDepth,omitempty"`
	Width       float64 `json:"width,omitempty"`
}

// FurnitureItem is a catalog entry. Zones empty means the item fits anywhere.
type FurnitureItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category,omitempty"`
	Style        string     `json:"style,omitempty"`
	BestLocation string     `json:"bestLocation,omitempty"`
	Zones        Membership `json:"zones,omitempty"`
	Footprint    *Footprint `json:"footprint,omitempty"`
}

// ArrangementCriteria narrows which profiles a zone arrangement suits.
type ArrangementCriteria struct {
	Zones        Membership `json:"zones,omitempty"`
	Mobility     Membership `json:"mobility,omitempty"`
	MinHeight    MinValue   `json:"minHeight,omitempty"`
	RequiresLoft bool       `json:"requiresLoft,omitempty"`
}

// ZoneArrangement is a catalog entry describing how to combine zones.
type ZoneArrangement struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Detail   string              `json:"detail"`
	Criteria ArrangementCriteria `json:"criteria"`
}

// DesignTip is reference content, never filtered.
type DesignTip struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Bullets  []string `json:"bullets"`
}

// MinimalismGuide is reference content, never filtered.
type MinimalismGuide struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Summary string   `json:"summary,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// BudgetCategory is one cost bucket in the planner budget.
type BudgetCategory struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Checklist []string `json:"checklist"`
}

// PlannerBudget groups budget categories with an intro note.
type PlannerBudget struct {
	Intro      string           `json:"intro"`
	Categories []BudgetCategory `json:"categories"`
}

// TimelinePhase is one phase of a build timeline.
type TimelinePhase struct {
	Phase    string   `json:"phase"`
	Tasks    []string `json:"tasks"`
	Duration string   `json:"duration"`
}

// PlannerChecklist is a titled checklist in the project planner.
type PlannerChecklist struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ProjectPlanner is the static planning template returned with every
// recommendation response.
type ProjectPlanner struct {
	Budget     PlannerBudget      `json:"budget"`
	Timeline   []TimelinePhase    `json:"timeline"`
	Checklists []PlannerChecklist `json:"checklists"`
}

// Sections counts budget categories, timeline phases, and checklists.
func (p ProjectPlanner) Sections() int {
	return len(p.Budget.Categories) + len(p.Timeline) + len(p.Checklists)
}

// Stats summarizes result collection sizes for display and telemetry.
type Stats struct {
	LayoutCount           int `json:"layoutCount"`
	FurnitureCount        int `json:"furnitureCount"`
	DesignTipsCount       int `json:"designTipsCount"`
	ArrangementIdeasCount int `json:"arrangementIdeasCount"`
	MinimalismCount       int `json:"minimalismCount"`
	PlannerSections       int `json:"plannerSections"`
}

// Recommendations is the full response payload for one profile.
type Recommendations struct {
	Profile          SpaceProfile      `json:"profile"`
	Area             float64           `json:"area"`
	Stats            Stats             `json:"stats"`
	Layouts          []MatchedLayout   `json:"layouts"`
	Furniture        []FurnitureItem   `json:"furniture"`
	DesignTips       []DesignTip       `json:"designTips"`
	ArrangementIdeas []ZoneArrangement `json:"arrangementIdeas"`
	Minimalism       []MinimalismGuide `json:"minimalism"`
	ProjectPlanner   ProjectPlanner    `json:"projectPlanner"`
}

// Favorite marks a saved catalog entry for a client.
type Favorite struct {
	Type string `json:"type" validate:"required,oneof=layout furniture"`
	ID   string `json:"id" validate:"required,min=1"`
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. PasswordHash never leaves the storage
// boundary; handlers expose users via PublicUser.
type User struct {
	ID           string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the API-safe view of a user.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credential fields from a user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

// Preferences stores onboarding answers per user.
type Preferences struct {
	UserID    string    `json:"userId"`
	UserType  string    `json:"userType" validate:"required,oneof=planning already_living just_curious"`
	SpaceType string    `json:"spaceType" validate:"required,oneof=tiny_house cabin van studio"`
	Occupants string    `json:"occupants" validate:"required,oneof=solo couple family"`
	HasPets   bool      `json:"hasPets"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
