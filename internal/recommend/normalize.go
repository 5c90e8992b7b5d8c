// Package recommend implements the planning core: profile normalization,
// catalog eligibility filtering, layout scoring, and assembly of the
// recommendation payload. Everything here is a pure function over the
// canonical profile and the catalog snapshot.
package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/amirSA5/tiny-home-guide/internal/domain"
)

// DefaultHeight is assumed when a profile omits ceiling height (meters).
const DefaultHeight = 2.7

// defaultZones is the fallback when a profile declares no zones.
var defaultZones = []string{domain.ZoneSleep, domain.ZoneWork, domain.ZoneKitchen}

var validate = validator.New()

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports why a raw profile was rejected. No defaulting or
// matching happens for a rejected profile.
type ValidationError struct {
	Fields []FieldError `json:"details"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid space profile"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "invalid space profile: " + strings.Join(parts, "; ")
}

// Normalize validates a raw profile and fills defaults, producing the
// canonical profile used by all matching logic. It is idempotent:
// normalizing an already-canonical profile returns it unchanged.
func Normalize(p domain.SpaceProfile) (domain.SpaceProfile, error) {
	if err := validate.Struct(p); err != nil {
		return domain.SpaceProfile{}, asValidationError(err)
	}

	if !(p.Height > 0) || math.IsInf(p.Height, 0) {
		p.Height = DefaultHeight
	}
	if p.Mobility != domain.MobilityMobile && p.Mobility != domain.MobilityFixed {
		p.Mobility = domain.MobilityMobile
	}
	p.Zones = dedupe(p.Zones)
	if len(p.Zones) == 0 {
		p.Zones = append([]string(nil), defaultZones...)
	}
	return p, nil
}

// dedupe drops repeated zones, keeping first-occurrence order.
func dedupe(zones []string) []string {
	if len(zones) < 2 {
		return zones
	}
	seen := make(map[string]struct{}, len(zones))
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}

func asValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "profile", Message: "is invalid"}}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(ve.Field()),
			Message: fieldMessage(ve),
		})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
