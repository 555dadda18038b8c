// Package search filters and orders the profile directory. Everything here
// is a pure function of its arguments.
package search

import (
	"strconv"
	"strings"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
)

// Criteria is the closed set of structured filters. Zero values mean the
// filter is off.
type Criteria struct {
	Skill        string
	Availability domain.Availability
	MinRating    *float64
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Skill) == "" && c.Availability == "" && c.MinRating == nil
}

// Criteria keys accepted by ParseCriteria.
const (
	KeySkill        = "skill"
	KeyAvailability = "availability"
	KeyMinRating    = "min_rating"
)

// ParseCriteria builds Criteria from string fields, rejecting unknown keys
// and malformed values. Empty values leave the filter off.
func ParseCriteria(fields map[string]string) (Criteria, error) {
	var c Criteria
	for key, value := range fields {
		value = strings.TrimSpace(value)
		switch key {
		case KeySkill:
			c.Skill = value
		case KeyAvailability:
			if value == "" {
				continue
			}
			a := domain.Availability(value)
			if !a.Valid() {
				return Criteria{}, domain.NewValidationError(key, "unknown availability %q", value)
			}
			c.Availability = a
		case KeyMinRating:
			if value == "" {
				continue
			}
			r, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Criteria{}, domain.NewValidationError(key, "not a number: %q", value)
			}
			if r < domain.MinRating || r > domain.MaxRating {
				return Criteria{}, domain.NewValidationError(key, "must be between %.0f and %.0f", domain.MinRating, domain.MaxRating)
			}
			c.MinRating = &r
		default:
			return Criteria{}, domain.NewValidationError(key, "unknown filter")
		}
	}
	return c, nil
}

// Filter returns the profiles matching query and every active criterion,
// in input order. A blank query matches everything. The input slice is
// not modified.
func Filter(profiles []*domain.Profile, query string, c Criteria) []*domain.Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	skill := strings.ToLower(strings.TrimSpace(c.Skill))

	out := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if skill != "" && !matchesSkill(p, skill) {
			continue
		}
		if c.Availability != "" && (p.Availability == nil || *p.Availability != c.Availability) {
			continue
		}
		if c.MinRating != nil && p.Rating < *c.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery checks name, location and skill names. needle is lower case.
func matchesQuery(p *domain.Profile, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if p.Location != nil && strings.Contains(strings.ToLower(*p.Location), needle) {
		return true
	}
	return matchesSkill(p, needle)
}

func matchesSkill(p *domain.Profile, needle string) bool {
	for _, s := range p.SkillsOffered {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return true
		}
	}
	for _, s := range p.SkillsWanted {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return true
		}
	}
	return false
}
