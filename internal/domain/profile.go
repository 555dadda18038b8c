package domain

import (
	"strings"
	"time"
)

type Availability string

const (
	AvailabilityWeekends      Availability = "weekends"
	AvailabilityEvenings      Availability = "evenings"
	AvailabilityFlexible      Availability = "flexible"
	AvailabilityBusinessHours Availability = "business-hours"
)

// Valid reports whether a is one of the known availability windows.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityWeekends, AvailabilityEvenings, AvailabilityFlexible, AvailabilityBusinessHours:
		return true
	}
	return false
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type PortfolioType string

const (
	PortfolioProject PortfolioType = "project"
	PortfolioVideo   PortfolioType = "video"
	PortfolioDesign  PortfolioType = "design"
	PortfolioCode    PortfolioType = "code"
)

type PortfolioItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Thumbnail   *string       `json:"thumbnail,omitempty"`
	Link        *string       `json:"link,omitempty"`
	Type        PortfolioType `json:"type"`
	Skills      []string      `json:"skills"`
}

type SocialLinkType string

const (
	SocialGithub    SocialLinkType = "github"
	SocialLinkedIn  SocialLinkType = "linkedin"
	SocialPortfolio SocialLinkType = "portfolio"
)

type SocialLink struct {
	Type SocialLinkType `json:"type"`
	URL  string         `json:"url"`
}

type Profile struct {
	ID            string          `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Location      *string         `json:"location,omitempty" db:"location"`
	Timezone      *string         `json:"timezone,omitempty" db:"timezone"`
	AvatarURL     *string         `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio           *string         `json:"bio,omitempty" db:"bio"`
	Rating        float64         `json:"rating" db:"rating"`
	SkillsOffered []Skill         `json:"skills_offered" db:"skills_offered"`
	SkillsWanted  []Skill         `json:"skills_wanted" db:"skills_wanted"`
	Availability  *Availability   `json:"availability,omitempty" db:"availability"`
	Portfolio     []PortfolioItem `json:"portfolio,omitempty" db:"portfolio"`
	SocialLinks   []SocialLink    `json:"social_links,omitempty" db:"social_links"`
	Latitude      *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64        `json:"longitude,omitempty" db:"longitude"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy so callers can hand profiles out of a store
// without sharing slices or pointers with it.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Location = cloneString(p.Location)
	c.Timezone = cloneString(p.Timezone)
	c.AvatarURL = cloneString(p.AvatarURL)
	c.Bio = cloneString(p.Bio)
	if p.Availability != nil {
		a := *p.Availability
		c.Availability = &a
	}
	if p.Latitude != nil {
		v := *p.Latitude
		c.Latitude = &v
	}
	if p.Longitude != nil {
		v := *p.Longitude
		c.Longitude = &v
	}
	c.SkillsOffered = cloneSkills(p.SkillsOffered)
	c.SkillsWanted = cloneSkills(p.SkillsWanted)
	if p.Portfolio != nil {
		c.Portfolio = make([]PortfolioItem, len(p.Portfolio))
		for i, item := range p.Portfolio {
			item.Thumbnail = cloneString(item.Thumbnail)
			item.Link = cloneString(item.Link)
			item.Skills = append([]string(nil), item.Skills...)
			c.Portfolio[i] = item
		}
	}
	if p.SocialLinks != nil {
		c.SocialLinks = append([]SocialLink(nil), p.SocialLinks...)
	}
	return &c
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Snapshot copies the fields a swap request keeps about a party.
func (p *Profile) Snapshot() ProfileSnapshot {
	s := ProfileSnapshot{
		ID:     p.ID,
		Name:   p.Name,
		Rating: p.Rating,
	}
	if p.AvatarURL != nil {
		s.AvatarURL = *p.AvatarURL
	}
	return s
}

// ProfileSnapshot is a copy of a profile taken when a request is created.
// It is never refreshed, so request history stays stable when the profile
// changes later.
type ProfileSnapshot struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Rating    float64 `json:"rating"`
}

// HasSkill reports whether name matches an offered or wanted skill,
// ignoring case.
func (p *Profile) HasSkill(name string) bool {
	for _, s := range p.SkillsOffered {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	for _, s := range p.SkillsWanted {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
