// Package seed holds the sample directory and requests the service starts
// with when seeding is enabled.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

func str(s string) *string { return &s }

func avail(a domain.Availability) *domain.Availability { return &a }

func coord(v float64) *float64 { return &v }

// Profiles returns the sample directory. base anchors CreatedAt so that
// later entries are newer.
func Profiles(base time.Time) []*domain.Profile {
	return []*domain.Profile{
		{
			ID:        "1",
			Name:      "Marc Demo",
			Location:  str("San Francisco, CA"),
			Timezone:  str("PST (UTC-8)"),
			AvatarURL: str("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"),
			Rating:    3.4,
			SkillsOffered: []domain.Skill{
				{Name: "JavaScript", Validation: domain.PeerEndorsed(12)},
				{Name: "Python", Validation: domain.Verified()},
			},
			SkillsWanted: []domain.Skill{
				{Name: "Photoshop"},
				{Name: "Graphic Design", Validation: domain.PeerEndorsed(3)},
			},
			Availability: avail(domain.AvailabilityWeekends),
			Bio:          str("Full-stack developer with a passion for clean code and user experience. I love teaching JavaScript fundamentals and building web applications."),
			Portfolio: []domain.PortfolioItem{
				{
					ID:          "p1",
					Title:       "E-commerce Platform",
					Description: "Built with React and Node.js, serving 10k+ users",
					Thumbnail:   str("https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=100&h=100&fit=crop"),
					Link:        str("https://github.com/demo"),
					Type:        domain.PortfolioProject,
					Skills:      []string{"React", "Node.js", "MongoDB"},
				},
				{
					ID:          "p2",
					Title:       "JavaScript Tutorial Series",
					Description: "Educational content for beginners",
					Type:        domain.PortfolioVideo,
					Skills:      []string{"JavaScript", "Teaching"},
				},
			},
			SocialLinks: []domain.SocialLink{
				{Type: domain.SocialGithub, URL: "https://github.com/marcdemo"},
				{Type: domain.SocialPortfolio, URL: "https://marcdemo.dev"},
			},
			Latitude:  coord(37.7749),
			Longitude: coord(-122.4194),
			CreatedAt: base,
		},
		{
			ID:        "2",
			Name:      "Michell",
			Location:  str("New York, NY"),
			Timezone:  str("EST (UTC-5)"),
			AvatarURL: str("https://images.unsplash.com/photo-1494790108755-2616b612345d?w=150&h=150&fit=crop&crop=face"),
			Rating:    2.5,
			SkillsOffered: []domain.Skill{
				{Name: "JavaScript"},
				{Name: "Python", Validation: domain.Certified()},
			},
			SkillsWanted: []domain.Skill{
				{Name: "Photoshop"},
				{Name: "Graphic Design"},
			},
			Availability: avail(domain.AvailabilityEvenings),
			Bio:          str("Backend engineer specializing in Python and API development. Always eager to learn creative skills and expand my design knowledge."),
			SocialLinks: []domain.SocialLink{
				{Type: domain.SocialGithub, URL: "https://github.com/michell"},
			},
			Latitude:  coord(40.7128),
			Longitude: coord(-74.0060),
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID:        "3",
			Name:      "Joe Wills",
			Location:  str("Austin, TX"),
			Timezone:  str("CST (UTC-6)"),
			AvatarURL: str("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
			Rating:    4.0,
			SkillsOffered: []domain.Skill{
				{Name: "JavaScript", Validation: domain.PeerEndorsed(8)},
				{Name: "Python"},
			},
			SkillsWanted: []domain.Skill{
				{Name: "Photoshop"},
				{Name: "Graphic Design"},
			},
			Availability: avail(domain.AvailabilityFlexible),
			Bio:          str("Software consultant who enjoys mentoring others. I believe in learning through practical projects and collaborative problem-solving."),
			Latitude:     coord(30.2672),
			Longitude:    coord(-97.7431),
			CreatedAt:    base.Add(2 * time.Hour),
		},
		{
			ID:        "4",
			Name:      "Sarah Chen",
			Location:  str("Seattle, WA"),
			Timezone:  str("PST (UTC-8)"),
			AvatarURL: str("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"),
			Rating:    4.8,
			SkillsOffered: []domain.Skill{
				{Name: "React", Validation: domain.Verified()},
				{Name: "Design", Validation: domain.PeerEndorsed(24)},
				{Name: "UI/UX", Validation: domain.Certified()},
			},
			SkillsWanted: []domain.Skill{
				{Name: "Photography"},
				{Name: "Marketing"},
			},
			Availability: avail(domain.AvailabilityWeekends),
			Bio:          str("Senior product designer with 7+ years in tech. I love creating intuitive interfaces and would love to learn photography for better visual storytelling."),
			Portfolio: []domain.PortfolioItem{
				{
					ID:          "p3",
					Title:       "Mobile Banking App",
					Description: "Award-winning fintech interface design",
					Thumbnail:   str("https://images.unsplash.com/photo-1512486130939-2c4f79935e4f?w=100&h=100&fit=crop"),
					Type:        domain.PortfolioDesign,
					Skills:      []string{"UI/UX", "Mobile Design"},
				},
				{
					ID:          "p4",
					Title:       "Design System",
					Description: "Comprehensive component library",
					Type:        domain.PortfolioDesign,
					Skills:      []string{"Design Systems", "React"},
				},
				{
					ID:          "p5",
					Title:       "User Research Case Study",
					Description: "Complete UX methodology documentation",
					Type:        domain.PortfolioProject,
					Skills:      []string{"User Research", "UX"},
				},
			},
			SocialLinks: []domain.SocialLink{
				{Type: domain.SocialPortfolio, URL: "https://sarahchen.design"},
				{Type: domain.SocialLinkedIn, URL: "https://linkedin.com/in/sarahchen"},
			},
			Latitude:  coord(47.6062),
			Longitude: coord(-122.3321),
			CreatedAt: base.Add(3 * time.Hour),
		},
	}
}

// Partners returns the people the demo viewer already traded with. They
// back the sample request history and stay out of the directory: Load
// saves them with a private profile.
func Partners(base time.Time) []*domain.Profile {
	return []*domain.Profile{
		{
			ID:            "mike-torres",
			Name:          "Mike Torres",
			AvatarURL:     str("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"),
			Rating:        4.2,
			SkillsOffered: []domain.Skill{{Name: "Guitar Lessons"}},
			SkillsWanted:  []domain.Skill{{Name: "JavaScript Fundamentals"}},
			CreatedAt:     base,
		},
		{
			ID:            "emma-thompson",
			Name:          "Emma Thompson",
			AvatarURL:     str("https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=face"),
			Rating:        4.6,
			SkillsOffered: []domain.Skill{{Name: "Content Writing"}},
			SkillsWanted:  []domain.Skill{{Name: "Web Development"}},
			CreatedAt:     base,
		},
		{
			ID:            "alex-rodriguez",
			Name:          "Alex Rodriguez",
			AvatarURL:     str("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face"),
			Rating:        4.2,
			SkillsOffered: []domain.Skill{{Name: "Video Editing"}},
			SkillsWanted:  []domain.Skill{{Name: "React Development"}},
			CreatedAt:     base,
		},
	}
}

// DemoViewerID is the profile the sample requests are addressed to.
const DemoViewerID = "1"

// ActiveSwapID is the sample request that is already under way.
const ActiveSwapID = "4"

// ActiveSwapProgress is how far the sample swap has got.
const ActiveSwapProgress = 60

// Requests returns the sample requests. The demo viewer has incoming
// requests from Sarah Chen and Mike Torres, is waiting on Joe Wills and
// Emma Thompson, and has a swap with Alex Rodriguez that Load accepts.
// Requests whose parties are missing from profiles are left out.
func Requests(profiles []*domain.Profile, now time.Time) []*domain.SwapRequest {
	byID := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	sample := []struct {
		id, from, to    string
		offered, wanted string
		message         string
		age             time.Duration
	}{
		{"1", "4", DemoViewerID, "Photography", "React",
			"Hi! I'd love to learn React from you. I can teach you professional photography techniques in return.", 2 * time.Hour},
		{"2", "mike-torres", DemoViewerID, "Guitar Lessons", "JavaScript Fundamentals",
			"I see you know JavaScript well! I can teach you guitar in exchange for some coding lessons.", 24 * time.Hour},
		{"3", DemoViewerID, "3", "JavaScript", "Graphic Design",
			"Hello Joe! I'd love to trade some JavaScript mentoring for help with graphic design.", 3 * time.Hour},
		{ActiveSwapID, DemoViewerID, "alex-rodriguez", "React Development", "Video Editing",
			"Hi Alex! Happy to help with React if you can show me your video editing workflow.", 5 * 24 * time.Hour},
		{"5", DemoViewerID, "emma-thompson", "Web Development", "Content Writing",
			"Hello Emma! I'd love to learn content writing from you. I can help you with web development projects.", 3 * time.Hour},
	}

	out := make([]*domain.SwapRequest, 0, len(sample))
	for _, r := range sample {
		from, to := byID[r.from], byID[r.to]
		if from == nil || to == nil {
			continue
		}
		out = append(out, &domain.SwapRequest{
			ID:           r.id,
			From:         from.Snapshot(),
			To:           to.Snapshot(),
			SkillOffered: r.offered,
			SkillWanted:  r.wanted,
			Message:      r.message,
			Status:       domain.RequestPending,
			CreatedAt:    now.Add(-r.age),
		})
	}
	return out
}

// Load writes the sample data. Profiles and requests that already exist are
// skipped so seeding a populated database is harmless. The sample swap is
// only started when its request was created by this call.
func Load(ctx context.Context, profiles repository.ProfileRepository, settings repository.SettingsRepository, requests repository.RequestRepository, now time.Time) error {
	base := now.Add(-24 * time.Hour)
	directory, partners := Profiles(base), Partners(base)
	for _, p := range directory {
		if _, err := create(ctx, profiles, p); err != nil {
			return err
		}
	}
	for _, p := range partners {
		created, err := create(ctx, profiles, p)
		if err != nil {
			return err
		}
		if !created {
			continue
		}
		hidden := domain.DefaultSettings(p.ID)
		hidden.PublicProfile = false
		if err := settings.Upsert(ctx, hidden); err != nil {
			return fmt.Errorf("seed settings %s: %w", p.ID, err)
		}
	}

	for _, r := range Requests(append(directory, partners...), now) {
		if _, err := requests.GetByID(ctx, r.ID); err == nil {
			continue
		}
		if err := requests.Create(ctx, r); err != nil {
			return fmt.Errorf("seed request %s: %w", r.ID, err)
		}
		if r.ID != ActiveSwapID {
			continue
		}
		swap := domain.NewActiveSwap(r, now.Add(-3*24*time.Hour))
		swap.Progress = ActiveSwapProgress
		if _, err := requests.Accept(ctx, r.ID, swap); err != nil {
			return fmt.Errorf("seed swap %s: %w", r.ID, err)
		}
	}
	return nil
}

func create(ctx context.Context, profiles repository.ProfileRepository, p *domain.Profile) (bool, error) {
	if err := profiles.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			return false, nil
		}
		return false, fmt.Errorf("seed profile %s: %w", p.ID, err)
	}
	return true, nil
}
