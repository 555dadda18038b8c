// Package browse serves the public profile directory: privacy settings
// applied, then search filters, ordering and paging.
package browse

import (
	"context"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/search"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type BrowseUseCase struct {
	profileRepo  repository.ProfileRepository
	settingsRepo repository.SettingsRepository
}

func NewBrowseUseCase(profileRepo repository.ProfileRepository, settingsRepo repository.SettingsRepository) *BrowseUseCase {
	return &BrowseUseCase{
		profileRepo:  profileRepo,
		settingsRepo: settingsRepo,
	}
}

// BrowseRequest is a directory query. ViewerID is empty for anonymous
// callers.
type BrowseRequest struct {
	ViewerID string
	Query    string
	Criteria search.Criteria
	Order    search.Order
	Limit    int
	Offset   int
}

type BrowseResponse struct {
	Profiles []*domain.Profile `json:"profiles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// Browse lists visible profiles matching req. Total counts matches before
// paging.
func (uc *BrowseUseCase) Browse(ctx context.Context, req *BrowseRequest) (*BrowseResponse, error) {
	limit := req.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 0 || limit > MaxLimit:
		return nil, domain.NewValidationError("limit", "must be between 1 and %d", MaxLimit)
	}
	if req.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}

	var origin *search.Point
	if req.Order == search.OrderDistance {
		origin = uc.viewerLocation(ctx, req.ViewerID)
	}

	all, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]*domain.Profile, 0, len(all))
	for _, p := range all {
		p, ok, err := uc.present(ctx, p, req.ViewerID)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, p)
		}
	}

	matched := search.Filter(visible, req.Query, req.Criteria)
	sorted, err := search.Sort(matched, req.Order, origin)
	if err != nil {
		return nil, err
	}

	resp := &BrowseResponse{Total: len(sorted), Limit: limit, Offset: req.Offset, Profiles: []*domain.Profile{}}
	if req.Offset < len(sorted) {
		end := min(req.Offset+limit, len(sorted))
		resp.Profiles = sorted[req.Offset:end]
	}
	return resp, nil
}

// GetProfile returns one profile as viewerID may see it. Hidden profiles
// are reported as missing.
func (uc *BrowseUseCase) GetProfile(ctx context.Context, id, viewerID string) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, ok, err := uc.present(ctx, p, viewerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

// present applies the owner's privacy settings. Owners always see their
// own profile unchanged.
func (uc *BrowseUseCase) present(ctx context.Context, p *domain.Profile, viewerID string) (*domain.Profile, bool, error) {
	if p.ID == viewerID {
		return p, true, nil
	}
	s, err := uc.settingsRepo.Get(ctx, p.ID)
	if err != nil {
		return nil, false, err
	}
	if s == nil {
		return p, true, nil
	}
	if !s.PublicProfile {
		return nil, false, nil
	}
	if !s.ShowLocation {
		p = p.Clone()
		p.Location = nil
		p.Latitude = nil
		p.Longitude = nil
	}
	return p, true, nil
}

// viewerLocation is nil for anonymous viewers and viewers without
// coordinates; search.Sort then rejects the distance order.
func (uc *BrowseUseCase) viewerLocation(ctx context.Context, viewerID string) *search.Point {
	if viewerID == "" {
		return nil
	}
	p, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil || !p.HasCoordinates() {
		return nil
	}
	return &search.Point{Lat: *p.Latitude, Lon: *p.Longitude}
}
