package bookmark

import (
	"context"
	"errors"
	"sync"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

// ProfileDirectory returns a profile as viewerID is allowed to see it.
// Hidden profiles are reported as domain.ErrProfileNotFound.
type ProfileDirectory interface {
	GetProfile(ctx context.Context, id, viewerID string) (*domain.Profile, error)
}

type BookmarkUseCase struct {
	kv       repository.KV
	profiles ProfileDirectory

	mu     sync.Mutex
	stores map[string]*Store
}

func NewBookmarkUseCase(kv repository.KV, profiles ProfileDirectory) *BookmarkUseCase {
	return &BookmarkUseCase{
		kv:       kv,
		profiles: profiles,
		stores:   make(map[string]*Store),
	}
}

// store returns the cached set for owner, loading it on first use.
func (uc *BookmarkUseCase) store(ctx context.Context, owner string) (*Store, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.stores[owner]; ok {
		return s, nil
	}
	s, err := Load(ctx, uc.kv, owner)
	if err != nil {
		return nil, err
	}
	uc.stores[owner] = s
	return s, nil
}

// ToggleResponse is the result of Toggle.
type ToggleResponse struct {
	ProfileID  string `json:"profile_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// Toggle flips profileID in owner's set. Only profiles owner can see may
// be bookmarked, but one that has since disappeared or been hidden can
// still be removed.
func (uc *BookmarkUseCase) Toggle(ctx context.Context, owner, profileID string) (*ToggleResponse, error) {
	s, err := uc.store(ctx, owner)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.ToggleChecked(ctx, profileID, func(ctx context.Context, id string) error {
		_, err := uc.profiles.GetProfile(ctx, id, owner)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ToggleResponse{ProfileID: profileID, Bookmarked: bookmarked}, nil
}

func (uc *BookmarkUseCase) IsBookmarked(ctx context.Context, owner, profileID string) (bool, error) {
	s, err := uc.store(ctx, owner)
	if err != nil {
		return false, err
	}
	return s.IsBookmarked(profileID), nil
}

// ListResponse carries the ids and the profiles owner can still see.
type ListResponse struct {
	IDs      []string          `json:"ids"`
	Profiles []*domain.Profile `json:"profiles"`
}

// List returns owner's bookmarks in insertion order. Ids whose profile no
// longer exists or is hidden stay in IDs but are left out of Profiles.
// Profiles come back with their owners' privacy settings applied.
func (uc *BookmarkUseCase) List(ctx context.Context, owner string) (*ListResponse, error) {
	s, err := uc.store(ctx, owner)
	if err != nil {
		return nil, err
	}
	ids := s.List()
	resp := &ListResponse{IDs: ids, Profiles: make([]*domain.Profile, 0, len(ids))}
	for _, id := range ids {
		p, err := uc.profiles.GetProfile(ctx, id, owner)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				continue
			}
			return nil, err
		}
		resp.Profiles = append(resp.Profiles, p)
	}
	return resp, nil
}
