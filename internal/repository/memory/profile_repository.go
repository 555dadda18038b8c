package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
	order    []string
}

func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]*domain.Profile)}
}

func (r *profileRepository) Create(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.ID]; ok {
		return domain.ErrProfileExists
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.ID] = profile.Clone()
	r.order = append(r.order, profile.ID)
	return nil
}

func (r *profileRepository) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *profileRepository) List(_ context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id].Clone())
	}
	return out, nil
}

func (r *profileRepository) Update(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.ID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now().UTC()
	r.profiles[profile.ID] = profile.Clone()
	return nil
}
