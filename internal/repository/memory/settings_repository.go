package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

type settingsRepository struct {
	mu       sync.RWMutex
	settings map[string]domain.Settings
}

func NewSettingsRepository() repository.SettingsRepository {
	return &settingsRepository{settings: make(map[string]domain.Settings)}
}

func (r *settingsRepository) Get(_ context.Context, profileID string) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[profileID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.UpdatedAt = time.Now().UTC()
	r.settings[settings.ProfileID] = *settings
	return nil
}
