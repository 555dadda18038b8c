package settings

import (
	"context"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	profileRepo  repository.ProfileRepository
	now          func() time.Time
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, profileRepo repository.ProfileRepository) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		profileRepo:  profileRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// UpdateSettingsRequest is a partial update; nil fields keep their value.
type UpdateSettingsRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
	PublicProfile      *bool `json:"public_profile"`
	ShowLocation       *bool `json:"show_location"`
	AllowMessages      *bool `json:"allow_messages"`
}

// Get returns the saved settings, or the defaults when there are none.
func (uc *SettingsUseCase) Get(ctx context.Context, profileID string) (*domain.Settings, error) {
	s, err := uc.settingsRepo.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return domain.DefaultSettings(profileID), nil
	}
	return s, nil
}

// Update applies the non-nil fields of req on top of the current settings.
func (uc *SettingsUseCase) Update(ctx context.Context, profileID string, req *UpdateSettingsRequest) (*domain.Settings, error) {
	if _, err := uc.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	s, err := uc.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	apply(&s.EmailNotifications, req.EmailNotifications)
	apply(&s.PushNotifications, req.PushNotifications)
	apply(&s.PublicProfile, req.PublicProfile)
	apply(&s.ShowLocation, req.ShowLocation)
	apply(&s.AllowMessages, req.AllowMessages)
	s.UpdatedAt = uc.now()

	if err := uc.settingsRepo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func apply(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
