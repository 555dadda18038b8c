package repository

import (
	"context"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
)

// ProfileRepository is the profile directory. List returns profiles in a
// stable order (creation order).
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

// RequestRepository stores swap requests. Transition and Accept are
// compare-and-swap on status: they fail with a *domain.TransitionError when
// the stored status is not from.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.SwapRequest) error
	GetByID(ctx context.Context, id string) (*domain.SwapRequest, error)
	ListPendingTo(ctx context.Context, profileID string) ([]*domain.SwapRequest, error)
	ListPendingFrom(ctx context.Context, profileID string) ([]*domain.SwapRequest, error)
	Transition(ctx context.Context, id string, from, to domain.RequestStatus, event string) (*domain.SwapRequest, error)
	// Accept moves a pending request to accepted and stores swap in the same
	// atomic step.
	Accept(ctx context.Context, id string, swap *domain.ActiveSwap) (*domain.SwapRequest, error)
}

type SwapRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ActiveSwap, error)
	ListByParticipant(ctx context.Context, profileID string, status domain.SwapStatus) ([]*domain.ActiveSwap, error)
	// UpdateProgress fails with domain.ErrValidation when progress would
	// decrease and with a *domain.TransitionError when the swap is not active.
	UpdateProgress(ctx context.Context, id string, progress int) (*domain.ActiveSwap, error)
	Complete(ctx context.Context, id string) (*domain.ActiveSwap, error)
}

type SettingsRepository interface {
	// Get returns nil, nil when the profile never saved settings.
	Get(ctx context.Context, profileID string) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, tokenHash string) error
}

// KV is a string key-value store used for viewer-local state.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
