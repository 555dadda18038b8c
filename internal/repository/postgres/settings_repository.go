package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, profileID string) (*domain.Settings, error) {
	var s domain.Settings
	query := `SELECT * FROM settings WHERE profile_id = $1`
	if err := r.db.GetContext(ctx, &s, query, profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `
		INSERT INTO settings (
			profile_id, email_notifications, push_notifications,
			public_profile, show_location, allow_messages
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id) DO UPDATE
		SET email_notifications = EXCLUDED.email_notifications,
		    push_notifications = EXCLUDED.push_notifications,
		    public_profile = EXCLUDED.public_profile,
		    show_location = EXCLUDED.show_location,
		    allow_messages = EXCLUDED.allow_messages,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		s.ProfileID, s.EmailNotifications, s.PushNotifications,
		s.PublicProfile, s.ShowLocation, s.AllowMessages,
	).Scan(&s.UpdatedAt)
}
