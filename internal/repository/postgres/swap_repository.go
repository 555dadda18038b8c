package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type swapRepository struct {
	db *sqlx.DB
}

func NewSwapRepository(db *sqlx.DB) repository.SwapRepository {
	return &swapRepository{db: db}
}

type swapRow struct {
	ID              string     `db:"id"`
	RequesterID     string     `db:"requester_id"`
	RequesterName   string     `db:"requester_name"`
	RequesterAvatar string     `db:"requester_avatar_url"`
	RequesterRating float64    `db:"requester_rating"`
	RecipientID     string     `db:"recipient_id"`
	RecipientName   string     `db:"recipient_name"`
	RecipientAvatar string     `db:"recipient_avatar_url"`
	RecipientRating float64    `db:"recipient_rating"`
	SkillOffered    string     `db:"skill_offered"`
	SkillWanted     string     `db:"skill_wanted"`
	StartDate       time.Time  `db:"start_date"`
	Progress        int        `db:"progress"`
	Status          string     `db:"status"`
	CompletedAt     *time.Time `db:"completed_at"`
}

func (row *swapRow) toDomain() *domain.ActiveSwap {
	return &domain.ActiveSwap{
		ID:           row.ID,
		Requester:    domain.ProfileSnapshot{ID: row.RequesterID, Name: row.RequesterName, AvatarURL: row.RequesterAvatar, Rating: row.RequesterRating},
		Recipient:    domain.ProfileSnapshot{ID: row.RecipientID, Name: row.RecipientName, AvatarURL: row.RecipientAvatar, Rating: row.RecipientRating},
		SkillOffered: row.SkillOffered,
		SkillWanted:  row.SkillWanted,
		StartDate:    row.StartDate,
		Progress:     row.Progress,
		Status:       domain.SwapStatus(row.Status),
		CompletedAt:  row.CompletedAt,
	}
}

func newSwapRow(s *domain.ActiveSwap) *swapRow {
	return &swapRow{
		ID:              s.ID,
		RequesterID:     s.Requester.ID,
		RequesterName:   s.Requester.Name,
		RequesterAvatar: s.Requester.AvatarURL,
		RequesterRating: s.Requester.Rating,
		RecipientID:     s.Recipient.ID,
		RecipientName:   s.Recipient.Name,
		RecipientAvatar: s.Recipient.AvatarURL,
		RecipientRating: s.Recipient.Rating,
		SkillOffered:    s.SkillOffered,
		SkillWanted:     s.SkillWanted,
		StartDate:       s.StartDate,
		Progress:        s.Progress,
		Status:          string(s.Status),
		CompletedAt:     s.CompletedAt,
	}
}

func insertSwap(ctx context.Context, q sqlx.ExtContext, s *domain.ActiveSwap) error {
	query := `
		INSERT INTO swaps (
			id, requester_id, requester_name, requester_avatar_url, requester_rating,
			recipient_id, recipient_name, recipient_avatar_url, recipient_rating,
			skill_offered, skill_wanted, start_date, progress, status, completed_at
		)
		VALUES (
			:id, :requester_id, :requester_name, :requester_avatar_url, :requester_rating,
			:recipient_id, :recipient_name, :recipient_avatar_url, :recipient_rating,
			:skill_offered, :skill_wanted, :start_date, :progress, :status, :completed_at
		)
	`
	_, err := sqlx.NamedExecContext(ctx, q, query, newSwapRow(s))
	return err
}

func (r *swapRepository) GetByID(ctx context.Context, id string) (*domain.ActiveSwap, error) {
	var row swapRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM swaps WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwapNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *swapRepository) ListByParticipant(ctx context.Context, profileID string, status domain.SwapStatus) ([]*domain.ActiveSwap, error) {
	var rows []swapRow
	query := `
		SELECT * FROM swaps
		WHERE (requester_id = $1 OR recipient_id = $1) AND status = $2
		ORDER BY start_date DESC, id
	`
	if err := r.db.SelectContext(ctx, &rows, query, profileID, status); err != nil {
		return nil, err
	}
	out := make([]*domain.ActiveSwap, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *swapRepository) UpdateProgress(ctx context.Context, id string, progress int) (*domain.ActiveSwap, error) {
	var row swapRow
	query := `
		UPDATE swaps SET progress = $1
		WHERE id = $2 AND status = $3 AND progress <= $1
		RETURNING *
	`
	err := r.db.GetContext(ctx, &row, query, progress, id, domain.SwapActive)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.SwapActive {
		return nil, &domain.TransitionError{ID: id, From: string(current.Status), Event: domain.EventProgress}
	}
	return nil, domain.NewValidationError("progress", "cannot go back from %d to %d", current.Progress, progress)
}

func (r *swapRepository) Complete(ctx context.Context, id string) (*domain.ActiveSwap, error) {
	var row swapRow
	query := `
		UPDATE swaps SET status = $1, completed_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
		RETURNING *
	`
	err := r.db.GetContext(ctx, &row, query, domain.SwapCompleted, id, domain.SwapActive)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, &domain.TransitionError{ID: id, From: string(current.Status), Event: domain.EventComplete}
}
