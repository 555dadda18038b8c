package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

type requestRow struct {
	ID           string    `db:"id"`
	FromID       string    `db:"from_id"`
	FromName     string    `db:"from_name"`
	FromAvatar   string    `db:"from_avatar_url"`
	FromRating   float64   `db:"from_rating"`
	ToID         string    `db:"to_id"`
	ToName       string    `db:"to_name"`
	ToAvatar     string    `db:"to_avatar_url"`
	ToRating     float64   `db:"to_rating"`
	SkillOffered string    `db:"skill_offered"`
	SkillWanted  string    `db:"skill_wanted"`
	Message      string    `db:"message"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func newRequestRow(req *domain.SwapRequest) *requestRow {
	return &requestRow{
		ID:           req.ID,
		FromID:       req.From.ID,
		FromName:     req.From.Name,
		FromAvatar:   req.From.AvatarURL,
		FromRating:   req.From.Rating,
		ToID:         req.To.ID,
		ToName:       req.To.Name,
		ToAvatar:     req.To.AvatarURL,
		ToRating:     req.To.Rating,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Message:      req.Message,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}

func (row *requestRow) toDomain() *domain.SwapRequest {
	return &domain.SwapRequest{
		ID:           row.ID,
		From:         domain.ProfileSnapshot{ID: row.FromID, Name: row.FromName, AvatarURL: row.FromAvatar, Rating: row.FromRating},
		To:           domain.ProfileSnapshot{ID: row.ToID, Name: row.ToName, AvatarURL: row.ToAvatar, Rating: row.ToRating},
		SkillOffered: row.SkillOffered,
		SkillWanted:  row.SkillWanted,
		Message:      row.Message,
		Status:       domain.RequestStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.SwapRequest) error {
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	query := `
		INSERT INTO swap_requests (
			id, from_id, from_name, from_avatar_url, from_rating,
			to_id, to_name, to_avatar_url, to_rating,
			skill_offered, skill_wanted, message, status, created_at, updated_at
		)
		VALUES (
			:id, :from_id, :from_name, :from_avatar_url, :from_rating,
			:to_id, :to_name, :to_avatar_url, :to_rating,
			:skill_offered, :skill_wanted, :message, :status, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, newRequestRow(req))
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	var row requestRow
	query := `SELECT * FROM swap_requests WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *requestRepository) ListPendingTo(ctx context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return r.listPending(ctx, "to_id", profileID)
}

func (r *requestRepository) ListPendingFrom(ctx context.Context, profileID string) ([]*domain.SwapRequest, error) {
	return r.listPending(ctx, "from_id", profileID)
}

func (r *requestRepository) listPending(ctx context.Context, column, profileID string) ([]*domain.SwapRequest, error) {
	var rows []requestRow
	query := fmt.Sprintf(`
		SELECT * FROM swap_requests
		WHERE %s = $1 AND status = $2
		ORDER BY created_at DESC, id
	`, column)
	if err := r.db.SelectContext(ctx, &rows, query, profileID, domain.RequestPending); err != nil {
		return nil, err
	}
	out := make([]*domain.SwapRequest, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *requestRepository) Transition(ctx context.Context, id string, from, to domain.RequestStatus, event string) (*domain.SwapRequest, error) {
	return transition(ctx, r.db, id, from, to, event)
}

func (r *requestRepository) Accept(ctx context.Context, id string, swap *domain.ActiveSwap) (*domain.SwapRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin accept: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req, err := transition(ctx, tx, id, domain.RequestPending, domain.RequestAccepted, domain.EventAccept)
	if err != nil {
		return nil, err
	}
	if err := insertSwap(ctx, tx, swap); err != nil {
		return nil, fmt.Errorf("insert swap: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}
	return req, nil
}

// transition is the compare-and-swap on status. When no row matches it
// reads the current status to tell a missing request from a stale one.
func transition(ctx context.Context, q sqlx.ExtContext, id string, from, to domain.RequestStatus, event string) (*domain.SwapRequest, error) {
	var row requestRow
	query := `
		UPDATE swap_requests
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = $3
		RETURNING *
	`
	err := sqlx.GetContext(ctx, q, &row, query, to, id, from)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var current string
	err = sqlx.GetContext(ctx, q, &current, `SELECT status FROM swap_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return nil, &domain.TransitionError{ID: id, From: current, Event: event}
}
