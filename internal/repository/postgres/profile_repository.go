package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// profileRow mirrors the profiles table; list-valued fields are JSONB.
type profileRow struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Location      *string        `db:"location"`
	Timezone      *string        `db:"timezone"`
	AvatarURL     *string        `db:"avatar_url"`
	Bio           *string        `db:"bio"`
	Rating        float64        `db:"rating"`
	SkillsOffered types.JSONText `db:"skills_offered"`
	SkillsWanted  types.JSONText `db:"skills_wanted"`
	Availability  *string        `db:"availability"`
	Portfolio     types.JSONText `db:"portfolio"`
	SocialLinks   types.JSONText `db:"social_links"`
	Latitude      *float64       `db:"latitude"`
	Longitude     *float64       `db:"longitude"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func newProfileRow(p *domain.Profile) (*profileRow, error) {
	row := &profileRow{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		Timezone:  p.Timezone,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Rating:    p.Rating,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		CreatedAt: p.CreatedAt,
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if p.Availability != nil {
		a := string(*p.Availability)
		row.Availability = &a
	}
	var err error
	if row.SkillsOffered, err = marshalJSON(nonNil(p.SkillsOffered)); err != nil {
		return nil, err
	}
	if row.SkillsWanted, err = marshalJSON(nonNil(p.SkillsWanted)); err != nil {
		return nil, err
	}
	if row.Portfolio, err = marshalJSON(nonNil(p.Portfolio)); err != nil {
		return nil, err
	}
	if row.SocialLinks, err = marshalJSON(nonNil(p.SocialLinks)); err != nil {
		return nil, err
	}
	return row, nil
}

func (row *profileRow) toDomain() (*domain.Profile, error) {
	p := &domain.Profile{
		ID:        row.ID,
		Name:      row.Name,
		Location:  row.Location,
		Timezone:  row.Timezone,
		AvatarURL: row.AvatarURL,
		Bio:       row.Bio,
		Rating:    row.Rating,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Availability != nil {
		a := domain.Availability(*row.Availability)
		p.Availability = &a
	}
	if err := row.SkillsOffered.Unmarshal(&p.SkillsOffered); err != nil {
		return nil, fmt.Errorf("decode skills_offered of %s: %w", row.ID, err)
	}
	if err := row.SkillsWanted.Unmarshal(&p.SkillsWanted); err != nil {
		return nil, fmt.Errorf("decode skills_wanted of %s: %w", row.ID, err)
	}
	if err := row.Portfolio.Unmarshal(&p.Portfolio); err != nil {
		return nil, fmt.Errorf("decode portfolio of %s: %w", row.ID, err)
	}
	if err := row.SocialLinks.Unmarshal(&p.SocialLinks); err != nil {
		return nil, fmt.Errorf("decode social_links of %s: %w", row.ID, err)
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	row, err := newProfileRow(profile)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO profiles (
			id, name, location, timezone, avatar_url, bio, rating,
			skills_offered, skills_wanted, availability, portfolio, social_links,
			latitude, longitude, created_at
		)
		VALUES (
			:id, :name, :location, :timezone, :avatar_url, :bio, :rating,
			:skills_offered, :skills_wanted, :availability, :portfolio, :social_links,
			:latitude, :longitude, :created_at
		)
		RETURNING created_at, updated_at
	`
	rows, err := r.db.NamedQueryContext(ctx, query, row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrProfileExists
		}
		return err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT * FROM profiles WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

func (r *profileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	var rows []profileRow
	query := `SELECT * FROM profiles ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	profiles := make([]*domain.Profile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	row, err := newProfileRow(profile)
	if err != nil {
		return err
	}
	query := `
		UPDATE profiles
		SET name = :name, location = :location, timezone = :timezone,
		    avatar_url = :avatar_url, bio = :bio, rating = :rating,
		    skills_offered = :skills_offered, skills_wanted = :skills_wanted,
		    availability = :availability, portfolio = :portfolio,
		    social_links = :social_links, latitude = :latitude, longitude = :longitude,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func marshalJSON(v any) (types.JSONText, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return types.JSONText(b), nil
}

// nonNil keeps JSONB columns as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
