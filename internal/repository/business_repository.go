package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// BusinessRepository defines persistence access for business profiles.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	GetByUserID(ctx context.Context, userID string) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	UpdateByUserID(ctx context.Context, business *domain.Business) error
}

type businessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository returns a Postgres-backed implementation.
func NewBusinessRepository(pool *pgxpool.Pool) BusinessRepository {
	return &businessRepository{pool: pool}
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	const query = `
        INSERT INTO businesses (id, user_id, name, niche, description, city, state)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		business.ID,
		business.UserID,
		business.Name,
		business.Niche,
		business.Description,
		business.City,
		business.State,
	).Scan(&business.CreatedAt, &business.UpdatedAt)
}

func (r *businessRepository) GetByUserID(ctx context.Context, userID string) (*domain.Business, error) {
	const query = `
        SELECT id, user_id, name, niche, description, city, state, created_at, updated_at
        FROM businesses WHERE user_id=$1`

	return r.scanOne(ctx, query, userID)
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	const query = `
        SELECT id, user_id, name, niche, description, city, state, created_at, updated_at
        FROM businesses WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

// UpdateByUserID rewrites profile fields for the user's business. The row is
// addressed by owner, matching the one-business-per-user model.
func (r *businessRepository) UpdateByUserID(ctx context.Context, business *domain.Business) error {
	const query = `
        UPDATE businesses SET name=$1, niche=$2, description=$3, city=$4, state=$5, updated_at=NOW()
        WHERE user_id=$6
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		business.Name,
		business.Niche,
		business.Description,
		business.City,
		business.State,
		business.UserID,
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)
}

func (r *businessRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Business, error) {
	var business domain.Business
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&business.ID,
		&business.UserID,
		&business.Name,
		&business.Niche,
		&business.Description,
		&business.City,
		&business.State,
		&business.CreatedAt,
		&business.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &business, nil
}
