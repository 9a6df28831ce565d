package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// CampaignRepository defines persistence access for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Campaign, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
}

type campaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a Postgres-backed implementation.
func NewCampaignRepository(pool *pgxpool.Pool) CampaignRepository {
	return &campaignRepository{pool: pool}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	const query = `
        INSERT INTO campaigns (id, business_id, name, type, description, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		campaign.ID,
		campaign.BusinessID,
		campaign.Name,
		campaign.Type,
		campaign.Description,
		campaign.Status,
	).Scan(&campaign.CreatedAt)
}

func (r *campaignRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Campaign, error) {
	const query = `
        SELECT id, business_id, name, type, description, status, created_at
        FROM campaigns WHERE business_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		if err := rows.Scan(
			&campaign.ID,
			&campaign.BusinessID,
			&campaign.Name,
			&campaign.Type,
			&campaign.Description,
			&campaign.Status,
			&campaign.CreatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	const query = `SELECT COUNT(*) FROM campaigns WHERE business_id=$1`

	var count int
	if err := r.pool.QueryRow(ctx, query, businessID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
