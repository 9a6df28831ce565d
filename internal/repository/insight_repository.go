package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// InsightRepository defines persistence access for generated insights.
type InsightRepository interface {
	Create(ctx context.Context, insight *domain.Insight) error
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Insight, error)
}

type insightRepository struct {
	pool *pgxpool.Pool
}

// NewInsightRepository returns a Postgres-backed implementation.
func NewInsightRepository(pool *pgxpool.Pool) InsightRepository {
	return &insightRepository{pool: pool}
}

func (r *insightRepository) Create(ctx context.Context, insight *domain.Insight) error {
	const query = `
        INSERT INTO insights (id, business_id, type, niche, content)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		insight.ID,
		insight.BusinessID,
		insight.Type,
		insight.Niche,
		insight.Content,
	).Scan(&insight.CreatedAt)
}

func (r *insightRepository) ListByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Insight, error) {
	const query = `
        SELECT id, business_id, type, niche, content, created_at
        FROM insights WHERE business_id=$1
        ORDER BY created_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []domain.Insight
	for rows.Next() {
		var insight domain.Insight
		if err := rows.Scan(
			&insight.ID,
			&insight.BusinessID,
			&insight.Type,
			&insight.Niche,
			&insight.Content,
			&insight.CreatedAt,
		); err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}
	return insights, rows.Err()
}
