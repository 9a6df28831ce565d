package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// ReportRepository defines persistence access for generated reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Report, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (id, business_id, period, data, analysis)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		report.ID,
		report.BusinessID,
		report.Period,
		report.Data,
		report.Analysis,
	).Scan(&report.CreatedAt)
}

func (r *reportRepository) ListByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Report, error) {
	const query = `
        SELECT id, business_id, period, data, analysis, created_at
        FROM reports WHERE business_id=$1
        ORDER BY created_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.BusinessID,
			&report.Period,
			&report.Data,
			&report.Analysis,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
