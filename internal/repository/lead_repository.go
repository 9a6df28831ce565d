package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// LeadRepository defines persistence access for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Lead, error)
	RecentByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, businessID, leadID string, status domain.LeadStatus) error
	Delete(ctx context.Context, businessID, leadID string) error
	CountByBusiness(ctx context.Context, businessID string) (int, error)
	StatusCounts(ctx context.Context, businessID string) (map[string]int, error)
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a Postgres-backed implementation.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (id, business_id, name, email, phone, interest, source, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		lead.ID,
		lead.BusinessID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Interest,
		lead.Source,
		lead.Status,
	).Scan(&lead.CreatedAt)
}

func (r *leadRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Lead, error) {
	const query = `
        SELECT id, business_id, name, email, phone, interest, source, status, created_at
        FROM leads WHERE business_id=$1
        ORDER BY created_at DESC`

	return r.queryLeads(ctx, query, businessID)
}

func (r *leadRepository) RecentByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Lead, error) {
	const query = `
        SELECT id, business_id, name, email, phone, interest, source, status, created_at
        FROM leads WHERE business_id=$1
        ORDER BY created_at DESC
        LIMIT $2`

	return r.queryLeads(ctx, query, businessID, limit)
}

func (r *leadRepository) UpdateStatus(ctx context.Context, businessID, leadID string, status domain.LeadStatus) error {
	const query = `UPDATE leads SET status=$1 WHERE id=$2 AND business_id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, leadID, businessID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, businessID, leadID string) error {
	const query = `DELETE FROM leads WHERE id=$1 AND business_id=$2`

	cmd, err := r.pool.Exec(ctx, query, leadID, businessID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	const query = `SELECT COUNT(*) FROM leads WHERE business_id=$1`

	var count int
	if err := r.pool.QueryRow(ctx, query, businessID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leadRepository) StatusCounts(ctx context.Context, businessID string) (map[string]int, error) {
	const query = `SELECT status, COUNT(*) FROM leads WHERE business_id=$1 GROUP BY status`

	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *leadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.BusinessID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Interest,
			&lead.Source,
			&lead.Status,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
