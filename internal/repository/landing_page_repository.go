package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/radarclientes/radar-service/internal/domain"
)

// LandingPageRepository defines persistence access for landing pages.
type LandingPageRepository interface {
	Create(ctx context.Context, page *domain.LandingPage) error
	ListByBusiness(ctx context.Context, businessID string) ([]domain.LandingPage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.LandingPage, error)
	IncrementVisits(ctx context.Context, slug string) error
	IncrementConversions(ctx context.Context, slug string) error
}

type landingPageRepository struct {
	pool *pgxpool.Pool
}

// NewLandingPageRepository returns a Postgres-backed implementation.
func NewLandingPageRepository(pool *pgxpool.Pool) LandingPageRepository {
	return &landingPageRepository{pool: pool}
}

func (r *landingPageRepository) Create(ctx context.Context, page *domain.LandingPage) error {
	const query = `
        INSERT INTO landing_pages (id, business_id, title, headline, description, offer, cta_text, slug, visits, conversions)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		page.ID,
		page.BusinessID,
		page.Title,
		page.Headline,
		page.Description,
		page.Offer,
		page.CTAText,
		page.Slug,
	).Scan(&page.CreatedAt)
}

func (r *landingPageRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.LandingPage, error) {
	const query = `
        SELECT id, business_id, title, headline, description, offer, cta_text, slug, visits, conversions, created_at
        FROM landing_pages WHERE business_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.LandingPage
	for rows.Next() {
		var page domain.LandingPage
		if err := scanLandingPage(rows.Scan, &page); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func (r *landingPageRepository) GetBySlug(ctx context.Context, slug string) (*domain.LandingPage, error) {
	const query = `
        SELECT id, business_id, title, headline, description, offer, cta_text, slug, visits, conversions, created_at
        FROM landing_pages WHERE slug=$1`

	var page domain.LandingPage
	if err := scanLandingPage(r.pool.QueryRow(ctx, query, slug).Scan, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *landingPageRepository) IncrementVisits(ctx context.Context, slug string) error {
	return r.increment(ctx, `UPDATE landing_pages SET visits=visits+1 WHERE slug=$1`, slug)
}

func (r *landingPageRepository) IncrementConversions(ctx context.Context, slug string) error {
	return r.increment(ctx, `UPDATE landing_pages SET conversions=conversions+1 WHERE slug=$1`, slug)
}

func (r *landingPageRepository) increment(ctx context.Context, query, slug string) error {
	cmd, err := r.pool.Exec(ctx, query, slug)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanLandingPage(scan func(dest ...any) error, page *domain.LandingPage) error {
	return scan(
		&page.ID,
		&page.BusinessID,
		&page.Title,
		&page.Headline,
		&page.Description,
		&page.Offer,
		&page.CTAText,
		&page.Slug,
		&page.Visits,
		&page.Conversions,
		&page.CreatedAt,
	)
}
