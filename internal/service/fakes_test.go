package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/events"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeBusinessRepo struct {
	mu     sync.Mutex
	byUser map[string]*domain.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{byUser: make(map[string]*domain.Business)}
}

func (r *fakeBusinessRepo) Create(_ context.Context, business *domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	business.CreatedAt = time.Now()
	r.byUser[business.UserID] = business
	return nil
}

func (r *fakeBusinessRepo) GetByUserID(_ context.Context, userID string) (*domain.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if business, ok := r.byUser[userID]; ok {
		return business, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*domain.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, business := range r.byUser {
		if business.ID == id {
			return business, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBusinessRepo) UpdateByUserID(_ context.Context, business *domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byUser[business.UserID]
	if !ok {
		return pgx.ErrNoRows
	}
	business.ID = existing.ID
	business.CreatedAt = existing.CreatedAt
	r.byUser[business.UserID] = business
	return nil
}

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads []*domain.Lead
}

func newFakeLeadRepo() *fakeLeadRepo { return &fakeLeadRepo{} }

func (r *fakeLeadRepo) Create(_ context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead.CreatedAt = time.Now()
	r.leads = append(r.leads, lead)
	return nil
}

func (r *fakeLeadRepo) ListByBusiness(_ context.Context, businessID string) ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Lead, 0)
	for i := len(r.leads) - 1; i >= 0; i-- {
		if r.leads[i].BusinessID == businessID {
			out = append(out, *r.leads[i])
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) RecentByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Lead, error) {
	all, err := r.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLeadRepo) UpdateStatus(_ context.Context, businessID, leadID string, status domain.LeadStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lead := range r.leads {
		if lead.ID == leadID && lead.BusinessID == businessID {
			lead.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeLeadRepo) Delete(_ context.Context, businessID, leadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, lead := range r.leads {
		if lead.ID == leadID && lead.BusinessID == businessID {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeLeadRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	all, err := r.ListByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *fakeLeadRepo) StatusCounts(ctx context.Context, businessID string) (map[string]int, error) {
	all, err := r.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, lead := range all {
		counts[string(lead.Status)]++
	}
	return counts, nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns []*domain.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo { return &fakeCampaignRepo{} }

func (r *fakeCampaignRepo) Create(_ context.Context, campaign *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign.CreatedAt = time.Now()
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

func (r *fakeCampaignRepo) ListByBusiness(_ context.Context, businessID string) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Campaign, 0)
	for _, campaign := range r.campaigns {
		if campaign.BusinessID == businessID {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	all, err := r.ListByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

type fakeLandingPageRepo struct {
	mu    sync.Mutex
	pages []*domain.LandingPage
}

func newFakeLandingPageRepo() *fakeLandingPageRepo { return &fakeLandingPageRepo{} }

func (r *fakeLandingPageRepo) Create(_ context.Context, page *domain.LandingPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	page.CreatedAt = time.Now()
	r.pages = append(r.pages, page)
	return nil
}

func (r *fakeLandingPageRepo) ListByBusiness(_ context.Context, businessID string) ([]domain.LandingPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LandingPage, 0)
	for _, page := range r.pages {
		if page.BusinessID == businessID {
			out = append(out, *page)
		}
	}
	return out, nil
}

func (r *fakeLandingPageRepo) GetBySlug(_ context.Context, slug string) (*domain.LandingPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, page := range r.pages {
		if page.Slug == slug {
			return page, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLandingPageRepo) IncrementVisits(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, page := range r.pages {
		if page.Slug == slug {
			page.Visits++
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeLandingPageRepo) IncrementConversions(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, page := range r.pages {
		if page.Slug == slug {
			page.Conversions++
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeInsightRepo struct {
	mu       sync.Mutex
	insights []*domain.Insight
}

func newFakeInsightRepo() *fakeInsightRepo { return &fakeInsightRepo{} }

func (r *fakeInsightRepo) Create(_ context.Context, insight *domain.Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	insight.CreatedAt = time.Now()
	r.insights = append(r.insights, insight)
	return nil
}

func (r *fakeInsightRepo) ListByBusiness(_ context.Context, businessID string, limit int) ([]domain.Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Insight, 0)
	for i := len(r.insights) - 1; i >= 0 && len(out) < limit; i-- {
		if r.insights[i].BusinessID == businessID {
			out = append(out, *r.insights[i])
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports []*domain.Report
}

func newFakeReportRepo() *fakeReportRepo { return &fakeReportRepo{} }

func (r *fakeReportRepo) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.CreatedAt = time.Now()
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) ListByBusiness(_ context.Context, businessID string, limit int) ([]domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Report, 0)
	for i := len(r.reports) - 1; i >= 0 && len(out) < limit; i-- {
		if r.reports[i].BusinessID == businessID {
			out = append(out, *r.reports[i])
		}
	}
	return out, nil
}

type staticGenerator struct {
	content string
	err     error
	calls   int
}

func (g *staticGenerator) Generate(context.Context, string, string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.content, nil
}

type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.published))
	for _, event := range d.published {
		out = append(out, event.Type)
	}
	return out
}
