package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/radarclientes/radar-service/internal/ai"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/events"
	"github.com/radarclientes/radar-service/internal/repository"
)

// DashboardOverview aggregates headline numbers for a business.
type DashboardOverview struct {
	TotalLeads       int     `json:"total_leads"`
	TotalCampaigns   int     `json:"total_campaigns"`
	TotalPages       int     `json:"total_pages"`
	TotalVisits      int     `json:"total_visits"`
	TotalConversions int     `json:"total_conversions"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// LeadSummary is the dashboard view of a lead.
type LeadSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PagePerformance is the dashboard view of one landing page's traffic.
type PagePerformance struct {
	Title       string `json:"title"`
	Visits      int    `json:"visits"`
	Conversions int    `json:"conversions"`
}

// DashboardData is the full dashboard payload and the input snapshot for
// generated reports.
type DashboardData struct {
	Overview         DashboardOverview `json:"overview"`
	RecentLeads      []LeadSummary     `json:"recent_leads"`
	LeadsByStatus    map[string]int    `json:"leads_by_status"`
	PagesPerformance []PagePerformance `json:"pages_performance"`
}

// GeneratedReport is the response for report generation.
type GeneratedReport struct {
	Report      string              `json:"report"`
	Data        DashboardData       `json:"data"`
	Period      domain.ReportPeriod `json:"period"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ReportService aggregates dashboard numbers and generates executive reports.
type ReportService struct {
	leads      repository.LeadRepository
	campaigns  repository.CampaignRepository
	pages      repository.LandingPageRepository
	reports    repository.ReportRepository
	businesses *BusinessService
	insights   *InsightService
	dispatcher events.Dispatcher
}

// NewReportService builds the service.
func NewReportService(
	leads repository.LeadRepository,
	campaigns repository.CampaignRepository,
	pages repository.LandingPageRepository,
	reports repository.ReportRepository,
	businesses *BusinessService,
	insights *InsightService,
	dispatcher events.Dispatcher,
) *ReportService {
	return &ReportService{
		leads:      leads,
		campaigns:  campaigns,
		pages:      pages,
		reports:    reports,
		businesses: businesses,
		insights:   insights,
		dispatcher: dispatcher,
	}
}

// Dashboard assembles the current numbers for the caller's business.
func (s *ReportService) Dashboard(ctx context.Context, userID string) (*DashboardData, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.dashboardFor(ctx, business)
}

func (s *ReportService) dashboardFor(ctx context.Context, business *domain.Business) (*DashboardData, error) {
	leadCount, err := s.leads.CountByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	campaignCount, err := s.campaigns.CountByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.leads.RecentByBusiness(ctx, business.ID, 5)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.leads.StatusCounts(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	totalVisits, totalConversions := 0, 0
	performance := make([]PagePerformance, 0, len(pages))
	for _, page := range pages {
		totalVisits += page.Visits
		totalConversions += page.Conversions
		performance = append(performance, PagePerformance{
			Title:       page.Title,
			Visits:      page.Visits,
			Conversions: page.Conversions,
		})
	}

	conversionRate := 0.0
	if totalVisits > 0 {
		conversionRate = math.Round(float64(totalConversions)/float64(totalVisits)*100*100) / 100
	}

	recentLeads := make([]LeadSummary, 0, len(recent))
	for _, lead := range recent {
		recentLeads = append(recentLeads, LeadSummary{
			ID:        lead.ID,
			Name:      lead.Name,
			Email:     lead.Email,
			Source:    lead.Source,
			Status:    string(lead.Status),
			CreatedAt: lead.CreatedAt,
		})
	}

	return &DashboardData{
		Overview: DashboardOverview{
			TotalLeads:       leadCount,
			TotalCampaigns:   campaignCount,
			TotalPages:       len(pages),
			TotalVisits:      totalVisits,
			TotalConversions: totalConversions,
			ConversionRate:   conversionRate,
		},
		RecentLeads:      recentLeads,
		LeadsByStatus:    statusCounts,
		PagesPerformance: performance,
	}, nil
}

// Generate produces an executive report from the current dashboard numbers
// and persists it.
func (s *ReportService) Generate(ctx context.Context, userID string, period domain.ReportPeriod) (*GeneratedReport, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard, err := s.dashboardFor(ctx, business)
	if err != nil {
		return nil, err
	}

	prompt := ai.ReportPrompt(period, business.Niche,
		dashboard.Overview.TotalLeads,
		dashboard.Overview.TotalCampaigns,
		dashboard.Overview.TotalPages,
		dashboard.Overview.TotalVisits,
		dashboard.Overview.TotalConversions,
		dashboard.Overview.ConversionRate,
	)
	// Reports always reflect the numbers at generation time; never cached.
	analysis := s.insights.Generate(ctx, "", ai.ReportSystemMessage, prompt)

	snapshot, err := json.Marshal(dashboard)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		Period:     period,
		Data:       snapshot,
		Analysis:   analysis,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventReportGenerated,
			BusinessID: business.ID,
			Timestamp:  time.Now(),
			Payload:    events.ReportGeneratedPayload{ReportID: report.ID, Period: period},
		})
	}

	return &GeneratedReport{
		Report:      analysis,
		Data:        *dashboard,
		Period:      period,
		GeneratedAt: report.CreatedAt,
	}, nil
}

// History returns the latest persisted reports.
func (s *ReportService) History(ctx context.Context, userID string) ([]domain.Report, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.reports.ListByBusiness(ctx, business.ID, 10)
}
