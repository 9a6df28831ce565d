package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radarclientes/radar-service/internal/config"
	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/events"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

type reportFixture struct {
	reports    *ReportService
	leads      *LeadService
	pages      *LandingPageService
	reportRepo *fakeReportRepo
	dispatcher *recordingDispatcher
	generator  *staticGenerator
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	businesses := NewBusinessService(newFakeBusinessRepo(), nil)
	_, err := businesses.Create(context.Background(), "u1", BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.NoError(t, err)

	leadRepo := newFakeLeadRepo()
	pageRepo := newFakeLandingPageRepo()
	reportRepo := newFakeReportRepo()
	generator := &staticGenerator{content: "Resumo executivo da semana."}

	leadSvc := NewLeadService(leadRepo, businesses, nil)
	pageSvc := NewLandingPageService(pageRepo, businesses, leadSvc, nil)
	insightSvc := NewInsightService(newFakeInsightRepo(), businesses, generator, nil, config.AIConfig{RequestTimeoutSec: 5}, zap.NewNop())

	return &reportFixture{
		reports:    NewReportService(leadRepo, newFakeCampaignRepo(), pageRepo, reportRepo, businesses, insightSvc, dispatcher),
		leads:      leadSvc,
		pages:      pageSvc,
		reportRepo: reportRepo,
		dispatcher: dispatcher,
		generator:  generator,
	}
}

func TestDashboardAggregatesNumbers(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	page, err := f.pages.Create(ctx, "u1", LandingPageInput{Title: "Promo", Headline: "Oi", Offer: "30% off"})
	require.NoError(t, err)

	// Two visits, one conversion.
	_, err = f.pages.PublicPage(ctx, page.Slug)
	require.NoError(t, err)
	_, err = f.pages.PublicPage(ctx, page.Slug)
	require.NoError(t, err)
	require.NoError(t, f.pages.CaptureLead(ctx, page.Slug, LeadInput{Name: "João"}))

	lead, err := f.leads.Create(ctx, "u1", LeadInput{Name: "Maria"})
	require.NoError(t, err)
	require.NoError(t, f.leads.UpdateStatus(ctx, "u1", lead.ID, domain.LeadStatusConverted))

	dashboard, err := f.reports.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 2, dashboard.Overview.TotalLeads)
	require.Equal(t, 1, dashboard.Overview.TotalPages)
	require.Equal(t, 2, dashboard.Overview.TotalVisits)
	require.Equal(t, 1, dashboard.Overview.TotalConversions)
	require.Equal(t, 50.0, dashboard.Overview.ConversionRate)
	require.Equal(t, 1, dashboard.LeadsByStatus["new"])
	require.Equal(t, 1, dashboard.LeadsByStatus["converted"])
	require.Len(t, dashboard.RecentLeads, 2)
	require.Equal(t, "Maria", dashboard.RecentLeads[0].Name)
}

func TestDashboardEmptyBusiness(t *testing.T) {
	f := newReportFixture(t)

	dashboard, err := f.reports.Dashboard(context.Background(), "u1")
	require.NoError(t, err)
	require.Zero(t, dashboard.Overview.TotalLeads)
	require.Zero(t, dashboard.Overview.ConversionRate)
	require.Empty(t, dashboard.RecentLeads)
}

func TestDashboardRequiresBusiness(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.reports.Dashboard(context.Background(), "u-sem-negocio")
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestGenerateReportPersistsSnapshot(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.leads.Create(ctx, "u1", LeadInput{Name: "Maria"})
	require.NoError(t, err)

	generated, err := f.reports.Generate(ctx, "u1", domain.ReportWeekly)
	require.NoError(t, err)
	require.Equal(t, "Resumo executivo da semana.", generated.Report)
	require.Equal(t, domain.ReportWeekly, generated.Period)
	require.Equal(t, 1, generated.Data.Overview.TotalLeads)
	require.Equal(t, []events.EventType{events.EventReportGenerated}, f.dispatcher.types())

	history, err := f.reports.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)

	var snapshot DashboardData
	require.NoError(t, json.Unmarshal(history[0].Data, &snapshot))
	require.Equal(t, 1, snapshot.Overview.TotalLeads)
}

func TestGenerateReportBypassesCache(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.reports.Generate(ctx, "u1", domain.ReportDaily)
	require.NoError(t, err)
	_, err = f.reports.Generate(ctx, "u1", domain.ReportDaily)
	require.NoError(t, err)

	// Each report reflects the numbers at generation time.
	require.Equal(t, 2, f.generator.calls)
}

func TestReportHistoryCapsAtTen(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := f.reports.Generate(ctx, "u1", domain.ReportMonthly)
		require.NoError(t, err)
	}

	history, err := f.reports.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 10)
}
