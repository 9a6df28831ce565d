package client

import (
	"context"
	"encoding/json"
	"time"
)

// User is the signed-in account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Business is the per-user business profile.
type Business struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Niche       string    `json:"niche"`
	Description *string   `json:"description"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
}

// BusinessInput carries business profile fields for create and update.
type BusinessInput struct {
	Name        string  `json:"name"`
	Niche       string  `json:"niche"`
	Description *string `json:"description,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
}

// Lead is a captured prospect.
type Lead struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Interest   *string   `json:"interest"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeadInput carries lead fields for creation and public capture.
type LeadInput struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Interest *string `json:"interest,omitempty"`
	Source   string  `json:"source,omitempty"`
}

// Campaign is a marketing campaign.
type Campaign struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CampaignInput carries campaign fields for creation.
type CampaignInput struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// LandingPage is the owner's view of a capture page.
type LandingPage struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Title       string    `json:"title"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	Offer       string    `json:"offer"`
	CTAText     string    `json:"cta_text"`
	Slug        string    `json:"slug"`
	Visits      int       `json:"visits"`
	Conversions int       `json:"conversions"`
	CreatedAt   time.Time `json:"created_at"`
}

// LandingPageInput carries page content for creation.
type LandingPageInput struct {
	Title       string `json:"title"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Offer       string `json:"offer"`
	CTAText     string `json:"cta_text,omitempty"`
}

// PublicPage is the anonymous view of a capture page.
type PublicPage struct {
	Title       string `json:"title"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Offer       string `json:"offer"`
	CTAText     string `json:"cta_text"`
}

// Dashboard is the reporting overview payload.
type Dashboard struct {
	Overview struct {
		TotalLeads       int     `json:"total_leads"`
		TotalCampaigns   int     `json:"total_campaigns"`
		TotalPages       int     `json:"total_pages"`
		TotalVisits      int     `json:"total_visits"`
		TotalConversions int     `json:"total_conversions"`
		ConversionRate   float64 `json:"conversion_rate"`
	} `json:"overview"`
	RecentLeads      []Lead         `json:"recent_leads"`
	LeadsByStatus    map[string]int `json:"leads_by_status"`
	PagesPerformance []struct {
		Title       string `json:"title"`
		Visits      int    `json:"visits"`
		Conversions int    `json:"conversions"`
	} `json:"pages_performance"`
}

// GeneratedReport is the response of report generation.
type GeneratedReport struct {
	Report      string    `json:"report"`
	Data        Dashboard `json:"data"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Report is a persisted report from the history endpoint.
type Report struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Period     string          `json:"period"`
	Data       json.RawMessage `json:"data"`
	Analysis   string          `json:"analysis"`
	CreatedAt  time.Time       `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Me resolves the current user from the carried token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBusiness fetches the current user's business profile.
func (c *Client) GetBusiness(ctx context.Context) (*Business, error) {
	var business Business
	if err := c.Get(ctx, "/business", &business); err != nil {
		return nil, err
	}
	return &business, nil
}

// CreateBusiness registers the business profile.
func (c *Client) CreateBusiness(ctx context.Context, input BusinessInput) (*Business, error) {
	var business Business
	if err := c.Post(ctx, "/business", input, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

// UpdateBusiness rewrites the business profile.
func (c *Client) UpdateBusiness(ctx context.Context, input BusinessInput) (*Business, error) {
	var business Business
	if err := c.Put(ctx, "/business", input, &business); err != nil {
		return nil, err
	}
	return &business, nil
}

// CreateLead records a lead manually.
func (c *Client) CreateLead(ctx context.Context, input LeadInput) (*Lead, error) {
	var lead Lead
	if err := c.Post(ctx, "/leads", input, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Leads lists all leads, newest first.
func (c *Client) Leads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	if err := c.Get(ctx, "/leads", &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead through the pipeline.
func (c *Client) UpdateLeadStatus(ctx context.Context, leadID, status string) error {
	body := map[string]string{"status": status}
	return c.Put(ctx, "/leads/"+leadID+"/status", body, nil)
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, leadID string) error {
	return c.Delete(ctx, "/leads/"+leadID, nil)
}

// CreateCampaign records a campaign.
func (c *Client) CreateCampaign(ctx context.Context, input CampaignInput) (*Campaign, error) {
	var campaign Campaign
	if err := c.Post(ctx, "/campaigns", input, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Campaigns lists all campaigns.
func (c *Client) Campaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	if err := c.Get(ctx, "/campaigns", &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CreateLandingPage publishes a capture page.
func (c *Client) CreateLandingPage(ctx context.Context, input LandingPageInput) (*LandingPage, error) {
	var page LandingPage
	if err := c.Post(ctx, "/landing-pages", input, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// LandingPages lists the owner's capture pages.
func (c *Client) LandingPages(ctx context.Context) ([]LandingPage, error) {
	var pages []LandingPage
	if err := c.Get(ctx, "/landing-pages", &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// PublicLandingPage fetches a page anonymously by slug.
func (c *Client) PublicLandingPage(ctx context.Context, slug string) (*PublicPage, error) {
	var page PublicPage
	if err := c.Get(ctx, "/p/"+slug, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SubmitPublicLead captures a visitor signup on a public page.
func (c *Client) SubmitPublicLead(ctx context.Context, slug string, input LeadInput) error {
	return c.Post(ctx, "/p/"+slug+"/lead", input, nil)
}

// MarketInsight generates a market analysis. The returned payload is parsed
// once at this boundary into its structured or free-text form.
func (c *Client) MarketInsight(ctx context.Context, niche, city, insightType string) (*Insight, error) {
	body := map[string]string{"niche": niche, "city": city, "type": insightType}
	var resp struct {
		Insight string `json:"insight"`
		Type    string `json:"type"`
	}
	if err := c.Post(ctx, "/insights/market", body, &resp); err != nil {
		return nil, err
	}
	insight := ParseInsight(resp.Insight)
	return &insight, nil
}

// Strategy generates strategy content, parsed the same way.
func (c *Client) Strategy(ctx context.Context, niche, strategyType string) (*Insight, error) {
	body := map[string]string{"niche": niche, "insight_type": strategyType}
	var resp struct {
		Strategy string `json:"strategy"`
		Type     string `json:"type"`
	}
	if err := c.Post(ctx, "/insights/strategy", body, &resp); err != nil {
		return nil, err
	}
	insight := ParseInsight(resp.Strategy)
	return &insight, nil
}

// InsightRecord is one persisted insight from the history endpoint.
type InsightRecord struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Type       string    `json:"type"`
	Niche      string    `json:"niche"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsightHistory lists the latest persisted insights.
func (c *Client) InsightHistory(ctx context.Context) ([]InsightRecord, error) {
	var insights []InsightRecord
	if err := c.Get(ctx, "/insights/history", &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

// GetDashboard fetches the reporting overview.
func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.Get(ctx, "/reports/dashboard", &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// GenerateReport produces and persists an executive report.
func (c *Client) GenerateReport(ctx context.Context, period string) (*GeneratedReport, error) {
	body := map[string]string{"period": period}
	var report GeneratedReport
	if err := c.Post(ctx, "/reports/generate", body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ReportHistory lists the latest persisted reports.
func (c *Client) ReportHistory(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.Get(ctx, "/reports/history", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
