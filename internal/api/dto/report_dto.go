package dto

import (
	"encoding/json"
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// ReportRequest selects the report window.
type ReportRequest struct {
	Period string `json:"period"`
}

// ReportResponse is the wire shape of a persisted report. Data carries the
// dashboard snapshot exactly as stored.
type ReportResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Period     string          `json:"period"`
	Data       json.RawMessage `json:"data"`
	Analysis   string          `json:"analysis"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewReportResponse maps the domain model onto the wire shape.
func NewReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:         report.ID,
		BusinessID: report.BusinessID,
		Period:     string(report.Period),
		Data:       json.RawMessage(report.Data),
		Analysis:   report.Analysis,
		CreatedAt:  report.CreatedAt,
	}
}
