package events

import (
	"time"

	"github.com/radarclientes/radar-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBusinessCreated   EventType = "business_created"
	EventLeadCaptured      EventType = "lead_captured"
	EventLeadStatusChanged EventType = "lead_status_changed"
	EventReportGenerated   EventType = "report_generated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	BusinessID string      `json:"business_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// BusinessCreatedPayload payload.
type BusinessCreatedPayload struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Niche  string `json:"niche"`
}

// LeadCapturedPayload payload.
type LeadCapturedPayload struct {
	LeadID string `json:"lead_id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// LeadStatusChangedPayload payload.
type LeadStatusChangedPayload struct {
	LeadID    string            `json:"lead_id"`
	NewStatus domain.LeadStatus `json:"new_status"`
}

// ReportGeneratedPayload payload.
type ReportGeneratedPayload struct {
	ReportID string              `json:"report_id"`
	Period   domain.ReportPeriod `json:"period"`
}
