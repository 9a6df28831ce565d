package domain

import "time"

// ReportPeriod covers the supported report windows.
type ReportPeriod string

const (
	ReportDaily   ReportPeriod = "daily"
	ReportWeekly  ReportPeriod = "weekly"
	ReportMonthly ReportPeriod = "monthly"
)

// Report is a persisted executive report: the dashboard numbers it was
// generated from plus the generated analysis text.
type Report struct {
	ID         string
	BusinessID string
	Period     ReportPeriod
	Data       []byte // dashboard snapshot, JSON
	Analysis   string
	CreatedAt  time.Time
}
