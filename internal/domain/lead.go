package domain

import "time"

// LeadStatus tracks a lead through the pipeline.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// LeadSourceManual marks leads entered by hand; landing-page captures carry
// a "landing_page:<slug>" source instead.
const LeadSourceManual = "manual"

// Lead is a captured prospect belonging to a business.
type Lead struct {
	ID         string
	BusinessID string
	Name       string
	Email      *string
	Phone      *string
	Interest   *string
	Source     string
	Status     LeadStatus
	CreatedAt  time.Time
}
