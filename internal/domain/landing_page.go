package domain

import "time"

// LandingPage is a public lead-capture page addressed by slug.
type LandingPage struct {
	ID          string
	BusinessID  string
	Title       string
	Headline    string
	Description string
	Offer       string
	CTAText     string
	Slug        string
	Visits      int
	Conversions int
	CreatedAt   time.Time
}
