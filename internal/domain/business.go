package domain

import "time"

// Business is the per-user business profile. Each user owns at most one;
// its absence means onboarding has not been completed.
type Business struct {
	ID          string
	UserID      string
	Name        string
	Niche       string
	Description *string
	City        *string
	State       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
