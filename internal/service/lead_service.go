package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/radarclientes/radar-service/internal/domain"
	"github.com/radarclientes/radar-service/internal/events"
	"github.com/radarclientes/radar-service/internal/repository"
	apperrors "github.com/radarclientes/radar-service/pkg/util"
)

// LeadInput carries lead fields supplied by the owner or a landing page.
type LeadInput struct {
	Name     string
	Email    *string
	Phone    *string
	Interest *string
	Source   string
}

// LeadService manages the lead pipeline of a business.
type LeadService struct {
	leads      repository.LeadRepository
	businesses *BusinessService
	dispatcher events.Dispatcher
}

// NewLeadService builds the service.
func NewLeadService(leads repository.LeadRepository, businesses *BusinessService, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{leads: leads, businesses: businesses, dispatcher: dispatcher}
}

// Create records a lead for the caller's business.
func (s *LeadService) Create(ctx context.Context, userID string, input LeadInput) (*domain.Lead, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.capture(ctx, business.ID, input)
}

// List returns all leads of the caller's business, newest first.
func (s *LeadService) List(ctx context.Context, userID string) ([]domain.Lead, error) {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.leads.ListByBusiness(ctx, business.ID)
}

// UpdateStatus moves a lead through the pipeline.
func (s *LeadService) UpdateStatus(ctx context.Context, userID, leadID string, status domain.LeadStatus) error {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.leads.UpdateStatus(ctx, business.ID, leadID, status); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Lead", nil)
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLeadStatusChanged,
			BusinessID: business.ID,
			Timestamp:  time.Now(),
			Payload:    events.LeadStatusChangedPayload{LeadID: leadID, NewStatus: status},
		})
	}
	return nil
}

// Delete removes a lead from the caller's business.
func (s *LeadService) Delete(ctx context.Context, userID, leadID string) error {
	business, err := s.businesses.ForUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.leads.Delete(ctx, business.ID, leadID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Lead", nil)
		}
		return err
	}
	return nil
}

// capture inserts a lead for a known business and publishes the event.
// Landing-page captures reuse it with the page's business id.
func (s *LeadService) capture(ctx context.Context, businessID string, input LeadInput) (*domain.Lead, error) {
	source := input.Source
	if source == "" {
		source = domain.LeadSourceManual
	}

	lead := &domain.Lead{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Interest:   input.Interest,
		Source:     source,
		Status:     domain.LeadStatusNew,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventLeadCaptured,
			BusinessID: businessID,
			Timestamp:  time.Now(),
			Payload:    events.LeadCapturedPayload{LeadID: lead.ID, Name: lead.Name, Source: lead.Source},
		})
	}
	return lead, nil
}
