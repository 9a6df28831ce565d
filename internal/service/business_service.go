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

// BusinessInput carries profile fields for create and update.
type BusinessInput struct {
	Name        string
	Niche       string
	Description *string
	City        *string
	State       *string
}

// BusinessService manages the one-per-user business profile.
type BusinessService struct {
	businesses repository.BusinessRepository
	dispatcher events.Dispatcher
}

// NewBusinessService builds the service.
func NewBusinessService(businesses repository.BusinessRepository, dispatcher events.Dispatcher) *BusinessService {
	return &BusinessService{businesses: businesses, dispatcher: dispatcher}
}

// Create registers the user's business profile. A second profile for the same
// user is rejected, matching the one-business-per-user model.
func (s *BusinessService) Create(ctx context.Context, userID string, input BusinessInput) (*domain.Business, error) {
	if _, err := s.businesses.GetByUserID(ctx, userID); err == nil {
		return nil, apperrors.NewValidationError("Você já possui um negócio cadastrado", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	business := &domain.Business{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Niche:       input.Niche,
		Description: input.Description,
		City:        input.City,
		State:       input.State,
	}
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventBusinessCreated,
			BusinessID: business.ID,
			Timestamp:  time.Now(),
			Payload: events.BusinessCreatedPayload{
				UserID: userID,
				Name:   business.Name,
				Niche:  business.Niche,
			},
		})
	}

	return business, nil
}

// Get returns the caller's business profile.
func (s *BusinessService) Get(ctx context.Context, userID string) (*domain.Business, error) {
	business, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Negócio", nil)
		}
		return nil, err
	}
	return business, nil
}

// Update rewrites the caller's business profile.
func (s *BusinessService) Update(ctx context.Context, userID string, input BusinessInput) (*domain.Business, error) {
	business := &domain.Business{
		UserID:      userID,
		Name:        input.Name,
		Niche:       input.Niche,
		Description: input.Description,
		City:        input.City,
		State:       input.State,
	}
	if err := s.businesses.UpdateByUserID(ctx, business); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Negócio", nil)
		}
		return nil, err
	}
	return business, nil
}

// ForUser resolves the caller's business or fails with the onboarding notice.
// Every business-scoped operation goes through this gate.
func (s *BusinessService) ForUser(ctx context.Context, userID string) (*domain.Business, error) {
	business, err := s.businesses.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Negócio", map[string]any{
				"hint": "Configure seu negócio primeiro.",
			})
		}
		return nil, err
	}
	return business, nil
}
