package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/validation"
)

// UpcomingEventsLimit caps the upcoming events feed
const UpcomingEventsLimit = 5

// EventService defines the interface for event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo repositories.IEventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

func validateEvent(req *dto.EventRequest) error {
	if !validation.NewStringValidation(req.Title).WithMaxLength(validation.TitleMaxLength).Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("title is required and must be at most %d characters", validation.TitleMaxLength))
	}

	if req.EventDate.IsZero() {
		return apperrors.NewValidationError("event_date is required")
	}

	if req.Location != nil && !validation.NewStringValidation(*req.Location).
		WithRequired(false).
		WithMaxLength(validation.LocationMaxLength).
		Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("location must be at most %d characters", validation.LocationMaxLength))
	}

	return nil
}

func normalizeEvent(req *dto.EventRequest) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = trimOptional(req.Description)
	req.Location = trimOptional(req.Location)
}

func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventServiceImpl) ListUpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, UpcomingEventsLimit)
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// CreateEvent stores a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	normalizeEvent(req)
	if err := validateEvent(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate.Time,
		Location:    req.Location,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// UpdateEvent overwrites title, description, date and location. The creator is kept.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*models.Event, error) {
	normalizeEvent(req)
	if err := validateEvent(req); err != nil {
		return nil, err
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.EventDate = req.EventDate.Time
	existing.Location = req.Location

	if err := s.eventRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
