package service

import (
	"context"
	"errors"

	bookingserrors "github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/repository"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/validator"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/events"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/config"
	apperrors "github.com/Akashajay-dot/Velocity-pro-audio/pkg/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, input *model.BookingCreate) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    *events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	events *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

// Create validates a submission, enriches it into a full record and performs
// exactly one durable insert. Validation failures never reach the store.
func (s *bookingService) Create(ctx context.Context, input *model.BookingCreate) (*model.Booking, error) {
	booking, err := s.validator.ValidateAndBuild(input)
	if err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", validationDetails(err))
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "operation", "insert", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	// Best effort: a lost event never fails or retries the booking itself.
	if err := s.events.PublishBookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"service", booking.Service,
	)
	return booking, nil
}

// List returns up to the configured cap of stored bookings in storage-native
// order. One malformed record fails the whole listing.
func (s *bookingService) List(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, s.cfg.MaxListResults)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrMalformedRecord) {
			s.cfg.Log.Error("Malformed booking record in store", "operation", "findAll", "error", err)
			return nil, apperrors.Internal("Failed to read bookings", err)
		}
		s.cfg.Log.Error("Failed to list bookings", "operation", "findAll", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

func validationDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]any{"error": err.Error()}
	}

	details := make(map[string]any, len(verrs))
	for _, ve := range verrs {
		details[ve.Field] = ve.Message
	}
	return details
}
