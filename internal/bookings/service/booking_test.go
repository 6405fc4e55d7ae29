package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingserrors "github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/validator"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/config"
	apperrors "github.com/Akashajay-dot/Velocity-pro-audio/pkg/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/logger"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

// Mock repository for testing
type mockBookingRepository struct {
	insertFunc  func(ctx context.Context, booking *model.Booking) error
	findAllFunc func(ctx context.Context, limit int) ([]*model.Booking, error)
	inserted    []*model.Booking
}

func (m *mockBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	if m.insertFunc != nil {
		if err := m.insertFunc(ctx, booking); err != nil {
			return err
		}
	}
	m.inserted = append(m.inserted, booking)
	return nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit)
	}
	return []*model.Booking{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		MaxListResults: 1000,
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func strptr(s string) *string {
	return &s
}

func validInput() *model.BookingCreate {
	return &model.BookingCreate{
		Name:    strptr("Jane Doe"),
		Email:   strptr("jane@example.com"),
		Phone:   strptr("555-0100"),
		Vehicle: strptr("2020 Civic"),
		Service: strptr("oil change"),
	}
}

func newTestService(repo *mockBookingRepository) BookingService {
	cfg := testConfig()
	return NewBookingService(repo, validator.NewBookingValidator(cfg.Log), nil, cfg)
}

func TestCreate_Success(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0] != booking {
		t.Error("expected the returned record to be the inserted record")
	}
	if booking.ID == "" {
		t.Error("expected a generated id")
	}
	if booking.Status != model.StatusPending {
		t.Errorf("expected status %q, got %q", model.StatusPending, booking.Status)
	}
	if booking.Message != nil {
		t.Errorf("expected nil message, got %v", booking.Message)
	}
	if time.Since(booking.Timestamp) > 2*time.Second {
		t.Errorf("expected a fresh timestamp, got %v", booking.Timestamp)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo)

	input := validInput()
	input.Email = nil

	_, err := svc.Create(context.Background(), input)
	if err == nil {
		t.Fatal("expected an error")
	}

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected code %s, got %s", apperrors.CodeValidation, appErr.Code)
	}
	if _, present := appErr.Details["email"]; !present {
		t.Errorf("expected details to name the offending field, got %v", appErr.Details)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("expected no insert on validation failure, got %d", len(repo.inserted))
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := &mockBookingRepository{
		insertFunc: func(ctx context.Context, booking *model.Booking) error {
			return fmt.Errorf("connection reset")
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected an error")
	}

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected code %s, got %s", apperrors.CodeInternal, appErr.Code)
	}
}

func TestList_PassesConfiguredCap(t *testing.T) {
	var receivedLimit int
	repo := &mockBookingRepository{
		findAllFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
			receivedLimit = limit
			return []*model.Booking{{ID: "1"}, {ID: "2"}}, nil
		},
	}
	svc := newTestService(repo)

	bookings, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receivedLimit != 1000 {
		t.Errorf("expected limit 1000, got %d", receivedLimit)
	}
	if len(bookings) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(bookings))
	}
}

func TestList_NilBecomesEmptySlice(t *testing.T) {
	repo := &mockBookingRepository{
		findAllFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
			return nil, nil
		},
	}
	svc := newTestService(repo)

	bookings, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings == nil {
		t.Error("expected an empty slice, got nil")
	}
}

func TestList_Failures(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{
			name:    "store read failure",
			repoErr: fmt.Errorf("cursor error"),
		},
		{
			name:    "malformed stored record",
			repoErr: fmt.Errorf("%w: bad timestamp", bookingserrors.ErrMalformedRecord),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{
				findAllFunc: func(ctx context.Context, limit int) ([]*model.Booking, error) {
					return nil, tt.repoErr
				},
			}
			svc := newTestService(repo)

			_, err := svc.List(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			appErr, ok := err.(*apperrors.AppError)
			if !ok {
				t.Fatalf("expected *AppError, got %T", err)
			}
			if appErr.Code != apperrors.CodeInternal {
				t.Errorf("expected code %s, got %s", apperrors.CodeInternal, appErr.Code)
			}
			if !errors.Is(appErr, tt.repoErr) {
				t.Errorf("expected cause to be preserved, got %v", appErr.Err)
			}
		})
	}
}
