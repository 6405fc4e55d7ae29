package repository

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bookingserrors "github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

func rawValue(t *testing.T, v any) bson.RawValue {
	t.Helper()
	typ, data, err := bson.MarshalValue(v)
	if err != nil {
		t.Fatalf("failed to marshal value %v: %v", v, err)
	}
	return bson.RawValue{Type: typ, Value: data}
}

func sampleBooking() *model.Booking {
	msg := "please call first"
	return &model.Booking{
		ID:        "2b0c8f51-8a7e-4a2f-9b94-1c4c4c1f8d6e",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Vehicle:   "2020 Civic",
		Service:   "oil change",
		Message:   &msg,
		Timestamp: time.Date(2026, 8, 31, 12, 30, 45, 123456789, time.UTC),
		Status:    model.StatusPending,
	}
}

func TestToDocument_TimestampIsString(t *testing.T) {
	doc := toDocument(sampleBooking())

	var timestamp any
	for _, elem := range doc {
		if elem.Key == "timestamp" {
			timestamp = elem.Value
		}
	}

	s, ok := timestamp.(string)
	if !ok {
		t.Fatalf("expected string timestamp in document, got %T", timestamp)
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
		t.Errorf("stored timestamp %q is not ISO-8601: %v", s, err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	booking := sampleBooking()

	raw, err := bson.Marshal(toDocument(booking))
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}

	var doc bookingDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("failed to unmarshal document: %v", err)
	}

	got, err := toBooking(&doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != booking.ID || got.Name != booking.Name || got.Email != booking.Email ||
		got.Phone != booking.Phone || got.Vehicle != booking.Vehicle ||
		got.Service != booking.Service || got.Status != booking.Status {
		t.Errorf("round trip changed fields: got %+v, want %+v", got, booking)
	}
	if got.Message == nil || *got.Message != *booking.Message {
		t.Errorf("round trip changed message: got %v, want %v", got.Message, booking.Message)
	}
	if !got.Timestamp.Equal(booking.Timestamp) {
		t.Errorf("round trip changed timestamp: got %v, want %v", got.Timestamp, booking.Timestamp)
	}
}

func TestToBooking_TimestampNormalization(t *testing.T) {
	instant := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp bson.RawValue
		want      time.Time
		wantError bool
	}{
		{
			name:      "ISO-8601 string with Z",
			timestamp: rawValue(t, "2026-08-31T12:30:45Z"),
			want:      instant,
		},
		{
			name:      "ISO-8601 string with numeric offset",
			timestamp: rawValue(t, "2026-08-31T12:30:45+00:00"),
			want:      instant,
		},
		{
			name:      "native BSON datetime already converted by a driver",
			timestamp: rawValue(t, instant),
			want:      instant,
		},
		{
			name:      "unparseable string",
			timestamp: rawValue(t, "yesterday at noon"),
			wantError: true,
		},
		{
			name:      "wrong type",
			timestamp: rawValue(t, int64(1756643445)),
			wantError: true,
		},
		{
			name:      "missing field",
			timestamp: bson.RawValue{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &bookingDocument{
				ID:        "abc",
				Timestamp: tt.timestamp,
				Status:    model.StatusPending,
			}

			booking, err := toBooking(doc)

			if tt.wantError {
				if !errors.Is(err, bookingserrors.ErrMalformedRecord) {
					t.Fatalf("expected ErrMalformedRecord, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !booking.Timestamp.Equal(tt.want) {
				t.Errorf("expected timestamp %v, got %v", tt.want, booking.Timestamp)
			}
			if booking.Timestamp.Location() != time.UTC {
				t.Errorf("expected UTC, got %v", booking.Timestamp.Location())
			}
		})
	}
}

// Normalizing the same stored form twice must yield the same record, whether
// the driver kept the string or had already produced a native datetime.
func TestToBooking_NormalizationIsIdempotent(t *testing.T) {
	instant := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)

	fromString, err := toBooking(&bookingDocument{ID: "x", Timestamp: rawValue(t, instant.Format(time.RFC3339Nano))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromDate, err := toBooking(&bookingDocument{ID: "x", Timestamp: rawValue(t, instant)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fromString.Timestamp.Equal(fromDate.Timestamp) {
		t.Errorf("string and datetime forms disagree: %v vs %v", fromString.Timestamp, fromDate.Timestamp)
	}
}
