package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	bookingserrors "github.com/Akashajay-dot/Velocity-pro-audio/internal/bookings/errors"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

// bookingDocument is the storage shape of a booking. The canonical timestamp
// representation is an ISO-8601 string; reads also accept BSON datetimes so
// documents written by drivers that store native dates still normalize, which
// keeps repeated reads idempotent.
type bookingDocument struct {
	ID        string        `bson:"id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Phone     string        `bson:"phone"`
	Vehicle   string        `bson:"vehicle"`
	Service   string        `bson:"service"`
	Message   *string       `bson:"message"`
	Timestamp bson.RawValue `bson:"timestamp"`
	Status    string        `bson:"status"`
}

func toDocument(b *model.Booking) bson.D {
	return bson.D{
		{Key: "id", Value: b.ID},
		{Key: "name", Value: b.Name},
		{Key: "email", Value: b.Email},
		{Key: "phone", Value: b.Phone},
		{Key: "vehicle", Value: b.Vehicle},
		{Key: "service", Value: b.Service},
		{Key: "message", Value: b.Message},
		{Key: "timestamp", Value: b.Timestamp.UTC().Format(time.RFC3339Nano)},
		{Key: "status", Value: b.Status},
	}
}

func toBooking(doc *bookingDocument) (*model.Booking, error) {
	var timestamp time.Time

	switch doc.Timestamp.Type {
	case bsontype.String:
		parsed, err := time.Parse(time.RFC3339Nano, doc.Timestamp.StringValue())
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse timestamp %q: %v",
				bookingserrors.ErrMalformedRecord, doc.Timestamp.StringValue(), err)
		}
		timestamp = parsed.UTC()
	case bsontype.DateTime:
		timestamp = doc.Timestamp.Time().UTC()
	default:
		return nil, fmt.Errorf("%w: unexpected timestamp type %s",
			bookingserrors.ErrMalformedRecord, doc.Timestamp.Type)
	}

	return &model.Booking{
		ID:        doc.ID,
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Vehicle:   doc.Vehicle,
		Service:   doc.Service,
		Message:   doc.Message,
		Timestamp: timestamp,
		Status:    doc.Status,
	}, nil
}
