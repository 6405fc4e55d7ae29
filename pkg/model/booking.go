package model

import (
	"time"
)

// StatusPending is the status assigned at creation. Nothing in this service
// ever transitions a booking out of it.
const StatusPending = "pending"

// Booking is the persisted and returned booking record. ID, Timestamp and
// Status are generated server-side and never accepted from callers.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Vehicle   string    `json:"vehicle"`
	Service   string    `json:"service"`
	Message   *string   `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// BookingCreate is the wire shape of a booking submission. Required fields are
// pointers so a missing key can be told apart from an empty string; unknown
// fields in the payload are dropped by the decoder, not rejected.
type BookingCreate struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Phone   *string `json:"phone" validate:"required"`
	Vehicle *string `json:"vehicle" validate:"required"`
	Service *string `json:"service" validate:"required"`
	Message *string `json:"message"`
}
