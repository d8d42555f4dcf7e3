package models

import (
	"errors"
	"time"
)

var (
	ErrBookingDateRequired  = errors.New("date is required")
	ErrBookingNameRequired  = errors.New("name is required")
	ErrBookingPhoneRequired = errors.New("phone is required")
)

// BookingRequest is a viewing request for a listing. Email is filled from
// the session, never from the request body. Requests are validated and
// acknowledged but not persisted.
type BookingRequest struct {
	HouseID int        `json:"houseId"`
	Date    *time.Time `json:"date"`
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"-"`
}

// Validate checks that date, name and phone are all present.
// Phone format is deliberately not validated.
func (r *BookingRequest) Validate() error {
	if r.Date == nil || r.Date.IsZero() {
		return ErrBookingDateRequired
	}
	if r.Name == "" {
		return ErrBookingNameRequired
	}
	if r.Phone == "" {
		return ErrBookingPhoneRequired
	}
	return nil
}

// BookingConfirmation acknowledges a validated viewing request.
// Message is localized to the requester's locale.
type BookingConfirmation struct {
	Reference string    `json:"reference"`
	HouseID   int       `json:"houseId"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
}
