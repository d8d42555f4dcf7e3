package models

import (
	"errors"
	"testing"
	"time"
)

func TestBookingRequestValidate(t *testing.T) {
	date := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	zero := time.Time{}

	tests := []struct {
		name    string
		req     BookingRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     BookingRequest{HouseID: 1, Date: &date, Name: "Ana", Phone: "555-0100"},
			wantErr: nil,
		},
		{
			name:    "missing date",
			req:     BookingRequest{HouseID: 1, Name: "Ana", Phone: "555-0100"},
			wantErr: ErrBookingDateRequired,
		},
		{
			name:    "zero date",
			req:     BookingRequest{HouseID: 1, Date: &zero, Name: "Ana", Phone: "555-0100"},
			wantErr: ErrBookingDateRequired,
		},
		{
			name:    "missing name",
			req:     BookingRequest{HouseID: 1, Date: &date, Phone: "555-0100"},
			wantErr: ErrBookingNameRequired,
		},
		{
			name:    "missing phone",
			req:     BookingRequest{HouseID: 1, Date: &date, Name: "Ana"},
			wantErr: ErrBookingPhoneRequired,
		},
		{
			name:    "unusual phone format accepted",
			req:     BookingRequest{HouseID: 1, Date: &date, Name: "Ana", Phone: "call me maybe"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
