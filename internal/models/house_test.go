package models

import "testing"

func TestPricePerArea(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		livingArea int
		want       int
	}{
		{"exact division", 300000, 1500, 200},
		{"rounds down", 449000, 1398, 321},
		{"rounds up", 449500, 1398, 322},
		{"zero price", 0, 1500, 0},
		{"zero area", 300000, 0, 0},
		{"both missing", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &House{Price: tt.price, LivingArea: tt.livingArea}
			if got := h.PricePerArea(); got != tt.want {
				t.Errorf("PricePerArea() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsSold(t *testing.T) {
	tests := []struct {
		status HomeStatus
		want   bool
	}{
		{StatusForSale, false},
		{StatusForRent, false},
		{StatusRecentlySold, true},
	}

	for _, tt := range tests {
		h := &House{HomeStatus: tt.status}
		if got := h.IsSold(); got != tt.want {
			t.Errorf("IsSold() with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}
