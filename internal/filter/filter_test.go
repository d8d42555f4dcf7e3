package filter

import (
	"testing"

	"github.com/furqanahmad03/rent-and-home/internal/models"
)

func sampleHouses() []*models.House {
	return []*models.House{
		{
			ID:            1,
			StreetAddress: "747 Swanson Ave",
			City:          "Lake Worth",
			State:         "FL",
			Bedrooms:      3,
			Bathrooms:     2,
			LivingArea:    1398,
			Price:         449000,
			HomeStatus:    models.StatusForSale,
			HomeType:      "Single Family",
		},
		{
			ID:            2,
			StreetAddress: "210 SE Mizner Blvd Apt 611",
			City:          "Boca Raton",
			State:         "FL",
			Bedrooms:      2,
			Bathrooms:     2,
			LivingArea:    1180,
			Price:         3900,
			HomeStatus:    models.StatusForRent,
			HomeType:      "Condo",
		},
		{
			ID:            3,
			StreetAddress: "96 Cypress Way",
			City:          "Delray Beach",
			State:         "FL",
			Bedrooms:      3,
			Bathrooms:     2,
			LivingArea:    1620,
			Price:         525000,
			HomeStatus:    models.StatusRecentlySold,
			HomeType:      "Townhouse",
		},
		{
			ID:            4,
			StreetAddress: "402 Palm Trail",
			City:          "Delray Beach",
			State:         "FL",
			Bedrooms:      5,
			Bathrooms:     4,
			LivingArea:    3410,
			Price:         1950000,
			HomeStatus:    models.StatusForSale,
			HomeType:      "Single Family",
		},
	}
}

func ids(houses []*models.House) []int {
	out := make([]int, 0, len(houses))
	for _, h := range houses {
		out = append(out, h.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyDefaultStateKeepsAll(t *testing.T) {
	houses := sampleHouses()
	got := Apply(houses, NewState())
	if !equalIDs(ids(got), []int{1, 2, 3, 4}) {
		t.Errorf("default state filtered houses, got ids %v", ids(got))
	}
}

func TestApplyBedrooms(t *testing.T) {
	state := NewState()
	state.Bedrooms = []int{3}

	got := Apply(sampleHouses(), state)
	if !equalIDs(ids(got), []int{1, 3}) {
		t.Errorf("bedrooms {3}: got ids %v, want [1 3]", ids(got))
	}
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"city substring", "boca", []int{2}},
		{"home type case insensitive", "condo", []int{2}},
		{"no match on different type", "ranch", []int{}},
		{"state matches everything", "fl", []int{1, 2, 3, 4}},
		{"bedroom count as text", "5", []int{4}},
		{"digit matches addresses too", "6", []int{2, 3}},
		{"address fragment", "palm", []int{4}},
		{"empty search keeps all", "", []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			state.Search = tt.search
			got := Apply(sampleHouses(), state)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("search %q: got ids %v, want %v", tt.search, ids(got), tt.want)
			}
		})
	}
}

func TestApplyPriceBoundsInclusive(t *testing.T) {
	state := NewState()
	state.PriceMin = 449000
	state.PriceMax = 525000

	got := Apply(sampleHouses(), state)
	if !equalIDs(ids(got), []int{1, 3}) {
		t.Errorf("price [449000, 525000]: got ids %v, want [1 3]", ids(got))
	}
}

func TestApplyAreaBoundsInclusive(t *testing.T) {
	state := NewState()
	state.AreaMin = 1180
	state.AreaMax = 1180

	got := Apply(sampleHouses(), state)
	if !equalIDs(ids(got), []int{2}) {
		t.Errorf("area [1180, 1180]: got ids %v, want [2]", ids(got))
	}
}

func TestApplyConjunction(t *testing.T) {
	state := NewState()
	state.Bedrooms = []int{3}
	state.Statuses = []string{string(models.StatusForSale)}

	got := Apply(sampleHouses(), state)
	if !equalIDs(ids(got), []int{1}) {
		t.Errorf("bedrooms {3} AND FOR_SALE: got ids %v, want [1]", ids(got))
	}
}

func TestApplyHomeTypes(t *testing.T) {
	state := NewState()
	state.HomeTypes = []string{"Condo", "Townhouse"}

	got := Apply(sampleHouses(), state)
	if !equalIDs(ids(got), []int{2, 3}) {
		t.Errorf("home types {Condo, Townhouse}: got ids %v, want [2 3]", ids(got))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	houses := sampleHouses()
	state := NewState()
	state.Statuses = []string{string(models.StatusForSale)}

	got := Apply(houses, state)
	if !equalIDs(ids(got), []int{1, 4}) {
		t.Errorf("expected input order preserved, got ids %v", ids(got))
	}
}

func TestClearResetsToDefaults(t *testing.T) {
	state := NewState()
	state.Search = "boca"
	state.PriceMin = 100000
	state.PriceMax = 500000
	state.Bedrooms = []int{2}
	state.HomeTypes = []string{"Condo"}

	state.Clear()

	if state.Search != "" {
		t.Errorf("Clear left search %q", state.Search)
	}
	if state.PriceMin != DefaultPriceMin || state.PriceMax != DefaultPriceMax {
		t.Errorf("Clear left price range [%v, %v]", state.PriceMin, state.PriceMax)
	}
	if state.AreaMin != DefaultAreaMin || state.AreaMax != DefaultAreaMax {
		t.Errorf("Clear left area range [%v, %v]", state.AreaMin, state.AreaMax)
	}
	if len(state.Bedrooms) != 0 || len(state.HomeTypes) != 0 {
		t.Error("Clear left selection sets populated")
	}

	got := Apply(sampleHouses(), state)
	if len(got) != len(sampleHouses()) {
		t.Errorf("cleared state kept %d of %d houses", len(got), len(sampleHouses()))
	}
}

func TestApplyResultIsSubset(t *testing.T) {
	houses := sampleHouses()
	state := NewState()
	state.Search = "delray"

	got := Apply(houses, state)

	index := make(map[int]bool, len(houses))
	for _, h := range houses {
		index[h.ID] = true
	}
	for _, h := range got {
		if !index[h.ID] {
			t.Errorf("result contains house %d not in input", h.ID)
		}
	}
	if len(got) > len(houses) {
		t.Errorf("result larger than input: %d > %d", len(got), len(houses))
	}
}
