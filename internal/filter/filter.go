// Package filter implements the composable listing filter used by the
// houses collection view: a conjunction of independent criteria where each
// set-valued criterion accepts everything when its selection is empty.
package filter

import (
	"strconv"
	"strings"

	"github.com/furqanahmad03/rent-and-home/internal/models"
)

// Default range bounds, matching the filter UI sliders.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 2000000
	DefaultAreaMin  = 0
	DefaultAreaMax  = 10000
)

// State holds the active search criteria for the listings view.
// The zero value is NOT a valid state; use NewState.
type State struct {
	Search    string
	PriceMin  float64
	PriceMax  float64
	AreaMin   int
	AreaMax   int
	Bedrooms  []int
	Bathrooms []int
	HomeTypes []string
	Statuses  []string
}

// NewState returns a State with default ranges and empty selection sets,
// which accepts every listing within the default price and area bounds.
func NewState() State {
	return State{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		AreaMin:  DefaultAreaMin,
		AreaMax:  DefaultAreaMax,
	}
}

// Clear resets all criteria to their defaults.
func (s *State) Clear() {
	*s = NewState()
}

// Matches reports whether a single listing satisfies every active criterion.
func (s *State) Matches(h *models.House) bool {
	return s.matchesSearch(h) &&
		h.Price >= s.PriceMin && h.Price <= s.PriceMax &&
		h.LivingArea >= s.AreaMin && h.LivingArea <= s.AreaMax &&
		containsInt(s.Bedrooms, h.Bedrooms) &&
		containsInt(s.Bathrooms, h.Bathrooms) &&
		containsString(s.HomeTypes, h.HomeType) &&
		containsString(s.Statuses, string(h.HomeStatus))
}

// matchesSearch does a case-insensitive substring match over street address,
// city, state, home type and the decimal form of the bedroom count.
func (s *State) matchesSearch(h *models.House) bool {
	if s.Search == "" {
		return true
	}
	q := strings.ToLower(s.Search)
	return strings.Contains(strings.ToLower(h.StreetAddress), q) ||
		strings.Contains(strings.ToLower(h.City), q) ||
		strings.Contains(strings.ToLower(h.State), q) ||
		strings.Contains(strings.ToLower(h.HomeType), q) ||
		strings.Contains(strconv.Itoa(h.Bedrooms), q)
}

// Apply returns the listings matching the state, preserving input order.
// The result is always a subset of the input; nothing is copied or reordered.
// Recomputed in full on every call, which is fine at listing-page scale.
func Apply(houses []*models.House, s State) []*models.House {
	filtered := make([]*models.House, 0, len(houses))
	for _, h := range houses {
		if s.Matches(h) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// containsInt treats an empty selection as "accept all".
func containsInt(set []int, v int) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
