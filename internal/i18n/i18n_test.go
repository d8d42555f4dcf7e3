package i18n

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIsSupported(t *testing.T) {
	for _, locale := range Locales {
		if !IsSupported(locale) {
			t.Errorf("IsSupported(%q) = false, want true", locale)
		}
	}
	for _, locale := range []string{"de", "fr", "EN", "pt-BR", ""} {
		if IsSupported(locale) {
			t.Errorf("IsSupported(%q) = true, want false", locale)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"en", "en", true},
		{"es", "es", true},
		{"pt", "pt", true},
		{"de", DefaultLocale, false},
		{"", DefaultLocale, false},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCatalog(t *testing.T) {
	for _, locale := range Locales {
		raw, err := Catalog(locale)
		if err != nil {
			t.Fatalf("Catalog(%q) returned error: %v", locale, err)
		}
		var messages map[string]any
		if err := json.Unmarshal(raw, &messages); err != nil {
			t.Errorf("Catalog(%q) is not valid JSON: %v", locale, err)
		}
	}

	if _, err := Catalog("de"); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("Catalog(\"de\") error = %v, want ErrUnknownLocale", err)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "navbar.buy", "Buy"},
		{"es", "navbar.buy", "Comprar"},
		{"pt", "navbar.buy", "Comprar"},
		{"en", "houses.noResults", "No properties match your search."},
		{"en", "navbar.missing", ""},
		{"en", "missing.key", ""},
		{"de", "navbar.buy", ""},
		{"en", "navbar", ""},
	}

	for _, tt := range tests {
		if got := Lookup(tt.locale, tt.key); got != tt.want {
			t.Errorf("Lookup(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestLookupAllLocalesShareKeys(t *testing.T) {
	keys := []string{
		"navbar.allProperties",
		"houses.searchPlaceholder",
		"houses.clearFilters",
		"booking.title",
		"booking.fillRequiredFields",
		"profile.title",
	}

	for _, locale := range Locales {
		for _, key := range keys {
			if Lookup(locale, key) == "" {
				t.Errorf("locale %q is missing key %q", locale, key)
			}
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"es", "es"},
		{"pt-BR,pt;q=0.9,en;q=0.8", "pt"},
		{"de-DE,de;q=0.9", DefaultLocale},
		{"fr,es;q=0.7", "es"},
		{"", DefaultLocale},
		{"EN-us", "en"},
	}

	for _, tt := range tests {
		if got := MatchAcceptLanguage(tt.header); got != tt.want {
			t.Errorf("MatchAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
