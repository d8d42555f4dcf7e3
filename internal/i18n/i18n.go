// Package i18n resolves request locales and serves the embedded message
// catalogs for the supported languages.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale is used when the request carries no usable locale.
const DefaultLocale = "en"

// Locales are the supported locale codes, default first.
var Locales = []string{"en", "es", "pt"}

var ErrUnknownLocale = errors.New("unknown locale")

var catalogs map[string]map[string]any

func init() {
	catalogs = make(map[string]map[string]any, len(Locales))
	for _, locale := range Locales {
		raw, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing catalog for %q: %v", locale, err))
		}
		var messages map[string]any
		if err := json.Unmarshal(raw, &messages); err != nil {
			panic(fmt.Sprintf("i18n: invalid catalog for %q: %v", locale, err))
		}
		catalogs[locale] = messages
	}
}

// IsSupported reports whether the locale code has a catalog.
func IsSupported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// Resolve returns the locale itself when supported, or the default locale.
// The second return value reports whether the input was supported.
func Resolve(locale string) (string, bool) {
	if IsSupported(locale) {
		return locale, true
	}
	return DefaultLocale, false
}

// Catalog returns the raw JSON message catalog for a locale.
func Catalog(locale string) ([]byte, error) {
	if !IsSupported(locale) {
		return nil, ErrUnknownLocale
	}
	return localeFS.ReadFile("locales/" + locale + ".json")
}

// Lookup walks a dotted key path ("houses.noResults") through a catalog.
// Returns the empty string when the key or locale is missing.
func Lookup(locale, key string) string {
	messages, ok := catalogs[locale]
	if !ok {
		return ""
	}
	parts := strings.Split(key, ".")
	var node any = messages
	for _, part := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return ""
		}
		node, ok = m[part]
		if !ok {
			return ""
		}
	}
	if s, ok := node.(string); ok {
		return s
	}
	return ""
}

// MatchAcceptLanguage picks the first supported locale from an
// Accept-Language header, falling back to the default. Quality values are
// ignored; browsers already order entries by preference.
func MatchAcceptLanguage(header string) string {
	for _, entry := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(entry, ";", 2)[0])
		if tag == "" {
			continue
		}
		// "pt-BR" matches "pt"
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if IsSupported(base) {
			return base
		}
	}
	return DefaultLocale
}
