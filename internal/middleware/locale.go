package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/furqanahmad03/rent-and-home/internal/i18n"
)

// LocaleRequired validates the :locale path segment on page routes.
// Unsupported locale values yield a 404, matching the not-found behavior
// of the locale-prefixed routing surface.
func LocaleRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := c.Params("locale")
		if !i18n.IsSupported(locale) {
			return fiber.ErrNotFound
		}
		c.Locals("locale", locale)
		return c.Next()
	}
}

// GetLocale extracts the resolved locale from the context
func GetLocale(c *fiber.Ctx) string {
	if locale, ok := c.Locals("locale").(string); ok {
		return locale
	}
	return i18n.DefaultLocale
}

// DetectLocale picks a locale for requests without a locale prefix,
// using the Accept-Language header with the default as fallback.
func DetectLocale(c *fiber.Ctx) string {
	return i18n.MatchAcceptLanguage(c.Get("Accept-Language"))
}
