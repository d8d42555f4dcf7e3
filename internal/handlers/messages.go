package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/furqanahmad03/rent-and-home/internal/i18n"
)

// GetMessages serves the translation catalog for a locale. Unsupported
// locales are a 404, same as an unknown page.
func (h *Handler) GetMessages(c *fiber.Ctx) error {
	locale := c.Params("locale")

	catalog, err := i18n.Catalog(locale)
	if err != nil {
		if errors.Is(err, i18n.ErrUnknownLocale) {
			return Error(c, fiber.StatusNotFound, "unsupported locale")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to load messages")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(catalog)
}

// GetLocales lists the locales the application supports
func (h *Handler) GetLocales(c *fiber.Ctx) error {
	return Success(c, fiber.Map{
		"locales": i18n.Locales,
		"default": i18n.DefaultLocale,
	})
}
