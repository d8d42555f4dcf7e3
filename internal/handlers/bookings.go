package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/i18n"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
	"github.com/furqanahmad03/rent-and-home/internal/models"
	"github.com/furqanahmad03/rent-and-home/internal/services"
)

// CreateBooking validates a viewing request and acknowledges it with a
// reference. The visitor's email comes from the session, never the body.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	var req models.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Email = middleware.GetUserEmail(c)

	if err := req.Validate(); err != nil {
		return Error(c, fiber.StatusBadRequest, err.Error())
	}

	house, err := h.db.GetHouseByID(c.Context(), req.HouseID)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get house")
	}

	if house.IsSold() {
		return Error(c, fiber.StatusBadRequest, "listing is no longer available")
	}
	if house.OwnerID == middleware.GetUserID(c) {
		return Error(c, fiber.StatusForbidden, "cannot book a viewing of your own listing")
	}

	// The client passes its locale; anything unsupported falls back to the default
	locale, _ := i18n.Resolve(c.Query("locale"))

	confirmation := &models.BookingConfirmation{
		Reference: uuid.New().String(),
		HouseID:   house.ID,
		Date:      *req.Date,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   i18n.Lookup(locale, "booking.viewingScheduled"),
	}

	h.publishEvent(c, services.EventBookingRequested, fiber.Map{
		"reference": confirmation.Reference,
		"houseId":   confirmation.HouseID,
		"ownerId":   house.OwnerID,
		"date":      confirmation.Date,
		"name":      confirmation.Name,
		"email":     confirmation.Email,
		"phone":     confirmation.Phone,
	})

	return Created(c, confirmation)
}
