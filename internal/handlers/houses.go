package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/filter"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
	"github.com/furqanahmad03/rent-and-home/internal/models"
	"github.com/furqanahmad03/rent-and-home/internal/services"
)

// ListHouses returns listings, optionally narrowed by a backend status query
// and the composable in-memory filter the listings page drives.
func (h *Handler) ListHouses(c *fiber.Ctx) error {
	params := &models.HouseListParams{
		Status:  c.Query("status"),
		Exclude: c.QueryInt("exclude", 0),
		Limit:   c.QueryInt("limit", 0),
	}

	// purpose=buy|rent is the navbar preset for the status filter
	if params.Status == "" {
		switch c.Query("purpose") {
		case "buy":
			params.Status = string(models.StatusForSale)
		case "rent":
			params.Status = string(models.StatusForRent)
		}
	}

	if params.Limit < 0 || params.Limit > 100 {
		params.Limit = 0
	}

	houses, err := h.db.ListHouses(c.Context(), params)
	if err != nil {
		log.Printf("Failed to list houses: %v", err)
		return Error(c, fiber.StatusInternalServerError, "failed to list houses")
	}

	state := filterStateFromQuery(c)
	filtered := filter.Apply(houses, state)
	if filtered == nil {
		filtered = []*models.House{}
	}

	return Success(c, filtered)
}

// filterStateFromQuery builds the composable filter from query parameters.
// Absent parameters leave the corresponding criterion at "accept all".
func filterStateFromQuery(c *fiber.Ctx) filter.State {
	state := filter.NewState()
	state.Search = c.Query("search")

	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.PriceMin = f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.PriceMax = f
		}
	}
	if v := c.Query("area_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			state.AreaMin = n
		}
	}
	if v := c.Query("area_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			state.AreaMax = n
		}
	}

	state.Bedrooms = parseIntList(c.Query("bedrooms"))
	state.Bathrooms = parseIntList(c.Query("bathrooms"))
	state.HomeTypes = parseStringList(c.Query("home_type"))
	state.Statuses = parseStringList(c.Query("statuses"))

	return state
}

func parseIntList(value string) []int {
	if value == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func parseStringList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// houseDetail decorates a listing with the viewer's favorite state.
// favorited is omitted for anonymous requests.
type houseDetail struct {
	*models.House
	Favorited *bool `json:"favorited,omitempty"`
}

// GetHouse returns a single listing by ID. Signed-in viewers also get
// whether they have favorited it, so the page never guesses membership.
func (h *Handler) GetHouse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid house id")
	}

	house, err := h.db.GetHouseByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		log.Printf("Failed to get house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to get house")
	}

	detail := houseDetail{House: house}
	if userID := middleware.GetUserID(c); userID != 0 {
		favorited, err := h.db.IsFavorite(c.Context(), userID, id)
		if err != nil {
			log.Printf("Failed to check favorite for house %d: %v", id, err)
		} else {
			detail.Favorited = &favorited
		}
	}

	return Success(c, detail)
}

// CreateHouse posts a new listing owned by the current user
func (h *Handler) CreateHouse(c *fiber.Ctx) error {
	var req models.CreateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.StreetAddress == "" {
		return Error(c, fiber.StatusBadRequest, "streetAddress is required")
	}
	if req.City == "" {
		return Error(c, fiber.StatusBadRequest, "city is required")
	}
	if req.State == "" || len(req.State) != 2 {
		return Error(c, fiber.StatusBadRequest, "state must be a 2-letter code")
	}
	if req.Zipcode == "" {
		return Error(c, fiber.StatusBadRequest, "zipcode is required")
	}
	if req.Price < 0 {
		return Error(c, fiber.StatusBadRequest, "price must be non-negative")
	}
	if req.LivingArea < 0 {
		return Error(c, fiber.StatusBadRequest, "livingArea must be non-negative")
	}
	if req.HomeStatus == "" {
		req.HomeStatus = string(models.StatusForSale)
	}
	if req.HomeType == "" {
		req.HomeType = models.HomeTypes[0]
	}
	if req.Currency == "" {
		req.Currency = "$"
	}

	ownerID := middleware.GetUserID(c)
	house, err := h.db.CreateHouse(c.Context(), &req, ownerID)
	if err != nil {
		log.Printf("Failed to create house: %v", err)
		return Error(c, fiber.StatusInternalServerError, "failed to create house")
	}

	h.publishEvent(c, services.EventHouseCreated, fiber.Map{
		"houseId":   house.ID,
		"ownerId":   house.OwnerID,
		"ownerName": middleware.GetUserName(c),
		"status":    house.HomeStatus,
		"city":      house.City,
		"state":     house.State,
		"price":     house.Price,
	})

	return Created(c, house)
}

// UpdateHouse updates a listing; only the owner may modify it
func (h *Handler) UpdateHouse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid house id")
	}

	house, err := h.db.GetHouseByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get house")
	}

	if house.OwnerID != middleware.GetUserID(c) {
		return Error(c, fiber.StatusForbidden, "cannot modify another user's listing")
	}

	var req models.UpdateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Price != nil && *req.Price < 0 {
		return Error(c, fiber.StatusBadRequest, "price must be non-negative")
	}
	if req.LivingArea != nil && *req.LivingArea < 0 {
		return Error(c, fiber.StatusBadRequest, "livingArea must be non-negative")
	}

	updated, err := h.db.UpdateHouse(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		log.Printf("Failed to update house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to update house")
	}

	return Success(c, updated)
}

// DeleteHouse removes a listing; only the owner may delete it
func (h *Handler) DeleteHouse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid house id")
	}

	house, err := h.db.GetHouseByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get house")
	}

	if house.OwnerID != middleware.GetUserID(c) {
		return Error(c, fiber.StatusForbidden, "cannot delete another user's listing")
	}

	if err := h.db.DeleteHouse(c.Context(), id); err != nil {
		log.Printf("Failed to delete house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to delete house")
	}

	h.publishEvent(c, services.EventHouseDeleted, fiber.Map{
		"houseId": id,
		"ownerId": house.OwnerID,
	})

	return Success(c, fiber.Map{"deleted": true})
}

// publishEvent sends an event when a publisher is configured.
// Publishing is best-effort; a broker failure never fails the request.
func (h *Handler) publishEvent(c *fiber.Ctx, routingKey string, payload interface{}) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(c.Context(), routingKey, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", routingKey, err)
	}
}
