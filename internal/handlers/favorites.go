package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
	"github.com/furqanahmad03/rent-and-home/internal/models"
)

// ListFavorites returns the current user's favorites. With ?expand=houses the
// full listings are returned instead of bare membership records.
func (h *Handler) ListFavorites(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if c.Query("expand") == "houses" {
		houses, err := h.db.ListFavoriteHouses(c.Context(), userID)
		if err != nil {
			log.Printf("Failed to list favorite houses for user %d: %v", userID, err)
			return Error(c, fiber.StatusInternalServerError, "failed to list favorites")
		}
		if houses == nil {
			houses = []*models.House{}
		}
		return Success(c, houses)
	}

	favorites, err := h.db.ListFavorites(c.Context(), userID)
	if err != nil {
		log.Printf("Failed to list favorites for user %d: %v", userID, err)
		return Error(c, fiber.StatusInternalServerError, "failed to list favorites")
	}
	if favorites == nil {
		favorites = []*models.Favorite{}
	}

	return Success(c, favorites)
}

// AddFavorite marks a listing as favorited by the current user. The response
// reflects the server's membership state, which the client adopts.
func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.HouseID <= 0 {
		return Error(c, fiber.StatusBadRequest, "houseId is required")
	}

	house, err := h.db.GetHouseByID(c.Context(), req.HouseID)
	if err != nil {
		if errors.Is(err, database.ErrHouseNotFound) {
			return Error(c, fiber.StatusNotFound, "house not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get house")
	}

	// Owners don't see the favorite control on their own listings
	if house.OwnerID == userID {
		return Error(c, fiber.StatusForbidden, "cannot favorite your own listing")
	}

	if err := h.db.AddFavorite(c.Context(), userID, req.HouseID); err != nil {
		log.Printf("Failed to add favorite for user %d: %v", userID, err)
		return Error(c, fiber.StatusInternalServerError, "failed to add favorite")
	}

	return Success(c, fiber.Map{
		"houseId":   req.HouseID,
		"favorited": true,
	})
}

// RemoveFavorite unmarks a listing for the current user
func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	houseID := c.QueryInt("houseId", 0)
	if houseID <= 0 {
		return Error(c, fiber.StatusBadRequest, "houseId is required")
	}

	if err := h.db.RemoveFavorite(c.Context(), userID, houseID); err != nil {
		if errors.Is(err, database.ErrFavoriteNotFound) {
			return Error(c, fiber.StatusNotFound, "favorite not found")
		}
		log.Printf("Failed to remove favorite for user %d: %v", userID, err)
		return Error(c, fiber.StatusInternalServerError, "failed to remove favorite")
	}

	return Success(c, fiber.Map{
		"houseId":   houseID,
		"favorited": false,
	})
}
