package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
	"github.com/furqanahmad03/rent-and-home/internal/models"
)

// GetUserHouses returns the listings owned by the current user
func (h *Handler) GetUserHouses(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	houses, err := h.db.ListHouses(c.Context(), &models.HouseListParams{
		OwnerID: &userID,
	})
	if err != nil {
		log.Printf("Failed to list houses for user %d: %v", userID, err)
		return Error(c, fiber.StatusInternalServerError, "failed to list houses")
	}
	if houses == nil {
		houses = []*models.House{}
	}

	return Success(c, houses)
}

// GetUserStats returns listing and favorite counts for the dashboard
func (h *Handler) GetUserStats(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	stats, err := h.db.GetUserStats(c.Context(), userID)
	if err != nil {
		log.Printf("Failed to get stats for user %d: %v", userID, err)
		return Error(c, fiber.StatusInternalServerError, "failed to get stats")
	}

	return Success(c, stats)
}

// UpdateProfile updates the current user's display name and, when a new
// password is supplied, rotates the password after verifying the current one.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.db.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return Error(c, fiber.StatusNotFound, "user not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get user")
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return Error(c, fiber.StatusBadRequest, "current password is required")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return Error(c, fiber.StatusUnauthorized, "current password is incorrect")
		}
		if len(req.NewPassword) < 6 {
			return Error(c, fiber.StatusBadRequest, "new password must be at least 6 characters")
		}
		if req.NewPassword != req.ConfirmPassword {
			return Error(c, fiber.StatusBadRequest, "passwords do not match")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return Error(c, fiber.StatusInternalServerError, "failed to process password")
		}
		if err := h.db.UpdateUserPassword(c.Context(), userID, string(hashed)); err != nil {
			log.Printf("Failed to update password for user %d: %v", userID, err)
			return Error(c, fiber.StatusInternalServerError, "failed to update password")
		}
	}

	if req.Name != nil {
		if *req.Name == "" {
			return Error(c, fiber.StatusBadRequest, "name cannot be empty")
		}
		user, err = h.db.UpdateUserName(c.Context(), userID, *req.Name)
		if err != nil {
			log.Printf("Failed to update name for user %d: %v", userID, err)
			return Error(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}

	return Success(c, user)
}
