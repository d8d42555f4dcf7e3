package handlers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
)

// UploadHousePhoto stores a photo for a listing and appends it to the
// listing's picture gallery. Only the owner may upload.
func (h *Handler) UploadHousePhoto(c *fiber.Ctx) error {
	if h.photos == nil {
		return Error(c, fiber.StatusServiceUnavailable, "photo storage is not configured")
	}

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
		return Error(c, fiber.StatusForbidden, "cannot upload photos to another user's listing")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "failed to read photo")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("houses/%d/%s%s", id, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := h.photos.UploadPhoto(c.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		log.Printf("Failed to upload photo for house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to upload photo")
	}

	picture, err := h.db.AddHousePicture(c.Context(), id, url)
	if err != nil {
		log.Printf("Failed to record photo for house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to save photo")
	}

	return Created(c, fiber.Map{
		"houseId": id,
		"url":     picture.URL,
	})
}

// DeleteHousePhoto removes a photo from a listing's gallery and from
// object storage. Only the owner may delete.
func (h *Handler) DeleteHousePhoto(c *fiber.Ctx) error {
	if h.photos == nil {
		return Error(c, fiber.StatusServiceUnavailable, "photo storage is not configured")
	}

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
		return Error(c, fiber.StatusForbidden, "cannot delete photos from another user's listing")
	}

	url := c.Query("url")
	if url == "" {
		return Error(c, fiber.StatusBadRequest, "url is required")
	}
	key := h.photos.PhotoKey(url)
	if key == "" {
		return Error(c, fiber.StatusBadRequest, "url is not a stored photo")
	}

	if err := h.db.RemoveHousePicture(c.Context(), id, url); err != nil {
		if errors.Is(err, database.ErrPictureNotFound) {
			return Error(c, fiber.StatusNotFound, "photo not found")
		}
		log.Printf("Failed to remove photo record for house %d: %v", id, err)
		return Error(c, fiber.StatusInternalServerError, "failed to delete photo")
	}

	if err := h.photos.DeletePhoto(c.Context(), key); err != nil {
		// The gallery record is gone; the orphaned object is logged for cleanup
		log.Printf("Failed to delete photo object %s: %v", key, err)
	}

	return Success(c, fiber.Map{
		"houseId": id,
		"deleted": true,
	})
}
