package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/furqanahmad03/rent-and-home/internal/config"
	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/services"
)

// Handler holds all handler dependencies. photos and events are optional
// and stay nil when the corresponding backend is not configured.
type Handler struct {
	db     *database.DB
	cfg    *config.Config
	photos *services.PhotoStorage
	events *services.EventPublisher
}

// New creates a new Handler instance
func New(db *database.DB, cfg *config.Config, photos *services.PhotoStorage, events *services.EventPublisher) *Handler {
	return &Handler{
		db:     db,
		cfg:    cfg,
		photos: photos,
		events: events,
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// APIResponse is the standard response envelope. The "data" key carries the
// payload, matching what the frontend reads from every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Created returns a 201 response with data
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Error returns an error response
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}
