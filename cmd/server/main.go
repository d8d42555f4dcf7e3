package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/furqanahmad03/rent-and-home/internal/config"
	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/handlers"
	"github.com/furqanahmad03/rent-and-home/internal/middleware"
	"github.com/furqanahmad03/rent-and-home/internal/services"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Photo storage is optional; listings work without it
	var photos *services.PhotoStorage
	if cfg.PhotoStorageConfigured() {
		photos, err = services.NewPhotoStorage(
			cfg.S3Endpoint,
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			cfg.S3Bucket,
			cfg.S3Region,
			cfg.S3PublicURL,
			cfg.S3UseSSL,
		)
		if err != nil {
			log.Fatalf("Failed to initialize photo storage: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := photos.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatalf("Failed to ensure photo bucket: %v", err)
		}
		cancel()
		log.Println("Photo storage initialized")
	} else {
		log.Println("Photo storage not configured, uploads disabled")
	}

	// Event publishing is optional; requests never fail on broker errors
	var events *services.EventPublisher
	if cfg.AMQPURL != "" {
		events, err = services.NewEventPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("Failed to connect to event broker: %v", err)
		}
		defer events.Close()
		log.Println("Event publisher initialized")
	}

	h := handlers.New(db, cfg, photos, events)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthRequired(cfg), h.GetCurrentUser)
	auth.Post("/refresh", middleware.AuthRequired(cfg), h.RefreshToken)

	// Locales and translation catalogs
	api.Get("/locales", h.GetLocales)
	api.Get("/messages/:locale", h.GetMessages)

	// Houses
	houses := api.Group("/houses")
	houses.Get("/", h.ListHouses)
	houses.Get("/:id", middleware.AuthOptional(cfg), h.GetHouse)
	houses.Post("/", middleware.AuthRequired(cfg), h.CreateHouse)
	houses.Put("/:id", middleware.AuthRequired(cfg), h.UpdateHouse)
	houses.Delete("/:id", middleware.AuthRequired(cfg), h.DeleteHouse)
	houses.Post("/:id/photos", middleware.AuthRequired(cfg), h.UploadHousePhoto)
	houses.Delete("/:id/photos", middleware.AuthRequired(cfg), h.DeleteHousePhoto)

	// Favorites
	favorites := api.Group("/favorites", middleware.AuthRequired(cfg))
	favorites.Get("/", h.ListFavorites)
	favorites.Post("/", h.AddFavorite)
	favorites.Delete("/", h.RemoveFavorite)

	// Current user
	user := api.Group("/user", middleware.AuthRequired(cfg))
	user.Get("/houses", h.GetUserHouses)
	user.Get("/stats", h.GetUserStats)
	user.Put("/profile", h.UpdateProfile)

	// Bookings
	api.Post("/bookings", middleware.AuthRequired(cfg), h.CreateBooking)

	// Root requests redirect to a locale-prefixed page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/"+middleware.DetectLocale(c), fiber.StatusFound)
	})

	// Static assets for the web client
	app.Static("/assets", "./web/assets")

	// Locale-prefixed pages all serve the client shell
	pages := app.Group("/:locale", middleware.LocaleRequired())
	pages.Get("/", servePage)
	pages.Get("/houses", servePage)
	pages.Get("/houses/:id", servePage)
	pages.Get("/profile", servePage)
	pages.Get("/dashboard", servePage)
	pages.Get("/favorites", servePage)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func servePage(c *fiber.Ctx) error {
	return c.SendFile("./web/index.html")
}
