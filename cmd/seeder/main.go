package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/furqanahmad03/rent-and-home/internal/config"
	"github.com/furqanahmad03/rent-and-home/internal/database"
	"github.com/furqanahmad03/rent-and-home/internal/models"
)

func strPtr(s string) *string { return &s }

var sampleHouses = []models.CreateHouseRequest{
	{
		StreetAddress: "747 Swanson Ave",
		City:          "Lake Worth",
		State:         "FL",
		Zipcode:       "33461",
		Neighborhood:  strPtr("Lake Osborne Estates"),
		Bedrooms:      3,
		Bathrooms:     2,
		LivingArea:    1398,
		YearBuilt:     1987,
		Price:         449000,
		Latitude:      26.6005,
		Longitude:     -80.0664,
		HomeStatus:    string(models.StatusForSale),
		HomeType:      "Single Family",
		Currency:      "$",
		Description:   "Updated single family home close to Lake Osborne with a fenced yard and new roof.",
		Pictures: []string{
			"https://photos.example.com/houses/747-swanson/01.jpg",
			"https://photos.example.com/houses/747-swanson/02.jpg",
		},
	},
	{
		StreetAddress: "1508 NW 4th Ave",
		City:          "Boca Raton",
		State:         "FL",
		Zipcode:       "33432",
		Community:     strPtr("Boca Villas"),
		Bedrooms:      4,
		Bathrooms:     3,
		LivingArea:    2350,
		YearBuilt:     2004,
		Price:         1250000,
		Latitude:      26.3587,
		Longitude:     -80.0915,
		HomeStatus:    string(models.StatusForSale),
		HomeType:      "Single Family",
		Currency:      "$",
		Description:   "Spacious four bedroom in Boca Villas with a pool and two car garage.",
		Pictures: []string{
			"https://photos.example.com/houses/1508-nw4th/01.jpg",
		},
	},
	{
		StreetAddress: "210 SE Mizner Blvd Apt 511",
		City:          "Boca Raton",
		State:         "FL",
		Zipcode:       "33432",
		Bedrooms:      2,
		Bathrooms:     2,
		LivingArea:    1180,
		YearBuilt:     2018,
		Price:         3900,
		Latitude:      26.3501,
		Longitude:     -80.0831,
		HomeStatus:    string(models.StatusForRent),
		HomeType:      "Condo",
		Currency:      "$",
		Description:   "Downtown condo rental with balcony views, walkable to Mizner Park.",
		Pictures: []string{
			"https://photos.example.com/houses/210-mizner-511/01.jpg",
			"https://photos.example.com/houses/210-mizner-511/02.jpg",
			"https://photos.example.com/houses/210-mizner-511/03.jpg",
		},
	},
	{
		StreetAddress: "95 Cypress Way",
		City:          "Delray Beach",
		State:         "FL",
		Zipcode:       "33444",
		Subdivision:   strPtr("Cypress Ridge"),
		Bedrooms:      3,
		Bathrooms:     2,
		LivingArea:    1620,
		YearBuilt:     1995,
		Price:         525000,
		Latitude:      26.4615,
		Longitude:     -80.0728,
		HomeStatus:    string(models.StatusRecentlySold),
		HomeType:      "Townhouse",
		Currency:      "$",
		Description:   "Corner townhouse in Cypress Ridge, sold after a single weekend on market.",
	},
	{
		StreetAddress: "402 Palm Trail",
		City:          "Delray Beach",
		State:         "FL",
		Zipcode:       "33483",
		Bedrooms:      5,
		Bathrooms:     4,
		LivingArea:    3410,
		YearBuilt:     2011,
		Price:         2150000,
		Latitude:      26.4701,
		Longitude:     -80.0609,
		HomeStatus:    string(models.StatusForSale),
		HomeType:      "Single Family",
		Currency:      "$",
		Description:   "Waterfront estate on Palm Trail with private dock and chef's kitchen.",
		Pictures: []string{
			"https://photos.example.com/houses/402-palm-trail/01.jpg",
			"https://photos.example.com/houses/402-palm-trail/02.jpg",
		},
	},
	{
		StreetAddress: "88 Seabreeze Ct Unit 3B",
		City:          "Lake Worth",
		State:         "FL",
		Zipcode:       "33460",
		Bedrooms:      1,
		Bathrooms:     1,
		LivingArea:    710,
		YearBuilt:     1979,
		Price:         1850,
		Latitude:      26.6148,
		Longitude:     -80.0572,
		HomeStatus:    string(models.StatusForRent),
		HomeType:      "Multi-Family",
		Currency:      "$",
		Description:   "Bright one bedroom unit two blocks from the intracoastal.",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	owner, err := db.GetUserByEmail(ctx, "demo@rentandhome.dev")
	if err != nil {
		owner, err = db.CreateUser(ctx, "Demo Agent", "demo@rentandhome.dev", string(hash))
		if err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (id=%d)", owner.Email, owner.ID)
	}

	existing, err := db.ListHouses(ctx, &models.HouseListParams{OwnerID: &owner.ID})
	if err != nil {
		log.Fatalf("Failed to check existing listings: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already owns %d listings, nothing to seed", len(existing))
		return
	}

	for i := range sampleHouses {
		house, err := db.CreateHouse(ctx, &sampleHouses[i], owner.ID)
		if err != nil {
			log.Fatalf("Failed to seed house %q: %v", sampleHouses[i].StreetAddress, err)
		}
		log.Printf("Seeded house %d: %s, %s", house.ID, house.StreetAddress, house.City)
	}

	log.Printf("Seeded %d listings", len(sampleHouses))
}
