package models

import (
	"time"
)

// Favorite is a user-listing bookmark. At most one record exists per
// (user, house) pair; the unique constraint in the database enforces it.
type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	HouseID   int       `json:"houseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteRequest is the request body for adding a favorite
type FavoriteRequest struct {
	HouseID int `json:"houseId"`
}
