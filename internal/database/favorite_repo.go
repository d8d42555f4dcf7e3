package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/furqanahmad03/rent-and-home/internal/models"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

// AddFavorite records a favorite for the user. Adding an existing favorite
// is a no-op; the unique (user_id, house_id) constraint guarantees at most
// one record per pair.
func (db *DB) AddFavorite(ctx context.Context, userID, houseID int) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO favorites (user_id, house_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, house_id) DO NOTHING
	`, userID, houseID)
	return err
}

// RemoveFavorite deletes the favorite for the (user, house) pair
func (db *DB) RemoveFavorite(ctx context.Context, userID, houseID int) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND house_id = $2
	`, userID, houseID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// IsFavorite reports whether the user has favorited the house
func (db *DB) IsFavorite(ctx context.Context, userID, houseID int) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND house_id = $2)
	`, userID, houseID).Scan(&exists)
	return exists, err
}

// ListFavorites returns the user's favorite records, newest first
func (db *DB) ListFavorites(ctx context.Context, userID int) ([]*models.Favorite, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, house_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		f := &models.Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.HouseID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// ListFavoriteHouses returns the full listings the user has favorited,
// most recently favorited first.
func (db *DB) ListFavoriteHouses(ctx context.Context, userID int) ([]*models.House, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		JOIN favorites f ON f.house_id = h.id
		WHERE f.user_id = $1
		GROUP BY h.id, f.created_at
		ORDER BY f.created_at DESC
	`, houseColumns, houseJoin)

	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var houses []*models.House
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, err
		}
		houses = append(houses, h)
	}

	return houses, rows.Err()
}
