package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/furqanahmad03/rent-and-home/internal/models"
)

var (
	ErrHouseNotFound   = errors.New("house not found")
	ErrPictureNotFound = errors.New("picture not found")
)

// houseColumns is the SELECT list shared by every house query. Pictures are
// aggregated in position order so the first entry is the card image.
const houseColumns = `
	h.id, h.street_address, h.city, h.state, h.zipcode,
	h.neighborhood, h.community, h.subdivision,
	h.bedrooms, h.bathrooms, h.living_area, COALESCE(h.year_built, 0),
	h.price, COALESCE(h.latitude, 0), COALESCE(h.longitude, 0),
	h.home_status, h.home_type, h.currency,
	COALESCE(h.description, ''), COALESCE(h.date_posted, ''),
	COALESCE(h.owner_id, 0), h.created_at, h.updated_at,
	COALESCE(array_agg(p.url ORDER BY p.position) FILTER (WHERE p.url IS NOT NULL), '{}') AS pictures`

const houseJoin = `
	FROM houses h
	LEFT JOIN house_pictures p ON p.house_id = h.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHouse(row rowScanner) (*models.House, error) {
	h := &models.House{}
	var urls []string
	err := row.Scan(
		&h.ID, &h.StreetAddress, &h.City, &h.State, &h.Zipcode,
		&h.Neighborhood, &h.Community, &h.Subdivision,
		&h.Bedrooms, &h.Bathrooms, &h.LivingArea, &h.YearBuilt,
		&h.Price, &h.Latitude, &h.Longitude,
		&h.HomeStatus, &h.HomeType, &h.Currency,
		&h.Description, &h.DatePostedString,
		&h.OwnerID, &h.CreatedAt, &h.UpdatedAt,
		&urls,
	)
	if err != nil {
		return nil, err
	}
	h.Pictures = make([]models.Picture, 0, len(urls))
	for _, url := range urls {
		h.Pictures = append(h.Pictures, models.Picture{URL: url})
	}
	return h, nil
}

// ListHouses returns listings matching the backend query parameters,
// newest first. In-memory filtering on top of this set happens in the
// handler via the filter package.
func (db *DB) ListHouses(ctx context.Context, params *models.HouseListParams) ([]*models.House, error) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if params.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("h.home_status = $%d", argIndex))
		args = append(args, params.Status)
		argIndex++
	}

	if params.Exclude != 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("h.id <> $%d", argIndex))
		args = append(args, params.Exclude)
		argIndex++
	}

	if params.OwnerID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("h.owner_id = $%d", argIndex))
		args = append(args, *params.OwnerID)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	limitClause := ""
	if params.Limit > 0 {
		limitClause = fmt.Sprintf("LIMIT $%d", argIndex)
		args = append(args, params.Limit)
	}

	query := fmt.Sprintf(`
		SELECT %s %s
		%s
		GROUP BY h.id
		ORDER BY h.created_at DESC
		%s
	`, houseColumns, houseJoin, whereClause, limitClause)

	rows, err := db.Pool.Query(ctx, query, args...)
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

// GetHouseByID retrieves a single listing with its pictures
func (db *DB) GetHouseByID(ctx context.Context, id int) (*models.House, error) {
	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE h.id = $1
		GROUP BY h.id
	`, houseColumns, houseJoin)

	h, err := scanHouse(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	return h, nil
}

// CreateHouse inserts a listing and its initial pictures in one transaction
func (db *DB) CreateHouse(ctx context.Context, req *models.CreateHouseRequest, ownerID int) (*models.House, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO houses (
			street_address, city, state, zipcode,
			neighborhood, community, subdivision,
			bedrooms, bathrooms, living_area, year_built,
			price, latitude, longitude,
			home_status, home_type, currency, description,
			date_posted, owner_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, TO_CHAR(NOW(), 'YYYY-MM-DD'), $19, NOW(), NOW())
		RETURNING id
	`,
		req.StreetAddress, req.City, req.State, req.Zipcode,
		req.Neighborhood, req.Community, req.Subdivision,
		req.Bedrooms, req.Bathrooms, req.LivingArea, req.YearBuilt,
		req.Price, req.Latitude, req.Longitude,
		req.HomeStatus, req.HomeType, req.Currency, req.Description,
		ownerID,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	for position, url := range req.Pictures {
		_, err = tx.Exec(ctx, `
			INSERT INTO house_pictures (house_id, url, position)
			VALUES ($1, $2, $3)
		`, id, url, position)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return db.GetHouseByID(ctx, id)
}

// UpdateHouse applies the non-nil fields of the request
func (db *DB) UpdateHouse(ctx context.Context, id int, req *models.UpdateHouseRequest) (*models.House, error) {
	result, err := db.Pool.Exec(ctx, `
		UPDATE houses
		SET street_address = COALESCE($2, street_address),
		    city = COALESCE($3, city),
		    state = COALESCE($4, state),
		    zipcode = COALESCE($5, zipcode),
		    neighborhood = COALESCE($6, neighborhood),
		    community = COALESCE($7, community),
		    subdivision = COALESCE($8, subdivision),
		    bedrooms = COALESCE($9, bedrooms),
		    bathrooms = COALESCE($10, bathrooms),
		    living_area = COALESCE($11, living_area),
		    year_built = COALESCE($12, year_built),
		    price = COALESCE($13, price),
		    latitude = COALESCE($14, latitude),
		    longitude = COALESCE($15, longitude),
		    home_status = COALESCE($16, home_status),
		    home_type = COALESCE($17, home_type),
		    description = COALESCE($18, description),
		    updated_at = NOW()
		WHERE id = $1
	`, id,
		req.StreetAddress, req.City, req.State, req.Zipcode,
		req.Neighborhood, req.Community, req.Subdivision,
		req.Bedrooms, req.Bathrooms, req.LivingArea, req.YearBuilt,
		req.Price, req.Latitude, req.Longitude,
		req.HomeStatus, req.HomeType, req.Description,
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrHouseNotFound
	}

	return db.GetHouseByID(ctx, id)
}

// DeleteHouse deletes a listing; pictures and favorites cascade
func (db *DB) DeleteHouse(ctx context.Context, id int) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM houses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrHouseNotFound
	}
	return nil
}

// AddHousePicture appends a picture after the current last position
func (db *DB) AddHousePicture(ctx context.Context, houseID int, url string) (*models.Picture, error) {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO house_pictures (house_id, url, position)
		VALUES ($1, $2, COALESCE((SELECT MAX(position) + 1 FROM house_pictures WHERE house_id = $1), 0))
	`, houseID, url)
	if err != nil {
		return nil, err
	}
	return &models.Picture{URL: url}, nil
}

// RemoveHousePicture deletes a picture from a listing's gallery by URL
func (db *DB) RemoveHousePicture(ctx context.Context, houseID int, url string) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM house_pictures WHERE house_id = $1 AND url = $2
	`, houseID, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrPictureNotFound
	}
	return nil
}
