package repository

import (
	"context"
	"errors"
	"fmt"

	"antipodes-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultSearchRadiusMeters bounds how far from a coordinate a word square may be matched.
const DefaultSearchRadiusMeters = 5000

// Repository resolves words from a self-hosted PostGIS word grid
type Repository struct {
	db           *pgxpool.Pool
	radiusMeters float64
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db, radiusMeters: DefaultSearchRadiusMeters}
}

// LookupWords returns the word square nearest to the given coordinate
func (r *Repository) LookupWords(ctx context.Context, c models.Coordinate) (models.ResolvedLocation, error) {
	sql := `
		SELECT
			words,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM word_squares
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var (
		words    *string
		lat, lon *float64
	)
	err := r.db.QueryRow(ctx, sql, c.Latitude, c.Longitude, r.radiusMeters).Scan(&words, &lat, &lon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ResolvedLocation{}, models.NewLookupFailed(models.NoResultFound)
		}
		return models.ResolvedLocation{}, &models.LookupFailedError{
			Reason: fmt.Sprintf("repository: failed to execute spatial query: %v", err),
			Err:    err,
		}
	}

	if words == nil || *words == "" {
		return models.ResolvedLocation{}, models.ErrMissingWords
	}
	if lat == nil || lon == nil {
		return models.ResolvedLocation{}, models.ErrMissingCoordinates
	}

	return models.ResolvedLocation{
		Words:      *words,
		Coordinate: models.Coordinate{Latitude: *lat, Longitude: *lon},
	}, nil
}

// CountSquares returns the number of imported word squares
func (r *Repository) CountSquares(ctx context.Context) (int, error) {
	return SquareCount(ctx, r.db)
}
