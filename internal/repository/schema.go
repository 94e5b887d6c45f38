package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Schema creates the word_squares table and its spatial index.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS word_squares (
		id BIGSERIAL PRIMARY KEY,
		words VARCHAR(255),
		language VARCHAR(8) NOT NULL DEFAULT 'en',
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS word_squares_geom_idx ON word_squares USING GIST (geom);
`

const (
	countSquaresQuery = "SELECT COUNT(*) FROM word_squares"
	sampleGeomQuery   = "SELECT ST_AsText(geom) FROM word_squares LIMIT 1"
)

// RowQuerier is satisfied by both *pgx.Conn and *pgxpool.Pool.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Square is one row of the word grid as read from an import file.
type Square struct {
	Words    string
	Language string
	Lat      float64
	Lon      float64
}

// EnsureSchema creates the schema on conn if it does not exist yet
func EnsureSchema(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// InsertSquares bulk loads squares with COPY
func InsertSquares(ctx context.Context, conn *pgx.Conn, squares []Square) (int64, error) {
	n, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"word_squares"},
		[]string{"words", "language", "geom"},
		pgx.CopyFromSlice(len(squares), func(i int) ([]any, error) {
			s := squares[i]
			lang := s.Language
			if lang == "" {
				lang = "en"
			}
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", s.Lon, s.Lat) // PostGIS format: lon lat
			return []any{s.Words, lang, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy word squares: %w", err)
	}
	return n, nil
}

// SquareCount returns the number of rows in word_squares.
func SquareCount(ctx context.Context, q RowQuerier) (int, error) {
	var count int
	if err := q.QueryRow(ctx, countSquaresQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count word squares: %w", err)
	}
	return count, nil
}

// SampleGeom returns the WKT of one stored square.
func SampleGeom(ctx context.Context, q RowQuerier) (string, error) {
	var geom string
	if err := q.QueryRow(ctx, sampleGeomQuery).Scan(&geom); err != nil {
		return "", fmt.Errorf("repository: failed to read sample geom: %w", err)
	}
	return geom, nil
}
