package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"antipodes-api/internal/config"
	"antipodes-api/internal/models"
	"antipodes-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "", "Path to the word squares CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	squares, err := parseCSV(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d squares\n", len(squares))

	// Load config. The importer always feeds the postgres provider.
	_ = godotenv.Load()
	os.Setenv("LOOKUP_PROVIDER", config.ProviderPostgres)
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	n, err := repository.InsertSquares(ctx, conn, squares)
	if err != nil {
		fmt.Printf("Error inserting squares: %v\n", err)
		os.Exit(1)
	}

	if err := verifyImport(ctx, conn, int(n)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d squares\n", n)
}

// parseCSV reads rows of words,lat,lon[,language] after a header line.
func parseCSV(r io.Reader) ([]repository.Square, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // language is optional

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var squares []repository.Square
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least 3 columns", line, len(record))
		}

		words := strings.TrimSpace(record[0])
		if words == "" {
			return nil, fmt.Errorf("line %d: %w", line, models.ErrMissingWords)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		if !(models.Coordinate{Latitude: lat, Longitude: lon}).Valid() {
			return nil, fmt.Errorf("line %d: coordinate out of range: %f,%f", line, lat, lon)
		}

		square := repository.Square{Words: words, Lat: lat, Lon: lon}
		if len(record) > 3 {
			square.Language = strings.TrimSpace(record[3])
		}
		squares = append(squares, square)
	}

	return squares, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, imported int) error {
	count, err := repository.SquareCount(ctx, conn)
	if err != nil {
		return err
	}

	if count < imported {
		return fmt.Errorf("square count mismatch: expected at least %d, got %d", imported, count)
	}

	// Check a sample geom
	geom, err := repository.SampleGeom(ctx, conn)
	if err != nil {
		return err
	}

	fmt.Printf("Sample geom: %s\n", geom)
	return nil
}
