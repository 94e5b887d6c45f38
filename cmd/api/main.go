package main

import (
	"context"
	"fmt"

	_ "antipodes-api/docs"
	"antipodes-api/internal/config"
	"antipodes-api/internal/handler"
	"antipodes-api/internal/logging"
	"antipodes-api/internal/metrics"
	"antipodes-api/internal/repository"
	"antipodes-api/internal/selection"
	"antipodes-api/internal/service"
	"antipodes-api/internal/w3w"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title			Antipodes API
// @version		1.0
// @description	Word labels for a coordinate and its antipode.
// @BasePath		/
func main() {
	// A local .env is optional; values there become environment overrides.
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logging.Setup(config.LogLevel, config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("cannot configure logging")
	}

	m := metrics.New()

	lookup, cleanup, err := newLookup(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Str("provider", config.LookupProvider).Msg("cannot create word lookup")
	}
	defer cleanup()

	// Initialize layers
	locationWordsService := service.NewLocationWordsService(
		m.InstrumentLookup(config.LookupProvider, lookup),
		service.WithParallelLookups(config.ParallelLookups),
	)

	policy, err := selection.ParsePolicy(config.SelectionPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid selection policy")
	}
	machine := selection.New(locationWordsService, selection.WithPolicy(policy))
	machine.Subscribe(m.ObserveSelection)

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.Dependencies{
		Locations: locationWordsService,
		Selection: machine,
		Metrics:   m.Handler(),
	})

	log.Info().
		Str("addr", config.ServerAddress).
		Str("provider", config.LookupProvider).
		Str("policy", string(machine.Policy())).
		Bool("parallel_lookups", config.ParallelLookups).
		Msg("starting server")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newLookup builds the configured word lookup provider and returns a function
// releasing its resources.
func newLookup(ctx context.Context, cfg config.Config) (service.WordLookup, func(), error) {
	switch cfg.LookupProvider {
	case config.ProviderW3W:
		client, err := w3w.NewClient(w3w.Config{
			APIKey:   cfg.W3WAPIKey,
			BaseURL:  cfg.W3WBaseURL,
			Language: cfg.W3WLanguage,
			Timeout:  cfg.LookupTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case config.ProviderPostgres:
		// Database connection
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot connect to db: %w", err)
		}
		if err := conn.Ping(ctx); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("cannot reach db: %w", err)
		}
		return repository.NewRepository(conn), conn.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown provider %q", cfg.LookupProvider)
}
