package cli

import (
	"context"
	"fmt"

	"antipodes-api/internal/config"
	"antipodes-api/internal/geo"
	"antipodes-api/internal/models"
	"antipodes-api/internal/service"
	"antipodes-api/internal/w3w"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Resolver resolves a coordinate and its antipode to word labels.
type Resolver interface {
	Resolve(ctx context.Context, c models.Coordinate) (models.SelectionResult, error)
}

type resolverFactory func(configDir string, parallel bool) (Resolver, error)

func resolveCmd(newResolver resolverFactory) *cobra.Command {
	var configDir string
	var parallel bool

	c := &cobra.Command{
		Use:   "resolve LAT LON",
		Short: "Look up the words for a coordinate and for its antipode",
		Args:  cobra.ArbitraryArgs,
		// Flags are parsed in RunE so that negative coordinates stay positional.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			flagArgs, coordArgs := splitArgs(fs, args)
			if err := fs.Parse(flagArgs); err != nil {
				return err
			}
			if help, _ := fs.GetBool("help"); help {
				return cmd.Help()
			}
			if fs.NArg() > 0 {
				return fmt.Errorf("unexpected argument %q", fs.Arg(0))
			}
			if len(coordArgs) != 2 {
				return fmt.Errorf("accepts 2 arg(s), received %d", len(coordArgs))
			}

			coord, err := parseCoordinate(coordArgs)
			if err != nil {
				return err
			}

			resolver, err := newResolver(configDir, parallel)
			if err != nil {
				return err
			}

			result, err := resolver.Resolve(cmd.Context(), coord)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "primary   %g,%g\t%s\n", coord.Latitude, coord.Longitude, result.Primary.Words)
			a := geo.Antipode(coord)
			fmt.Fprintf(out, "antipode  %g,%g\t%s\n", a.Latitude, a.Longitude, result.Antipode.Words)
			return nil
		},
	}

	c.Flags().StringVarP(&configDir, "config", "c", "./configs", "Directory containing app.env")
	c.Flags().BoolVar(&parallel, "parallel", false, "Look up both points concurrently")
	return c
}

// newConfiguredResolver builds the orchestrator on top of the what3words client.
func newConfiguredResolver(configDir string, parallel bool) (Resolver, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	if cfg.LookupProvider != config.ProviderW3W {
		return nil, fmt.Errorf("resolve supports LOOKUP_PROVIDER=%s only, got %q", config.ProviderW3W, cfg.LookupProvider)
	}

	client, err := w3w.NewClient(w3w.Config{
		APIKey:   cfg.W3WAPIKey,
		BaseURL:  cfg.W3WBaseURL,
		Language: cfg.W3WLanguage,
		Timeout:  cfg.LookupTimeout,
	})
	if err != nil {
		return nil, err
	}

	return service.NewLocationWordsService(client,
		service.WithParallelLookups(parallel || cfg.ParallelLookups),
	), nil
}
