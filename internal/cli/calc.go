package cli

import (
	"fmt"

	"antipodes-api/internal/geo"

	"github.com/spf13/cobra"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc LAT LON",
		Short: "Print the antipode of a coordinate (no lookup)",
		Args:  cobra.ExactArgs(2),
		// calc has no flags; this keeps negative coordinates positional.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoordinate(args)
			if err != nil {
				return err
			}

			a := geo.Antipode(c)
			fmt.Fprintf(cmd.OutOrStdout(), "%g,%g\n", a.Latitude, a.Longitude)
			return nil
		},
	}
}
