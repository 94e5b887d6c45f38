// Package cli implements the antipodes command line.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"antipodes-api/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "antipodes",
		Short:        "Antipodes and their word labels",
		SilenceUsage: true,
	}

	cmd.AddCommand(calcCmd())
	cmd.AddCommand(resolveCmd(newConfiguredResolver))
	return cmd
}

// parseCoordinate reads LAT LON positional arguments.
func parseCoordinate(args []string) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid longitude %q", args[1])
	}

	c := models.Coordinate{Latitude: lat, Longitude: lon}
	if !c.Valid() {
		return models.Coordinate{}, fmt.Errorf("coordinate %s,%s out of range", args[0], args[1])
	}
	return c, nil
}

// splitArgs separates numeric arguments from flags so that negative
// coordinates are not read as shorthand flags. A number given as the value of
// a flag stays with that flag.
func splitArgs(fs *pflag.FlagSet, args []string) (flags, numbers []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if isNumber(arg) {
			numbers = append(numbers, arg)
			continue
		}
		flags = append(flags, arg)
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, numbers
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether arg names a non-boolean flag whose value is the
// next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") || arg == "-" || arg == "--" {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = fs.Lookup(name)
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
