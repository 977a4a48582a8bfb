// Package cmd provides command-line interface functionality for the tdate application.
//
// This package implements the root command and manages the command-line interface
// using the cobra library. It handles configuration, logging setup, and command
// execution for the tdate application.
//
// The package integrates with several components:
//   - Configuration management through pkg/config
//   - Core functionality through internal/app
//   - Manual pages through pkg/man
//   - Version information through pkg/version
//
// Example usage:
//
//	import "github.com/toozej/tdate/cmd/tdate"
//
//	func main() {
//		cmd.Execute()
//	}
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/toozej/tdate/internal/app"
	"github.com/toozej/tdate/pkg/config"
	"github.com/toozej/tdate/pkg/man"
	"github.com/toozej/tdate/pkg/version"
)

// conf holds the application configuration loaded from environment variables.
// It is populated during package initialization and can be modified by command-line flags.
var (
	conf config.Config
	// debug controls the logging level for the application.
	// When true, debug-level logging is enabled through logrus.
	debug bool
	// noCache bypasses the on-disk geocoding cache for this invocation.
	noCache bool
	// showOz switches the invocation to printing Liber OZ instead of a date.
	showOz bool
)

// rootCmd defines the base command for the tdate CLI application.
// It serves as the entry point for all command-line operations and establishes
// the application's structure, flags, and subcommands.
//
// Run with no positional arguments it prints the Thelemic date for the
// present moment at the configured location. Run with exactly six
// positional arguments (YEAR MONTH DAY HOUR MINUTE LOCATION) it prints
// the Thelemic date for that civil time at that location.
var rootCmd = &cobra.Command{
	Use:   "tdate [YEAR MONTH DAY HOUR MINUTE LOCATION]",
	Short: "Thelemic date calculator",
	Long: `Thelemic date calculator using cobra, logrus, dotenv and env modules.

Prints the date line composed of the Sun's and Moon's zodiacal positions,
the Latin day name, and the Anno year of the era begun at the vernal
equinox of 1904, e.g.

	☉ in 22º Capricorn : ☽ in 8º Pisces : dies Martis : Anno IIIv æræ legis`,
	Args:             validateRootArgs,
	PersistentPreRun: rootCmdPreRun,
	Run:              rootCmdRun,
}

// validateRootArgs accepts either no positional arguments or the full
// six-field explicit form.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command-line arguments
func validateRootArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 6 {
		return fmt.Errorf("accepts no arguments or exactly 6 (YEAR MONTH DAY HOUR MINUTE LOCATION), received %d", len(args))
	}
	return nil
}

// rootCmdRun is the main execution function for the root command.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command-line arguments, either empty or the six-field form
func rootCmdRun(cmd *cobra.Command, args []string) {
	if showOz {
		app.Oz(os.Stdout)
		return
	}

	fs := afero.NewOsFs()
	resolver, err := app.NewResolver(fs, conf, noCache)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if len(args) == 6 {
		fields, err := parseDatetimeArgs(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := app.At(os.Stdout, resolver, fields[0], fields[1], fields[2], fields[3], fields[4], args[5]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	if err := app.Now(os.Stdout, resolver, time.Now, conf.Location); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseDatetimeArgs converts the first five positional arguments into
// their integer fields.
func parseDatetimeArgs(args []string) ([5]int, error) {
	names := [5]string{"year", "month", "day", "hour", "minute"}
	var fields [5]int
	for i := range fields {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fields, fmt.Errorf("invalid %s %q", names[i], args[i])
		}
		fields[i] = v
	}
	return fields, nil
}

// rootCmdPreRun performs setup operations before executing the root command.
// This function is called before both the root command and any subcommands.
//
// It configures the logging level based on the debug flag. When debug mode
// is enabled, logrus is set to DebugLevel for detailed logging output.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Command-line arguments
func rootCmdPreRun(cmd *cobra.Command, args []string) {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute starts the command-line interface execution.
// This is the main entry point called from main.go to begin command processing.
//
// If command execution fails, it prints the error message to stdout and
// exits the program with status code 1. This follows standard Unix conventions
// for command-line tool error handling.
//
// Example:
//
//	func main() {
//		cmd.Execute()
//	}
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// init initializes the command-line interface during package loading.
//
// This function performs the following setup operations:
//   - Loads configuration from environment variables using config.GetEnvVars()
//   - Defines persistent flags that are available to all commands
//   - Sets up command-specific flags for the root command
//   - Registers subcommands (man pages and version information)
//
// The debug flag (-d, --debug) enables debug-level logging and is persistent,
// meaning it's inherited by all subcommands. The location flag (-l, --location)
// allows overriding the location from environment variables.
func init() {
	// get configuration from environment variables
	conf = config.GetEnvVars()

	// create rootCmd-level flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the on-disk geocoding cache")

	// optional flag for location, overrides env var
	rootCmd.PersistentFlags().StringVarP(&conf.Location, "location", "l", conf.Location, "Location the date is computed for")

	// hidden flag for Liber OZ
	rootCmd.Flags().BoolVar(&showOz, "oz", false, "Print Liber OZ")
	if err := rootCmd.Flags().MarkHidden("oz"); err != nil {
		log.Warnf("Failed to hide oz flag: %v", err)
	}

	// add sub-commands
	rootCmd.AddCommand(
		man.NewManCmd(),
		version.Command(),
	)
}
