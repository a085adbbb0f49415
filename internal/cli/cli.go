package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/gnomes/grid"
	"github.com/katalvlaran/gnomes/internal/app"
	"github.com/katalvlaran/gnomes/solver"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Flag defaults come from lookup
// (normally os.LookupEnv). It returns a populated Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, lookup LookupFunc) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gnomes", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gnomes - find the most valuable right/down walk across a rocky grid.

Usage:
  gnomes [options] [GRID_FILE]
  gnomes -random 8x8 [options]

Arguments:
  GRID_FILE
    Path to an .hcl file with one or more grid blocks.

Environment:
  GNOMES_ALGO, GNOMES_EXHAUSTIVE_LIMIT, GNOMES_LOG_LEVEL, GNOMES_LOG_FORMAT
    Defaults for the matching flags; also read from the -env file.

Options:
`)
		flagSet.PrintDefaults()
	}

	limitDefault, err := envInt(lookup, EnvExhaustiveLimit, solver.DefaultExhaustiveLimit)
	if err != nil {
		return nil, false, err
	}
	defaults := grid.DefaultRandomOptions()

	gridFlag := flagSet.String("grid", "", "Path to the HCL grid file.")
	nameFlag := flagSet.String("name", "", "Grid block to solve; the first block when empty.")
	randomFlag := flagSet.String("random", "", "Generate a random grid of size ROWSxCOLS instead of loading a file.")
	seedFlag := flagSet.Int64("seed", defaults.Seed, "Seed for -random; 0 selects the fixed default seed.")
	rocksFlag := flagSet.Float64("rocks", defaults.RockRatio, "Rock probability for -random.")
	goldFlag := flagSet.Float64("gold", defaults.GoldRatio, "Gold probability for -random.")
	maxValueFlag := flagSet.Int("max-value", defaults.MaxValue, "Largest gold value per cell for -random.")
	algoFlag := flagSet.String("algo", envString(lookup, EnvAlgo, "auto"), "Solver: 'auto', 'exhaustive', 'dp' or 'both'.")
	limitFlag := flagSet.Int("exhaustive-limit", limitDefault, "Largest rows+columns-2 for which 'auto' uses exhaustive search.")
	logFormatFlag := flagSet.String("log-format", envString(lookup, EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	flagSet.String("env", DefaultEnvFile, "Dotenv file with GNOMES_* defaults; read before the other flags.")
	logLevelFlag := flagSet.String("log-level", envString(lookup, EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	gridPath := *gridFlag
	if gridPath == "" && flagSet.NArg() > 0 {
		gridPath = flagSet.Arg(0)
	}
	if gridPath == "" && *randomFlag == "" {
		slog.Debug("No grid given, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	var rows, cols int
	if *randomFlag != "" {
		rows, cols, err = parseSize(*randomFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GridPath:   gridPath,
		GridName:   *nameFlag,
		RandomRows: rows,
		RandomCols: cols,
		Random: grid.RandomOptions{
			Seed:      *seedFlag,
			RockRatio: *rocksFlag,
			GoldRatio: *goldFlag,
			MaxValue:  *maxValueFlag,
		},
		Mode:            strings.ToLower(*algoFlag),
		ExhaustiveLimit: *limitFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseSize reads "ROWSxCOLS", e.g. "8x12".
func parseSize(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid random size %q: want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("invalid random size %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("invalid random size %q: %w", s, err)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("invalid random size %q: both dimensions must be positive", s)
	}

	return rows, cols, nil
}
