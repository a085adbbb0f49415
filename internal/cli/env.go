package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvAlgo            = "GNOMES_ALGO"
	EnvExhaustiveLimit = "GNOMES_EXHAUSTIVE_LIMIT"
	EnvLogLevel        = "GNOMES_LOG_LEVEL"
	EnvLogFormat       = "GNOMES_LOG_FORMAT"
)

// DefaultEnvFile is read when -env is not given.
const DefaultEnvFile = ".env"

// EnvFile returns the value of the -env flag in args, or DefaultEnvFile.
// It runs before Parse because the file supplies Parse's flag defaults.
func EnvFile(args []string) string {
	file := DefaultEnvFile
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "env" || !strings.HasPrefix(arg, "-") {
			continue
		}
		if hasValue {
			file = value
		} else if i+1 < len(args) {
			i++
			file = args[i]
		}
	}

	return file
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No .env file, skipping.", "file", file)
				continue
			}
			return err
		}
		slog.Debug("Loaded .env file.", "file", file)
	}

	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envString returns the value of key or def when unset or empty.
func envString(lookup LookupFunc, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}

	return def
}

// envInt returns the integer value of key or def when unset.
func envInt(lookup LookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ExitError{Code: 2, Message: "invalid " + key + ": " + err.Error()}
	}

	return n, nil
}
