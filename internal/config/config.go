// Package config handles loading and validating application configuration.
// Values are layered, later sources winning:
//  1. Defaults (see Default)
//  2. A YAML file named by CONFIG_PATH or the --config flag
//  3. The ENV, LOG_LEVEL and OUTPUT_FORMAT environment variables
//
// The environment is only ever read through the getenv function handed to
// Load, never from the process directly.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (see envOverrides).
type Config struct {
	// Env selects the log handler: "dev" logs through a terminal handler,
	// "staging" and "prod" log JSON.
	Env string `yaml:"env" validate:"required,oneof=dev staging prod"`

	// LogLevel is the minimum slog level written to standard error.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`

	// OutputFormat selects how the list is printed to standard output.
	OutputFormat string `yaml:"output_format" validate:"required,oneof=text json"`
}

// Default returns the configuration used when nothing else is set: the
// plain text listing and a quiet logger.
func Default() *Config {
	return &Config{
		Env:          "dev",
		LogLevel:     "warn",
		OutputFormat: "text",
	}
}

// envOverride pairs an environment variable with the field it sets.
type envOverride struct {
	key string
	dst *string
}

func envOverrides(cfg *Config) []envOverride {
	return []envOverride{
		{"ENV", &cfg.Env},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"OUTPUT_FORMAT", &cfg.OutputFormat},
	}
}

// Load resolves the config path from getenv or args, layers the file and
// the environment over the defaults and validates the result.
//
// args follows os.Args: args[0] is the program name. Flag parse errors are
// returned rather than exiting so the caller decides how to fail.
func Load(args []string, getenv func(string) string) (*Config, error) {
	configPath := getenv("CONFIG_PATH")

	if configPath == "" && len(args) > 0 {
		flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		path := flags.String("config", "", "Path to the configuration YAML file")
		if err := flags.Parse(args[1:]); err != nil {
			return nil, fmt.Errorf("config.Load: parse flags: %w", err)
		}
		configPath = *path
	}

	cfg := Default()
	if configPath != "" {
		if err := readFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	// An empty value counts as unset, the same as os.Getenv reports.
	for _, o := range envOverrides(cfg) {
		if v := getenv(o.key); v != "" {
			*o.dst = v
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// readFile decodes the YAML file at path over cfg. Keys missing from the
// file keep their current values. Only the file is read here; environment
// overrides are applied by Load from getenv.
func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		// Give a clear message rather than a cryptic "open: no such file".
		return fmt.Errorf("config file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := cleanenv.ParseYAML(f, cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Validate checks every validate:"..." tag on cfg and folds the failures
// into a single readable error.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var messages []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field %s is required", e.Field()))
		case "oneof":
			messages = append(messages,
				fmt.Sprintf("field %s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}
	return errors.New(strings.Join(messages, ", "))
}
