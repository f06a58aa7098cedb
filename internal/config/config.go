// Package config provides functionality for managing configuration options
// for the fakeforge server using command-line flags, a JSON config file and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Options holds the configuration values for the server.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"address"`

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string `json:"database_dsn"`

	// Config is the path to the Config file.
	Config string `json:"-"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert"`
	TLSKey  string `json:"tls_key"`

	// FakerSeed makes generated values reproducible. Zero picks a random seed.
	FakerSeed int64 `json:"faker_seed"`

	// CleanupInterval and Retention drive the purge of soft-deleted models.
	CleanupInterval time.Duration `json:"-"`
	Retention       time.Duration `json:"-"`
}

// fileOptions mirrors the durations as strings so the config file can use "1h".
type fileOptions struct {
	*Options
	CleanupInterval string `json:"cleanup_interval"`
	Retention       string `json:"retention"`
}

// NewFlagSet registers all server flags on fs and returns the Options they fill.
func NewFlagSet(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.Port, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&o.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&o.Config, "config", "config.json", "path to config file")
	fs.StringVar(&o.Config, "c", "config.json", "path to config file (shorthand)")
	fs.StringVar(&o.LogLevel, "l", "info", "log level")
	fs.StringVar(&o.TLSCert, "tls-cert", "", "path to TLS certificate")
	fs.StringVar(&o.TLSKey, "tls-key", "", "path to TLS private key")
	fs.Int64Var(&o.FakerSeed, "seed", 0, "seed for fake values (0 = random)")
	fs.DurationVar(&o.CleanupInterval, "cleanup-interval", time.Hour, "interval between purges of deleted models")
	fs.DurationVar(&o.Retention, "retention", 30*24*time.Hour, "how long deleted models are kept")
	return o
}

// Parse parses args into a fresh Options, then applies the config file and
// environment overrides. Precedence: env > config file > flags.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	options := NewFlagSet(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			if err := loadFile(options.Config, options); err != nil {
				return nil, err
			}
		}
	}

	if err := applyEnv(options); err != nil {
		return nil, err
	}
	if options.CleanupInterval <= 0 {
		return nil, fmt.Errorf("cleanup interval must be positive, got %s", options.CleanupInterval)
	}
	return options, nil
}

func loadFile(path string, options *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}
	fo := fileOptions{Options: options}
	if err := json.Unmarshal(data, &fo); err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	if fo.CleanupInterval != "" {
		if options.CleanupInterval, err = time.ParseDuration(fo.CleanupInterval); err != nil {
			return fmt.Errorf("cleanup_interval: %w", err)
		}
	}
	if fo.Retention != "" {
		if options.Retention, err = time.ParseDuration(fo.Retention); err != nil {
			return fmt.Errorf("retention: %w", err)
		}
	}
	return nil
}

func applyEnv(options *Options) error {
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}
	if seed := os.Getenv("FAKER_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid FAKER_SEED: %w", err)
		}
		options.FakerSeed = v
	}
	return nil
}

// TLSEnabled reports whether both certificate and key are configured.
func (o *Options) TLSEnabled() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}
