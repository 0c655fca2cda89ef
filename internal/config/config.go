// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and an
// optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the client.
type Options struct {
	// StorePath is the directory holding locally persisted data.
	StorePath string `env:"JOKEDECK_STORE_PATH" json:"store_path"`

	// Persist enables best-effort saving of authored jokes to StorePath.
	Persist bool `env:"JOKEDECK_PERSIST" json:"persist"`

	// GeoURL is the geolocation provider endpoint. Empty disables the lookup.
	GeoURL string `env:"JOKEDECK_GEO_URL" json:"geo_url"`

	// CameraURL is the camera snapshot endpoint. Empty disables capture.
	CameraURL string `env:"JOKEDECK_CAMERA_URL" json:"camera_url"`

	// SnapshotDir is where captured frames are written. Defaults to StorePath.
	SnapshotDir string `env:"JOKEDECK_SNAPSHOT_DIR" json:"snapshot_dir"`

	// Timeout bounds every capability request.
	Timeout time.Duration `env:"JOKEDECK_TIMEOUT" json:"-"`

	// LogLevel sets the zap logging level.
	LogLevel string `env:"JOKEDECK_LOG_LEVEL" json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// defaultStorePath places local data under the user's home directory.
func defaultStorePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".jokedeck")
}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.StorePath, "store", defaultStorePath(), "directory for local data")
	flag.BoolVar(&options.Persist, "persist", true, "persist authored jokes locally")
	flag.StringVar(&options.GeoURL, "geo-url", "http://ip-api.com/json", "geolocation provider URL (empty to disable)")
	flag.StringVar(&options.CameraURL, "camera-url", "", "camera snapshot URL (empty to disable)")
	flag.StringVar(&options.SnapshotDir, "snapshot-dir", "", "directory for captured frames")
	flag.DurationVar(&options.Timeout, "timeout", 10*time.Second, "capability request timeout")
	flag.StringVar(&options.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional config file and the
// environment to set configuration values. Environment variables take
// precedence over the file, which takes precedence over flags. It returns a
// pointer to the Options struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	if options.SnapshotDir == "" {
		options.SnapshotDir = options.StorePath
	}

	return options
}
