// Package config holds the configuration for the localipc daemon and
// client commands: the IPC endpoint, the data directory the default
// socket lives in, and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// DefaultDataDir is created under the user's home directory.
	DefaultDataDir = ".localipc"

	// DefaultSocketName is the socket file placed in the data directory
	// on Unix-like platforms.
	DefaultSocketName = "localipc.sock"
)

// Config is the daemon/client configuration.
type Config struct {
	// Endpoint is the IPC endpoint in unix:// or npipe:// form. Empty
	// means the platform default derived from DataDir.
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`

	// DataDir holds the socket file and log directory.
	DataDir string `json:"data_dir" mapstructure:"data-dir"`

	// Logging configures the zap logger; nil means console-only at the
	// default level.
	Logging *LogConfig `json:"logging,omitempty" mapstructure:"logging"`
}

// LogConfig mirrors the logger setup knobs.
type LogConfig struct {
	Level         string `json:"level" mapstructure:"level"`
	EnableFile    bool   `json:"enable_file" mapstructure:"enable-file"`
	EnableConsole bool   `json:"enable_console" mapstructure:"enable-console"`
	Filename      string `json:"filename" mapstructure:"filename"`
	LogDir        string `json:"log_dir,omitempty" mapstructure:"log-dir"`
	MaxSize       int    `json:"max_size" mapstructure:"max-size"`       // MB
	MaxBackups    int    `json:"max_backups" mapstructure:"max-backups"` // files
	MaxAge        int    `json:"max_age" mapstructure:"max-age"`         // days
	Compress      bool   `json:"compress" mapstructure:"compress"`
	JSONFormat    bool   `json:"json_format" mapstructure:"json-format"`
}

// DefaultConfig returns the built-in defaults. DataDir is left empty and
// resolved against the home directory during Load.
func DefaultConfig() *Config {
	return &Config{
		Logging: &LogConfig{
			Level:         "info",
			EnableConsole: true,
			Filename:      "localipc.log",
			MaxSize:       10,
			MaxBackups:    5,
			MaxAge:        30,
			Compress:      true,
		},
	}
}

// DefaultEndpoint derives the platform default endpoint from the data
// directory: a socket file inside it on Unix, a per-user named pipe on
// Windows.
func DefaultEndpoint(dataDir string) string {
	if runtime.GOOS == "windows" {
		username := os.Getenv("USERNAME")
		if username == "" {
			username = "default"
		}
		return fmt.Sprintf("npipe:////./pipe/localipc-%s", username)
	}
	return fmt.Sprintf("unix://%s", filepath.Join(dataDir, DefaultSocketName))
}

// Validate checks invariants that the loader cannot default away.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory not resolved")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint not resolved")
	}
	return nil
}
