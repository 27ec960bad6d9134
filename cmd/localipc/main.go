// Command localipc is a demonstration daemon and client for the
// localsocket transport: an echo server over the platform's local IPC
// endpoint, a dial command, and a liveness probe.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localipc-go/internal/config"
	"localipc-go/internal/logs"
	"localipc-go/pkg/localsocket"
)

var (
	configFile string
	endpoint   string
	dataDir    string
	logLevel   string
	logToFile  bool
	logDir     string

	version = "v0.1.0" // injected by -ldflags during build
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "localipc",
		Short:   "Local IPC endpoint tooling over Unix domain sockets and named pipes",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "IPC endpoint (unix:///path or npipe:////./pipe/name)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory path (default: ~/.localipc)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Also write logs to a rotated file")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Custom log directory")

	rootCmd.AddCommand(serveCommand(), dialCommand(), statusCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration and the logger from flags, file and
// environment, and parses the endpoint for the compiled backend.
func setup() (*config.Config, *zap.Logger, localsocket.Name, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, localsocket.Name{}, err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logToFile {
		cfg.Logging.EnableFile = true
	}
	if logDir != "" {
		cfg.Logging.LogDir = logDir
	}

	logger, err := logs.SetupLogger(cfg.Logging)
	if err != nil {
		return nil, nil, localsocket.Name{}, err
	}

	name, err := localsocket.ParseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, nil, localsocket.Name{}, err
	}
	return cfg, logger, name, nil
}
