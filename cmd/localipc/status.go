package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"localipc-go/pkg/localsocket"
)

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe whether a live listener is behind the IPC endpoint",
		RunE:  runStatus,
	}
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, logger, name, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if localsocket.IsLive(name) {
		fmt.Printf("%s: listening\n", cfg.Endpoint)
		return nil
	}
	if name.IsNamespaced() {
		fmt.Printf("%s: not listening\n", cfg.Endpoint)
	} else {
		// The probe cannot tell "nothing there" from a corpse socket
		// without looking at the filesystem; the caller decides what to
		// do with the file either way.
		fmt.Printf("%s: not listening (a leftover socket file may remain)\n", cfg.Endpoint)
	}
	return fmt.Errorf("no live listener at %s", cfg.Endpoint)
}
