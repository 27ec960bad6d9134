package main

import (
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"localipc-go/pkg/localsocket"
	"localipc-go/pkg/peercred"
)

var noReclaim bool

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an echo server on the IPC endpoint",
		RunE:  runServe,
	}
	cmd.Flags().BoolVar(&noReclaim, "no-reclaim", false,
		"Do not remove the socket file on shutdown (caller manages cleanup)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, name, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := localsocket.NewListenerOptions(name)
	opts.Logger = logger
	ln, err := opts.Create()
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) && !name.IsNamespaced() {
			if localsocket.IsLive(name) {
				logger.Error("endpoint is in use by a live listener",
					zap.String("endpoint", cfg.Endpoint))
			} else {
				logger.Error("endpoint is occupied by a corpse socket; remove the file and retry",
					zap.String("endpoint", cfg.Endpoint))
			}
		}
		return err
	}
	if noReclaim {
		ln.DoNotReclaimNameOnDrop()
	}
	defer ln.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("serving", zap.String("endpoint", cfg.Endpoint))

	g, ctx := errgroup.WithContext(ctx)
	for stream, err := range ln.Incoming(ctx) {
		if err != nil {
			logger.Warn("incoming connection failed", zap.Error(err))
			continue
		}
		g.Go(func() error {
			handleConn(logger, stream)
			return nil
		})
	}

	stopErr := g.Wait()
	logger.Info("server stopped")
	return stopErr
}

// handleConn echoes everything back, logging who connected when the
// platform can tell us.
func handleConn(logger *zap.Logger, stream *localsocket.Stream) {
	defer stream.Close()

	if info, err := peercred.Get(stream.Conn); err == nil {
		logger.Info("peer connected",
			zap.Int32("pid", info.PID),
			zap.Uint32("uid", info.UID),
			zap.Uint32("gid", info.GID))
	} else if !errors.Is(err, peercred.ErrNotImplemented) {
		logger.Debug("peer credentials unavailable", zap.Error(err))
	}

	if _, err := io.Copy(stream, stream); err != nil {
		logger.Debug("echo ended", zap.Error(err))
	}
}
