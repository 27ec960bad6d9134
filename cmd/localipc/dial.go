package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localipc-go/pkg/localsocket"
)

var dialTimeout time.Duration

func dialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dial [message]",
		Short: "Send a message to the IPC endpoint and print the reply",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDial,
	}
	cmd.Flags().DurationVar(&dialTimeout, "timeout", 5*time.Second, "Connect and reply timeout")
	return cmd
}

func runDial(cmd *cobra.Command, args []string) error {
	_, logger, name, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	msg := "ping"
	if len(args) == 1 {
		msg = args[0]
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), dialTimeout)
	defer cancel()

	stream, err := localsocket.DialContext(ctx, name)
	if err != nil {
		return err
	}
	defer stream.Close()

	logger.Debug("connected", zap.String("name", name.String()))

	if err := stream.SetDeadline(time.Now().Add(dialTimeout)); err != nil {
		return err
	}
	if _, err := stream.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	reply, err := bufio.NewReader(stream).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	fmt.Print(reply)
	return nil
}
