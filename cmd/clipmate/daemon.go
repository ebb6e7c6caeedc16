package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/daemon"
	"go.klb.dev/clipmate/internal/ipc"
)

func newDaemonCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Record clipboard text and images until stopped",
		Long: `Samples the clipboard every --interval and appends new text and images to
the history file. Identical consecutive text is recorded once; an image is
recorded once no matter how often it is copied.

Images are read with an external helper (xclip by default). If the helper
cannot be run, image capture is switched off for the rest of the process and
text capture carries on.

Only one daemon may run per user; a second one exits with an error.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runDaemon(cmd.Context(), v) },
	}

	cmd.Flags().Duration("interval", daemon.DefaultInterval, "time between clipboard samples")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(ctx context.Context, v *viper.Viper) error {
	setupLogging(v, true)

	ln, err := ipc.Listen()
	if err != nil {
		return err
	}
	defer ln.Close()
	go ipc.Serve(ln)

	mgr, err := openManager(v, true)
	if err != nil {
		return err
	}

	text, images := mgr.Store().Counters()
	slog.Info("clipmate daemon starting",
		"version", Version,
		"history", mgr.Store().Path(),
		"items", mgr.Store().Len(),
		"text_counter", text,
		"image_counter", images,
		"image_helper", v.GetString("image-helper"),
		"socket", ipc.SocketPath(),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := daemon.Run(ctx, mgr, v.GetDuration("interval")); err != nil {
		return fmt.Errorf("daemon: %w", err)
	}
	return nil
}
