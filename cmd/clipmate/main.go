// clipmate: clipboard history daemon.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/manager"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "clipmate [item]",
		Short: "Clipboard history",
		Long: `clipmate records everything you copy and lets you put it back.

Run "clipmate daemon" in the background to record text and images. Then use
"clipmate history" to list entries and "clipmate <n>" to put entry n back on
the clipboard, or "clipmate pick" to choose one interactively.

Config file search order (first found wins):
  /etc/clipmate/clipmate.toml
  $HOME/.config/clipmate/clipmate.toml
  path supplied via --config

All flags can be set via CLIPMATE_<FLAG> env vars or config-file keys.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("please provide a valid item number: %q", args[0])
			}
			return runRestore(cmd, v, n)
		},
	}
	addStoreFlags(root)
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(
		newDaemonCmd(),
		newHistoryCmd(),
		newPickCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clipmate %s\n", Version)
		},
	}
}

// runRestore puts item n back on the clipboard. An unknown n is reported and
// is not an error.
func runRestore(cmd *cobra.Command, v *viper.Viper, n int) error {
	setupLogging(v, false)

	mgr, err := openManager(v, false)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := mgr.Restore(cmd.Context(), n); err != nil {
		if errors.Is(err, manager.ErrNotFound) {
			fmt.Fprintf(out, "Item %d not found in clipboard history\n", n)
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "Clipboard set to item %d\n", n)
	return nil
}
