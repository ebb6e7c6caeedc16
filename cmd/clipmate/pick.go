package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/picker"
)

func newPickCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "pick",
		Short:   "Choose a history entry interactively and put it on the clipboard",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runPick(cmd, v) },
	}

	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runPick(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v, false)

	mgr, err := openManager(v, false)
	if err != nil {
		return err
	}
	n, err := picker.Run(mgr.List())
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if _, err := mgr.Restore(cmd.Context(), n); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Clipboard set to item %d\n", n)
	return nil
}
