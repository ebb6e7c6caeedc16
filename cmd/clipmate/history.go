package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/history"
)

func newHistoryCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the clipboard history, oldest first",
		Long: `Prints one line per entry:

  <n>: <data> <TEXT|IMAGE>

where n is the number to pass to "clipmate <n>". Image entries show the path
of the stored PNG.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runHistory(cmd, v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runHistory(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v, false)

	store, err := history.Load(v.GetString("history-file"))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if v.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(store.Items())
	}

	for i, it := range store.Items() {
		fmt.Fprintf(out, "%d: %s %s\n", i+1, it.Data, it.ItemType)
	}
	return nil
}
