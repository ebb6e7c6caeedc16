package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/history"
	"go.klb.dev/clipmate/internal/ipc"
)

type statusReport struct {
	HistoryFile  string `json:"history_file"`
	Items        int    `json:"items"`
	TextCounter  uint64 `json:"text_counter"`
	ImageCounter uint64 `json:"image_counter"`
	ImageDir     string `json:"image_dir"`
	ImageHelper  string `json:"image_helper"`
	Daemon       bool   `json:"daemon_running"`
	Socket       string `json:"socket"`
}

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show history counters and whether a daemon is recording",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runStatus(cmd, v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addStoreFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v, false)

	store, err := history.Load(v.GetString("history-file"))
	if err != nil {
		return err
	}
	text, images := store.Counters()
	r := statusReport{
		HistoryFile:  store.Path(),
		Items:        store.Len(),
		TextCounter:  text,
		ImageCounter: images,
		ImageDir:     v.GetString("image-dir"),
		ImageHelper:  v.GetString("image-helper"),
		Daemon:       ipc.IsRunning(),
		Socket:       ipc.SocketPath(),
	}

	out := cmd.OutOrStdout()
	if v.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "HISTORY\t%s\n", r.HistoryFile)
	fmt.Fprintf(w, "ITEMS\t%d (%d text, %d image)\n", r.Items, r.TextCounter, r.ImageCounter)
	fmt.Fprintf(w, "IMAGES\t%s\n", r.ImageDir)
	fmt.Fprintf(w, "HELPER\t%s\n", r.ImageHelper)
	fmt.Fprintf(w, "DAEMON\t%s\n", running(r.Daemon))
	fmt.Fprintf(w, "SOCKET\t%s\n", r.Socket)
	return w.Flush()
}

func running(b bool) string {
	if b {
		return "running"
	}
	return "not running"
}
