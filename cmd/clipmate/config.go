package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipmate/internal/blob"
	"go.klb.dev/clipmate/internal/clip"
	"go.klb.dev/clipmate/internal/logging"
	"go.klb.dev/clipmate/internal/manager"
)

const defaultHistoryFile = "./.clipboard_history.json"

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPMATE_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → CLIPMATE_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("clipmate")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/clipmate/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/clipmate", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addStoreFlags adds the flags that locate the history and reach the clipboard.
func addStoreFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("history-file", defaultHistoryFile, "history file path")
	f.String("image-dir", ".", "directory captured images are written to")
	f.String("image-helper", "xclip", "image clipboard helper: "+strings.Join(clip.HelperNames(), "|"))
	f.Duration("helper-timeout", 0, "kill an image helper that runs longer than this (0 = never)")
	f.String("text-backend", clip.BackendAuto, "text clipboard backend: auto|native|command")
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info for daemon, debug if interactive, warn for one-shot commands)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper, longRunning bool) {
	interactive := v.GetBool("no-background") || logging.IsTTY(os.Stderr)
	logging.Setup(
		logging.ParseFormat(v.GetString("log-format")),
		logging.LevelFor(v.GetString("log-level"), interactive, longRunning),
	)
}

// openManager loads the history and connects it to the configured clipboard
// backends. Commands that restore an item and exit pass longRunning=false so
// the restored text outlives the process.
func openManager(v *viper.Viper, longRunning bool) (*manager.Manager, error) {
	text, err := clip.NewText(v.GetString("text-backend"), !longRunning)
	if err != nil {
		return nil, err
	}
	images, err := clip.NewHelper(v.GetString("image-helper"), v.GetDuration("helper-timeout"))
	if err != nil {
		return nil, err
	}
	return manager.Open(v.GetString("history-file"), text, images, blob.NewStore(v.GetString("image-dir")))
}
