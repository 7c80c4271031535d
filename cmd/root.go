package cmd

import (
	"fmt"
	"os"

	"fxr-query/core/config"
	"fxr-query/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by every command
	gameDirFlag   string
	outputDirFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fxr-query",
	Short: "Effect id audit for FromSoftware game dumps",
	Long: `fxr-query checks which effect (FXR) ids of a reference list are still used
by a game. It scans animation timelines, map regions, params and event scripts
of a dumped game directory and writes unused, used and extra id reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger with ISO8601 timestamps (development config)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&gameDirFlag, "game-dir", "", "Game dump directory (overrides GAME_DIRECTORY)")
	RootCmd.PersistentFlags().StringVar(&outputDirFlag, "output", "", "Report directory (overrides OUTPUT_DIRECTORY)")
}

// loadRuntime loads configuration, applies command line overrides and builds
// the logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func applyFlags(cfg *config.Config) {
	if gameDirFlag != "" {
		cfg.Game.Directory = gameDirFlag
	}
	if outputDirFlag != "" {
		cfg.Output.Directory = outputDirFlag
	}
}
