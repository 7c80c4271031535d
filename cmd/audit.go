package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fxr-query/core/config"
	"fxr-query/core/database"
	"fxr-query/core/storage"
	"fxr-query/feature/audit"
	"fxr-query/feature/history"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	// Flags for audit command
	localeFlag string
	jsonOutput bool
)

// auditCmd runs one audit against a reference list.
var auditCmd = &cobra.Command{
	Use:   "audit <reference.csv>",
	Short: "Audit a game dump against a reference list of effect ids",
	Long: `Scans the game directory and classifies every id of the reference list.

Writes UnusedFxrIds_<name>.txt, UsedFxrIds_<name>.txt and ExtraFxrIds_<name>.txt
into the output directory.

Examples:
  # Detect the game from the directory name
  fxr-query audit ds3_fxr.csv --game-dir "D:/DARK SOULS III/Game"

  # Force a profile and print the result as JSON
  GAME_PROFILE=er fxr-query audit er_fxr.csv --game-dir ./dump --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&localeFlag, "locale", "en", "Locale used for digit grouping in the summary")
	auditCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run result as JSON instead of the summary")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	tag, err := language.Parse(localeFlag)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", localeFlag, err)
	}

	opts := audit.Options{
		Game:   cfg.Game,
		Output: cfg.Output,
		Scan:   cfg.Scan,
	}
	opts.History = openHistory(cfg, l)
	opts.Publish = openPublisher(cfg, l)

	res, err := audit.NewService(opts, l).Run(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return audit.PrintSummary(out, tag, res.Game, res.Summary)
}

// openHistory returns the run history store, or nil when it is disabled or
// unavailable. History is optional and never fails an audit.
func openHistory(cfg *config.Config, l *zap.Logger) *history.Store {
	if !cfg.Database.Enabled {
		return nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	store, err := history.Open(db)
	if err != nil {
		l.Warn("Run history disabled", zap.Error(err))
		return nil
	}
	return store
}

// openPublisher returns the report publisher, or nil when it is disabled or
// unavailable.
func openPublisher(cfg *config.Config, l *zap.Logger) *audit.Publisher {
	if !cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Optional storage client failed", zap.Error(err))
		return nil
	}
	return audit.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
}
