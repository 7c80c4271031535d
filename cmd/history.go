package cmd

import (
	"errors"
	"fmt"

	"fxr-query/core/database"
	"fxr-query/core/reconcile"
	"fxr-query/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for history command
	historyLimit int
	historyClass string
)

// historyCmd lists stored audit runs or shows one run.
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show stored audit runs",
	Long: `Lists recent audit runs from the history database (DATABASE_ENABLED=true).

With a run id, shows that run and optionally the ids of one classification.

Examples:
  fxr-query history --limit 5
  fxr-query history 0c6f... --ids unused`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to list (0 lists all)")
	historyCmd.Flags().StringVar(&historyClass, "ids", "", "Print the ids of a run classification (unused, used, extra)")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := loadRuntime()
	if err != nil {
		return err
	}
	defer l.Sync()

	if !cfg.Database.Enabled {
		return errors.New("run history is disabled, set DATABASE_ENABLED=true")
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	store, err := history.Open(db)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		runs, err := store.List(ctx, historyLimit)
		if err != nil {
			return err
		}
		for _, run := range runs {
			logRun(l, &run)
		}
		l.Info("Runs listed", zap.Int("count", len(runs)))
		return nil
	}

	run, err := store.Get(ctx, args[0])
	if err != nil {
		return err
	}
	logRun(l, run)

	if historyClass == "" {
		return nil
	}
	class, err := parseClassification(historyClass)
	if err != nil {
		return err
	}
	ids, err := store.IDs(ctx, run.RunID, class)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

func logRun(l *zap.Logger, run *history.AuditRun) {
	l.Info("Audit run",
		zap.String("run_id", run.RunID),
		zap.String("game", run.Game),
		zap.String("reference", run.ReferenceFile),
		zap.Int("reference_ids", run.Reference),
		zap.Int("unused", run.Unused),
		zap.Int("used", run.Used),
		zap.Int("extra", run.Extra),
		zap.Time("started", run.StartedAt),
		zap.Duration("duration", run.FinishedAt.Sub(run.StartedAt)),
	)
}

func parseClassification(s string) (reconcile.Classification, error) {
	for _, class := range reconcile.Classifications {
		if string(class) == s {
			return class, nil
		}
	}
	return "", fmt.Errorf("unknown classification %q", s)
}
