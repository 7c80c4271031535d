package cmd

import (
	"fxr-query/core/reconcile"
	"fxr-query/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outputsCmd lists report files in the output directory.
var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List audit reports in the output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadRuntime()
		if err != nil {
			return err
		}
		defer l.Sync()

		outputs, err := audit.ListOutputs(cfg.Output.Directory)
		if err != nil {
			return err
		}
		if len(outputs) == 0 {
			l.Info("No reports found", zap.String("directory", cfg.Output.Directory))
			return nil
		}

		for _, out := range outputs {
			fields := []zap.Field{zap.String("reference", out.Stem), zap.Bool("complete", out.Complete())}
			for _, class := range reconcile.Classifications {
				if path, ok := out.Files[class]; ok {
					fields = append(fields, zap.String(string(class), path))
				}
			}
			l.Info("Report", fields...)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(outputsCmd)
}
