package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"watersim/internal/bootstrap"
	trialdto "watersim/internal/modules/trial/dto"
	"watersim/internal/ui/report"
)

func generateRun(ctx context.Context, app *bootstrap.App) (trialdto.RunOutput, error) {
	seed := app.Config.Experiment.Seed
	if seed != nil {
		return app.TrialCLI.Generate(ctx, app.TrialConfig(), *seed, true)
	}
	return app.TrialCLI.Generate(ctx, app.TrialConfig(), 0, false)
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate trials and print the results table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			run, err := generateRun(cmd.Context(), app)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.TrialTable(run))
			return nil
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out, format string
	var timestamp bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate trials and export the results table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = app.Config.Export.Path
			}
			if !cmd.Flags().Changed("format") {
				format = app.Config.Export.Format
			}
			if !cmd.Flags().Changed("timestamp") {
				timestamp = app.Config.Export.Timestamp
			}
			run, err := generateRun(cmd.Context(), app)
			if err != nil {
				return err
			}
			written, err := app.TrialCLI.Export(cmd.Context(), run, out, format, timestamp)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d trials to %s (%s) seed=%d\n", written.Rows, written.Path, written.Format, run.Seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "xlsx|csv|sqlite (default from extension)")
	cmd.Flags().BoolVar(&timestamp, "timestamp", false, "append _YYYYMMDD_HHMMSS to the file name")
	return cmd
}
