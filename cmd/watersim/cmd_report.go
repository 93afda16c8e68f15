package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"watersim/internal/bootstrap"
	trialdto "watersim/internal/modules/trial/dto"
	"watersim/internal/ui/report"
)

const prettyWidth = 100

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print collected-volume statistics per flow type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			run, err := generateRun(cmd.Context(), app)
			if err != nil {
				return err
			}
			switch format {
			case "table":
				summary, err := app.SummaryCLI.Summarize(cmd.Context(), run)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), report.StatsTable(summary))
			case "markdown", "pretty":
				md, err := app.SummaryCLI.Report(cmd.Context(), run)
				if err != nil {
					return err
				}
				if format == "pretty" {
					if md, err = report.Pretty(md, prettyWidth); err != nil {
						return err
					}
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), md)
			default:
				return fmt.Errorf("unsupported summary format %q (use table, markdown or pretty)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "table|markdown|pretty")
	return cmd
}

func newPlotCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the box plot and accumulation curve",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = app.Config.Plot.Path
			}
			run, err := generateRun(cmd.Context(), app)
			if err != nil {
				return err
			}
			return plotRun(cmd, app, run, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "figure path; png, svg or pdf by extension (default from config)")
	return cmd
}

func newAnimateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "animate",
		Short: "Play the water accumulation animation in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			return animate(cmd, app)
		},
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var timestamp, withAnimation bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate, print, export and plot in one pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("timestamp") {
				timestamp = app.Config.Export.Timestamp
			}
			run, err := generateRun(cmd.Context(), app)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, report.TrialTable(run))

			written, err := app.TrialCLI.Export(cmd.Context(), run, app.Config.Export.Path, app.Config.Export.Format, timestamp)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "exported %d trials to %s (%s) seed=%d\n", written.Rows, written.Path, written.Format, run.Seed)

			if err := plotRun(cmd, app, run, app.Config.Plot.Path); err != nil {
				return err
			}
			if withAnimation {
				return animate(cmd, app)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&timestamp, "timestamp", false, "append _YYYYMMDD_HHMMSS to the export file name")
	cmd.Flags().BoolVar(&withAnimation, "animate", false, "play the terminal animation afterwards")
	return cmd
}

func plotRun(cmd *cobra.Command, app *bootstrap.App, run trialdto.RunOutput, path string) error {
	plot, err := app.FigureCLI.Plot(cmd.Context(), run, path, app.FigureInput(), app.AnimationInput())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plotted %d panels to %s (%s)\n", plot.Panels, plot.Path, plot.Format)
	return nil
}

func animate(cmd *cobra.Command, app *bootstrap.App) error {
	e := app.Config.Experiment
	anim, err := app.FigureCLI.Animate(cmd.Context(), e.ContainerCapacity, e.CollectionTime, app.AnimationInput())
	if err != nil {
		return err
	}
	last, err := bootstrap.RunAnimation(anim)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", last.TimeLabel, last.VolumeLabel)
	return nil
}
