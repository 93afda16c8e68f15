package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"watersim/internal/bootstrap"
	"watersim/internal/platform/config"
	"watersim/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath        string
	seed              uint64
	logLevel          string
	mode              string
	volumeBasis       string
	capacity          float64
	collectionTime    float64
	trialsPerCategory int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "watersim",
		Short:         "Simulate a laboratory water-collection experiment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.Uint64Var(&opts.seed, "seed", 0, "sampler seed (derived from the clock when unset)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	flags.StringVar(&opts.mode, "mode", "", "trial mode: generated|literal")
	flags.StringVar(&opts.volumeBasis, "volume-basis", "", "collected volume basis: rounded|raw")
	flags.Float64Var(&opts.capacity, "capacity", 0, "container capacity in ml")
	flags.Float64Var(&opts.collectionTime, "collection-time", 0, "collection time in seconds")
	flags.IntVar(&opts.trialsPerCategory, "trials-per-category", 0, "trials per flow category")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newPlotCmd(opts))
	root.AddCommand(newAnimateCmd(opts))
	root.AddCommand(newRunCmd(opts))
	return root
}

// loadApp resolves configuration with precedence defaults, file, then flags.
func loadApp(cmd *cobra.Command, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Experiment.Seed = &seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("mode") {
		cfg.Experiment.Mode = opts.mode
	}
	if flags.Changed("volume-basis") {
		cfg.Experiment.VolumeBasis = opts.volumeBasis
	}
	if flags.Changed("capacity") {
		cfg.Experiment.ContainerCapacity = opts.capacity
	}
	if flags.Changed("collection-time") {
		cfg.Experiment.CollectionTime = opts.collectionTime
	}
	if flags.Changed("trials-per-category") {
		cfg.Experiment.TrialsPerCategory = opts.trialsPerCategory
	}
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	return bootstrap.New(cfg, logger)
}
