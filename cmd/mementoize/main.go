package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ryanfox/mementoizer/internal/config"
	"github.com/ryanfox/mementoizer/internal/logging"
	"github.com/ryanfox/mementoizer/internal/pipeline"
	"github.com/ryanfox/mementoizer/pkg/util"
)

var (
	cfgFile        string
	verbose        bool
	dryRun         bool
	skipStart      float64
	skipEnd        float64
	minSceneLength float64
	threshold      float64
	overlap        float64
	cutsFlag       string
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mementoize [input video]",
	Short: "Memento-ize a video file",
	Long: "Detect scene cuts, reorder the scenes outside-in (last, first, " +
		"second-to-last, second, ...), grayscale the early half, and fade " +
		"from grayscale to color at the midpoint reveal.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// --dry-run implies --verbose
		logging.Init(verbose || dryRun)

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		// Config supplies defaults for flags the user didn't set.
		if !cmd.Flags().Changed("threshold") {
			threshold = cfg.Edit.Threshold
		}
		if !cmd.Flags().Changed("min-scene-length") {
			minSceneLength = cfg.Edit.MinSceneLength
		}
		if !cmd.Flags().Changed("overlap") {
			overlap = cfg.Edit.Overlap
		}

		cuts, err := util.ParseCutList(cutsFlag)
		if err != nil {
			return err
		}

		pipe, err := pipeline.New(log.Logger, cfg)
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			SkipStart:      seconds(skipStart),
			SkipEnd:        seconds(skipEnd),
			MinSceneLength: seconds(minSceneLength),
			Threshold:      threshold,
			Overlap:        seconds(overlap),
			Cuts:           cuts,
			Verbose:        verbose || dryRun,
			DryRun:         dryRun,
		}

		output, err := pipe.Mementoize(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		if output != "" {
			log.Info().Str("output", output).Msg("wrote mementoized video")
		}
		return nil
	},
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./mementoize.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode, print timestamp for each cut")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print detected cut timestamps and exit without writing any files, implies --verbose")
	rootCmd.Flags().Float64Var(&skipStart, "skip-start", 0, "no scene cuts allowed for this many seconds after start")
	rootCmd.Flags().Float64Var(&skipEnd, "skip-end", 0, "no scene cuts allowed for this many seconds before end")
	rootCmd.Flags().Float64Var(&minSceneLength, "min-scene-length", 120, "scene cuts closer together than this are not allowed (in seconds)")
	rootCmd.Flags().Float64Var(&threshold, "threshold", 0.7, "similarity threshold for scene detection, between 0 and 1; lower values detect more cuts")
	rootCmd.Flags().Float64Var(&overlap, "overlap", 4, "number of seconds to overlap scenes")
	rootCmd.Flags().StringVar(&cutsFlag, "cuts", "", "use these comma-separated timestamps (seconds) for scene cuts rather than detecting them")
}
