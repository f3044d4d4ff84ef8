package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "vocalblend",
		Short: "Find the best blend of two vocal-separation models by average SDR",
		Long: `vocalblend scores weighted blends of two vocal-separation models
against reference stems. Each track directory must contain
original_vocals.wav, original_other.wav and one vocals_<model>.wav per
model. The tool reports the weight pair with the best mean SDR across
all tracks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.models) != 2 {
				return fmt.Errorf("exactly two models are required, got %d", len(opts.models))
			}
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.tracksFolder, "tracks_folder", "songs",
		"Folder containing the track folders to be processed")
	rootCmd.Flags().StringSliceVar(&opts.models, "models", nil,
		"The two separation model names to blend (required)")
	rootCmd.Flags().IntVar(&opts.threads, "threads", 5,
		"Number of tracks processed concurrently")
	_ = rootCmd.MarkFlagRequired("models")

	return rootCmd
}
