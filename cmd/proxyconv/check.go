package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxyconv/internal/metrics"
)

var checkCmd = &cobra.Command{
	Use:   "check INPUT",
	Short: "Validate a proxy list without writing a configuration",
	Long: `Parses every line of INPUT with the same rules as a conversion and prints a
report of accepted lines, rejections by reason, and repeated endpoints.
Exits non-zero when no line is accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := check(runOptions{
			Input:        args[0],
			SkipComments: settings.SkipComments,
			Progress:     settings.Progress,
		}, log)
		if stats != nil {
			stats.PrintReport(cmd.OutOrStdout())
		}
		return err
	},
}

func check(opts runOptions, log *zap.SugaredLogger) (*metrics.Collector, error) {
	batch, err := parseInput(opts, log)
	if err != nil {
		return nil, err
	}
	stats := metrics.FromBatch(batch)
	if stats.Accepted() == 0 {
		log.Error("No valid proxies found.")
		return stats, errReported
	}
	return stats, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
