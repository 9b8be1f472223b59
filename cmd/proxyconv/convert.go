package main

import (
	"io"
	"iter"
	"os"
	"slices"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"proxyconv/internal/assembler"
	"proxyconv/internal/loader"
	"proxyconv/internal/metrics"
	"proxyconv/internal/parser"
	"proxyconv/internal/publishers"
)

type runOptions struct {
	Input        string
	Output       string
	SkipComments bool
	Progress     bool
	Stdout       io.Writer
}

// parseInput runs the loader and parser stages. It returns errReported
// when the list is unreadable or holds no candidate lines.
func parseInput(opts runOptions, log *zap.SugaredLogger) (*parser.Batch, error) {
	seq, err := loader.Load(opts.Input, loader.Options{SkipComments: opts.SkipComments})
	if err != nil {
		log.Errorf("Failed to read proxy list: %v", err)
		return nil, errReported
	}

	lines := slices.Collect(seq)
	if len(lines) == 0 {
		log.Warnf("Proxy list is empty: %s", opts.Input)
		log.Error("No valid proxies found, aborting.")
		return nil, errReported
	}
	log.Infof("Loaded %d proxies from %s", len(lines), opts.Input)

	candidates := slices.Values(lines)
	if opts.Progress {
		candidates = withProgress(candidates, newProgressBar(len(lines)))
	}
	return parser.ParseAll(candidates, log), nil
}

func convert(opts runOptions, log *zap.SugaredLogger) (*metrics.Collector, error) {
	batch, err := parseInput(opts, log)
	if err != nil {
		return nil, err
	}

	stats := metrics.FromBatch(batch)
	log.Infof("Generated %d valid proxy profiles (%d rejected)", stats.Accepted(), stats.Rejected())
	for _, d := range stats.Duplicates() {
		log.Infof("Duplicate endpoint: +m%d repeats +m%d (%s)", d.Again, d.First, d.Key)
	}
	if stats.Accepted() == 0 {
		log.Error("No valid proxies found, aborting.")
		return stats, errReported
	}

	doc, err := assembler.Build(batch.Records)
	if err != nil {
		log.Errorf("Failed to assemble configuration: %v", err)
		return stats, errReported
	}

	name := "file"
	params := map[string]interface{}{"path": opts.Output}
	if opts.Output == "-" {
		name = "stdout"
		params["_writer"] = opts.Stdout
	}
	pub, err := publishers.Get(name, log)
	if err != nil {
		log.Errorf("%v", err)
		return stats, errReported
	}
	if err := pub.Publish(doc, params); err != nil {
		log.Errorf("Failed to write configuration to '%s': %v", opts.Output, err)
		return stats, errReported
	}
	return stats, nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Parsing...[reset]"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// withProgress advances bar once per line handed to the consumer.
func withProgress(seq iter.Seq[string], bar *progressbar.ProgressBar) iter.Seq[string] {
	return func(yield func(string) bool) {
		defer bar.Finish()
		for line := range seq {
			if !yield(line) {
				return
			}
			bar.Add(1)
		}
	}
}
