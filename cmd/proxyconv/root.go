package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"proxyconv/internal/config"
	"proxyconv/internal/logger"
)

var cfgFile string
var verbose bool
var color bool
var logFile string
var keepComments bool
var progress bool

var (
	settings *config.Config
	log      *zap.SugaredLogger
	closeLog = func() {}
)

// errReported marks failures that were already logged.
var errReported = errors.New("aborted")

var rootCmd = &cobra.Command{
	Use:   "proxyconv INPUT OUTPUT",
	Short: "Convert an IP:PORT:USER:PASS proxy list into a SwitchyOmega configuration",
	Long: `Reads a plaintext proxy list (one ADDRESS:PORT:USERNAME:PASSWORD per line)
and writes a SwitchyOmega backup document with one fixed profile per valid line.
Blank lines and '#' comments are ignored. Use '-' as OUTPUT to print to stdout.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cmd.Flags(), cfg)
		settings = cfg

		opts := logger.Options{Verbose: cfg.Verbose, Color: cfg.Color, Path: cfg.LogFile}
		// Keep stdout clean when the document goes there.
		if !cmd.HasParent() && len(args) == 2 && args[1] == "-" {
			opts.Writer = os.Stderr
		}
		l, closeFn, err := logger.New(opts)
		if err != nil {
			return err
		}
		log, closeLog = l, closeFn
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := convert(runOptions{
			Input:        args[0],
			Output:       args[1],
			SkipComments: settings.SkipComments,
			Progress:     settings.Progress,
			Stdout:       cmd.OutOrStdout(),
		}, log)
		return err
	},
}

// applyFlags lets explicitly given flags win over the config file.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("color") {
		cfg.Color = color
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("keep-comments") {
		cfg.SkipComments = !keepComments
	}
	if flags.Changed("progress") {
		cfg.Progress = progress
	}
}

func Execute() {
	err := rootCmd.Execute()
	// Closed here rather than in a PostRun hook, which cobra skips on error.
	closeLog()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (YAML, or JSON with comments)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "Enable colored log levels")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stdout (overwrites file)")
	rootCmd.PersistentFlags().BoolVar(&keepComments, "keep-comments", false, "Treat '#' lines as proxy entries instead of skipping them")
	rootCmd.PersistentFlags().BoolVar(&progress, "progress", false, "Show a progress bar while parsing")
}
