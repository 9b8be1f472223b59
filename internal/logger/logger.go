package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Verbose bool
	Color   bool

	// Path, when set, sends logs to that file (truncated) instead of stdout.
	Path string

	// Writer replaces stdout when Path is empty.
	Writer io.Writer
}

// New builds a console logger. The returned close func flushes buffered
// entries and releases the log file, if any.
func New(opts Options) (*zap.SugaredLogger, func(), error) {
	var writer zapcore.WriteSyncer
	closeFn := func() {}

	if opts.Path != "" {
		// O_TRUNC ensures we rewrite the file, not append
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		writer = zapcore.AddSync(f)
		closeFn = func() { _ = f.Close() }
	} else if opts.Writer != nil {
		writer = zapcore.AddSync(opts.Writer)
	} else {
		writer = zapcore.AddSync(os.Stdout)
	}

	// Color codes only make sense on a terminal.
	log := NewWithWriter(writer, opts.Verbose, opts.Color && opts.Path == "")
	return log, func() {
		_ = log.Sync()
		closeFn()
	}, nil
}

// NewWithWriter builds the same console logger over an arbitrary writer.
func NewWithWriter(w io.Writer, verbose, color bool) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.EncodeCaller = nil

	logLevel := zap.InfoLevel
	if verbose {
		logLevel = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		logLevel,
	)
	return zap.New(core).Sugar()
}
