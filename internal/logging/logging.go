// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for --log-file.
const (
	LogMaxSizeMB   = 10
	LogMaxBackups  = 3
	LogMaxAgeDays  = 28
	LogCompress    = false
	logDirFileMode = 0o750
)

// Options selects the level, console output and optional log file.
type Options struct {
	Verbose bool
	Quiet   bool
	// File, when set, receives a copy of every entry with rotation.
	File string
	// Out is the console destination; os.Stderr when nil.
	Out io.Writer
	// ForceJSON disables the console writer even on a terminal.
	ForceJSON bool
}

// SelectLevel maps the verbosity flags to a level. Verbose wins over quiet.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	console := selectOutput(out, opts.ForceJSON)

	var closer io.Closer = nopCloser{}
	writer := console
	if opts.File != "" {
		fw, err := newFileWriter(opts.File)
		if err != nil {
			return zerolog.New(console).Level(SelectLevel(opts.Verbose, opts.Quiet)).With().Timestamp().Logger(), closer, err
		}
		closer = fw
		writer = zerolog.MultiLevelWriter(console, fw)
	}

	logger := zerolog.New(writer).Level(SelectLevel(opts.Verbose, opts.Quiet)).With().Timestamp().Logger()
	return logger, closer, nil
}

// selectOutput uses a console writer for terminals without NO_COLOR, and
// JSON lines otherwise.
func selectOutput(out io.Writer, forceJSON bool) io.Writer {
	if !forceJSON && isTerminal(out) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newFileWriter(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirFileMode); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   LogCompress,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
