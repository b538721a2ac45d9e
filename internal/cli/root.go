// Package cli implements the gantt command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexanderramin/gantt/internal/clock"
	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/logging"
)

// App holds the dependencies shared by CLI commands. Logger and Options are
// filled by the root command before any subcommand runs.
type App struct {
	Logger  zerolog.Logger
	Options domain.Options
	Clock   clock.Clock

	// TermSize reports the terminal size and whether stdout is a
	// terminal; nil queries stdout.
	TermSize func() (width, height int, ok bool)

	// IsInteractive reports whether the interactive viewer can run.
	IsInteractive func() bool

	// WorkDir and HomeDir override the config file search locations.
	WorkDir string
	HomeDir string

	// LogOut receives console log output; nil means stderr.
	LogOut io.Writer

	logCloser io.Closer
}

type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
	logFile    string
}

// NewRootCmd creates the top-level "gantt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:           "gantt",
		Short:         "Render and explore Gantt charts from YAML or JSON task files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd, gf)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configFile, "config", "", "config file (default ./.gantt.yaml, then ~/.gantt/config.yaml)")
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&gf.quiet, "quiet", "q", false, "only log warnings and errors")
	pf.StringVar(&gf.logFile, "log-file", "", "also write logs to this rotating file")
	config.RegisterFlags(pf)

	root.AddCommand(
		newRenderCmd(app),
		newRowsCmd(app),
		newColumnsCmd(app),
		newViewCmd(app),
		newVersionCmd(),
	)

	return root
}

func (app *App) setup(cmd *cobra.Command, gf globalFlags) error {
	logger, closer, err := logging.New(logging.Options{
		Verbose: gf.verbose,
		Quiet:   gf.quiet,
		File:    gf.logFile,
		Out:     app.LogOut,
	})
	app.Logger = logger
	app.logCloser = closer
	if err != nil {
		logger.Warn().Err(err).Str("log_file", gf.logFile).Msg("log file unavailable, logging to console only")
	}
	if app.Clock == nil {
		app.Clock = clock.RealClock{}
	}

	loader := config.NewLoader()
	if app.WorkDir != "" || app.HomeDir != "" {
		loader.WithSearchDirs(app.WorkDir, app.HomeDir)
	}
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	opts, err := loader.Load(logger.WithContext(cmd.Context()), gf.configFile)
	if err != nil {
		return err
	}
	app.Options = opts
	return nil
}

// Close releases the log file, if any.
func (app *App) Close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

func (app *App) termSize() (int, int, bool) {
	if app.TermSize != nil {
		return app.TermSize()
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
