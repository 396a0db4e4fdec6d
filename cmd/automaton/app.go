package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tailored-agentic-units/automaton/automaton"
	"github.com/tailored-agentic-units/automaton/config"
	"github.com/tailored-agentic-units/automaton/observability"
)

// App is the automaton command-line application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	observer   string
	verbose    bool
}

// NewApp creates the CLI with its subcommands.
func NewApp() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "automaton",
		Short: "Run reference finite automatons",
		Long: `automaton drives state graphs over caller-owned data.

Two reference automatons are available: concat appends words through a chain
of states, pairs reports every position where one character is directly
followed by another.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	flags.StringVar(&app.observer, "observer", "", "Observer name or comma-separated names (noop, slog, zap); overrides config")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Log transitions at debug level")

	app.root.AddCommand(
		app.newConcatCmd(),
		app.newPairsCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// loadConfig resolves the configuration for the named automaton: defaults,
// then the config file, then AUTOMATON_* variables, then flags.
func (a *App) loadConfig(name string) (config.Config, error) {
	cfg := config.DefaultConfig(name)

	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return cfg, err
		}
		cfg.Merge(loaded)
	}

	if err := config.FromEnv(&cfg); err != nil {
		return cfg, err
	}

	if a.observer != "" {
		cfg.Observer = a.observer
	}

	return cfg, nil
}

// logger builds the zap logger behind the "zap" observer.
func (a *App) logger() *zap.Logger {
	level := zapcore.InfoLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(a.stderr),
		level,
	)
	return zap.New(core)
}

func newAutomaton[Id comparable, D any](a *App, name string, build func() *automaton.Handle[Id, D]) (*automaton.Automaton[Id, D], func(), error) {
	cfg, err := a.loadConfig(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := a.logger()
	observability.RegisterObserver("zap", observability.NewZapObserver(logger))
	sync := func() { _ = logger.Sync() }

	auto, err := automaton.NewFromConfig(cfg, build)
	if err != nil {
		sync()
		return nil, nil, err
	}
	return auto, sync, nil
}

func (a *App) printResult(status automaton.Status, stateID any, steps int) {
	fmt.Fprintf(a.stdout, "status: %s\n", status)
	fmt.Fprintf(a.stdout, "state:  %v\n", stateID)
	fmt.Fprintf(a.stdout, "steps:  %d\n", steps)
}

// runFailed converts a failed result into the command error.
func runFailed[Id comparable](result automaton.Result[Id]) error {
	if err := result.AsError(); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}
