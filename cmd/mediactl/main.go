package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/genricoloni/mediactl/internal/bus"
	"github.com/genricoloni/mediactl/internal/config"
	"github.com/genricoloni/mediactl/internal/domain"
	"github.com/genricoloni/mediactl/internal/engine"
	"github.com/genricoloni/mediactl/internal/logging"
	"github.com/genricoloni/mediactl/internal/mpris"
	"github.com/genricoloni/mediactl/internal/notify"
	"github.com/genricoloni/mediactl/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// AppOptions is the dependency graph of a single mediactl invocation
var AppOptions = fx.Options(
	// Logger configuration. Graph failures are returned from run and printed
	// once by main, so fx only reports them at debug level.
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		l := &fxevent.ZapLogger{Logger: log}
		l.UseErrorLevel(zapcore.DebugLevel)
		return l
	}),

	// Provide dependencies
	fx.Provide(
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		logging.New,
		newSessionBus,
		fx.Annotate(mpris.NewRegistry, fx.As(new(domain.Registry))),
		fx.Annotate(notify.NewDBusNotifier, fx.As(new(domain.Notifier))),
		fx.Annotate(store.NewFileStore, fx.As(new(domain.SelectionStore))),
		engine.NewEngine,
	),
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, domain.FormatError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mediactl <command>",
		Short: "Control MPRIS media players from a hotkey",
		Long: `mediactl sends one command to the selected MPRIS media player and shows
a desktop notification confirming it.

Commands:
  ` + strings.Join(domain.CommandNames(), ", ") + `

next_player and previous_player change which player later commands target.
The selection is kept in $XDG_RUNTIME_DIR until logout.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		Args:          commandArg,
		ValidArgs:     domain.CommandNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.ParseCommand(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), c)
		},
	}
}

// commandArg accepts exactly one known command
func commandArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one command, got %d", domain.ErrParse, len(args))
	}
	_, err := domain.ParseCommand(args[0])
	return err
}

// connectSessionBus is replaced in tests to simulate a missing bus
var connectSessionBus = bus.NewStdDBusClient

// run builds the graph, executes the command and tears the graph down again
func run(ctx context.Context, c domain.Command) (err error) {
	var eng *engine.Engine
	app := fx.New(AppOptions, fx.Populate(&eng))

	if err := app.Start(ctx); err != nil {
		// Drop the container's "could not build arguments" chain
		return dig.RootCause(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		err = multierr.Append(err, app.Stop(stopCtx))
	}()

	return eng.Run(ctx, c)
}

// newSessionBus opens the session bus connection shared by the registry and the notifier
func newSessionBus(lc fx.Lifecycle, logger *zap.Logger) (bus.DBusClient, error) {
	conn, err := connectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBus, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Debug("Closing session bus")
			return conn.Close()
		},
	})
	return conn, nil
}
