package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/genricoloni/cmustify/internal/config"
	"github.com/genricoloni/cmustify/internal/cover"
	"github.com/genricoloni/cmustify/internal/dispatcher"
	"github.com/genricoloni/cmustify/internal/domain"
	"github.com/genricoloni/cmustify/internal/notifier"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const usage = "You must set cmus to call this script as notifier"

var errUsage = errors.New("no status line given")

// statusLine is the cmus status, arguments joined by single spaces
type statusLine string

// AppOptions is the dependency graph shared by main and the tests
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(notifier.NewDBusNotifier, fx.As(new(domain.Notifier))),
		fx.Annotate(cover.NewLoader, fx.As(new(domain.CoverLoader))),
		dispatcher.NewDispatcher,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		panic(err)
	}
}

// run sends one notification for args. Extra options replace parts of the graph in tests.
func run(args []string, opts ...fx.Option) error {
	if len(args) == 0 {
		return errUsage
	}

	app := fx.New(
		AppOptions,
		fx.Supply(statusLine(strings.Join(args, " "))),
		fx.Options(opts...),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The notification is sent from the OnStart hook
	if err := app.Start(ctx); err != nil {
		return err
	}

	return app.Stop(context.Background())
}

// newLogger creates a production zap logger, quiet below warn unless
// CMUSTIFY_LOG_LEVEL says otherwise
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	if raw := os.Getenv("CMUSTIFY_LOG_LEVEL"); raw != "" {
		level, err := zap.ParseAtomicLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CMUSTIFY_LOG_LEVEL: %w", err)
		}
		cfg.Level = level
	}

	return cfg.Build()
}

// registerHooks runs the dispatcher once the graph is built
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, d *dispatcher.Dispatcher, line statusLine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return d.Run(ctx, string(line))
		},
		OnStop: func(ctx context.Context) error {
			// Sync fails on unbuffered stderr, nothing is lost
			_ = logger.Sync()
			return nil
		},
	})
}
