package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/adapters/out/persistence"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// ErrOrderViolations is returned by verify-order when a series is not
// numbered 1..N.
var ErrOrderViolations = errors.New("series order violations found")

// NewRootCommand creates the catalog command line.
//
// Flags override the environment, which overrides .env, which overrides the
// built in defaults.
func NewRootCommand() *cobra.Command {
	var (
		envFile string
		v       *viper.Viper
	)

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Catalog of series, entries and characters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if v, err = NewViper(envFile); err != nil {
				return err
			}
			return bindFlags(v, cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("db-driver", "", "database driver (postgres|sqlite)")
	flags.String("sqlite-path", "", "SQLite database file")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.String("log-format", "", "log format (text|json)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), v, func(ctx context.Context, app *CompositionRoot) error {
				return serveHTTP(ctx, app)
			})
		},
	}
	serve.Flags().String("http-port", "", "HTTP listen port")
	serve.Flags().String("order-check-schedule", "", "cron schedule of the order integrity check")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), v, func(context.Context, *CompositionRoot) error {
				return nil
			})
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), v, func(ctx context.Context, app *CompositionRoot) error {
				_, err := app.Seed(ctx)
				return err
			})
		},
	}

	verify := &cobra.Command{
		Use:   "verify-order",
		Short: "Check that every series is numbered 1..N",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), v, func(ctx context.Context, app *CompositionRoot) error {
				violations, err := app.NewOrderIntegrityJob().RunOnce(ctx)
				if err != nil {
					return err
				}
				if len(violations) > 0 {
					return fmt.Errorf("%w: %d", ErrOrderViolations, len(violations))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "series order is intact")
				return nil
			})
		},
	}

	root.AddCommand(serve, migrate, seed, verify)
	return root
}

// bindFlags lets every flag the running command knows override its
// configuration key.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	keys := map[string]string{
		"db-driver":            KeyDBDriver,
		"sqlite-path":          KeySQLitePath,
		"log-level":            KeyLogLevel,
		"log-format":           KeyLogFormat,
		"http-port":            KeyHTTPPort,
		"order-check-schedule": KeyOrderCheckSchedule,
	}
	for name, key := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// withApp opens and migrates the database, builds the composition root and
// runs fn with it.
func withApp(ctx context.Context, v *viper.Viper, fn func(context.Context, *CompositionRoot) error) error {
	cfg, err := LoadConfig(v)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.Close(gormDB); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	app, err := NewCompositionRoot(cfg, gormDB, logger)
	if err != nil {
		return err
	}
	return fn(ctx, app)
}

func openDatabase(cfg Config) (*gorm.DB, error) {
	gormDB, err := persistence.Open(cfg.DatabaseOptions())
	if err != nil {
		return nil, err
	}
	if err = persistence.Migrate(gormDB); err != nil {
		_ = persistence.Close(gormDB)
		return nil, err
	}
	return gormDB, nil
}

func serveHTTP(ctx context.Context, app *CompositionRoot) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := app.NewRouter()
	if err != nil {
		return err
	}

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", app.cfg.HTTPPort))
	}()
	app.logger.Info("HTTP server started", "port", app.cfg.HTTPPort)

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
