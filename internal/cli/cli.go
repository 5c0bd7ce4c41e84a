// Package cli implements the bungiectl commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kofuk/bungie"
	"github.com/kofuk/bungie/cache"
	"github.com/kofuk/bungie/config"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/internal/otel"
	"github.com/kofuk/bungie/rest"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "bungiectl"

// App holds what every command shares. It is filled in before a command
// runs.
type App struct {
	Config *config.Config
	Client *bungie.Client
	Store  cache.Store
	Out    io.Writer

	tp      *sdktrace.TracerProvider
	closers []func() error
}

func (a *App) setup(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("Failed to load .env file. If you want to use real envvars, you can ignore this diag safely.", slog.Any("error", err))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Config = cfg

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	tp, err := otel.InitializeTracer(ctx, serviceName)
	if err != nil {
		slog.Error("Failed to initialize tracer", slog.Any("error", err))
	}
	a.tp = tp

	a.Client = bungie.NewFromConfig(cfg,
		rest.WithLogger(logger),
		rest.WithTracerProvider(otel.Provider(tp)),
		rest.WithUserAgent(serviceName+"/1.0"),
	)
	a.closers = append(a.closers, a.Client.Close)

	if cfg.RedisAddress != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			slog.Warn("Failed to connect to redis; using in-process cache", slog.Any("error", err))
		} else {
			a.Store = cache.NewRedis(rdb)
			a.closers = append(a.closers, rdb.Close)
		}
	}
	if a.Store == nil {
		a.Store = cache.NewMemory()
	}
	return nil
}

func (a *App) teardown() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Error("Failed to close resource", slog.Any("error", err))
		}
	}
	if a.tp != nil {
		if err := a.tp.Shutdown(context.Background()); err != nil {
			slog.Error("Failed to shutdown tracer", slog.Any("error", err))
		}
	}
}

// Definitions returns a definition cache backed by the configured store.
func (a *App) Definitions() *cache.Definitions {
	return cache.NewDefinitions(a.Client, a.Store)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bungiectl",
		Short:         "Query the Bungie.net API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.Out = cmd.OutOrStdout()
			return app.setup(cmd.Context())
		},
	}

	cmd.AddCommand(newUserCommand(app))
	cmd.AddCommand(newSearchCommand(app))
	cmd.AddCommand(newProfileCommand(app))
	cmd.AddCommand(newClanCommand(app))
	cmd.AddCommand(newItemCommand(app))
	cmd.AddCommand(newManifestCommand(app))
	cmd.AddCommand(newAuthCommand(app))

	return cmd
}

// Execute runs bungiectl with args and releases everything it opened.
func Execute(ctx context.Context, args []string) error {
	app := &App{}
	defer app.teardown()

	cmd := NewRootCommand(app)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

// parseMembershipType accepts a number or a platform name such as "steam".
func parseMembershipType(s string) (enums.MembershipType, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return enums.MembershipType(n), nil
	}
	for _, t := range []enums.MembershipType{
		enums.MembershipTypeAll,
		enums.MembershipTypeXbox,
		enums.MembershipTypePSN,
		enums.MembershipTypeSteam,
		enums.MembershipTypeBlizzard,
		enums.MembershipTypeStadia,
		enums.MembershipTypeEpicGames,
		enums.MembershipTypeDemon,
		enums.MembershipTypeBungie,
	} {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown membership type %q", s)
}

func parseComponents(s string) ([]enums.ComponentType, error) {
	var cs []enums.ComponentType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q: %w", part, err)
		}
		cs = append(cs, enums.ComponentType(n))
	}
	return cs, nil
}
