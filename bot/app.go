package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/schedulebot/core/bootstrap"
	corecmd "github.com/m3rciful/schedulebot/core/cmd"
	"github.com/m3rciful/schedulebot/core/logger"
	tg "github.com/m3rciful/schedulebot/core/telegram"
	"github.com/m3rciful/schedulebot/core/telegram/router"
	"github.com/m3rciful/schedulebot/core/telegram/state"
	"github.com/m3rciful/schedulebot/schedule"
)

// App is the assembled bot ready to run.
type App struct {
	cfg        *Config
	db         *sqlx.DB
	registry   *tg.Registry
	controller *Controller
}

// Load adapts LoadConfig to the runner.
func Load(path string) (corecmd.ConfigCarrier, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bootstrap adapts New to the runner.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected config type %T", carrier)
	}
	return New(context.Background(), cfg)
}

// New initializes logging and the optional database, builds the group
// registry and wires the controller.
func New(ctx context.Context, cfg *Config) (*App, error) {
	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   &cfg.Config,
		Database: cfg.Database,
		Modules:  bootstrap.Modules{Seeders: []bootstrap.Seeder{GroupSeeder(cfg.Groups)}},
	})
	if err != nil {
		return nil, err
	}

	groups := cfg.Groups
	if res.DB != nil {
		if groups, err = NewGroupStore(res.DB).List(ctx); err != nil {
			_ = res.Close()
			return nil, err
		}
	}
	registry, err := schedule.NewRegistry(groups)
	if err != nil {
		_ = res.Close()
		return nil, fmt.Errorf("bot: group registry: %w", err)
	}

	ctl, err := NewController(Options{
		Store:    state.NewMemoryStore(schedule.DayCount),
		Groups:   registry,
		Fetcher:  schedule.NewClient(cfg.Schedule, nil),
		Location: cfg.Schedule.Location(),
	})
	if err != nil {
		_ = res.Close()
		return nil, err
	}

	reg := tg.NewRegistry()
	if err := ctl.Register(reg); err != nil {
		_ = res.Close()
		return nil, fmt.Errorf("bot: register handlers: %w", err)
	}

	logger.TWire.Info("bot assembled",
		slog.String("event", "bot.ready"),
		slog.Int("groups", registry.Len()),
		slog.Bool("db", res.DB != nil),
	)
	return &App{cfg: cfg, db: res.DB, registry: reg, controller: ctl}, nil
}

// TelegramRunOptions implements corecmd.TelegramApp.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	core := &a.cfg.Config
	return tg.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Middlewares: tg.DefaultMiddlewares(core, a.controller.HandleRateLimited),
		Routes:      router.Routes(a.registry, router.CommandRouteOptions{AdminID: core.Telegram.AdminID}),
		OnStart: func(_ context.Context, rt tg.Runtime) error {
			if rt.Bot != nil && rt.Bot.Me != nil {
				a.controller.SetUsername(rt.Bot.Me.Username)
			}
			return nil
		},
		OnStop: func(context.Context, tg.Runtime) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}, nil
}
