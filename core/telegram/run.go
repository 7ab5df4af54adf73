package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/m3rciful/schedulebot/core/config"
	"github.com/m3rciful/schedulebot/core/logger"
	"github.com/m3rciful/schedulebot/core/netutil"
	tghelpers "github.com/m3rciful/schedulebot/core/telegram/helpers"
)

// apiTimeout bounds a single Bot API call. Long-poll requests are held open
// for the poll timeout, so the deadline grows with it.
func apiTimeout(cfg *coreconfig.Config) time.Duration {
	d := 30 * time.Second
	if poll := time.Duration(cfg.Telegram.LongPollTimeoutSeconds)*time.Second + 10*time.Second; poll > d {
		d = poll
	}
	return d
}

// Middleware describes a global bot middleware to be registered via bot.Use.
type Middleware struct {
	Name string
	Use  func(next tele.HandlerFunc) tele.HandlerFunc
}

// Route declares a single bot handler bound to an arbitrary endpoint.
// Endpoint values are passed directly to tele.Bot.Handle.
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// RunOptions controls the behaviour of RunTelegram.
type RunOptions struct {
	Config   *coreconfig.Config
	Registry *Registry

	Middlewares []Middleware
	Routes      []Route

	// Poller overrides the poller derived from Config.
	Poller tele.Poller
	// Offline skips every Telegram API call during startup.
	Offline bool

	OnStart func(ctx context.Context, rt Runtime) error
	OnStop  func(ctx context.Context, rt Runtime) error
}

// Runtime exposes runtime components to lifecycle hooks.
type Runtime struct {
	Bot      *tele.Bot
	Registry *Registry
}

// RunTelegram composes and runs a Telegram bot until the provided context is done.
func RunTelegram(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		return fmt.Errorf("telegram: nil config provided")
	}

	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}

	poller := opts.Poller
	if poller == nil {
		poller = BuildPoller(PollerOptions{
			RunMode:                cfg.Telegram.RunMode,
			LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
			Token:                  cfg.Telegram.Token,
			Listen:                 cfg.HTTP.Listen,
			Port:                   cfg.HTTP.Port,
		})
	}

	buildStart := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.Telegram.Token,
		Poller:  poller,
		Client:  netutil.NewHTTPClient(apiTimeout(cfg)),
		Offline: opts.Offline,
		OnError: logBotError,
	})
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %s", netutil.SanitizeError(err))
	}
	buildTook := logger.RoundMS(time.Since(buildStart))

	rt := Runtime{Bot: bot, Registry: reg}

	switch p := poller.(type) {
	case *WebhookPoller:
		logger.TG.Info("webhook mode",
			slog.String("event", "mode"),
			slog.String("mode", coreconfig.RunModeWebhook),
			slog.String("listen", p.Addr),
			slog.String("public_url", cfg.HTTP.PublicURL),
			slog.Duration("duration", buildTook),
		)
		if cfg.HTTP.PublicURL != "" && !opts.Offline {
			if err := registerWebhook(bot, cfg.HTTP.PublicURL, cfg.Telegram.Token); err != nil {
				return err
			}
		}
	default:
		logger.TG.Info("polling mode",
			slog.String("event", "mode"),
			slog.String("mode", coreconfig.RunModeLongpoll),
			slog.Duration("duration", buildTook),
		)
		if !opts.Offline {
			if err := bot.RemoveWebhook(); err != nil {
				logger.TG.Warn("failed to delete webhook",
					slog.String("event", "delete_webhook"),
					slog.String("err", netutil.SanitizeError(err)),
				)
			}
		}
	}

	for _, mw := range opts.Middlewares {
		if mw.Use != nil {
			bot.Use(mw.Use)
		}
	}
	for _, route := range opts.Routes {
		if route.Endpoint == nil || route.Handler == nil {
			continue
		}
		bot.Handle(route.Endpoint, route.Handler)
	}

	if !opts.Offline {
		InitBotCommands(bot, reg)
	}

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx, rt); err != nil {
			return err
		}
	}

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		runErr = ctx.Err()
	case <-runDone:
	}

	if opts.OnStop != nil {
		if err := opts.OnStop(context.WithoutCancel(ctx), rt); err != nil {
			return err
		}
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// registerWebhook points Telegram at <publicURL>/<token>.
func registerWebhook(bot *tele.Bot, publicURL, token string) error {
	hook := &tele.Webhook{Endpoint: &tele.WebhookEndpoint{PublicURL: publicURL + "/" + token}}
	if err := bot.SetWebhook(hook); err != nil {
		return fmt.Errorf("telegram: set webhook failed: %s", netutil.SanitizeError(err))
	}
	logger.TG.Info("webhook registered",
		slog.String("event", "set_webhook"),
		slog.String("status", "ok"),
		slog.String("public_url", publicURL),
	)
	return nil
}

func logBotError(err error, c tele.Context) {
	ctx := context.Background()
	if c != nil {
		ctx = tghelpers.BuildContext(c)
	}
	logger.LogEvent(ctx, logger.TG, slog.LevelError, "tg.error",
		slog.String("status", "fail"),
		slog.String("err", netutil.SanitizeError(err)),
		slog.String("cause", netutil.ClassifyError(err)),
	)
}
