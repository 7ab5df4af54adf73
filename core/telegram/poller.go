package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/m3rciful/schedulebot/core/config"
	"github.com/m3rciful/schedulebot/core/logger"
)

const (
	defaultLongPollTimeout = 10 * time.Second
	serverShutdownTimeout  = 5 * time.Second
)

// PollerOptions configures BuildPoller.
type PollerOptions struct {
	RunMode                string
	LongPollTimeoutSeconds int
	Token                  string
	Listen                 string
	Port                   int
}

// BuildPoller returns the webhook server poller or a long poller depending on
// the run mode.
func BuildPoller(opts PollerOptions) tele.Poller {
	if strings.EqualFold(strings.TrimSpace(opts.RunMode), coreconfig.RunModeLongpoll) {
		timeout := defaultLongPollTimeout
		if opts.LongPollTimeoutSeconds > 0 {
			timeout = time.Duration(opts.LongPollTimeoutSeconds) * time.Second
		}
		return &tele.LongPoller{Timeout: timeout}
	}
	return &WebhookPoller{
		Addr:  fmt.Sprintf("%s:%d", opts.Listen, opts.Port),
		Token: opts.Token,
	}
}

// WebhookPoller serves the webhook router and forwards decoded updates to the
// bot. It does not register the webhook with Telegram; see RunTelegram.
type WebhookPoller struct {
	Addr  string
	Token string
}

// Poll runs the HTTP server until stop is closed.
func (p *WebhookPoller) Poll(_ *tele.Bot, dest chan tele.Update, stop chan struct{}) {
	sink := func(u tele.Update) {
		select {
		case dest <- u:
		case <-stop:
		}
	}
	srv := &http.Server{
		Addr:              p.Addr,
		Handler:           NewWebhookRouter(p.Token, sink),
		ReadHeaderTimeout: webhookReadTime,
	}

	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.HTTP.Warn("server shutdown", slog.String("event", "http.shutdown"), slog.String("err", err.Error()))
		}
	}()

	logger.HTTP.Info("listening", slog.String("event", "http.listen"), slog.String("listen", p.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.HTTP.Error("server failed",
			slog.String("event", "http.listen"),
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
	}
}
