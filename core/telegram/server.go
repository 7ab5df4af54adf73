package telegram

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/logger"
)

const (
	livenessBody    = "Bot is running!"
	ackBody         = "ok"
	maxUpdateBytes  = 1 << 20
	tokenPathParam  = "token"
	webhookReadTime = 10 * time.Second
)

// UpdateSink receives decoded updates from the webhook endpoint.
type UpdateSink func(tele.Update)

// NewWebhookRouter builds the inbound HTTP surface: GET / answers a liveness
// string and POST /{token} accepts Telegram updates for the matching token.
// Accepted updates are always acknowledged with 200 "ok".
func NewWebhookRouter(token string, sink UpdateSink) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, livenessBody)
	})
	r.Post("/{"+tokenPathParam+"}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, tokenPathParam) != token {
			http.NotFound(w, req)
			return
		}

		var upd tele.Update
		if err := json.NewDecoder(io.LimitReader(req.Body, maxUpdateBytes)).Decode(&upd); err != nil {
			logger.HTTP.Warn("update decode failed",
				slog.String("event", "webhook.decode"),
				slog.String("status", "skip"),
				slog.String("err", err.Error()),
			)
		} else if sink != nil {
			sink(upd)
		}
		_, _ = io.WriteString(w, ackBody)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// The token-bearing path is never logged.
		route := "/"
		if r.URL.Path != "/" {
			route = "/{token}"
		}
		logger.HTTP.Debug("request",
			slog.String("event", "http.request"),
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("http_code", ww.Status()),
			slog.Duration("duration", logger.Took(start)),
		)
	})
}
