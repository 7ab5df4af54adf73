package router

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/logger"
	tg "github.com/m3rciful/schedulebot/core/telegram"
)

// InlineRoute binds inline queries to the registry's inline handler.
func InlineRoute(reg *tg.Registry) tg.Route {
	handler := func(c tele.Context) error {
		h := reg.Inline()
		if h == nil {
			return nil
		}
		q := ""
		if c.Query() != nil {
			q = c.Query().Text
		}
		return handleWithSummary(c, "inline", func() error { return h(c) },
			slog.String("query", logger.SanitizeLimit(q, 64)),
		)
	}
	return tg.Route{Endpoint: tele.OnQuery, Handler: handler}
}

// Routes assembles command, text, callback and inline routes for reg.
func Routes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	routes := CommandRoutes(reg, opts)
	return append(routes, TextRoute(reg, opts), CallbackRoute(reg), InlineRoute(reg))
}
