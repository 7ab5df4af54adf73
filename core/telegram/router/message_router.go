package router

import (
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/schedulebot/core/telegram"
)

// TextRoute routes plain text: slash commands resolve through the registry
// (covering aliases and unbound spellings), unknown commands are ignored and
// anything else goes to the registry's text fallback.
func TextRoute(reg *tg.Registry, opts CommandRouteOptions) tg.Route {
	handler := func(c tele.Context) error {
		text := strings.TrimSpace(c.Text())

		if strings.HasPrefix(text, "/") {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				return wrapCommand(key, cmd, opts)(c)
			}
			logHandlerSummary(c, "unknown_command", time.Now(), "skip", nil)
			return nil
		}

		if fb := reg.TextFallback(); fb != nil {
			return handleWithSummary(c, "text", func() error { return fb(c) })
		}
		logHandlerSummary(c, "unknown_text", time.Now(), "skip", nil)
		return nil
	}
	return tg.Route{Endpoint: tele.OnText, Handler: handler}
}
