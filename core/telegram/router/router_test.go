package router

import (
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"

	tg "github.com/m3rciful/schedulebot/core/telegram"
	"github.com/m3rciful/schedulebot/core/telegram/commands"
	"github.com/m3rciful/schedulebot/core/telegram/teletest"
)

func TestTextRouteDispatch(t *testing.T) {
	reg := tg.NewRegistry()
	var started, fallback int
	_ = reg.RegisterCommand("/start", commands.Command{
		Handler:     func(tele.Context) error { started++; return nil },
		Description: "help",
		Aliases:     []string{"/help"},
	})
	reg.SetTextFallback(func(tele.Context) error { fallback++; return nil })
	route := TextRoute(reg, CommandRouteOptions{})

	for _, text := range []string{"/help", "@bot КББО-12-24", "/unknown"} {
		if err := route.Handler(teletest.NewMessage(1, 1, text)); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
	}
	if started != 1 || fallback != 1 {
		t.Fatalf("started = %d, fallback = %d", started, fallback)
	}
}

func TestCallbackRouteUnknownKey(t *testing.T) {
	reg := tg.NewRegistry()
	c := teletest.NewCallback(1, 1, "bogus")
	if err := CallbackRoute(reg).Handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := c.LastResponseText(); got != tg.UnknownActionText {
		t.Fatalf("response = %q", got)
	}
}

func TestCallbackRoutePropagatesError(t *testing.T) {
	reg := tg.NewRegistry()
	boom := errors.New("edit failed")
	_ = reg.RegisterCallback("next_day", func(tele.Context) error { return boom })
	if err := CallbackRoute(reg).Handler(teletest.NewCallback(1, 1, "next_day")); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestAdminOnlyCommand(t *testing.T) {
	reg := tg.NewRegistry()
	ran := false
	_ = reg.RegisterCommand("/stats", commands.Command{
		Handler:     func(tele.Context) error { ran = true; return nil },
		Description: "stats",
		AdminOnly:   true,
	})
	route := TextRoute(reg, CommandRouteOptions{AdminID: 42})

	_ = route.Handler(teletest.NewMessage(1, 7, "/stats"))
	if ran {
		t.Fatal("non-admin reached admin command")
	}
	_ = route.Handler(teletest.NewMessage(1, 42, "/stats"))
	if !ran {
		t.Fatal("admin was rejected")
	}
}

func TestErrorCode(t *testing.T) {
	if got := errorCode(errors.New("x")); got != "UNKNOWN_ERROR" {
		t.Fatalf("errorCode = %s", got)
	}
	if got := errorCode(&tele.Error{Code: 400, Description: "bad"}); got != "TG_400" {
		t.Fatalf("errorCode = %s", got)
	}
}
