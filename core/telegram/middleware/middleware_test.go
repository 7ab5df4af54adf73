package middleware

import (
	"errors"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/telegram/teletest"
)

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Unix(1000, 0)
	limited := 0
	mw := RateLimitMiddleware(RateLimitOptions{
		Interval:  time.Second,
		Exclude:   map[string]struct{}{"inline_query": {}},
		OnLimited: func(tele.Context) error { limited++; return nil },
		Now:       func() time.Time { return now },
	})
	calls := 0
	h := mw(func(tele.Context) error { calls++; return nil })

	_ = h(teletest.NewCallback(1, 7, "next_day"))
	_ = h(teletest.NewCallback(1, 7, "next_day"))
	_ = h(teletest.NewQuery(7, "kb"))
	now = now.Add(time.Second)
	_ = h(teletest.NewMessage(1, 7, "@bot KB"))

	if calls != 3 || limited != 1 {
		t.Fatalf("calls = %d, limited = %d", calls, limited)
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	rejected := 0
	mw := AdminOnlyMiddleware(AdminOptions{AdminID: 42, OnReject: func(tele.Context) error { rejected++; return nil }})
	calls := 0
	h := mw(func(tele.Context) error { calls++; return nil })

	_ = h(teletest.NewMessage(1, 42, "/stats"))
	_ = h(teletest.NewMessage(1, 7, "/stats"))
	if calls != 1 || rejected != 1 {
		t.Fatalf("calls = %d, rejected = %d", calls, rejected)
	}

	closed := AdminOnlyMiddleware(AdminOptions{})(func(tele.Context) error { t.Fatal("no admin configured"); return nil })
	_ = closed(teletest.NewMessage(1, 0, "/stats"))
}

func TestRecoverMiddlewareReturnsPanic(t *testing.T) {
	h := RecoverMiddleware(func(tele.Context) error { panic("boom") })
	if err := h(teletest.NewMessage(1, 7, "x")); err == nil {
		t.Fatal("expected error from panic")
	}
	ok := RecoverMiddleware(func(tele.Context) error { return errors.New("plain") })
	if err := ok(teletest.NewMessage(1, 7, "x")); err == nil || err.Error() != "plain" {
		t.Fatalf("err = %v", err)
	}
}
