package ui

import (
	"encoding/json"
	"strings"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/telegram/teletest"
)

func TestInlineAnswerKeepsZeroCacheTime(t *testing.T) {
	article := Article{
		ID:          "x",
		Title:       "КББО-12-24",
		Description: "desc",
		ThumbURL:    "https://t/a.jpg",
		Text:        `Среда\. Пар нет`,
		ParseMode:   tele.ModeMarkdownV2,
	}.Result()

	data, err := json.Marshal(newInlineAnswer("q", tele.Results{article}, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, want := range []string{
		`"inline_query_id":"q"`,
		`"cache_time":0`,
		`"type":"article"`,
		`"id":"x"`,
		`"thumbnail_url":"https://t/a.jpg"`,
		`"parse_mode":"MarkdownV2"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %s in %s", want, body)
		}
	}
}

func TestInlineAnswerEmptyResults(t *testing.T) {
	data, err := json.Marshal(newInlineAnswer("q", nil, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if body := string(data); !strings.Contains(body, `"results":[]`) || !strings.Contains(body, `"cache_time":0`) {
		t.Fatalf("body = %s", body)
	}
}

func TestAnswerInlineRequiresQuery(t *testing.T) {
	if err := AnswerInline(teletest.NewMessage(1, 1, "hi"), nil, 0); err == nil {
		t.Fatal("expected error without an inline query")
	}
}
