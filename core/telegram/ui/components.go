// Package ui builds inline query results and answers.
package ui

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"
)

// Article describes an inline article result.
type Article struct {
	ID          string
	Title       string
	Description string
	ThumbURL    string
	// Text is inserted into the chat when the result is chosen.
	Text      string
	ParseMode tele.ParseMode
}

// Result converts a to a telebot inline result.
func (a Article) Result() *tele.ArticleResult {
	r := &tele.ArticleResult{
		Title:       a.Title,
		Description: a.Description,
		ThumbURL:    a.ThumbURL,
	}
	r.SetResultID(a.ID)
	r.SetContent(&tele.InputTextMessageContent{Text: a.Text, ParseMode: a.ParseMode})
	return r
}

// inlineAnswer mirrors answerInlineQuery. telebot's QueryResponse omits a
// zero cache_time, which Telegram then treats as its 300s default.
type inlineAnswer struct {
	QueryID   string       `json:"inline_query_id"`
	Results   tele.Results `json:"results"`
	CacheTime int          `json:"cache_time"`
}

// AnswerInline answers the current inline query with results, sending
// cacheTime even when it is zero.
func AnswerInline(c tele.Context, results tele.Results, cacheTime int) error {
	q := c.Query()
	if q == nil {
		return errors.New("ui: no inline query in context")
	}
	if _, err := c.Bot().Raw("answerInlineQuery", newInlineAnswer(q.ID, results, cacheTime)); err != nil {
		return fmt.Errorf("answer inline query: %w", err)
	}
	return nil
}

// newInlineAnswer builds the request body. Nil results become an empty list,
// which Telegram accepts as "no results".
func newInlineAnswer(queryID string, results tele.Results, cacheTime int) inlineAnswer {
	if results == nil {
		results = tele.Results{}
	}
	return inlineAnswer{QueryID: queryID, Results: results, CacheTime: cacheTime}
}
