// Package keyboard builds inline keyboards.
package keyboard

import tele "gopkg.in/telebot.v4"

// InlineBtn is an inline button carrying raw callback data.
type InlineBtn struct {
	Text string
	Data string
}

// InlineRows builds an inline keyboard from rows of buttons. Callback data is
// sent as is, without telebot's unique prefix, so it stays readable by any
// OnCallback handler.
func InlineRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	inline := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		r := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			r = append(r, tele.InlineButton{Text: b.Text, Data: b.Data})
		}
		inline = append(inline, r)
	}
	return &tele.ReplyMarkup{InlineKeyboard: inline}
}

// InlineRow builds a single-row inline keyboard.
func InlineRow(buttons ...InlineBtn) *tele.ReplyMarkup {
	return InlineRows(buttons)
}
