package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		cb          *tele.Callback
		key, payload string
	}{
		{nil, "", ""},
		{&tele.Callback{Data: "next_day"}, "next_day", ""},
		{&tele.Callback{Data: "\fprev_day|"}, "prev_day", ""},
		{&tele.Callback{Data: "\fday|3"}, "day", "3"},
		{&tele.Callback{Unique: "next_day", Data: ""}, "next_day", ""},
	}
	for _, tc := range cases {
		key, payload := ParseCallbackData(tc.cb)
		if key != tc.key || payload != tc.payload {
			t.Errorf("ParseCallbackData(%+v) = %q, %q; want %q, %q", tc.cb, key, payload, tc.key, tc.payload)
		}
	}
}
