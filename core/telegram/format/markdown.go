// Package format escapes text for Telegram parse modes.
package format

import "strings"

// MarkdownV2Specials lists the characters MarkdownV2 requires to be escaped.
const MarkdownV2Specials = "_*[]()~`>#+-=|{}.!"

var mdV2Replacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(MarkdownV2Specials))
	for _, r := range MarkdownV2Specials {
		pairs = append(pairs, string(r), `\`+string(r))
	}
	return strings.NewReplacer(pairs...)
}()

// EscapeMarkdownV2 backslash-escapes every MarkdownV2 special character in text.
func EscapeMarkdownV2(text string) string {
	return mdV2Replacer.Replace(text)
}
