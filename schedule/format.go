package schedule

import (
	"fmt"
	"strings"
)

const (
	dayNotFound  = "День не найден"
	noLessons    = "Пар нет"
	noLessonsMD  = "_Пар нет_"
	lessonFormat = "%s: %s (%s)\n"
)

// FormatDay renders day of s. With markup the header is bold and an empty day
// is italic, in Telegram's legacy Markdown. Without markup the text is plain
// and still needs escaping before it is sent as MarkdownV2.
func FormatDay(s *Schedule, day int, markup bool) string {
	if day < 0 || day >= DayCount {
		return dayNotFound
	}
	name := DayNames[day]

	var b strings.Builder
	if markup {
		b.WriteString("*" + name + "*\n\n")
	} else {
		b.WriteString(name + "\n\n")
	}

	lessons := s.Lessons(name)
	if len(lessons) == 0 {
		if markup {
			b.WriteString(noLessonsMD)
		} else {
			b.WriteString(noLessons)
		}
		return b.String()
	}
	for _, l := range lessons {
		fmt.Fprintf(&b, lessonFormat, l.Time, l.Name, l.Room)
	}
	return b.String()
}
