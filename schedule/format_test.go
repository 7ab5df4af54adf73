package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/schedulebot/core/telegram/format"
)

func sampleSchedule() *Schedule {
	return &Schedule{Days: map[string][]Lesson{
		"среда": {
			{Time: "9:00", Name: "Математика", Room: "А-101"},
			{Time: "10:40", Name: "Физика", Room: "Б-2"},
		},
		"четверг": {
			{Time: "12:40", Name: "История", Room: "В-7"},
		},
	}}
}

func TestFormatDayWithLessons(t *testing.T) {
	got := FormatDay(sampleSchedule(), 2, true)
	want := "*Среда*\n\n9:00: Математика (А-101)\n10:40: Физика (Б-2)\n"
	if got != want {
		t.Fatalf("FormatDay = %q, want %q", got, want)
	}
	plain := FormatDay(sampleSchedule(), 3, false)
	if plain != "Четверг\n\n12:40: История (В-7)\n" {
		t.Fatalf("plain FormatDay = %q", plain)
	}
}

func TestFormatDayWithoutLessons(t *testing.T) {
	for day := 0; day < DayCount; day++ {
		if day == 2 || day == 3 {
			continue
		}
		md := FormatDay(sampleSchedule(), day, true)
		if md != "*"+DayNames[day]+"*\n\n_Пар нет_" {
			t.Errorf("day %d markup = %q", day, md)
		}
		plain := FormatDay(sampleSchedule(), day, false)
		if plain != DayNames[day]+"\n\nПар нет" {
			t.Errorf("day %d plain = %q", day, plain)
		}
	}
	if got := FormatDay(&Schedule{}, 0, false); got != "Понедельник\n\nПар нет" {
		t.Fatalf("empty schedule = %q", got)
	}
}

func TestFormatDayOutOfRange(t *testing.T) {
	for _, day := range []int{-1, 6, 42} {
		if got := FormatDay(sampleSchedule(), day, true); got != "День не найден" {
			t.Errorf("FormatDay(%d) = %q", day, got)
		}
	}
}

func TestPlainFormatHasNoMarkup(t *testing.T) {
	for day := 0; day < DayCount; day++ {
		text := FormatDay(sampleSchedule(), day, false)
		for _, r := range "*_`[" {
			if strings.ContainsRune(text, r) {
				t.Errorf("day %d plain text contains %q: %q", day, r, text)
			}
		}
	}
}

func TestPlainFormatEscapesForInline(t *testing.T) {
	got := format.EscapeMarkdownV2(FormatDay(sampleSchedule(), 2, false))
	want := "Среда\n\n9:00: Математика \\(А\\-101\\)\n10:40: Физика \\(Б\\-2\\)\n"
	if got != want {
		t.Fatalf("escaped = %q, want %q", got, want)
	}
}

func TestDayIndexFoldsSunday(t *testing.T) {
	cases := map[time.Weekday]int{
		time.Monday:    0,
		time.Wednesday: 2,
		time.Saturday:  5,
		time.Sunday:    0,
	}
	for w, want := range cases {
		if got := DayIndex(w); got != want {
			t.Errorf("DayIndex(%s) = %d, want %d", w, got, want)
		}
	}
}

func TestTodayIndexUsesLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*3600)
	// Tuesday 22:30 UTC is already Wednesday in UTC+3.
	ts := time.Date(2024, time.September, 3, 22, 30, 0, 0, time.UTC)
	if got := TodayIndex(ts, loc); got != 2 {
		t.Fatalf("TodayIndex = %d, want 2", got)
	}
	if got := TodayIndex(ts, nil); got != 1 {
		t.Fatalf("TodayIndex without location = %d, want 1", got)
	}
}

func TestStepIsCyclic(t *testing.T) {
	day := 4
	for i := 0; i < DayCount; i++ {
		day = Step(day, 1)
	}
	if day != 4 {
		t.Fatalf("six steps forward ended at %d", day)
	}
	if got := Step(0, -1); got != 5 {
		t.Fatalf("Step(0, -1) = %d", got)
	}
}
