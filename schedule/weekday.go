package schedule

import "time"

// DayCount is the number of working days, Monday through Saturday.
const DayCount = 6

// DayNames lists the working days in order; the index is the day index.
var DayNames = [DayCount]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

// DayIndex maps a calendar weekday to a day index. Sunday folds to Monday.
func DayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 0
	}
	return int(w) - 1
}

// TodayIndex returns the day index of t in loc. A nil loc keeps t's location.
func TodayIndex(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	return DayIndex(t.Weekday())
}

// Step moves day by delta, wrapping within [0, DayCount).
func Step(day, delta int) int {
	return ((day+delta)%DayCount + DayCount) % DayCount
}
