package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/telegram/keyboard"
)

// DayStep is a navigation button payload.
type DayStep int

const (
	// PrevDay moves one working day back.
	PrevDay DayStep = -1
	// NextDay moves one working day forward.
	NextDay DayStep = 1
)

// Callback data carried by the navigation buttons.
const (
	dataPrevDay = "prev_day"
	dataNextDay = "next_day"
)

// ParseDayStep maps callback data to a DayStep.
func ParseDayStep(data string) (DayStep, error) {
	switch data {
	case dataNextDay:
		return NextDay, nil
	case dataPrevDay:
		return PrevDay, nil
	}
	return 0, fmt.Errorf("%w: callback %q", ErrMalformedInput, data)
}

func (s DayStep) String() string {
	if s == PrevDay {
		return dataPrevDay
	}
	return dataNextDay
}

func navKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineRow(
		keyboard.InlineBtn{Text: btnPrev, Data: dataPrevDay},
		keyboard.InlineBtn{Text: btnNext, Data: dataNextDay},
	)
}
