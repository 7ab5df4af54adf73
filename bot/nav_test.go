package bot

import (
	"errors"
	"testing"
)

func TestParseDayStep(t *testing.T) {
	for data, want := range map[string]DayStep{"next_day": NextDay, "prev_day": PrevDay} {
		got, err := ParseDayStep(data)
		if err != nil || got != want {
			t.Errorf("ParseDayStep(%q) = %v, %v", data, got, err)
		}
		if got.String() != data {
			t.Errorf("String() = %q, want %q", got.String(), data)
		}
	}
	if _, err := ParseDayStep("\fnext_day|x"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseMention(t *testing.T) {
	got, err := parseMention("@MIREARTU_bot  кббо-12-24 extra")
	if err != nil || got != "КББО-12-24" {
		t.Fatalf("parseMention = %q, %v", got, err)
	}
	if _, err := parseMention("@MIREARTU_bot"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v", err)
	}
}
