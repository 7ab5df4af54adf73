package format

import "testing"

func TestEscapeMarkdownV2(t *testing.T) {
	cases := map[string]string{
		"A.B_C":            `A\.B\_C`,
		"Среда":            "Среда",
		"9:00: Math (A-1)": `9:00: Math \(A\-1\)`,
		"":                 "",
		"*x*":              `\*x\*`,
	}
	for in, want := range cases {
		if got := EscapeMarkdownV2(in); got != want {
			t.Errorf("EscapeMarkdownV2(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeMarkdownV2EscapesEverySpecial(t *testing.T) {
	got := EscapeMarkdownV2(MarkdownV2Specials)
	if len(got) != 2*len(MarkdownV2Specials) {
		t.Fatalf("escaped %q to %q", MarkdownV2Specials, got)
	}
}
