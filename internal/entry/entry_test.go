package entry

import (
	"strings"
	"testing"
)

func TestParseWithIdentifier(t *testing.T) {
	e := Parse("42::answer")
	if e.ID != "42" || e.Text != "answer" {
		t.Errorf("Parse = %+v, want ID=42 Text=answer", e)
	}
}

func TestParseSplitsAtFirstSeparator(t *testing.T) {
	e := Parse("a::b::c")
	if e.ID != "a" || e.Text != "b::c" {
		t.Errorf("Parse = %+v, want ID=a Text=b::c", e)
	}
}

func TestParseMissingSeparator(t *testing.T) {
	// A malformed line falls back to plain text with an empty identifier.
	e := Parse("just some text")
	if e.ID != "" || e.Text != "just some text" {
		t.Errorf("Parse = %+v, want empty ID and the whole line as text", e)
	}
}

func TestParseEmptyIdentifier(t *testing.T) {
	e := Parse("::text")
	if e.ID != "" || e.Text != "text" {
		t.Errorf("Parse = %+v, want empty ID and Text=text", e)
	}
}

func TestReadTrimsAndSkipsBlank(t *testing.T) {
	in := "  alpha  \n\nbeta\n   \ngamma\n"
	lines, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(lines) != len(want) {
		t.Fatalf("Read = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadEmptyInput(t *testing.T) {
	lines, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Read = %v, want no lines", lines)
	}
}

func TestDisplayLinesPlain(t *testing.T) {
	entries := []Entry{{Text: "one"}, {Text: "two"}}
	lines := DisplayLines(entries, false)
	if lines[0] != "one" || lines[1] != "two" {
		t.Errorf("DisplayLines = %v", lines)
	}
}

func TestDisplayLinesNumbered(t *testing.T) {
	entries := make([]Entry, 12)
	for i := range entries {
		entries[i] = Entry{Text: "x"}
	}
	lines := DisplayLines(entries, true)
	if lines[0] != " 01 x" {
		t.Errorf("line 0 = %q, want %q", lines[0], " 01 x")
	}
	if lines[11] != " 12 x" {
		t.Errorf("line 11 = %q, want %q", lines[11], " 12 x")
	}
}

func TestPadNum(t *testing.T) {
	tests := []struct {
		n, max int
		want   string
	}{
		{1, 9, "1"},
		{1, 10, "01"},
		{10, 10, "10"},
		{7, 1000, "0007"},
	}
	for _, tc := range tests {
		if got := padNum(tc.n, tc.max); got != tc.want {
			t.Errorf("padNum(%d, %d) = %q, want %q", tc.n, tc.max, got, tc.want)
		}
	}
}
