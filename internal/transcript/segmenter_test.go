package transcript

import (
	"strings"
	"testing"
	"time"

	"github.com/coopnet/meeting-insights/internal/models"
)

func tok(text string, offset float64, tag int) models.WordToken {
	return models.WordToken{
		Text:        text,
		StartOffset: time.Duration(offset * float64(time.Second)),
		SpeakerTag:  tag,
	}
}

func TestSegment_TwoSpeakers(t *testing.T) {
	words := []models.WordToken{
		tok("Hello", 0.0, 1),
		tok("world", 0.5, 1),
		tok("Hi", 2.0, 2),
	}
	names := map[int]string{1: "Alice", 2: "Bob"}

	lines := Segment(words, names)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	want := []models.TranscriptLine{
		{Timestamp: "00:00:00", Speaker: "Alice", Text: "Hello world"},
		{Timestamp: "00:00:02", Speaker: "Bob", Text: "Hi"},
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}

	rendered := Render(lines)
	wantStr := "[00:00:00] Alice: Hello world\n[00:00:02] Bob: Hi"
	if rendered != wantStr {
		t.Errorf("Render = %q, want %q", rendered, wantStr)
	}
}

func TestSegment_Empty(t *testing.T) {
	lines := Segment(nil, map[int]string{1: "Alice"})
	if len(lines) != 0 {
		t.Fatalf("expected empty output, got %d lines", len(lines))
	}
	if Render(lines) != "" {
		t.Errorf("Render of empty lines = %q, want empty", Render(lines))
	}
}

func TestSegment_UnmappedTagDefaults(t *testing.T) {
	words := []models.WordToken{
		tok("uh", 0.2, 0),
		tok("okay", 1.1, 3),
	}

	lines := Segment(words, map[int]string{})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Speaker != "Speaker 0" {
		t.Errorf("tag 0 speaker = %q, want %q", lines[0].Speaker, "Speaker 0")
	}
	if lines[1].Speaker != "Speaker 3" {
		t.Errorf("tag 3 speaker = %q, want %q", lines[1].Speaker, "Speaker 3")
	}
}

func TestSegment_SameNameDifferentTagsMerges(t *testing.T) {
	// Two tags mapped to the same display name must not open a new line:
	// line breaks follow resolved names, not raw tags.
	words := []models.WordToken{
		tok("one", 0, 1),
		tok("two", 1, 2),
		tok("three", 2, 1),
	}
	names := map[int]string{1: "Alice", 2: "Alice"}

	lines := Segment(words, names)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "one two three" {
		t.Errorf("text = %q, want %q", lines[0].Text, "one two three")
	}
}

func TestSegment_NoTokenTextLost(t *testing.T) {
	words := []models.WordToken{
		tok("a", 0, 1), tok("b", 1, 1), tok("c", 2, 2),
		tok("d", 3, 1), tok("e", 4, 3), tok("f", 5, 3),
	}
	names := map[int]string{1: "A", 2: "B"}

	lines := Segment(words, names)

	var got []string
	for _, l := range lines {
		got = append(got, l.Text)
	}
	joined := strings.Join(got, " ")
	want := "a b c d e f"
	if joined != want {
		t.Errorf("concatenated text = %q, want %q", joined, want)
	}

	// One line per maximal same-speaker run: A,A | B | A | S3,S3.
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestFormatOffset(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{2 * time.Second, "00:00:02"},
		{61 * time.Second, "00:01:01"},
		{3*time.Hour + 25*time.Minute + 45*time.Second, "03:25:45"},
		{500 * time.Millisecond, "00:00:00"},
		// Wall-clock wrap past 24h is the documented behavior.
		{25 * time.Hour, "01:00:00"},
		{-3 * time.Second, "00:00:00"},
	}
	for _, c := range cases {
		if got := FormatOffset(c.d); got != c.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
