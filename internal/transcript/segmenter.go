// Package transcript turns the flat word stream produced by diarized
// transcription into a speaker-turn transcript.
package transcript

import (
	"fmt"
	"strings"

	"github.com/coopnet/meeting-insights/internal/models"
)

// DefaultName is the display name used for a tag with no identity mapping.
// Tag 0 (untagged) goes through the same rule and renders as "Speaker 0".
func DefaultName(tag int) string {
	return fmt.Sprintf("Speaker %d", tag)
}

// Segment groups consecutive tokens that resolve to the same display
// name into TranscriptLines. A line opens whenever the resolved name
// differs from the previous token's (including the very first token);
// its timestamp comes from the opening token's start offset. Tokens
// must be in chronological order. An empty input yields an empty output.
func Segment(words []models.WordToken, names map[int]string) []models.TranscriptLine {
	var (
		lines   []models.TranscriptLine
		current string
		text    strings.Builder
	)

	flush := func() {
		if current == "" && text.Len() == 0 {
			return
		}
		lines[len(lines)-1].Text = strings.TrimSpace(text.String())
		text.Reset()
	}

	for _, w := range words {
		name, ok := names[w.SpeakerTag]
		if !ok {
			name = DefaultName(w.SpeakerTag)
		}
		if name != current {
			if current != "" || len(lines) > 0 {
				flush()
			}
			lines = append(lines, models.TranscriptLine{
				Timestamp: FormatOffset(w.StartOffset),
				Speaker:   name,
			})
			current = name
		}
		text.WriteString(w.Text)
		text.WriteString(" ")
	}
	if len(lines) > 0 {
		flush()
	}
	return lines
}

// Render joins lines into the flat transcript string consumed by the
// analysis prompts: "[HH:MM:SS] Name: text" per line.
func Render(lines []models.TranscriptLine) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] %s: %s", l.Timestamp, l.Speaker, l.Text)
	}
	return b.String()
}
