package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/coopnet/meeting-insights/internal/utils"
)

func TestPrompt_EmbedsTranscriptVerbatim(t *testing.T) {
	transcript := "[00:00:00] Alice: let's ship on Friday\n[00:00:05] Bob: agreed"

	for _, kind := range []Kind{KindSummary, KindActionItems} {
		p, err := Prompt(kind, transcript)
		if err != nil {
			t.Fatalf("Prompt(%s) error: %v", kind, err)
		}
		if !strings.Contains(p, transcript) {
			t.Errorf("Prompt(%s) does not embed the transcript", kind)
		}
	}
}

func TestPrompt_KindSelectsTemplate(t *testing.T) {
	s, err := Prompt(KindSummary, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(s), "Summary:") {
		t.Errorf("summary prompt should end with its answer cue, got tail %q", s[len(s)-30:])
	}

	a, err := Prompt(KindActionItems, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(a), "Action Items:") {
		t.Errorf("action-items prompt should end with its answer cue")
	}
}

func TestPrompt_UnknownKind(t *testing.T) {
	_, err := Prompt(Kind("sentiment"), "x")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
	if !strings.Contains(err.Error(), "sentiment") {
		t.Errorf("error should name the unknown kind, got %q", err.Error())
	}
}

func TestErrorText(t *testing.T) {
	got := ErrorText(KindActionItems, errors.New("quota exceeded"))
	want := "Error generating action items: quota exceeded"
	if got != want {
		t.Errorf("ErrorText = %q, want %q", got, want)
	}
}
