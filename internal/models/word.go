package models

import "time"

// WordToken is one recognized word from the transcription service.
// Tokens are immutable once produced and ordered chronologically.
type WordToken struct {
	Text        string        `json:"text"`
	StartOffset time.Duration `json:"start_offset"` // from audio start
	SpeakerTag  int           `json:"speaker_tag"`  // 0 = untagged
}

// SpeakerIdentity maps a diarization speaker tag to a human.
// Email is empty when the user did not supply one.
type SpeakerIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// TranscriptLine is one speaker turn: a maximal run of consecutive
// tokens that resolve to the same display name.
type TranscriptLine struct {
	Timestamp string `json:"timestamp"` // HH:MM:SS from audio start
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}

// EmailDraft is the assembled follow-up email shown to the user.
// Sending it is out of scope.
type EmailDraft struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Recipients string `json:"recipients"` // comma-joined, may be empty
}
