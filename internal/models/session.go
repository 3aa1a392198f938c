package models

import (
	"fmt"
	"time"
)

// Stage is the position of a pipeline run in the workflow.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageUploaded    Stage = "uploaded"
	StageTranscribed Stage = "transcribed"
	StageIdentified  Stage = "identified"
	StageAnalyzed    Stage = "analyzed"
	StageFailed      Stage = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s Stage) Terminal() bool {
	return s == StageAnalyzed || s == StageFailed
}

// PipelineSession is the transient per-run state carried between
// workflow stages. It is serialized as a single JSON document into the
// session store and regenerated wholesale on every transition; nothing
// outside the pipeline mutates it.
type PipelineSession struct {
	SessionID string `json:"session_id"` // uuid v4
	Stage     Stage  `json:"stage"`
	// FailedStage records which transition failed when Stage == StageFailed.
	FailedStage Stage `json:"failed_stage,omitempty"`

	SourceFilename string `json:"source_filename,omitempty"`
	AudioURI       string `json:"audio_uri,omitempty"` // gs:// locator

	Words []WordToken `json:"words,omitempty"`
	// SpeakerTags is the sorted set of distinct non-zero tags observed
	// across Words. Tag 0 never appears here, but tag-0 tokens still
	// render in the transcript under the default name.
	SpeakerTags []int                   `json:"speaker_tags,omitempty"`
	Identities  map[int]SpeakerIdentity `json:"identities,omitempty"`

	Transcript  string     `json:"transcript,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	ActionItems string     `json:"action_items,omitempty"`
	Email       EmailDraft `json:"email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPipelineSession returns a fresh run at StageIdle.
func NewPipelineSession(sessionID string) *PipelineSession {
	now := time.Now().UTC()
	return &PipelineSession{
		SessionID: sessionID,
		Stage:     StageIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves the session to the given stage.
func (p *PipelineSession) Advance(next Stage) {
	p.Stage = next
	p.UpdatedAt = time.Now().UTC()
}

// Fail marks the session failed at the given transition.
func (p *PipelineSession) Fail(at Stage) {
	p.Stage = StageFailed
	p.FailedStage = at
	p.UpdatedAt = time.Now().UTC()
}

// Require returns an error unless the session is at the expected stage.
func (p *PipelineSession) Require(expected Stage) error {
	if p.Stage != expected {
		return fmt.Errorf("session %s is at stage %q, want %q", p.SessionID, p.Stage, expected)
	}
	return nil
}

// DisplayNames projects the identity map down to tag -> display name,
// the shape the transcript segmenter consumes.
func (p *PipelineSession) DisplayNames() map[int]string {
	names := make(map[int]string, len(p.Identities))
	for tag, id := range p.Identities {
		names[tag] = id.Name
	}
	return names
}
