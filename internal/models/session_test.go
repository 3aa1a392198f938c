package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPipelineSession_StageTransitions(t *testing.T) {
	sess := NewPipelineSession("s1")

	if sess.Stage != StageIdle {
		t.Fatalf("new session stage = %s", sess.Stage)
	}
	if err := sess.Require(StageIdle); err != nil {
		t.Errorf("Require(idle) on fresh session: %v", err)
	}
	if err := sess.Require(StageUploaded); err == nil {
		t.Error("Require(uploaded) should fail on a fresh session")
	}

	sess.Advance(StageUploaded)
	if sess.Stage != StageUploaded {
		t.Errorf("stage = %s", sess.Stage)
	}

	sess.Fail(StageTranscribed)
	if sess.Stage != StageFailed || sess.FailedStage != StageTranscribed {
		t.Errorf("failed stage = %s/%s", sess.Stage, sess.FailedStage)
	}
	if !sess.Stage.Terminal() {
		t.Error("failed stage should be terminal")
	}
}

func TestPipelineSession_JSONRoundTrip(t *testing.T) {
	sess := NewPipelineSession("s1")
	sess.Words = []WordToken{{Text: "hey", StartOffset: 2 * time.Second, SpeakerTag: 1}}
	sess.SpeakerTags = []int{1, 2}
	sess.Identities = map[int]SpeakerIdentity{
		1: {Name: "Alice", Email: "alice@example.com"},
		2: {Name: "Speaker 2"},
	}
	sess.Advance(StageIdentified)

	raw, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}

	var back PipelineSession
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}

	if back.Stage != StageIdentified {
		t.Errorf("stage = %s", back.Stage)
	}
	if len(back.Words) != 1 || back.Words[0].StartOffset != 2*time.Second {
		t.Errorf("words = %+v", back.Words)
	}
	if back.Identities[1].Name != "Alice" || back.Identities[2].Name != "Speaker 2" {
		t.Errorf("identities = %+v", back.Identities)
	}
}

func TestPipelineSession_DisplayNames(t *testing.T) {
	sess := NewPipelineSession("s1")
	sess.Identities = map[int]SpeakerIdentity{
		1: {Name: "Alice", Email: "alice@example.com"},
		2: {Name: "Speaker 2"},
	}

	names := sess.DisplayNames()
	if len(names) != 2 || names[1] != "Alice" || names[2] != "Speaker 2" {
		t.Errorf("names = %v", names)
	}
}
