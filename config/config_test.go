package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.GCSBucket != "meeting-insights" {
		t.Errorf("bucket = %q", cfg.GCSBucket)
	}
	if cfg.TranscribeTimeout != 900*time.Second {
		t.Errorf("transcribe timeout = %v", cfg.TranscribeTimeout)
	}
	if cfg.MinSpeakers != 2 || cfg.MaxSpeakers != 5 {
		t.Errorf("speaker bounds = [%d,%d]", cfg.MinSpeakers, cfg.MaxSpeakers)
	}
	if cfg.MaxUploadBytes != 300<<20 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_RequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without a project id")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
	t.Setenv("TRANSCRIBE_TIMEOUT", "300")
	t.Setenv("MIN_SPEAKERS", "3")
	t.Setenv("MAX_SPEAKERS", "4")
	t.Setenv("SESSION_TTL", "45m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TranscribeTimeout != 300*time.Second {
		t.Errorf("bare-seconds timeout = %v", cfg.TranscribeTimeout)
	}
	if cfg.MinSpeakers != 3 || cfg.MaxSpeakers != 4 {
		t.Errorf("speaker bounds = [%d,%d]", cfg.MinSpeakers, cfg.MaxSpeakers)
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Errorf("session ttl = %v", cfg.SessionTTL)
	}
}

func TestLoad_RejectsInvertedSpeakerBounds(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
	t.Setenv("MIN_SPEAKERS", "6")
	t.Setenv("MAX_SPEAKERS", "2")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject MIN_SPEAKERS > MAX_SPEAKERS")
	}
}
