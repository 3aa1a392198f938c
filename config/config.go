package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed into every constructor.
// Nothing reads cloud settings from ambient state after Load returns.
type Config struct {
	Port string

	// Google Cloud
	ProjectID       string
	Location        string
	CredentialsFile string // optional; ADC is used when empty
	GCSBucket       string
	GeminiModel     string

	// Upload staging
	UploadDir      string
	MaxUploadBytes int64

	// Transcription
	TranscribeTimeout time.Duration
	MinSpeakers       int
	MaxSpeakers       int

	// Session continuity
	SessionSecret string
	SessionTTL    time.Duration

	// Backing stores
	RedisAddr string
	MongoURI  string
	MongoDB   string
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            envDefault("PORT", "8080"),
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:        envDefault("GCP_REGION", "us-central1"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GCSBucket:       envDefault("GCS_BUCKET_NAME", "meeting-insights"),
		GeminiModel:     envDefault("GEMINI_MODEL", "gemini-1.5-flash"),

		UploadDir:      envDefault("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 300<<20),

		TranscribeTimeout: envDuration("TRANSCRIBE_TIMEOUT", 900*time.Second),
		MinSpeakers:       envInt("MIN_SPEAKERS", 2),
		MaxSpeakers:       envInt("MAX_SPEAKERS", 5),

		// dev fallback; set a real secret in deployment
		SessionSecret: envDefault("SESSION_SECRET", "dev-only-session-secret"),
		SessionTTL:    envDuration("SESSION_TTL", 2*time.Hour),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   envDefault("MONGO_DB", "meeting_insights"),
	}

	if cfg.ProjectID == "" {
		return nil, errors.New("GOOGLE_CLOUD_PROJECT environment variable is not set")
	}
	if cfg.MinSpeakers < 1 || cfg.MaxSpeakers < cfg.MinSpeakers {
		return nil, errors.New("speaker bounds are invalid: need 1 <= MIN_SPEAKERS <= MAX_SPEAKERS")
	}
	return cfg, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		// bare seconds, matching the reference deployment's "900"
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
