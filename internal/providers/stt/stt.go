package stt

import (
	"context"

	"github.com/coopnet/meeting-insights/internal/models"
)

// Provider transcribes stored audio with speaker diarization.
// Tags is the sorted set of distinct non-zero speaker tags observed in
// the word stream. Failure is an error, never partial data.
type Provider interface {
	Transcribe(ctx context.Context, locator string) (words []models.WordToken, tags []int, err error)
	Close() error
}
