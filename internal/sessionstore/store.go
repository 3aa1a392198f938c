// Package sessionstore keeps PipelineSession documents between requests.
// Sessions are working state for one pipeline run, not an audit record,
// so they live under a TTL and are deleted when abandoned.
package sessionstore

import (
	"context"

	"github.com/coopnet/meeting-insights/internal/models"
)

type Store interface {
	// Get returns hit=false when the session is absent or expired.
	Get(ctx context.Context, sessionID string) (sess *models.PipelineSession, hit bool, err error)
	Put(ctx context.Context, sess *models.PipelineSession) error
	Delete(ctx context.Context, sessionID string) error
}
