package storage

import "context"

// Uploader moves a locally staged file into the blob store and returns
// the locator the transcription service consumes.
type Uploader interface {
	Upload(ctx context.Context, localPath, objectName string) (locator string, err error)
}
