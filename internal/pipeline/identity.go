package pipeline

import (
	"github.com/sirupsen/logrus"

	"github.com/coopnet/meeting-insights/internal/models"
	"github.com/coopnet/meeting-insights/internal/transcript"
)

// IdentitySubmission is one speaker's form input. Both fields must be
// present for the submission to count; a half-filled row falls back to
// the synthesized identity, same as an empty one.
type IdentitySubmission struct {
	Name  string
	Email string
}

// buildIdentities produces exactly one SpeakerIdentity per tag.
// Unsubmitted tags default to "Speaker {tag}" with no email; defaulting
// is a warning, never a failure.
func buildIdentities(tags []int, submitted map[int]IdentitySubmission, log *logrus.Logger) map[int]models.SpeakerIdentity {
	identities := make(map[int]models.SpeakerIdentity, len(tags))
	for _, tag := range tags {
		sub, ok := submitted[tag]
		if ok && sub.Name != "" && sub.Email != "" {
			identities[tag] = models.SpeakerIdentity{Name: sub.Name, Email: sub.Email}
			continue
		}
		identities[tag] = models.SpeakerIdentity{Name: transcript.DefaultName(tag)}
		if log != nil {
			log.WithField("speaker_tag", tag).Warn("no identity submitted for speaker, using default")
		}
	}
	return identities
}
