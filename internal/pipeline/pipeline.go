// Package pipeline sequences a meeting-insights run through its stages:
// idle → uploaded → transcribed → identified → analyzed. Each transition
// checks its precondition against the session's current stage and marks
// the session failed when its collaborator fails.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/coopnet/meeting-insights/internal/analysis"
	"github.com/coopnet/meeting-insights/internal/models"
	"github.com/coopnet/meeting-insights/internal/providers/llm"
	"github.com/coopnet/meeting-insights/internal/providers/stt"
	mongorepo "github.com/coopnet/meeting-insights/internal/repositories/mongo"
	"github.com/coopnet/meeting-insights/internal/storage"
	"github.com/coopnet/meeting-insights/internal/transcript"
	"github.com/coopnet/meeting-insights/internal/utils"
)

const objectPrefix = "audio_uploads"

type Pipeline struct {
	uploader storage.Uploader
	stt      stt.Provider
	llm      llm.Provider
	archive  mongorepo.MeetingRepository // optional; nil disables archiving
	log      *logrus.Logger

	transcribeTimeout time.Duration
}

func New(uploader storage.Uploader, sttProvider stt.Provider, llmProvider llm.Provider,
	archive mongorepo.MeetingRepository, log *logrus.Logger, transcribeTimeout time.Duration) *Pipeline {
	if transcribeTimeout <= 0 {
		transcribeTimeout = 900 * time.Second
	}
	return &Pipeline{
		uploader:          uploader,
		stt:               sttProvider,
		llm:               llmProvider,
		archive:           archive,
		log:               log,
		transcribeTimeout: transcribeTimeout,
	}
}

// Upload moves the staged file into the blob store. The staged file is
// removed whether or not the upload succeeds; it exists only to perform
// this step.
func (p *Pipeline) Upload(ctx context.Context, sess *models.PipelineSession, localPath, filename string) error {
	const op = "Pipeline.Upload"

	defer func() {
		if err := os.Remove(localPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.log.WithError(err).WithField("path", localPath).Warn("failed to remove staged upload")
		}
	}()

	if err := sess.Require(models.StageIdle); err != nil {
		return utils.E(utils.CodeConflict, op, "pipeline not ready for upload", err)
	}
	if filename == "" {
		return utils.E(utils.CodeInvalidArgument, op, "filename is required", nil)
	}

	objectName := path.Join(objectPrefix, uuid.NewString()+"_"+path.Base(filename))
	locator, err := p.uploader.Upload(ctx, localPath, objectName)
	if err != nil {
		sess.Fail(models.StageUploaded)
		return utils.E(utils.CodeUnavailable, op, "storage upload failed", err)
	}

	sess.SourceFilename = filename
	sess.AudioURI = locator
	sess.Advance(models.StageUploaded)

	p.log.WithFields(logrus.Fields{
		"session_id": sess.SessionID,
		"audio_uri":  locator,
	}).Info("audio uploaded")
	return nil
}

// Transcribe blocks on the transcription service, bounded by the
// configured timeout. Failure or an empty result leaves the session
// failed at this transition with no word data retained.
func (p *Pipeline) Transcribe(ctx context.Context, sess *models.PipelineSession) error {
	const op = "Pipeline.Transcribe"

	if err := sess.Require(models.StageUploaded); err != nil {
		return utils.E(utils.CodeConflict, op, "no uploaded audio to transcribe", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.transcribeTimeout)
	defer cancel()

	p.log.WithFields(logrus.Fields{
		"session_id": sess.SessionID,
		"audio_uri":  sess.AudioURI,
	}).Info("starting transcription")

	words, tags, err := p.stt.Transcribe(ctx, sess.AudioURI)
	if err != nil || len(words) == 0 {
		sess.Fail(models.StageTranscribed)
		if errors.Is(err, context.DeadlineExceeded) {
			return utils.E(utils.CodeTimeout, op, "transcription timed out", err)
		}
		if err == nil {
			err = errors.New("empty transcription result")
		}
		return utils.E(utils.CodeUnavailable, op, "transcription failed", err)
	}

	sess.Words = words
	sess.SpeakerTags = tags
	sess.Advance(models.StageTranscribed)

	p.log.WithFields(logrus.Fields{
		"session_id": sess.SessionID,
		"words":      len(words),
		"speakers":   len(tags),
	}).Info("transcription finished")
	return nil
}

// Identify records the user-submitted speaker identities, defaulting
// any tag without a complete submission. Cannot fail past its stage
// precondition.
func (p *Pipeline) Identify(sess *models.PipelineSession, submitted map[int]IdentitySubmission) error {
	const op = "Pipeline.Identify"

	if err := sess.Require(models.StageTranscribed); err != nil {
		return utils.E(utils.CodeConflict, op, "no transcription awaiting identification", err)
	}

	sess.Identities = buildIdentities(sess.SpeakerTags, submitted, p.log)
	sess.Advance(models.StageIdentified)
	return nil
}

// Analyze formats the transcript, requests summary and action items
// concurrently, and composes the email draft. A failing analysis kind
// degrades to an error-text placeholder for that kind only; the run
// still reaches the analyzed stage.
func (p *Pipeline) Analyze(ctx context.Context, sess *models.PipelineSession) error {
	const op = "Pipeline.Analyze"

	if err := sess.Require(models.StageIdentified); err != nil {
		return utils.E(utils.CodeConflict, op, "speaker identities not collected yet", err)
	}

	lines := transcript.Segment(sess.Words, sess.DisplayNames())
	sess.Transcript = transcript.Render(lines)

	sess.Summary = ""
	sess.ActionItems = ""

	var wg sync.WaitGroup
	results := make([]string, 2)
	kinds := []analysis.Kind{analysis.KindSummary, analysis.KindActionItems}
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind analysis.Kind) {
			defer wg.Done()
			results[i] = p.runAnalysis(ctx, sess.SessionID, kind, sess.Transcript)
		}(i, kind)
	}
	wg.Wait()

	sess.Summary = results[0]
	sess.ActionItems = results[1]
	sess.Email = analysis.ComposeEmail(sess.Summary, sess.ActionItems, sess.SpeakerTags, sess.Identities)
	sess.Advance(models.StageAnalyzed)

	p.archiveRun(ctx, sess)
	return nil
}

func (p *Pipeline) runAnalysis(ctx context.Context, sessionID string, kind analysis.Kind, transcriptText string) string {
	prompt, err := analysis.Prompt(kind, transcriptText)
	if err != nil {
		return analysis.ErrorText(kind, err)
	}
	out, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		p.log.WithError(err).WithFields(logrus.Fields{
			"session_id": sessionID,
			"kind":       string(kind),
		}).Error("analysis request failed")
		return analysis.ErrorText(kind, err)
	}
	return out
}

// archiveRun persists the finished analysis. Best-effort: archive
// trouble never fails a run the user already paid minutes for.
func (p *Pipeline) archiveRun(ctx context.Context, sess *models.PipelineSession) {
	if p.archive == nil {
		return
	}

	participants := make([]string, 0, len(sess.SpeakerTags))
	for _, tag := range sess.SpeakerTags {
		participants = append(participants, sess.Identities[tag].Name)
	}

	rec := &models.MeetingRecord{
		MeetingID:    uuid.NewString(),
		SourceObject: sess.AudioURI,
		Participants: participants,
		Transcript:   sess.Transcript,
		Summary:      sess.Summary,
		ActionItems:  sess.ActionItems,
		Email:        sess.Email,
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.archive.Insert(ctx, rec); err != nil {
		p.log.WithError(err).WithField("session_id", sess.SessionID).Error("failed to archive meeting record")
		return
	}
	p.log.WithFields(logrus.Fields{
		"session_id": sess.SessionID,
		"meeting_id": rec.MeetingID,
	}).Info("meeting archived")
}

// StageObjectName is exported for handlers staging uploads: the local
// scratch filename is namespaced per session to avoid collisions.
func StageObjectName(sessionID, filename string) string {
	return fmt.Sprintf("%s_%s", sessionID, path.Base(filename))
}
