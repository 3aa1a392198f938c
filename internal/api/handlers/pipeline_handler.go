package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopnet/meeting-insights/internal/api/middleware"
	"github.com/coopnet/meeting-insights/internal/models"
	"github.com/coopnet/meeting-insights/internal/pipeline"
	"github.com/coopnet/meeting-insights/internal/sessionstore"
	"github.com/coopnet/meeting-insights/internal/utils"
)

// PipelineHandler drives a run through upload → transcribe →
// identify → analyze over three requests, with the session store
// carrying state between them.
type PipelineHandler struct {
	pipe      *pipeline.Pipeline
	store     sessionstore.Store
	cookies   *middleware.SessionCookies
	uploadDir string
	maxBytes  int64
}

func NewPipelineHandler(pipe *pipeline.Pipeline, store sessionstore.Store,
	cookies *middleware.SessionCookies, uploadDir string, maxBytes int64) *PipelineHandler {
	return &PipelineHandler{
		pipe:      pipe,
		store:     store,
		cookies:   cookies,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
	}
}

type UploadResponse struct {
	SessionID   string       `json:"session_id"`
	Stage       models.Stage `json:"stage"`
	SpeakerTags []int        `json:"speaker_tags"`
}

// Upload accepts the meeting audio, stages it locally, runs the upload
// and transcription transitions, and issues the session cookie. The
// request body is capped; oversized uploads fail the multipart parse.
func (h *PipelineHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PipelineHandler.Upload", "a non-empty audio file is required", err))
		return
	}
	if fh.Filename == "" || fh.Size == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PipelineHandler.Upload", "a non-empty audio file is required", nil))
		return
	}

	sess := models.NewPipelineSession(uuid.NewString())

	staged := filepath.Join(h.uploadDir, pipeline.StageObjectName(sess.SessionID, fh.Filename))
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler.Upload", "failed to stage upload", err))
		return
	}
	if err := c.SaveUploadedFile(fh, staged); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler.Upload", "failed to stage upload", err))
		return
	}

	if err := h.pipe.Upload(c.Request.Context(), sess, staged, fh.Filename); err != nil {
		writeError(c, err)
		return
	}
	if err := h.pipe.Transcribe(c.Request.Context(), sess); err != nil {
		// Failed run: nothing worth keeping, the caller starts over.
		writeError(c, err)
		return
	}

	if err := h.store.Put(c.Request.Context(), sess); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler.Upload", "failed to persist session", err))
		return
	}
	if err := h.cookies.Issue(c, sess.SessionID); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler.Upload", "failed to issue session cookie", err))
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		SessionID:   sess.SessionID,
		Stage:       sess.Stage,
		SpeakerTags: sess.SpeakerTags,
	})
}

type IdentifyView struct {
	SessionID   string       `json:"session_id"`
	Stage       models.Stage `json:"stage"`
	SpeakerTags []int        `json:"speaker_tags"`
	// Field naming convention for the analyze form, per tag.
	NameFields  map[int]string `json:"name_fields"`
	EmailFields map[int]string `json:"email_fields"`
}

// Identify returns the speaker tags awaiting a name/email, plus the
// form field names the analyze endpoint expects.
func (h *PipelineHandler) Identify(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.Require(models.StageTranscribed); err != nil {
		writeError(c, utils.E(utils.CodeConflict, "PipelineHandler.Identify", "no transcription awaiting identification", err))
		return
	}

	nameFields := make(map[int]string, len(sess.SpeakerTags))
	emailFields := make(map[int]string, len(sess.SpeakerTags))
	for _, tag := range sess.SpeakerTags {
		nameFields[tag] = fmt.Sprintf("name_speaker_%d", tag)
		emailFields[tag] = fmt.Sprintf("email_speaker_%d", tag)
	}

	c.JSON(http.StatusOK, IdentifyView{
		SessionID:   sess.SessionID,
		Stage:       sess.Stage,
		SpeakerTags: sess.SpeakerTags,
		NameFields:  nameFields,
		EmailFields: emailFields,
	})
}

type ResultsView struct {
	SessionID   string            `json:"session_id"`
	Stage       models.Stage      `json:"stage"`
	Transcript  string            `json:"transcript"`
	Summary     string            `json:"summary"`
	ActionItems string            `json:"action_items"`
	Email       models.EmailDraft `json:"email"`
}

// Analyze collects the per-tag name/email form fields, runs the
// identify and analyze transitions, and returns the results view.
func (h *PipelineHandler) Analyze(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}

	submitted := make(map[int]pipeline.IdentitySubmission, len(sess.SpeakerTags))
	for _, tag := range sess.SpeakerTags {
		submitted[tag] = pipeline.IdentitySubmission{
			Name:  c.PostForm(fmt.Sprintf("name_speaker_%d", tag)),
			Email: c.PostForm(fmt.Sprintf("email_speaker_%d", tag)),
		}
	}

	if err := h.pipe.Identify(sess, submitted); err != nil {
		writeError(c, err)
		return
	}
	if err := h.pipe.Analyze(c.Request.Context(), sess); err != nil {
		writeError(c, err)
		return
	}

	if err := h.store.Put(c.Request.Context(), sess); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler.Analyze", "failed to persist session", err))
		return
	}

	c.JSON(http.StatusOK, resultsView(sess))
}

// Results re-reads a finished run.
func (h *PipelineHandler) Results(c *gin.Context) {
	sess, ok := h.loadSession(c)
	if !ok {
		return
	}
	if err := sess.Require(models.StageAnalyzed); err != nil {
		writeError(c, utils.E(utils.CodeConflict, "PipelineHandler.Results", "analysis has not completed", err))
		return
	}
	c.JSON(http.StatusOK, resultsView(sess))
}

func resultsView(sess *models.PipelineSession) ResultsView {
	return ResultsView{
		SessionID:   sess.SessionID,
		Stage:       sess.Stage,
		Transcript:  sess.Transcript,
		Summary:     sess.Summary,
		ActionItems: sess.ActionItems,
		Email:       sess.Email,
	}
}

func (h *PipelineHandler) loadSession(c *gin.Context) (*models.PipelineSession, bool) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return nil, false
	}

	sess, hit, err := h.store.Get(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PipelineHandler", "failed to load session", err))
		return nil, false
	}
	if !hit {
		h.cookies.Clear(c)
		writeError(c, utils.E(utils.CodeNotFound, "PipelineHandler", "session not found or expired", nil))
		return nil, false
	}
	return sess, true
}
