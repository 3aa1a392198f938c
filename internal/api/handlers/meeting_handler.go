package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mongorepo "github.com/coopnet/meeting-insights/internal/repositories/mongo"
	"github.com/coopnet/meeting-insights/internal/utils"
)

// MeetingHandler serves the read-only archive of completed analyses.
type MeetingHandler struct {
	meetings mongorepo.MeetingRepository
}

func NewMeetingHandler(meetings mongorepo.MeetingRepository) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

func (h *MeetingHandler) List(c *gin.Context) {
	limit := int64(50)
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	rows, err := h.meetings.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "MeetingHandler.List", "failed to list meetings", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": rows})
}

func (h *MeetingHandler) Get(c *gin.Context) {
	meetingID := c.Param("meeting_id")

	rec, err := h.meetings.GetByMeetingID(c.Request.Context(), meetingID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			writeError(c, utils.E(utils.CodeNotFound, "MeetingHandler.Get", "meeting not found", err))
			return
		}
		writeError(c, utils.E(utils.CodeInternal, "MeetingHandler.Get", "failed to get meeting", err))
		return
	}

	c.JSON(http.StatusOK, rec)
}
