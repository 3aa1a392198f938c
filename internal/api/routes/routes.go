package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coopnet/meeting-insights/internal/api/handlers"
	"github.com/coopnet/meeting-insights/internal/api/middleware"
)

type Deps struct {
	Pipeline *handlers.PipelineHandler
	Meetings *handlers.MeetingHandler
	Cookies  *middleware.SessionCookies
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Entry point: no session yet.
	r.POST("/upload", d.Pipeline.Upload)

	// Mid-pipeline routes need the signed session cookie.
	sess := r.Group("/")
	sess.Use(d.Cookies.Require())

	sess.GET("/identify", d.Pipeline.Identify)
	sess.POST("/analyze", d.Pipeline.Analyze)
	sess.GET("/results", d.Pipeline.Results)

	// Archive of completed analyses.
	r.GET("/meetings", d.Meetings.List)
	r.GET("/meetings/:meeting_id", d.Meetings.Get)
}
