package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/coopnet/meeting-insights/config"
	"github.com/coopnet/meeting-insights/internal/api/handlers"
	"github.com/coopnet/meeting-insights/internal/api/middleware"
	"github.com/coopnet/meeting-insights/internal/api/routes"
	"github.com/coopnet/meeting-insights/internal/logger"
	"github.com/coopnet/meeting-insights/internal/pipeline"
	"github.com/coopnet/meeting-insights/internal/providers/llm"
	"github.com/coopnet/meeting-insights/internal/providers/stt"
	mongorepo "github.com/coopnet/meeting-insights/internal/repositories/mongo"
	"github.com/coopnet/meeting-insights/internal/sessionstore"
	"github.com/coopnet/meeting-insights/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New()
	ctx := context.Background()

	// Backing stores
	rdb, err := config.NewRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	mongoClient, err := config.NewMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(mongoClient, cfg); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Cloud collaborators
	uploader, err := storage.NewGCSUploader(ctx, cfg.GCSBucket, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("GCS init error: %v", err)
	}
	defer uploader.Close()

	recognizer, err := stt.NewGoogleSpeech(ctx, cfg.MinSpeakers, cfg.MaxSpeakers, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Speech init error: %v", err)
	}
	defer recognizer.Close()

	gemini, err := llm.NewVertexGemini(ctx, cfg.ProjectID, cfg.Location, cfg.GeminiModel, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Vertex init error: %v", err)
	}
	defer gemini.Close()

	// Core
	meetings := mongorepo.NewMeetingRepo(mongoClient.Database(cfg.MongoDB))
	store := sessionstore.NewRedisStore(rdb, cfg.SessionTTL)
	pipe := pipeline.New(uploader, recognizer, gemini, meetings, l, cfg.TranscribeTimeout)

	cookies := middleware.NewSessionCookies(cfg.SessionSecret, cfg.SessionTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Pipeline: handlers.NewPipelineHandler(pipe, store, cookies, cfg.UploadDir, cfg.MaxUploadBytes),
		Meetings: handlers.NewMeetingHandler(meetings),
		Cookies:  cookies,
	})

	l.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
