package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the meeting-archive indexes. Idempotent.
func EnsureMongoIndexes(client *mongo.Client, cfg *Config) error {
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	meetings := db.Collection("meetings")
	_, err := meetings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "meeting_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_meeting_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_created"),
		},
	})
	return err
}
