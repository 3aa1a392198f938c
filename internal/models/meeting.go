package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetingRecord is the durable archive entry written after a pipeline
// run reaches the analyzed stage.
type MeetingRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingID string             `bson:"meeting_id" json:"meeting_id"` // uuid v4

	SourceObject string   `bson:"source_object" json:"source_object"` // gs:// locator
	Participants []string `bson:"participants" json:"participants"`   // display names, tag order

	Transcript  string     `bson:"transcript" json:"transcript"`
	Summary     string     `bson:"summary" json:"summary"`
	ActionItems string     `bson:"action_items" json:"action_items"`
	Email       EmailDraft `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
