package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coopnet/meeting-insights/internal/models"
	"github.com/coopnet/meeting-insights/internal/utils"
)

type MeetingRepository interface {
	Insert(ctx context.Context, m *models.MeetingRecord) error
	GetByMeetingID(ctx context.Context, meetingID string) (*models.MeetingRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]models.MeetingRecord, error)
}

type meetingRepo struct {
	col *mongo.Collection
}

func NewMeetingRepo(db *mongo.Database) MeetingRepository {
	return &meetingRepo{col: db.Collection("meetings")}
}

func (r *meetingRepo) Insert(ctx context.Context, m *models.MeetingRecord) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *meetingRepo) GetByMeetingID(ctx context.Context, meetingID string) (*models.MeetingRecord, error) {
	var m models.MeetingRecord
	err := r.col.FindOne(ctx, bson.M{"meeting_id": meetingID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}

func (r *meetingRepo) ListRecent(ctx context.Context, limit int64) ([]models.MeetingRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MeetingRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
