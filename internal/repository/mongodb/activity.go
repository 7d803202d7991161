package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type activityDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	User      string        `bson:"user"`
	Status    string        `bson:"status,omitempty"`
	Reason    string        `bson:"reason,omitempty"`
	Category  string        `bson:"category,omitempty"`
	Timestamp *time.Time    `bson:"timestamp,omitempty"`
	IdleStart *time.Time    `bson:"idle_start,omitempty"`
	IdleEnd   *time.Time    `bson:"idle_end,omitempty"`
}

func (d activityDocument) toEntity() activity.ActivityLog {
	return activity.ActivityLog{
		ID:        d.ID.Hex(),
		User:      d.User,
		Status:    d.Status,
		Reason:    d.Reason,
		Category:  d.Category,
		Timestamp: d.Timestamp,
		IdleStart: d.IdleStart,
		IdleEnd:   d.IdleEnd,
	}
}

func newActivityDocument(l activity.ActivityLog) activityDocument {
	oid, _ := parseObjectID(l.ID)
	return activityDocument{
		ID:        oid,
		User:      l.User,
		Status:    l.Status,
		Reason:    l.Reason,
		Category:  l.Category,
		Timestamp: l.Timestamp,
		IdleStart: l.IdleStart,
		IdleEnd:   l.IdleEnd,
	}
}

type activityRepository struct {
	logs *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) activity.ActivityRepository {
	return &activityRepository{logs: db.Collection(collectionActivities)}
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (activity.ActivityLog, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}

	var doc activityDocument
	err := r.logs.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("find activity log: %w", err)
	}
	return doc.toEntity(), nil
}

// updateDocument sets every mutable field and unsets the nil ones, so a
// cleared idle_end disappears from the document.
func updateDocument(l activity.ActivityLog) bson.M {
	set := bson.M{
		"status":   l.Status,
		"reason":   l.Reason,
		"category": l.Category,
	}
	unset := bson.M{}
	for field, value := range map[string]*time.Time{
		"timestamp":  l.Timestamp,
		"idle_start": l.IdleStart,
		"idle_end":   l.IdleEnd,
	} {
		if value == nil {
			unset[field] = ""
		} else {
			set[field] = *value
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func (r *activityRepository) Update(ctx context.Context, l activity.ActivityLog) (activity.ActivityLog, error) {
	oid, ok := parseObjectID(l.ID)
	if !ok {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}

	var doc activityDocument
	err := r.logs.FindOneAndUpdate(ctx, bson.M{"_id": oid}, updateDocument(l),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("update activity log: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return activity.ErrActivityNotFound
	}

	res, err := r.logs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete activity log: %w", err)
	}
	if res.DeletedCount == 0 {
		return activity.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]activity.ActivityLog, error) {
	if len(users) == 0 {
		return nil, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "user", Value: 1}, {Key: "idle_start", Value: 1}}).
		SetProjection(bson.M{"user": 1, "status": 1, "reason": 1, "category": 1, "timestamp": 1, "idle_start": 1, "idle_end": 1})

	cursor, err := r.logs.Find(ctx, overlapFilter(users, "idle_start", "idle_end", rng), opts)
	if err != nil {
		return nil, fmt.Errorf("find activity logs: %w", err)
	}

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity logs: %w", err)
	}

	logs := make([]activity.ActivityLog, len(docs))
	for i, d := range docs {
		logs[i] = d.toEntity()
	}
	return logs, nil
}

func (r *activityRepository) Create(ctx context.Context, l activity.ActivityLog) (activity.ActivityLog, error) {
	doc := newActivityDocument(l)
	res, err := r.logs.InsertOne(ctx, doc)
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("insert activity log: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)
	return doc.toEntity(), nil
}
