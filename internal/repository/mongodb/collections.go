package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	collectionUsers      = "users"
	collectionActivities = "activity_logs"
	collectionAutoBreaks = "auto_break_logs"
	collectionSettings   = "settings"
)

// parseObjectID maps a malformed hex id to ok=false so callers can report
// not found instead of a driver error.
func parseObjectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return oid, true
}

// overlapFilter selects documents of users whose [startField, endField]
// interval intersects r. A null or missing end counts as still open.
func overlapFilter(users []string, startField, endField string, r daterange.Range) bson.M {
	return bson.M{
		"user":     bson.M{"$in": users},
		startField: bson.M{"$lte": r.To},
		"$or": bson.A{
			bson.M{endField: nil},
			bson.M{endField: bson.M{"$gte": r.From}},
		},
	}
}

var indexes = map[string][]mongo.IndexModel{
	collectionUsers: {
		{Keys: bson.D{{Key: "emp_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	},
	collectionActivities: {
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "idle_start", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "idle_end", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "idle_start", Value: 1}, {Key: "idle_end", Value: 1}}},
	},
	collectionAutoBreaks: {
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "break_start", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "break_end", Value: 1}}},
	},
}

// EnsureIndexes creates the query indexes of every collection. Existing
// indexes with the same keys are left in place.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	started := time.Now()
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	slog.Info("indexes synced", "duration", time.Since(started))
	return nil
}
