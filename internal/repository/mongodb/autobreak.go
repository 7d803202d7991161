package mongodb

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type autoBreakDocument struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	User            string        `bson:"user"`
	Status          string        `bson:"status,omitempty"`
	BreakStart      *time.Time    `bson:"break_start,omitempty"`
	BreakEnd        *time.Time    `bson:"break_end,omitempty"`
	DurationMinutes *float64      `bson:"duration_minutes,omitempty"`
	ShiftDate       string        `bson:"shiftDate,omitempty"`
	ShiftLabel      string        `bson:"shiftLabel,omitempty"`
	Timestamp       *time.Time    `bson:"timestamp,omitempty"`
}

// duration_minutes is written by the agent as a plain number and may carry a
// fraction; it is rounded to whole minutes.
func (d autoBreakDocument) toEntity() autobreak.AutoBreak {
	var minutes *int
	if d.DurationMinutes != nil {
		m := int(math.Round(*d.DurationMinutes))
		minutes = &m
	}
	return autobreak.AutoBreak{
		ID:              d.ID.Hex(),
		User:            d.User,
		Status:          d.Status,
		BreakStart:      d.BreakStart,
		BreakEnd:        d.BreakEnd,
		DurationMinutes: minutes,
		ShiftDate:       d.ShiftDate,
		ShiftLabel:      d.ShiftLabel,
		Timestamp:       d.Timestamp,
	}
}

type autoBreakRepository struct {
	breaks *mongo.Collection
}

func NewAutoBreakRepository(db *mongo.Database) autobreak.AutoBreakRepository {
	return &autoBreakRepository{breaks: db.Collection(collectionAutoBreaks)}
}

func (r *autoBreakRepository) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]autobreak.AutoBreak, error) {
	if len(users) == 0 {
		return nil, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "user", Value: 1}, {Key: "break_start", Value: 1}}).
		SetProjection(bson.M{"user": 1, "status": 1, "break_start": 1, "break_end": 1, "duration_minutes": 1, "shiftDate": 1, "shiftLabel": 1})

	cursor, err := r.breaks.Find(ctx, overlapFilter(users, "break_start", "break_end", rng), opts)
	if err != nil {
		return nil, fmt.Errorf("find auto breaks: %w", err)
	}

	var docs []autoBreakDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auto breaks: %w", err)
	}

	breaks := make([]autobreak.AutoBreak, len(docs))
	for i, d := range docs {
		breaks[i] = d.toEntity()
	}
	return breaks, nil
}

func (r *autoBreakRepository) Create(ctx context.Context, b autobreak.AutoBreak) (autobreak.AutoBreak, error) {
	if b.Status == "" {
		b.Status = autobreak.StatusAutoBreak
	}
	if b.Timestamp == nil {
		now := time.Now().UTC()
		b.Timestamp = &now
	}

	var minutes *float64
	if b.DurationMinutes != nil {
		m := float64(*b.DurationMinutes)
		minutes = &m
	}
	doc := autoBreakDocument{
		User:            b.User,
		Status:          b.Status,
		BreakStart:      b.BreakStart,
		BreakEnd:        b.BreakEnd,
		DurationMinutes: minutes,
		ShiftDate:       b.ShiftDate,
		ShiftLabel:      b.ShiftLabel,
		Timestamp:       b.Timestamp,
	}
	res, err := r.breaks.InsertOne(ctx, doc)
	if err != nil {
		return autobreak.AutoBreak{}, fmt.Errorf("insert auto break: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)
	return doc.toEntity(), nil
}
