package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type settingsDocument struct {
	GeneralIdleLimit *int       `bson:"general_idle_limit,omitempty"`
	NamazLimit       *int       `bson:"namaz_limit,omitempty"`
	CreatedAt        *time.Time `bson:"created_at,omitempty"`
}

// toEntity fills each missing limit from the defaults.
func (d settingsDocument) toEntity() settings.Settings {
	s := settings.Default()
	if d.GeneralIdleLimit != nil {
		s.GeneralIdleLimit = *d.GeneralIdleLimit
	}
	if d.NamazLimit != nil {
		s.NamazLimit = *d.NamazLimit
	}
	s.CreatedAt = d.CreatedAt
	return s
}

type settingsRepository struct {
	settings *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) settings.SettingsRepository {
	return &settingsRepository{settings: db.Collection(collectionSettings)}
}

func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var doc settingsDocument
	err := r.settings.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("find settings: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *settingsRepository) Save(ctx context.Context, s settings.Settings) error {
	if s.CreatedAt == nil {
		now := time.Now().UTC()
		s.CreatedAt = &now
	}
	doc := settingsDocument{
		GeneralIdleLimit: &s.GeneralIdleLimit,
		NamazLimit:       &s.NamazLimit,
		CreatedAt:        s.CreatedAt,
	}
	if _, err := r.settings.ReplaceOne(ctx, bson.M{}, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
