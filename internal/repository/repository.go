// Package repository opens the storage backend chosen by STORE_DRIVER.
package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/config"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/memory"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/mongodb"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/postgresql"
)

type Repositories struct {
	Employees  employee.EmployeeRepository
	Activities activity.ActivityRepository
	Breaks     autobreak.AutoBreakRepository
	Settings   settings.SettingsRepository

	closeFn func()
}

// Close releases the backend connection.
func (r *Repositories) Close() {
	if r.closeFn != nil {
		r.closeFn()
	}
}

func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg)
	case config.StoreMemory:
		slog.Warn("using in-memory store, data is lost on restart")
		return NewMemory(memory.NewStore()), nil
	default:
		return openMongo(ctx, cfg)
	}
}

func NewMemory(store *memory.Store) *Repositories {
	return &Repositories{
		Employees:  memory.NewEmployeeRepository(store),
		Activities: memory.NewActivityRepository(store),
		Breaks:     memory.NewAutoBreakRepository(store),
		Settings:   memory.NewSettingsRepository(store),
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	db, err := database.NewPostgreSQLDB(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Repositories{
		Employees:  postgresql.NewEmployeeRepository(db),
		Activities: postgresql.NewActivityRepository(db),
		Breaks:     postgresql.NewAutoBreakRepository(db),
		Settings:   postgresql.NewSettingsRepository(db),
		closeFn:    db.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	conn, err := database.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.MaxPoolSize)
	if err != nil {
		return nil, err
	}

	db := conn.Database()
	if cfg.Mongo.SyncIndexes {
		// A failed sync is logged and the server still starts.
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			slog.Error("index sync failed", "error", err)
		}
	}

	return &Repositories{
		Employees:  mongodb.NewEmployeeRepository(db),
		Activities: mongodb.NewActivityRepository(db),
		Breaks:     mongodb.NewAutoBreakRepository(db),
		Settings:   mongodb.NewSettingsRepository(db),
		closeFn: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := conn.Close(ctx); err != nil {
				slog.Error("mongo disconnect failed", "error", err)
			}
		},
	}, nil
}
