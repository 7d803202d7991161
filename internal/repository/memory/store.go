package memory

import (
	"sync"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/google/uuid"
)

// Store keeps every collection in process memory. It backs STORE_DRIVER=memory
// and the service tests.
type Store struct {
	mu         sync.RWMutex
	employees  []employee.Employee
	activities []activity.ActivityLog
	breaks     []autobreak.AutoBreak
	settings   *settings.Settings
}

func NewStore() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}
