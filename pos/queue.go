package pos

import (
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restoflow/entity"
)

// OfflineOrder is one queued row in the terminal's local store: the
// full order payload, keyed by insertion order.
type OfflineOrder struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   []byte // JSON-encoded entity.Order
	Synced    bool
	CreatedAt time.Time
}

// OfflineQueue is the durable staging area for orders that could not
// reach the server. It survives process restarts; the submitter
// appends, only the sync agent drains.
type OfflineQueue struct {
	db *gorm.DB
}

// OpenQueue opens (or creates) the local queue database at path.
func OpenQueue(path string) (*OfflineQueue, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewOfflineQueue(db)
}

// NewOfflineQueue wraps an already opened database (tests use an
// in-memory one).
func NewOfflineQueue(db *gorm.DB) (*OfflineQueue, error) {
	if err := db.AutoMigrate(&OfflineOrder{}); err != nil {
		return nil, err
	}
	return &OfflineQueue{db: db}, nil
}

func (q *OfflineQueue) Append(o entity.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return q.db.Create(&OfflineOrder{Payload: payload}).Error
}

// ListAll returns the queued orders in insertion order.
func (q *OfflineQueue) ListAll() ([]entity.Order, error) {
	var rows []OfflineOrder
	if err := q.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		var o entity.Order
		if err := json.Unmarshal(row.Payload, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ClearAll empties the queue after a full replay pass.
func (q *OfflineQueue) ClearAll() error {
	return q.db.Where("1 = 1").Delete(&OfflineOrder{}).Error
}

func (q *OfflineQueue) Len() (int64, error) {
	var count int64
	err := q.db.Model(&OfflineOrder{}).Count(&count).Error
	return count, err
}
