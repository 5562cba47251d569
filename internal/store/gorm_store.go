package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is the database row holding one serialized collection.
type Collection struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// Gorm persists collections in a single keyed table. Production runs it on
// Postgres; tests run the same code on the SQLite driver.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row Collection
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (g *Gorm) Put(ctx context.Context, key string, value []byte) error {
	row := Collection{Key: key, Value: value}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
