package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type entry struct {
	Key       string         `gorm:"primaryKey;type:text"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (entry) TableName() string {
	return "kv_entries"
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entry{})
}

func (s *gormStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var e entry
	if err := s.db.WithContext(ctx).First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, decode(key, e.Value, dest)
}

func (s *gormStore) Put(ctx context.Context, key string, value any) error {
	raw, err := encode(key, value)
	if err != nil {
		return err
	}
	e := entry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&entry{}, "key = ?", key).Error
}
