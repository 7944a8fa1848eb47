package repository

import (
	"errors"
	"fmt"
	"storefront/internal/models"
	"storefront/internal/store"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRepository keeps one row per named collection. It is the gorm
// backend behind store.Store.
type CollectionRepository interface {
	Load(name string) ([]byte, error)
	Save(name string, payload []byte) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Load(name string) ([]byte, error) {
	var collection models.Collection
	err := r.db.First(&collection, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", name, err)
	}
	return []byte(collection.Payload), nil
}

func (r *collectionRepository) Save(name string, payload []byte) error {
	collection := models.Collection{
		Name:      name,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&collection).Error
}
