package repositories

import (
	"context"
	"fmt"
	"skinmapping/pkg/database/models"
	"skinmapping/pkg/models/skin"
	"sort"

	"gorm.io/gorm"
)

const insertBatchSize = 1000

// SkinRepository stores the mappings in the skin_names table.
type SkinRepository struct {
	db *gorm.DB
}

// Create a skin repository.
func NewSkinRepository(db *gorm.DB) *SkinRepository {
	return &SkinRepository{db: db}
}

func (r *SkinRepository) Name() string {
	return "postgres"
}

// Publish replaces every row of the language in one transaction.
func (r *SkinRepository) Publish(ctx context.Context, language string, mapping skin.Mapping) error {
	ids := make([]string, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]models.SkinName, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.SkinName{Language: language, SkinID: id, Name: mapping[id]})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("language = ?", language).Delete(&models.SkinName{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store the %s mapping: %w", language, err)
	}
	return nil
}
