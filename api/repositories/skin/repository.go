package skinrepo

import (
	"context"
	"errors"
	"skinmapping/pkg/database/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the language or the skin has no row.
var ErrNotFound = errors.New("not found")

// Public Interface.
type SkinRepository interface {
	GetMapping(ctx context.Context, language string) (map[string]string, error)
	GetSkinName(ctx context.Context, language string, skinID string) (string, error)
}

// Skin repository structure.
type skinRepository struct {
	db *gorm.DB
}

// Create a skin repository.
func NewSkinRepository(db *gorm.DB) SkinRepository {
	return &skinRepository{db: db}
}

// GetMapping returns every skin name of the language.
// A language without rows is ErrNotFound.
func (r *skinRepository) GetMapping(ctx context.Context, language string) (map[string]string, error) {
	var rows []models.SkinName
	if err := r.db.WithContext(ctx).Where("language = ?", language).Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		mapping[row.SkinID] = row.Name
	}
	return mapping, nil
}

// GetSkinName returns the name of a single skin.
func (r *skinRepository) GetSkinName(ctx context.Context, language string, skinID string) (string, error) {
	var row models.SkinName
	err := r.db.WithContext(ctx).
		Where("language = ? AND skin_id = ?", language, skinID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return row.Name, nil
}
