package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the settings row, seeding the default rate on first read.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.seedDefault(ctx)
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save replaces the settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Save(model.SettingsFromEntity(settings)).Error
}

func (r *settingsRepository) seedDefault(ctx context.Context) (*entity.Settings, error) {
	settings := &entity.Settings{
		USDToEGPRate: entity.DefaultUSDToEGPRate,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(model.SettingsFromEntity(settings)).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
