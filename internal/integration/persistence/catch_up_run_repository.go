package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

// catchUpRunRepository implements the adapter.CatchUpRunRepository interface.
type catchUpRunRepository struct {
	db *gorm.DB
}

// NewCatchUpRunRepository creates a new catch-up run repository instance.
func NewCatchUpRunRepository(db *gorm.DB) adapter.CatchUpRunRepository {
	return &catchUpRunRepository{
		db: db,
	}
}

// Create writes one audit row for a completed catch-up pass.
func (r *catchUpRunRepository) Create(ctx context.Context, run *entity.CatchUpRun) error {
	return r.db.WithContext(ctx).Create(model.CatchUpRunFromEntity(run)).Error
}
