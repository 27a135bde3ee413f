package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

// disbursementRepository implements the adapter.DisbursementRepository interface.
type disbursementRepository struct {
	db *gorm.DB
}

// NewDisbursementRepository creates a new disbursement repository instance.
func NewDisbursementRepository(db *gorm.DB) adapter.DisbursementRepository {
	return &disbursementRepository{
		db: db,
	}
}

// CreateSheet creates a new, empty disbursement sheet.
func (r *disbursementRepository) CreateSheet(ctx context.Context, sheet *entity.DisbursementSheet) error {
	return r.db.WithContext(ctx).Create(model.DisbursementSheetFromEntity(sheet)).Error
}

// FindSheetByID retrieves a sheet with its records, insertion-ordered.
func (r *disbursementRepository) FindSheetByID(ctx context.Context, id uuid.UUID) (*entity.DisbursementSheet, error) {
	var sheetModel model.DisbursementSheetModel
	result := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&sheetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSheetNotFound
		}
		return nil, result.Error
	}
	return sheetModel.ToEntity(), nil
}

// FindAllSheets retrieves every sheet with its records.
func (r *disbursementRepository) FindAllSheets(ctx context.Context) ([]*entity.DisbursementSheet, error) {
	var sheetModels []model.DisbursementSheetModel
	result := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&sheetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sheets := make([]*entity.DisbursementSheet, len(sheetModels))
	for i, sm := range sheetModels {
		sheets[i] = sm.ToEntity()
	}
	return sheets, nil
}

// AddRecord appends a beneficiary record to a sheet.
func (r *disbursementRepository) AddRecord(ctx context.Context, record *entity.DisbursementRecord) error {
	return r.db.WithContext(ctx).Create(model.DisbursementRecordFromEntity(record)).Error
}

// DeleteSheet removes a sheet and its records.
func (r *disbursementRepository) DeleteSheet(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sheet_id = ?", id).Delete(&model.DisbursementRecordModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.DisbursementSheetModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSheetNotFound
		}
		return nil
	})
}
