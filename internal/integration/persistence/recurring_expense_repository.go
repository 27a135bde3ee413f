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

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create creates a new recurring expense in the database.
func (r *recurringExpenseRepository) Create(ctx context.Context, expense *entity.RecurringExpense) error {
	return r.db.WithContext(ctx).Create(model.RecurringExpenseFromEntity(expense)).Error
}

// FindByID retrieves a recurring expense by its ID.
func (r *recurringExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	var expenseModel model.RecurringExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves every recurring expense, soonest due first.
func (r *recurringExpenseRepository) FindAll(ctx context.Context) ([]*entity.RecurringExpense, error) {
	var expenseModels []model.RecurringExpenseModel
	if err := r.db.WithContext(ctx).Order("next_due_date ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.RecurringExpense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing recurring expense in the database.
func (r *recurringExpenseRepository) Update(ctx context.Context, expense *entity.RecurringExpense) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").
		Updates(model.RecurringExpenseFromEntity(expense))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringExpenseNotFound
	}
	return nil
}

// Delete removes a recurring expense from the database.
func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecurringExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringExpenseNotFound
	}
	return nil
}
