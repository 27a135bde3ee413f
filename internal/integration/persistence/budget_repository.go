package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// ReplaceAll replaces the whole budget set in one transaction.
func (r *budgetRepository) ReplaceAll(ctx context.Context, budgets []*entity.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.BudgetModel{}).Error; err != nil {
			return err
		}
		if len(budgets) == 0 {
			return nil
		}

		models := make([]*model.BudgetModel, len(budgets))
		for i, b := range budgets {
			models[i] = model.BudgetFromEntity(b)
		}
		return tx.Create(models).Error
	})
}

// FindAll retrieves every budget, in expense-category definition order.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	if err := r.db.WithContext(ctx).Find(&budgetModels).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[entity.Category]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budget := budgetModels[i].ToEntity()
		byCategory[budget.Category] = budget
	}

	budgets := make([]*entity.Budget, 0, len(byCategory))
	for _, category := range entity.ExpenseCategories() {
		if budget, ok := byCategory[category]; ok {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}
