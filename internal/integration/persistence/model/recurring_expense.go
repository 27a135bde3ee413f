package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	NextDueDate time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Currency:    entity.Currency(m.Currency),
		Category:    entity.Category(m.Category),
		Frequency:   entity.Frequency(m.Frequency),
		StartDate:   entity.DateOnly(m.StartDate),
		NextDueDate: entity.DateOnly(m.NextDueDate),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain entity.
func RecurringExpenseFromEntity(expense *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Currency:    string(expense.Currency),
		Category:    string(expense.Category),
		Frequency:   string(expense.Frequency),
		StartDate:   expense.StartDate,
		NextDueDate: expense.NextDueDate,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
