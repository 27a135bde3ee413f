// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Type         string           `gorm:"type:varchar(10);not null;index"`
	Amount       decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Currency     string           `gorm:"type:varchar(3);not null"`
	Date         time.Time        `gorm:"type:date;not null;index"`
	Description  string           `gorm:"type:varchar(500);not null"`
	Category     string           `gorm:"type:varchar(100);not null;index"`
	ExchangeRate *decimal.Decimal `gorm:"type:decimal(12,4)"`
	ProjectID    *uuid.UUID       `gorm:"type:uuid;index"`
	Recipient    string           `gorm:"type:varchar(255)"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		Currency:     entity.Currency(m.Currency),
		Date:         entity.DateOnly(m.Date),
		Description:  m.Description,
		Category:     entity.Category(m.Category),
		ExchangeRate: m.ExchangeRate,
		ProjectID:    m.ProjectID,
		Recipient:    m.Recipient,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		Type:         string(transaction.Type),
		Amount:       transaction.Amount,
		Currency:     string(transaction.Currency),
		Date:         transaction.Date,
		Description:  transaction.Description,
		Category:     string(transaction.Category),
		ExchangeRate: transaction.ExchangeRate,
		ProjectID:    transaction.ProjectID,
		Recipient:    transaction.Recipient,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
