package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=REVENUE EXPENSE"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency" binding:"required,oneof=EGP USD"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Category    string  `json:"category" binding:"required"`
	ProjectID   *string `json:"project_id,omitempty"`
	Recipient   string  `json:"recipient,omitempty" binding:"omitempty,max=255"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// An explicit exchange_rate pins the snapshot instead of re-stamping it.
type UpdateTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=REVENUE EXPENSE"`
	Amount       string  `json:"amount" binding:"required"`
	Currency     string  `json:"currency" binding:"required,oneof=EGP USD"`
	Date         string  `json:"date" binding:"required"`
	Description  string  `json:"description" binding:"required,min=1,max=500"`
	Category     string  `json:"category" binding:"required"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	Recipient    string  `json:"recipient,omitempty" binding:"omitempty,max=255"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	Currency     string  `json:"currency"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	ProjectName  string  `json:"project_name,omitempty"`
	Recipient    string  `json:"recipient,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// TransactionListResponse represents the transaction list response body.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionToResponse converts a transaction entity to its response shape.
func TransactionToResponse(tx *entity.Transaction, projectName string) TransactionResponse {
	response := TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Currency:    string(tx.Currency),
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		Category:    string(tx.Category),
		ProjectName: projectName,
		Recipient:   tx.Recipient,
		CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   tx.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.ExchangeRate != nil {
		rate := tx.ExchangeRate.String()
		response.ExchangeRate = &rate
	}
	if tx.ProjectID != nil {
		id := tx.ProjectID.String()
		response.ProjectID = &id
	}
	return response
}
