package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/application/usecase/currency"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// ExchangeRate, when set, pins the snapshot rate of an EGP expense instead of
// re-stamping it with the current global rate.
type UpdateTransactionInput struct {
	ID           uuid.UUID
	Type         entity.TransactionType
	Amount       decimal.Decimal
	Currency     entity.Currency
	Date         time.Time
	Description  string
	Category     entity.Category
	ExchangeRate *decimal.Decimal
	ProjectID    *uuid.UUID
	Recipient    string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	projectRepo     adapter.ProjectRepository
	settingsRepo    adapter.SettingsRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	projectRepo adapter.ProjectRepository,
	settingsRepo adapter.SettingsRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute performs the transaction update and re-applies the rate-snapshot
// policy to the edited row.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if err := validateTransactionInput(input.Type, input.Amount, input.Currency, input.Date, input.Description, input.Category); err != nil {
		return nil, err
	}

	if input.ProjectID != nil {
		if _, err := uc.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
			if errors.Is(err, domainerror.ErrProjectNotFound) {
				return nil, domainerror.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to find project: %w", err)
		}
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	tx.Type = input.Type
	tx.Amount = input.Amount
	tx.Currency = input.Currency
	tx.Date = entity.DateOnly(input.Date)
	tx.Description = input.Description
	tx.Category = input.Category
	tx.ProjectID = input.ProjectID
	tx.Recipient = input.Recipient
	tx.UpdatedAt = time.Now().UTC()
	currency.StampForUpdate(tx, input.ExchangeRate, settings.USDToEGPRate)

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
