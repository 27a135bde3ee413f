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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Currency    entity.Currency
	Date        time.Time
	Description string
	Category    entity.Category
	ProjectID   *uuid.UUID
	Recipient   string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	projectRepo     adapter.ProjectRepository
	settingsRepo    adapter.SettingsRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	projectRepo adapter.ProjectRepository,
	settingsRepo adapter.SettingsRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute performs the transaction creation. An EGP expense is stamped with
// the current global rate so later rate changes do not rewrite its reported
// value; revenue and USD transactions never carry a snapshot.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
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

	tx := entity.NewTransaction(input.Type, input.Amount, input.Currency, input.Date, input.Description, input.Category)
	tx.ProjectID = input.ProjectID
	tx.Recipient = input.Recipient
	currency.StampForCreate(tx, settings.USDToEGPRate)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
