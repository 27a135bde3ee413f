package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/application/adapter"
	"github.com/khazna-app/backend/internal/domain/entity"
)

// ListTransactionsInput carries the optional listing filters.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithProject
}

// ListTransactionsUseCase handles transaction listing with project name
// resolution.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	projectRepo     adapter.ProjectRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	projectRepo adapter.ProjectRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
	}
}

// Execute retrieves transactions matching the filter, newest first. A
// transaction whose project was deleted keeps its row and gets a display
// placeholder instead of a name.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	names := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	result := make([]*entity.TransactionWithProject, 0, len(transactions))
	for _, tx := range transactions {
		item := &entity.TransactionWithProject{Transaction: tx}
		if tx.ProjectID != nil {
			if name, ok := names[*tx.ProjectID]; ok {
				item.ProjectName = name
			} else {
				item.ProjectName = entity.DeletedProjectPlaceholder
			}
		}
		result = append(result, item)
	}

	return &ListTransactionsOutput{Transactions: result}, nil
}
