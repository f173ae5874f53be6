package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
)

// GetStatsUseCase computes the owner's all-time income, expense and balance.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(transactionRepo adapter.TransactionRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the stats for userID.
func (uc *GetStatsUseCase) Execute(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for stats: %w", err)
	}

	stats := ComputeStats(transactions)
	return &stats, nil
}
