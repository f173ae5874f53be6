package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

// GetReportInput represents the input for the reporting rollups.
// Both bounds are optional.
type GetReportInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetReportUseCase builds the reporting rollups for the owner.
type GetReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetReportUseCase {
	return &GetReportUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute retrieves the owner's transactions in range and rolls them up.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*Report, error) {
	if (valueobject.DateRange{Start: input.StartDate, End: input.EndDate}).IsInverted() {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Order:     adapter.SortByDateAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for report: %w", err)
	}

	report := BuildReport(transactions, uc.clock.Now())
	return &report, nil
}
