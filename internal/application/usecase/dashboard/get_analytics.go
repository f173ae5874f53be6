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

// GetAnalyticsInput represents the input for the analytics view.
type GetAnalyticsInput struct {
	UserID    uuid.UUID
	Period    valueobject.AnalyticsPeriod
	StartDate *time.Time
	EndDate   *time.Time
}

// GetAnalyticsUseCase builds the category breakdown and daily series for a window.
type GetAnalyticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute resolves the window and aggregates the owner's transactions inside it.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*Analytics, error) {
	window, err := ResolveAnalyticsWindow(input.Period, input.StartDate, input.EndDate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: window.Start,
		EndDate:   window.End,
		Order:     adapter.SortByDateAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for analytics: %w", err)
	}

	analytics := BuildAnalytics(transactions)
	return &analytics, nil
}

// ResolveAnalyticsWindow validates the period token and returns the range to query.
func ResolveAnalyticsWindow(
	period valueobject.AnalyticsPeriod,
	startDate, endDate *time.Time,
	now time.Time,
) (valueobject.DateRange, error) {
	if !period.IsValid() {
		return valueobject.DateRange{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			"Invalid period. Use weekly, monthly, yearly or custom",
			domainerror.ErrInvalidPeriod,
		)
	}

	window := valueobject.ResolveWindow(period, valueobject.DateRange{Start: startDate, End: endDate}, now)
	if window.IsInverted() {
		return valueobject.DateRange{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidDateRange,
		)
	}
	return window, nil
}
