package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

// windowRepo only implements the range filter the dashboard relies on.
type windowRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
	lastFilter   adapter.TransactionFilter
}

func (r *windowRepo) FindByFilter(_ context.Context, f adapter.TransactionFilter) ([]*entity.Transaction, error) {
	r.lastFilter = f
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID != f.UserID {
			continue
		}
		if f.StartDate != nil && t.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && t.Date.After(*f.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func TestBuildAnalytics(t *testing.T) {
	d1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 2, 18, 30, 0, 0, time.UTC)

	analytics := BuildAnalytics([]*entity.Transaction{
		txn(entity.TransactionTypeExpense, "40", entity.CategoryFuel, d1),
		txn(entity.TransactionTypeIncome, "1000", entity.CategorySalary, d1),
		txn(entity.TransactionTypeExpense, "25", entity.CategoryFood, d1.Add(time.Hour)),
		txn(entity.TransactionTypeExpense, "10", entity.CategoryFuel, d2),
	})

	require.Len(t, analytics.CategoryBreakdown, 2)
	assert.Equal(t, "Fuel", analytics.CategoryBreakdown[0].Name)
	assert.True(t, analytics.CategoryBreakdown[0].Value.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Food", analytics.CategoryBreakdown[1].Name)

	require.Len(t, analytics.IncomeExpenseData, 2)
	assert.Equal(t, "2025-03-01", analytics.IncomeExpenseData[0].Date)
	assert.True(t, analytics.IncomeExpenseData[0].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, analytics.IncomeExpenseData[0].Expense.Equal(decimal.NewFromInt(65)))
	assert.Equal(t, "2025-03-02", analytics.IncomeExpenseData[1].Date)
	assert.True(t, analytics.IncomeExpenseData[1].Income.IsZero())
}

func TestBuildAnalytics_Empty(t *testing.T) {
	analytics := BuildAnalytics(nil)

	assert.Empty(t, analytics.CategoryBreakdown)
	assert.Empty(t, analytics.IncomeExpenseData)
}

func TestGetAnalytics_WeeklyWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	old := txn(entity.TransactionTypeExpense, "99", entity.CategoryShopping, now.AddDate(0, 0, -10))
	recent := txn(entity.TransactionTypeExpense, "15", entity.CategoryFood, now.AddDate(0, 0, -2))
	old.UserID, recent.UserID = userID, userID
	repo := &windowRepo{transactions: []*entity.Transaction{old, recent}}

	uc := NewGetAnalyticsUseCase(repo, func() time.Time { return now })
	out, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: userID, Period: valueobject.AnalyticsPeriodWeekly})

	require.NoError(t, err)
	require.Len(t, out.CategoryBreakdown, 1)
	assert.Equal(t, "Food", out.CategoryBreakdown[0].Name)
	assert.Equal(t, adapter.SortByDateAsc, repo.lastFilter.Order)
}

func TestGetAnalytics_Errors(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc := NewGetAnalyticsUseCase(&windowRepo{}, func() time.Time { return now })

	_, err := uc.Execute(context.Background(), GetAnalyticsInput{Period: "daily"})
	var anlErr *domainerror.AnalyticsError
	require.True(t, errors.As(err, &anlErr))
	assert.Equal(t, domainerror.ErrCodeInvalidPeriod, anlErr.Code)

	start, end := now, now.AddDate(0, 0, -1)
	_, err = uc.Execute(context.Background(), GetAnalyticsInput{Period: valueobject.AnalyticsPeriodCustom, StartDate: &start, EndDate: &end})
	require.True(t, errors.As(err, &anlErr))
	assert.Equal(t, domainerror.ErrCodeInvalidDateRange, anlErr.Code)
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, "3000", entity.CategorySalary, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeIncome, "500", entity.CategoryFreelance, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "100", entity.CategoryFood, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "900", entity.CategoryRent, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "50", entity.CategoryFood, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "20", entity.CategoryFuel, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "5", entity.CategoryMedical, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "4", entity.CategoryLoan, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "3", entity.CategoryTravel, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)),
	}

	report := BuildReport(transactions, now)

	assert.True(t, report.Summary.TotalIncome.Equal(decimal.NewFromInt(3500)))
	assert.True(t, report.Summary.TotalExpense.Equal(decimal.NewFromInt(1082)))
	assert.True(t, report.Summary.NetSavings.Equal(decimal.NewFromInt(2418)))

	require.Len(t, report.MonthlyComparison, 6)
	assert.Equal(t, "Jan 2025", report.MonthlyComparison[0].Month)
	assert.Equal(t, "Jun 2025", report.MonthlyComparison[5].Month)
	assert.True(t, report.MonthlyComparison[0].Expense.Equal(decimal.NewFromInt(50)), "December spend is outside the window")
	assert.True(t, report.MonthlyComparison[3].Income.IsZero())
	assert.True(t, report.MonthlyComparison[4].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.MonthlyComparison[5].Expense.Equal(decimal.NewFromInt(1012)))

	require.Len(t, report.TopCategories, 5)
	assert.Equal(t, "Rent", report.TopCategories[0].Category)
	assert.Equal(t, "Food", report.TopCategories[1].Category)
	assert.True(t, report.TopCategories[1].Amount.Equal(decimal.NewFromInt(150)))

	require.Len(t, report.CategoryBreakdown, 6)
	assert.Equal(t, 2, report.CategoryBreakdown[1].Count)
	assert.Equal(t, "Travel", report.CategoryBreakdown[5].Name)

	require.Len(t, report.IncomeSources, 2)
	assert.Equal(t, "Salary", report.IncomeSources[0].Name)
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC))

	assert.True(t, report.Summary.NetSavings.IsZero())
	assert.Len(t, report.MonthlyComparison, 6)
	assert.Empty(t, report.TopCategories)
	assert.Empty(t, report.IncomeSources)
}

func TestGenerateTrailingMonths_CrossesYear(t *testing.T) {
	periods := GenerateTrailingMonths(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), 3)

	require.Len(t, periods, 3)
	assert.Equal(t, "Dec 2024", periods[0].PeriodLabel)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), periods[2].PeriodEnd)
}
