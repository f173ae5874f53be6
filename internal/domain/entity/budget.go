// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the renewal cadence of a budget.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether p is a known budget period.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget represents a spending limit for one expense category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  Category
	Amount    decimal.Decimal
	Period    BudgetPeriod
	StartDate time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new active Budget created at now. An empty period defaults to
// monthly and a zero start date defaults to the creation time.
func NewBudget(userID uuid.UUID, category Category, amount decimal.Decimal, period BudgetPeriod, startDate, now time.Time) *Budget {
	now = now.UTC()
	if period == "" {
		period = BudgetPeriodMonthly
	}
	if startDate.IsZero() {
		startDate = now
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		StartDate: startDate.UTC(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether the budget belongs to userID.
func (b *Budget) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// BudgetSpend holds the values derived for a budget at read time.
type BudgetSpend struct {
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal // Rounded to one decimal place
}

// BudgetWindowStart returns the start of the current spend window for period.
// Monthly windows start on the 1st of the month, yearly windows on January 1st,
// both at midnight UTC.
func BudgetWindowStart(period BudgetPeriod, now time.Time) time.Time {
	now = now.UTC()
	if period == BudgetPeriodYearly {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ComputeBudgetSpend derives spent, remaining and percentage for budget from the
// owner's transactions. Only expenses in the budget category dated on or after the
// window start count. The percentage is zero when the limit is zero.
func ComputeBudgetSpend(budget *Budget, transactions []*Transaction, now time.Time) BudgetSpend {
	start := BudgetWindowStart(budget.Period, now)

	spent := decimal.Zero
	for _, t := range transactions {
		if t.UserID != budget.UserID || t.Type != TransactionTypeExpense || t.Category != budget.Category {
			continue
		}
		if t.Date.Before(start) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	percentage := decimal.Zero
	if !budget.Amount.IsZero() && !spent.IsZero() {
		percentage = spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).Round(1)
	}

	return BudgetSpend{
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		Percentage: percentage,
	}
}
