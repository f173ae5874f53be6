package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

const (
	reportMonths        = 6
	reportTopCategories = 5
)

// ReportSummary holds the totals of the reported range.
type ReportSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetSavings   decimal.Decimal
}

// MonthlyTotals holds income and expense for one calendar month.
type MonthlyTotals struct {
	Month   string // e.g. "Jan 2025"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is a ranked expense category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryShare is an expense category with its transaction count.
type CategoryShare struct {
	Name  string
	Value decimal.Decimal
	Count int
}

// Report holds the reporting rollups.
type Report struct {
	Summary           ReportSummary
	MonthlyComparison []MonthlyTotals
	TopCategories     []CategoryTotal
	IncomeSources     []CategoryAmount
	CategoryBreakdown []CategoryShare
}

// BuildReport computes the reporting rollups over transactions.
// The monthly comparison covers the six calendar months ending with now's month
// and is zero-filled.
func BuildReport(transactions []*entity.Transaction, now time.Time) Report {
	stats := ComputeStats(transactions)

	periods := GenerateTrailingMonths(now, reportMonths)
	monthly := make([]MonthlyTotals, len(periods))
	for i, p := range periods {
		monthly[i] = MonthlyTotals{Month: p.PeriodLabel, Income: decimal.Zero, Expense: decimal.Zero}
	}

	expenses := newCategoryTotals()
	incomes := newCategoryTotals()

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			incomes.add(string(t.Category), t.Amount)
		case entity.TransactionTypeExpense:
			expenses.add(string(t.Category), t.Amount)
		}

		for i, p := range periods {
			if t.Date.Before(p.PeriodStart) || !t.Date.Before(p.PeriodEnd) {
				continue
			}
			if t.Type == entity.TransactionTypeIncome {
				monthly[i].Income = monthly[i].Income.Add(t.Amount)
			} else {
				monthly[i].Expense = monthly[i].Expense.Add(t.Amount)
			}
			break
		}
	}

	expenseOrder := expenses.sortedIndexes()

	top := make([]CategoryTotal, 0, reportTopCategories)
	breakdown := make([]CategoryShare, 0, len(expenseOrder))
	for _, i := range expenseOrder {
		if len(top) < reportTopCategories {
			top = append(top, CategoryTotal{Category: expenses.names[i], Amount: expenses.values[i]})
		}
		breakdown = append(breakdown, CategoryShare{
			Name:  expenses.names[i],
			Value: expenses.values[i],
			Count: expenses.counts[i],
		})
	}

	sources := make([]CategoryAmount, 0, len(incomes.names))
	for _, i := range incomes.sortedIndexes() {
		sources = append(sources, CategoryAmount{Name: incomes.names[i], Value: incomes.values[i]})
	}

	return Report{
		Summary: ReportSummary{
			TotalIncome:  stats.TotalIncome,
			TotalExpense: stats.TotalExpense,
			NetSavings:   stats.Balance,
		},
		MonthlyComparison: monthly,
		TopCategories:     top,
		IncomeSources:     sources,
		CategoryBreakdown: breakdown,
	}
}
