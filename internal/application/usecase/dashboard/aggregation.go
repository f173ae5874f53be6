package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

// Stats holds the owner's all-time totals.
type Stats struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryAmount is a named total used by chart series.
type CategoryAmount struct {
	Name  string
	Value decimal.Decimal
}

// DailyTotals accumulates income and expense for one calendar day.
type DailyTotals struct {
	Date    string // YYYY-MM-DD
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Analytics holds the time-windowed chart data.
type Analytics struct {
	CategoryBreakdown []CategoryAmount
	IncomeExpenseData []DailyTotals
}

// ComputeStats sums transactions by type. Balance is income minus expense.
func ComputeStats(transactions []*entity.Transaction) Stats {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Stats{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// BuildAnalytics builds the expense breakdown by category, in first-seen order,
// and the per-day income and expense series in chronological order.
func BuildAnalytics(transactions []*entity.Transaction) Analytics {
	breakdown := newCategoryTotals()
	days := make(map[string]*DailyTotals)
	var dayOrder []string

	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense {
			breakdown.add(string(t.Category), t.Amount)
		}

		key := dayKey(t.Date)
		day, ok := days[key]
		if !ok {
			day = &DailyTotals{Date: key, Income: decimal.Zero, Expense: decimal.Zero}
			days[key] = day
			dayOrder = append(dayOrder, key)
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			day.Income = day.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			day.Expense = day.Expense.Add(t.Amount)
		}
	}

	sort.Strings(dayOrder)
	series := make([]DailyTotals, 0, len(dayOrder))
	for _, key := range dayOrder {
		series = append(series, *days[key])
	}

	return Analytics{
		CategoryBreakdown: breakdown.amounts(),
		IncomeExpenseData: series,
	}
}

// categoryTotals sums amounts per category and remembers insertion order.
type categoryTotals struct {
	index  map[string]int
	names  []string
	values []decimal.Decimal
	counts []int
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{index: make(map[string]int)}
}

func (c *categoryTotals) add(name string, amount decimal.Decimal) {
	i, ok := c.index[name]
	if !ok {
		i = len(c.names)
		c.index[name] = i
		c.names = append(c.names, name)
		c.values = append(c.values, decimal.Zero)
		c.counts = append(c.counts, 0)
	}
	c.values[i] = c.values[i].Add(amount)
	c.counts[i]++
}

func (c *categoryTotals) amounts() []CategoryAmount {
	out := make([]CategoryAmount, len(c.names))
	for i, name := range c.names {
		out[i] = CategoryAmount{Name: name, Value: c.values[i]}
	}
	return out
}

// sortedIndexes returns insertion indexes ordered by value descending. Ties keep
// insertion order.
func (c *categoryTotals) sortedIndexes() []int {
	idx := make([]int, len(c.names))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c.values[idx[a]].GreaterThan(c.values[idx[b]])
	})
	return idx
}
