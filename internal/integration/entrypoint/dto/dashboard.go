package dto

import (
	"github.com/money-manager/backend/internal/application/usecase/dashboard"
)

// AnalyticsQuery represents the analytics query parameters.
type AnalyticsQuery struct {
	Period    string `form:"period"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ReportQuery represents the report query parameters.
type ReportQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// StatsResponse represents the all-time totals.
type StatsResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// NameValueResponse is a named amount used by chart series.
type NameValueResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DailyTotalsResponse represents income and expense for one day.
type DailyTotalsResponse struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// AnalyticsResponse represents the windowed chart data.
type AnalyticsResponse struct {
	CategoryBreakdown []NameValueResponse   `json:"categoryBreakdown"`
	IncomeExpenseData []DailyTotalsResponse `json:"incomeExpenseData"`
}

// ReportSummaryResponse represents the report totals.
type ReportSummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	NetSavings   float64 `json:"netSavings"`
}

// MonthlyTotalsResponse represents one month of the comparison series.
type MonthlyTotalsResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotalResponse represents a ranked expense category.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryShareResponse represents an expense category with its transaction count.
type CategoryShareResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// ReportResponse represents the reporting rollups.
type ReportResponse struct {
	Summary           ReportSummaryResponse   `json:"summary"`
	MonthlyComparison []MonthlyTotalsResponse `json:"monthlyComparison"`
	TopCategories     []CategoryTotalResponse `json:"topCategories"`
	IncomeSources     []NameValueResponse     `json:"incomeSources"`
	CategoryBreakdown []CategoryShareResponse `json:"categoryBreakdown"`
}

// ToStatsResponse converts dashboard stats to a StatsResponse DTO.
func ToStatsResponse(stats *dashboard.Stats) StatsResponse {
	return StatsResponse{
		TotalIncome:  stats.TotalIncome.InexactFloat64(),
		TotalExpense: stats.TotalExpense.InexactFloat64(),
		Balance:      stats.Balance.InexactFloat64(),
	}
}

// ToAnalyticsResponse converts analytics to an AnalyticsResponse DTO.
func ToAnalyticsResponse(analytics *dashboard.Analytics) AnalyticsResponse {
	daily := make([]DailyTotalsResponse, len(analytics.IncomeExpenseData))
	for i, d := range analytics.IncomeExpenseData {
		daily[i] = DailyTotalsResponse{
			Date:    d.Date,
			Income:  d.Income.InexactFloat64(),
			Expense: d.Expense.InexactFloat64(),
		}
	}

	return AnalyticsResponse{
		CategoryBreakdown: toNameValues(analytics.CategoryBreakdown),
		IncomeExpenseData: daily,
	}
}

// ToReportResponse converts a report to a ReportResponse DTO.
func ToReportResponse(report *dashboard.Report) ReportResponse {
	months := make([]MonthlyTotalsResponse, len(report.MonthlyComparison))
	for i, m := range report.MonthlyComparison {
		months[i] = MonthlyTotalsResponse{
			Month:   m.Month,
			Income:  m.Income.InexactFloat64(),
			Expense: m.Expense.InexactFloat64(),
		}
	}

	top := make([]CategoryTotalResponse, len(report.TopCategories))
	for i, c := range report.TopCategories {
		top[i] = CategoryTotalResponse{Category: c.Category, Amount: c.Amount.InexactFloat64()}
	}

	shares := make([]CategoryShareResponse, len(report.CategoryBreakdown))
	for i, c := range report.CategoryBreakdown {
		shares[i] = CategoryShareResponse{Name: c.Name, Value: c.Value.InexactFloat64(), Count: c.Count}
	}

	return ReportResponse{
		Summary: ReportSummaryResponse{
			TotalIncome:  report.Summary.TotalIncome.InexactFloat64(),
			TotalExpense: report.Summary.TotalExpense.InexactFloat64(),
			NetSavings:   report.Summary.NetSavings.InexactFloat64(),
		},
		MonthlyComparison: months,
		TopCategories:     top,
		IncomeSources:     toNameValues(report.IncomeSources),
		CategoryBreakdown: shares,
	}
}

func toNameValues(amounts []dashboard.CategoryAmount) []NameValueResponse {
	out := make([]NameValueResponse, len(amounts))
	for i, a := range amounts {
		out[i] = NameValueResponse{Name: a.Name, Value: a.Value.InexactFloat64()}
	}
	return out
}
