// Package entity defines the core business entities for the domain layer.
package entity

// Category is a fixed transaction category. The allowed set depends on the
// transaction type.
type Category string

const (
	CategorySalary      Category = "Salary"
	CategoryFreelance   Category = "Freelance"
	CategoryInvestment  Category = "Investment"
	CategoryOtherIncome Category = "Other Income"
)

const (
	CategoryFood          Category = "Food"
	CategoryFuel          Category = "Fuel"
	CategoryRent          Category = "Rent"
	CategoryMedical       Category = "Medical"
	CategoryLoan          Category = "Loan"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryEducation     Category = "Education"
	CategoryTravel        Category = "Travel"
	CategoryOtherExpense  Category = "Other Expense"
)

// Division partitions transactions into personal and office spending.
type Division string

const (
	DivisionPersonal Division = "Personal"
	DivisionOffice   Division = "Office"
)

var incomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryOtherIncome,
}

var expenseCategories = []Category{
	CategoryFood,
	CategoryFuel,
	CategoryRent,
	CategoryMedical,
	CategoryLoan,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryEducation,
	CategoryTravel,
	CategoryOtherExpense,
}

// IncomeCategories returns the categories allowed for income transactions.
func IncomeCategories() []Category {
	return append([]Category(nil), incomeCategories...)
}

// ExpenseCategories returns the categories allowed for expense transactions.
func ExpenseCategories() []Category {
	return append([]Category(nil), expenseCategories...)
}

// Divisions returns every known division.
func Divisions() []Division {
	return []Division{DivisionPersonal, DivisionOffice}
}

// CategoriesFor returns the allowed categories for the given transaction type.
// Unknown types yield nil.
func CategoriesFor(transactionType TransactionType) []Category {
	switch transactionType {
	case TransactionTypeIncome:
		return IncomeCategories()
	case TransactionTypeExpense:
		return ExpenseCategories()
	default:
		return nil
	}
}

// IsValidCategory reports whether category belongs to the allowed set for transactionType.
func IsValidCategory(transactionType TransactionType, category Category) bool {
	for _, c := range CategoriesFor(transactionType) {
		if c == category {
			return true
		}
	}
	return false
}

// IsExpenseCategory reports whether category is one of the expense categories.
func IsExpenseCategory(category Category) bool {
	return IsValidCategory(TransactionTypeExpense, category)
}

// IsValid reports whether d is a known division.
func (d Division) IsValid() bool {
	return d == DivisionPersonal || d == DivisionOffice
}
