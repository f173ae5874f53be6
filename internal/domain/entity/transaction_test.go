package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction_DefaultsDateToNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	txn := NewTransaction(uuid.New(), TransactionTypeExpense, decimal.NewFromInt(10), CategoryFood, DivisionPersonal, "  lunch  ", time.Time{}, now)

	assert.Equal(t, now, txn.Date)
	assert.Equal(t, now, txn.CreatedAt)
	assert.Equal(t, "lunch", txn.Description)
}

func TestTransaction_IsEditable(t *testing.T) {
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	txn := &Transaction{CreatedAt: created}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"just created", created, true},
		{"eleven hours later", created.Add(11 * time.Hour), true},
		{"exactly at the window edge", created.Add(EditWindow), true},
		{"one second past the window", created.Add(EditWindow + time.Second), false},
		{"days later", created.Add(72 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, txn.IsEditable(tt.now))
		})
	}
}

func TestTransaction_LockIsOneDirectional(t *testing.T) {
	created := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	txn := &Transaction{CreatedAt: created}

	locked := false
	for h := 0; h <= 48; h++ {
		editable := txn.IsEditable(created.Add(time.Duration(h) * time.Hour).Add(time.Second))
		if locked {
			assert.False(t, editable, "hour %d reopened the edit window", h)
		}
		if !editable {
			locked = true
		}
	}
	assert.True(t, locked)
}

func TestValidateTransactionFields(t *testing.T) {
	ten := decimal.NewFromInt(10)

	tests := []struct {
		name        string
		txnType     TransactionType
		amount      decimal.Decimal
		category    Category
		division    Division
		description string
		wantField   string
	}{
		{"valid expense", TransactionTypeExpense, ten, CategoryRent, DivisionOffice, "", ""},
		{"valid income", TransactionTypeIncome, decimal.Zero, CategorySalary, DivisionPersonal, "pay", ""},
		{"unknown type", TransactionType("transfer"), ten, CategoryRent, DivisionOffice, "", "type"},
		{"negative amount", TransactionTypeExpense, decimal.NewFromInt(-1), CategoryRent, DivisionOffice, "", "amount"},
		{"income category on expense", TransactionTypeExpense, ten, CategorySalary, DivisionOffice, "", "category"},
		{"expense category on income", TransactionTypeIncome, ten, CategoryFood, DivisionOffice, "", "category"},
		{"unknown division", TransactionTypeExpense, ten, CategoryFood, Division("Family"), "", "division"},
		{"description at limit", TransactionTypeExpense, ten, CategoryFood, DivisionPersonal, strings.Repeat("é", MaxDescriptionLength), ""},
		{"description too long", TransactionTypeExpense, ten, CategoryFood, DivisionPersonal, strings.Repeat("a", MaxDescriptionLength+1), "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantField, ValidateTransactionFields(tt.txnType, tt.amount, tt.category, tt.division, tt.description))
		})
	}
}

func TestCategoriesFor(t *testing.T) {
	assert.Len(t, CategoriesFor(TransactionTypeIncome), 4)
	assert.Len(t, CategoriesFor(TransactionTypeExpense), 11)
	assert.Nil(t, CategoriesFor(TransactionType("other")))

	// Callers must not be able to mutate the catalogue.
	income := IncomeCategories()
	income[0] = "Hacked"
	assert.Equal(t, CategorySalary, IncomeCategories()[0])
}
