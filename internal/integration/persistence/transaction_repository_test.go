package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

func TestTransactionRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	base := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

	seed := []*entity.Transaction{
		entity.NewTransaction(owner, entity.TransactionTypeExpense, decimal.RequireFromString("12.34"), entity.CategoryFood, entity.DivisionPersonal, "lunch", base, base),
		entity.NewTransaction(owner, entity.TransactionTypeExpense, decimal.NewFromInt(60), entity.CategoryFuel, entity.DivisionOffice, "", base.AddDate(0, 0, 2), base),
		entity.NewTransaction(owner, entity.TransactionTypeIncome, decimal.NewFromInt(2000), entity.CategorySalary, entity.DivisionOffice, "", base.AddDate(0, 0, -3), base),
		entity.NewTransaction(stranger, entity.TransactionTypeExpense, decimal.NewFromInt(5), entity.CategoryFood, entity.DivisionPersonal, "", base, base),
	}
	for _, txn := range seed {
		require.NoError(t, repo.Create(ctx, txn))
	}

	all, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, seed[1].ID, all[0].ID, "newest first")
	assert.Equal(t, seed[2].ID, all[2].ID)

	asc, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner, Order: adapter.SortByDateAsc})
	require.NoError(t, err)
	assert.Equal(t, seed[2].ID, asc[0].ID)

	office := entity.DivisionOffice
	expense := entity.TransactionTypeExpense
	filtered, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner, Division: &office, Type: &expense})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, entity.CategoryFuel, filtered[0].Category)

	start, end := base.AddDate(0, 0, -1), base.AddDate(0, 0, 1)
	ranged, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.True(t, ranged[0].Amount.Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, "lunch", ranged[0].Description)

	require.NoError(t, repo.Delete(ctx, seed[0].ID))
	_, err = repo.FindByID(ctx, seed[0].ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}

func TestTransactionRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	created := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

	txn := entity.NewTransaction(owner, entity.TransactionTypeExpense, decimal.NewFromInt(40), entity.CategoryFood, entity.DivisionPersonal, "", created, created)
	require.NoError(t, repo.Create(ctx, txn))

	edited := *txn
	edited.Amount = decimal.RequireFromString("42.50")
	edited.Category = entity.CategoryShopping
	edited.CreatedAt = created.Add(24 * time.Hour)
	edited.UpdatedAt = created.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, &edited))

	stored, err := repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, entity.CategoryShopping, stored.Category)
	assert.True(t, stored.CreatedAt.Equal(created), "creation time anchors the edit window")

	require.NoError(t, repo.Delete(ctx, txn.ID))
	assert.ErrorIs(t, repo.Update(ctx, &edited), domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, txn.ID), domainerror.ErrTransactionNotFound)
}
