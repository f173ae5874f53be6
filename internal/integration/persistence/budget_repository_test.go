package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	user := entity.NewUser("Test User", email, "hash", time.Now())
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user.ID
}

func TestBudgetRepository_ActiveCategoryIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	owner := uuid.New()

	first := entity.NewBudget(owner, entity.CategoryFood, decimal.NewFromInt(300), "", time.Time{}, time.Now())
	require.NoError(t, repo.Create(ctx, first))

	duplicate := entity.NewBudget(owner, entity.CategoryFood, decimal.NewFromInt(200), "", time.Time{}, time.Now())
	err := repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, domainerror.ErrBudgetAlreadyExists)

	exists, err := repo.ExistsActiveByUserAndCategory(ctx, owner, entity.CategoryFood, nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActiveByUserAndCategory(ctx, owner, entity.CategoryFood, &first.ID)
	require.NoError(t, err)
	assert.False(t, exists, "the excluded budget is ignored")

	first.IsActive = false
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, repo.Create(ctx, duplicate), "an inactive budget does not block a new one")

	first.IsActive = true
	err = repo.Update(ctx, first)
	assert.ErrorIs(t, err, domainerror.ErrBudgetAlreadyExists)
}

func TestBudgetRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBudgetRepository(newTestDB(t))
	owner := uuid.New()

	budget := entity.NewBudget(owner, entity.CategoryRent, decimal.NewFromInt(1000), entity.BudgetPeriodYearly, time.Time{}, time.Now())
	require.NoError(t, repo.Create(ctx, budget))

	found, err := repo.FindByID(ctx, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetPeriodYearly, found.Period)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(1000)))

	require.NoError(t, repo.Delete(ctx, budget.ID))

	_, err = repo.FindByID(ctx, budget.ID)
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, budget.ID), domainerror.ErrBudgetNotFound)

	replacement := entity.NewBudget(owner, entity.CategoryRent, decimal.NewFromInt(800), "", time.Time{}, time.Now())
	assert.NoError(t, repo.Create(ctx, replacement), "a deleted budget does not block a new one")

	budgets, err := repo.FindByUserID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, replacement.ID, budgets[0].ID)
}
