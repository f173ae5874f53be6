package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/persistence/model"
)

func TestGoalRepository_ContributionAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	owner := uuid.New()

	goal := entity.NewGoal(owner, "Laptop", decimal.NewFromInt(1000), decimal.Zero, nil, time.Now())
	require.NoError(t, repo.Create(ctx, goal))

	goal.AddAmount(decimal.NewFromInt(1000), time.Now())
	require.NoError(t, repo.Update(ctx, goal))

	stored, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stored.IsCompleted)
	assert.Equal(t, owner, stored.UserID)

	require.NoError(t, repo.Delete(ctx, goal.ID))

	_, err = repo.FindByID(ctx, goal.ID)
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Update(ctx, goal), domainerror.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, goal.ID), domainerror.ErrGoalNotFound)

	var rows int64
	require.NoError(t, db.Unscoped().Model(&model.GoalModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestGoalRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))
	owner := uuid.New()

	older := entity.NewGoal(owner, "Bike", decimal.NewFromInt(300), decimal.Zero, nil, time.Now())
	newer := entity.NewGoal(owner, "Trip", decimal.NewFromInt(900), decimal.Zero, nil, time.Now())
	newer.CreatedAt = older.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, entity.NewGoal(uuid.New(), "Other", decimal.NewFromInt(5), decimal.Zero, nil, time.Now())))

	goals, err := repo.FindByUserID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "Trip", goals[0].Name)
	assert.Equal(t, "Bike", goals[1].Name)

	none, err := repo.FindByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}
