package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/persistence/model"
)

// goalMutableColumns excludes the owner and creation time, which never change.
var goalMutableColumns = []string{
	"name", "target_amount", "current_amount", "deadline", "is_completed", "updated_at",
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository returns a GORM-backed adapter.GoalRepository. Deleted goals
// stay in the table with deleted_at set and are hidden from every query.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if err := r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var row model.GoalModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return row.ToEntity(), nil
}

func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var rows []model.GoalModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]*entity.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, rows[i].ToEntity())
	}
	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{ID: goal.ID}).
		Select(goalMutableColumns).
		Updates(model.GoalFromEntity(goal))
	if result.Error != nil {
		return fmt.Errorf("update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
