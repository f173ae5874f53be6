// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// idx_budgets_active_category allows one live active budget per user and category.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_active_category,priority:1,where:is_active = true AND deleted_at IS NULL"`
	Category  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_active_category,priority:2"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period    string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	StartDate time.Time       `gorm:"not null"`
	IsActive  bool            `gorm:"not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  entity.Category(m.Category),
		Amount:    m.Amount,
		Period:    entity.BudgetPeriod(m.Period),
		StartDate: m.StartDate.UTC(),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
		DeletedAt: deletedAtToEntity(m.DeletedAt),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        b.ID,
		UserID:    b.UserID,
		Category:  string(b.Category),
		Amount:    b.Amount,
		Period:    string(b.Period),
		StartDate: b.StartDate,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		DeletedAt: deletedAtFromEntity(b.DeletedAt),
	}
}
