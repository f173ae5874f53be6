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

// transactionMutableColumns leaves out the owner and created_at, which anchors
// the edit window.
var transactionMutableColumns = []string{
	"type", "amount", "category", "division", "description", "date", "updated_at",
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns the GORM-backed transaction store.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if err := r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var row model.TransactionModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return row.ToEntity(), nil
}

func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	var rows []model.TransactionModel
	err := r.db.WithContext(ctx).
		Scopes(matching(filter), orderedBy(filter.Order)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].ToEntity())
	}
	return transactions, nil
}

// matching restricts a query to the owner and every filter field that is set.
// Date bounds are inclusive.
func matching(filter adapter.TransactionFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("user_id = ?", filter.UserID)
		if filter.Type != nil {
			q = q.Where("type = ?", string(*filter.Type))
		}
		if filter.Category != nil {
			q = q.Where("category = ?", string(*filter.Category))
		}
		if filter.Division != nil {
			q = q.Where("division = ?", string(*filter.Division))
		}
		if filter.StartDate != nil {
			q = q.Where("date >= ?", filter.StartDate.UTC())
		}
		if filter.EndDate != nil {
			q = q.Where("date <= ?", filter.EndDate.UTC())
		}
		return q
	}
}

// orderedBy breaks date ties by creation time in the same direction.
func orderedBy(order adapter.SortOrder) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if order == adapter.SortByDateAsc {
			return q.Order("date ASC").Order("created_at ASC")
		}
		return q.Order("date DESC").Order("created_at DESC")
	}
}

func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{ID: transaction.ID}).
		Select(transactionMutableColumns).
		Updates(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return fmt.Errorf("update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
