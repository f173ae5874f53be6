package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// SortOrder selects the date ordering of a transaction listing.
type SortOrder int

const (
	// SortByDateDesc lists the newest effective dates first.
	SortByDateDesc SortOrder = iota
	// SortByDateAsc lists the oldest effective dates first.
	SortByDateAsc
)

// TransactionFilter represents filter criteria for listing transactions.
// UserID is mandatory; every other field is optional.
type TransactionFilter struct {
	UserID    uuid.UUID
	Type      *entity.TransactionType
	Category  *entity.Category
	Division  *entity.Division
	StartDate *time.Time
	EndDate   *time.Time
	Order     SortOrder
}

// TransactionRepository stores income and expense records. Soft-deleted
// records are invisible to every method.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID returns ErrTransactionNotFound for unknown or deleted ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update never rewrites the owner or the creation time.
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
