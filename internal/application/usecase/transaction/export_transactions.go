package transaction

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

var exportHeader = []string{"Date", "Type", "Category", "Division", "Description", "Amount"}

// ExportTransactionsUseCase writes the owner's filtered transactions as CSV.
type ExportTransactionsUseCase struct {
	list *ListTransactionsUseCase
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(list *ListTransactionsUseCase) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{list: list}
}

// Execute lists transactions with the same filters as the listing endpoint and
// writes one row per transaction, newest first.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput, w io.Writer) error {
	out, err := uc.list.Execute(ctx, input)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(out.Transactions)+1)
	rows = append(rows, exportHeader)
	for _, t := range out.Transactions {
		rows = append(rows, []string{
			t.Date.UTC().Format(time.DateOnly),
			string(t.Type),
			string(t.Category),
			string(t.Division),
			t.Description,
			t.Amount.StringFixed(2),
		})
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
