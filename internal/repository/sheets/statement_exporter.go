package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

const (
	statementRange  = "MilkStatements!A:C"
	statementLayout = "2006-01-02 15:04"
)

// StatementExporter writes milk production totals as spreadsheet rows:
// generation time, time of day, total amount.
type StatementExporter struct {
	repo Repository
}

// NewStatementExporter builds an exporter on top of repo.
func NewStatementExporter(repo Repository) *StatementExporter {
	return &StatementExporter{repo: repo}
}

// ExportStatement appends one row per time of day bucket.
func (e *StatementExporter) ExportStatement(ctx context.Context, generatedAt time.Time, totals []models.ProductionTotal) error {
	stamp := generatedAt.Format(statementLayout)
	for _, total := range totals {
		if err := e.repo.WriteRow(ctx, statementRange, []interface{}{stamp, total.TimeOfDay, total.TotalAmount}); err != nil {
			return fmt.Errorf("export %s total: %w", total.TimeOfDay, err)
		}
	}
	return nil
}
