package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"financehub/internal/models"
)

var csvHeader = []string{"Date", "Title", "Type", "Category", "Amount", "Description"}

// exportService implements ExportServiceInterface
type exportService struct {
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewExportService creates the CSV export renderer
func NewExportService(metrics MetricsRecorderInterface, logger *slog.Logger) ExportServiceInterface {
	return &exportService{metrics: metrics, logger: logger}
}

// ExportCSV renders the given transactions, already filtered and ordered by
// the caller, as a CSV document. The filename carries the export date, not
// the filter range.
func (s *exportService) ExportCSV(transactions []models.Transaction, now time.Time) (string, []byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return "", nil, err
	}
	for i := range transactions {
		txn := &transactions[i]
		record := []string{
			txn.Date.Format("2006-01-02"),
			txn.Title,
			txn.TransactionType,
			txn.CategoryName(),
			txn.Amount.StringFixed(2),
			txn.Description,
		}
		if err := writer.Write(record); err != nil {
			return "", nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("csv_export", nil)
		s.metrics.RecordGauge("csv_export_rows", float64(len(transactions)), nil)
	}
	s.logger.Info("csv export generated", "rows", len(transactions))

	filename := fmt.Sprintf("transactions_%s.csv", now.Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}
