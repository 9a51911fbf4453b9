package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jtclarkjr/logboard/internal/repo"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
)

var csvHeader = []string{"id", "timestamp", "severity", "source", "message", "created_at", "updated_at"}

type ExportService struct {
	logRepo repo.Log
}

func NewExportService(lr repo.Log) *ExportService {
	return &ExportService{logRepo: lr}
}

// WriteCSV re-runs the listing query independently of the interactive path
// and streams the rows as RFC-4180 CSV. A page size above the export cap is
// silently clamped, not rejected.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, params repotypes.ListParams) error {
	params.Normalize(repotypes.ExportMaxRows, repotypes.ExportMaxRows)

	logs, _, err := s.logRepo.ListLogs(ctx, params)
	if err != nil {
		return internalErr(err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return internalErr(err)
	}

	for _, entry := range logs {
		record := []string{
			entry.ID,
			entry.Timestamp.Format(time.RFC3339),
			entry.Severity.String(),
			entry.Source,
			entry.Message,
			entry.CreatedAt.Format(time.RFC3339),
			entry.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return internalErr(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return internalErr(err)
	}

	return nil
}

// ExportFilename names the download after the day it was taken.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("logs-export-%s.csv", now.Format("2006-01-02"))
}
