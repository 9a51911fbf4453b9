package repo

import (
	"context"
	"time"

	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/repo/pgdb"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	"github.com/jtclarkjr/logboard/pkg/postgres"
)

type Log interface {
	ListLogs(ctx context.Context, params repotypes.ListParams) ([]domain.LogEntry, int, error)
	GetLog(ctx context.Context, id string) (domain.LogEntry, error)
	CreateLog(ctx context.Context, entry *domain.LogEntry) error
	UpdateLog(ctx context.Context, id string, patch repotypes.UpdateLog, updatedAt time.Time, updatedBy *string) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error

	CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error)
	CountBySeverity(ctx context.Context, filter repotypes.LogFilter) ([]domain.SeverityCount, error)
	CountBySource(ctx context.Context, filter repotypes.LogFilter) ([]domain.SourceCount, error)
	CountByDay(ctx context.Context, filter repotypes.LogFilter) ([]domain.DateCount, error)
	CountByBucket(ctx context.Context, filter repotypes.LogFilter, groupBy string) ([]repotypes.BucketCount, error)
	DistinctSources(ctx context.Context) ([]string, error)
	TimestampRange(ctx context.Context) (*time.Time, *time.Time, error)
}

type Repositories struct {
	Log
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log: pgdb.NewLogRepo(pg),
	}
}
