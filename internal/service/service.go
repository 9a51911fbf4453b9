package service

import (
	"context"
	"io"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jtclarkjr/logboard/internal/broker"
	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/repo"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
)

type Log interface {
	ListLogs(ctx context.Context, params repotypes.ListParams) (domain.LogPage, error)
	GetLog(ctx context.Context, id string) (domain.LogEntry, error)
	CreateLog(ctx context.Context, in CreateLogInput, actor string) (domain.LogEntry, error)
	UpdateLog(ctx context.Context, id string, in UpdateLogInput, actor string) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string, actor string) error
}

type Analytics interface {
	Summary(ctx context.Context, filter repotypes.LogFilter) (domain.LogSummary, error)
	Series(ctx context.Context, filter repotypes.LogFilter, groupBy string) (domain.LogSeries, error)
	Meta(ctx context.Context) (domain.LogsMeta, error)
}

type Export interface {
	WriteCSV(ctx context.Context, w io.Writer, params repotypes.ListParams) error
}

type Services struct {
	Log
	Analytics
	Export
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	TrManager      trm.Manager
	AuthRequired   bool
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log:       NewLogService(deps.Repos.Log, deps.Counters, deps.BrokerProducer, deps.TrManager, deps.AuthRequired),
		Analytics: NewAnalyticsService(deps.Repos.Log),
		Export:    NewExportService(deps.Repos.Log),
	}
}
