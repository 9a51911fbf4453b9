package service

import (
	"context"
	"time"

	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/repo"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
)

var sortFields = []string{"timestamp", "severity", "source"}

type AnalyticsService struct {
	logRepo repo.Log
}

func NewAnalyticsService(lr repo.Log) *AnalyticsService {
	return &AnalyticsService{logRepo: lr}
}

// Summary runs four independent grouped counts under the same predicate and
// assembles them. The breakdowns are parallel partitions of one filtered
// set, not correlated per-row data.
func (s *AnalyticsService) Summary(ctx context.Context, filter repotypes.LogFilter) (domain.LogSummary, error) {
	total, err := s.logRepo.CountLogs(ctx, filter)
	if err != nil {
		return domain.LogSummary{}, internalErr(err)
	}

	bySeverity, err := s.logRepo.CountBySeverity(ctx, filter)
	if err != nil {
		return domain.LogSummary{}, internalErr(err)
	}

	bySource, err := s.logRepo.CountBySource(ctx, filter)
	if err != nil {
		return domain.LogSummary{}, internalErr(err)
	}

	byDate, err := s.logRepo.CountByDay(ctx, filter)
	if err != nil {
		return domain.LogSummary{}, internalErr(err)
	}

	if bySeverity == nil {
		bySeverity = []domain.SeverityCount{}
	}
	if bySource == nil {
		bySource = []domain.SourceCount{}
	}
	if byDate == nil {
		byDate = []domain.DateCount{}
	}

	return domain.LogSummary{
		TotalLogs:      total,
		DateRangeStart: timePtr(filter.StartDate),
		DateRangeEnd:   timePtr(filter.EndDate),
		BySeverity:     bySeverity,
		BySource:       bySource,
		ByDate:         byDate,
	}, nil
}

// Series pivots (bucket, severity) counts into one row per observed bucket
// with a column per severity level. Buckets nothing matched are omitted, so
// the series is sparse: consumers wanting a dense line must zero-fill.
func (s *AnalyticsService) Series(ctx context.Context, filter repotypes.LogFilter, groupBy string) (domain.LogSeries, error) {
	rows, err := s.logRepo.CountByBucket(ctx, filter, groupBy)
	if err != nil {
		return domain.LogSeries{}, internalErr(err)
	}

	data := []domain.SeriesPoint{}
	for _, row := range rows {
		// rows arrive in ascending bucket order, so a new bucket value
		// always starts a new point
		if len(data) == 0 || !data[len(data)-1].Timestamp.Equal(row.Bucket) {
			data = append(data, domain.SeriesPoint{Timestamp: row.Bucket})
		}
		data[len(data)-1].Add(row.Severity, row.Count)
	}

	return domain.LogSeries{
		Data:      data,
		GroupBy:   resolveGroupBy(groupBy),
		StartDate: timePtr(filter.StartDate),
		EndDate:   timePtr(filter.EndDate),
		Filters: domain.SeriesFilters{
			Severity: filter.Severity,
			Source:   filter.Source,
		},
	}, nil
}

// Meta ignores any active filter so selection widgets always see the whole
// universe of values.
func (s *AnalyticsService) Meta(ctx context.Context) (domain.LogsMeta, error) {
	sources, err := s.logRepo.DistinctSources(ctx)
	if err != nil {
		return domain.LogsMeta{}, internalErr(err)
	}
	if sources == nil {
		sources = []string{}
	}

	earliest, latest, err := s.logRepo.TimestampRange(ctx)
	if err != nil {
		return domain.LogsMeta{}, internalErr(err)
	}

	counts, err := s.logRepo.CountBySeverity(ctx, repotypes.LogFilter{})
	if err != nil {
		return domain.LogsMeta{}, internalErr(err)
	}

	stats := make(map[domain.Severity]int, len(domain.Severities()))
	for _, sev := range domain.Severities() {
		stats[sev] = 0
	}
	total := 0
	for _, c := range counts {
		stats[c.Severity] = c.Count
		total += c.Count
	}

	return domain.LogsMeta{
		SeverityLevels: domain.SeverityLevels(),
		Sources:        sources,
		DateRange:      domain.DateRange{Earliest: earliest, Latest: latest},
		SeverityStats:  stats,
		TotalLogs:      total,
		SortFields:     sortFields,
		Pagination: domain.PaginationInfo{
			DefaultPageSize: repotypes.DefaultPageSize,
			MaxPageSize:     repotypes.MaxPageSize,
		},
	}, nil
}

func resolveGroupBy(groupBy string) string {
	switch groupBy {
	case "hour", "day", "week", "month":
		return groupBy
	default:
		return "day"
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
