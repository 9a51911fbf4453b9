package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jtclarkjr/logboard/internal/domain"
	repository_mock "github.com/jtclarkjr/logboard/internal/mocks/repository"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAnalyticsService(t *testing.T) (*service.AnalyticsService, *repository_mock.MockLog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := repository_mock.NewMockLog(ctrl)

	return service.NewAnalyticsService(mockRepo), mockRepo
}

func TestAnalyticsService_Summary(t *testing.T) {
	ctx := context.Background()
	filter := repotypes.LogFilter{
		Severity:  "ERROR",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
	}

	svc, mockRepo := newAnalyticsService(t)

	mockRepo.EXPECT().CountLogs(ctx, filter).Return(5, nil)
	mockRepo.EXPECT().CountBySeverity(ctx, filter).
		Return([]domain.SeverityCount{{Severity: domain.SeverityError, Count: 5}}, nil)
	mockRepo.EXPECT().CountBySource(ctx, filter).
		Return([]domain.SourceCount{{Source: "api", Count: 3}, {Source: "db", Count: 2}}, nil)
	mockRepo.EXPECT().CountByDay(ctx, filter).
		Return([]domain.DateCount{{Date: "2024-01-02", Count: 4}, {Date: "2024-01-05", Count: 1}}, nil)

	summary, err := svc.Summary(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalLogs)

	// each breakdown is a complete partition of the filtered set
	severitySum := 0
	for _, sc := range summary.BySeverity {
		severitySum += sc.Count
	}
	assert.Equal(t, summary.TotalLogs, severitySum)

	sourceSum := 0
	for _, sc := range summary.BySource {
		sourceSum += sc.Count
	}
	assert.Equal(t, summary.TotalLogs, sourceSum)

	// severities with zero matches are absent, not zero entries
	for _, sc := range summary.BySeverity {
		assert.NotEqual(t, domain.SeverityInfo, sc.Severity)
	}

	require.NotNil(t, summary.DateRangeStart)
	assert.True(t, summary.DateRangeStart.Equal(filter.StartDate))
	require.NotNil(t, summary.DateRangeEnd)
	assert.True(t, summary.DateRangeEnd.Equal(filter.EndDate))
}

func TestAnalyticsService_Summary_EmptySet(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	mockRepo.EXPECT().CountLogs(ctx, repotypes.LogFilter{}).Return(0, nil)
	mockRepo.EXPECT().CountBySeverity(ctx, repotypes.LogFilter{}).Return(nil, nil)
	mockRepo.EXPECT().CountBySource(ctx, repotypes.LogFilter{}).Return(nil, nil)
	mockRepo.EXPECT().CountByDay(ctx, repotypes.LogFilter{}).Return(nil, nil)

	summary, err := svc.Summary(ctx, repotypes.LogFilter{})
	require.NoError(t, err)

	assert.Zero(t, summary.TotalLogs)
	assert.NotNil(t, summary.BySeverity)
	assert.Empty(t, summary.BySeverity)
	assert.Nil(t, summary.DateRangeStart)
	assert.Nil(t, summary.DateRangeEnd)
}

func TestAnalyticsService_Series_SparseBuckets(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	// two widely separated days; nothing in between
	mockRepo.EXPECT().
		CountByBucket(ctx, repotypes.LogFilter{}, "day").
		Return([]repotypes.BucketCount{
			{Bucket: day1, Severity: domain.SeverityDebug, Count: 2},
			{Bucket: day1, Severity: domain.SeverityError, Count: 1},
			{Bucket: day5, Severity: domain.SeverityInfo, Count: 4},
		}, nil)

	series, err := svc.Series(ctx, repotypes.LogFilter{}, "day")
	require.NoError(t, err)

	// sparse: exactly two rows, no zero-filled bucket for the gap days
	require.Len(t, series.Data, 2)

	first := series.Data[0]
	assert.True(t, first.Timestamp.Equal(day1))
	assert.Equal(t, 2, first.Debug)
	assert.Equal(t, 1, first.Error)
	assert.Equal(t, 0, first.Info)
	assert.Equal(t, 3, first.Total)

	second := series.Data[1]
	assert.True(t, second.Timestamp.Equal(day5))
	assert.Equal(t, 4, second.Info)
	assert.Equal(t, 4, second.Total)

	assert.Equal(t, "day", series.GroupBy)
}

func TestAnalyticsService_Series_InvalidGroupByFallsBack(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	mockRepo.EXPECT().
		CountByBucket(ctx, repotypes.LogFilter{}, "decade").
		Return(nil, nil)

	series, err := svc.Series(ctx, repotypes.LogFilter{}, "decade")
	require.NoError(t, err)
	assert.Equal(t, "day", series.GroupBy)
	assert.NotNil(t, series.Data)
	assert.Empty(t, series.Data)
}

func TestAnalyticsService_Series_FilterEcho(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	filter := repotypes.LogFilter{Severity: "ERROR", Source: "api"}
	mockRepo.EXPECT().CountByBucket(ctx, filter, "hour").Return(nil, nil)

	series, err := svc.Series(ctx, filter, "hour")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", series.Filters.Severity)
	assert.Equal(t, "api", series.Filters.Source)
	assert.Equal(t, "hour", series.GroupBy)
}

func TestAnalyticsService_Meta(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	earliest := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().DistinctSources(ctx).Return([]string{"api", "db"}, nil)
	mockRepo.EXPECT().TimestampRange(ctx).Return(&earliest, &latest, nil)
	mockRepo.EXPECT().CountBySeverity(ctx, repotypes.LogFilter{}).
		Return([]domain.SeverityCount{
			{Severity: domain.SeverityInfo, Count: 80},
			{Severity: domain.SeverityError, Count: 20},
		}, nil)

	meta, err := svc.Meta(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"api", "db"}, meta.Sources)
	assert.Equal(t, 100, meta.TotalLogs)

	// the level descriptors carry the full enum with display order and color
	require.Len(t, meta.SeverityLevels, 5)
	assert.Equal(t, domain.SeverityDebug, meta.SeverityLevels[0].Name)
	assert.Equal(t, domain.SeverityCritical, meta.SeverityLevels[4].Name)
	for i, level := range meta.SeverityLevels {
		assert.Equal(t, i, level.Order)
		assert.NotEmpty(t, level.Color)
	}

	// every severity appears in the stats map, absent ones as zero
	assert.Len(t, meta.SeverityStats, 5)
	assert.Equal(t, 80, meta.SeverityStats[domain.SeverityInfo])
	assert.Equal(t, 0, meta.SeverityStats[domain.SeverityCritical])

	assert.Equal(t, []string{"timestamp", "severity", "source"}, meta.SortFields)
	assert.Equal(t, repotypes.DefaultPageSize, meta.Pagination.DefaultPageSize)
	assert.Equal(t, repotypes.MaxPageSize, meta.Pagination.MaxPageSize)
}

func TestAnalyticsService_Meta_EmptyTable(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo := newAnalyticsService(t)

	mockRepo.EXPECT().DistinctSources(ctx).Return(nil, nil)
	mockRepo.EXPECT().TimestampRange(ctx).Return(nil, nil, nil)
	mockRepo.EXPECT().CountBySeverity(ctx, repotypes.LogFilter{}).Return(nil, nil)

	meta, err := svc.Meta(ctx)
	require.NoError(t, err)

	assert.NotNil(t, meta.Sources)
	assert.Empty(t, meta.Sources)
	assert.Nil(t, meta.DateRange.Earliest)
	assert.Nil(t, meta.DateRange.Latest)
	assert.Zero(t, meta.TotalLogs)
}
