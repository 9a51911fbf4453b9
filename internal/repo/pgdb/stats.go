package pgdb

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	errorsUtils "github.com/jtclarkjr/logboard/pkg/errors"
)

func (r *LogRepo) CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error) {
	conds := BuildLogConds(filter)

	query := r.Builder.
		Select("COUNT(*)").
		From("logs")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var total int
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	return total, nil
}

// CountBySeverity groups the filtered set by severity. Severities with no
// matching rows are absent, never returned as zero counts.
func (r *LogRepo) CountBySeverity(ctx context.Context, filter repotypes.LogFilter) ([]domain.SeverityCount, error) {
	conds := BuildLogConds(filter)

	query := r.Builder.
		Select("severity", "COUNT(*) AS count_logs").
		From("logs")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = query.GroupBy("severity")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []domain.SeverityCount
	for rows.Next() {
		var sc domain.SeverityCount
		if err := rows.Scan(&sc.Severity, &sc.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

func (r *LogRepo) CountBySource(ctx context.Context, filter repotypes.LogFilter) ([]domain.SourceCount, error) {
	conds := BuildLogConds(filter)

	query := r.Builder.
		Select("source", "COUNT(*) AS count_logs").
		From("logs")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = query.GroupBy("source").OrderBy("count_logs DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []domain.SourceCount
	for rows.Next() {
		var sc domain.SourceCount
		if err := rows.Scan(&sc.Source, &sc.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

// CountByDay groups the filtered set by calendar day in ascending order.
func (r *LogRepo) CountByDay(ctx context.Context, filter repotypes.LogFilter) ([]domain.DateCount, error) {
	conds := BuildLogConds(filter)

	query := r.Builder.
		Select("date_trunc('day', timestamp) AS day", "COUNT(*) AS count_logs").
		From("logs")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = query.GroupBy("day").OrderBy("day ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []domain.DateCount
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, domain.DateCount{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

// CountByBucket groups by (time bucket, severity) with the bucket unit taken
// from the ResolveBucket whitelist. Rows come back in ascending bucket order
// so the caller can pivot them in one pass.
func (r *LogRepo) CountByBucket(ctx context.Context, filter repotypes.LogFilter, groupBy string) ([]repotypes.BucketCount, error) {
	conds := BuildLogConds(filter)
	unit := ResolveBucket(groupBy)

	query := r.Builder.
		Select("date_trunc('"+unit+"', timestamp) AS bucket", "severity", "COUNT(*) AS count_logs").
		From("logs")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = query.GroupBy("bucket", "severity").OrderBy("bucket ASC", "severity ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var counts []repotypes.BucketCount
	for rows.Next() {
		var bc repotypes.BucketCount
		if err := rows.Scan(&bc.Bucket, &bc.Severity, &bc.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		counts = append(counts, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return counts, nil
}

func (r *LogRepo) DistinctSources(ctx context.Context) ([]string, error) {
	sql, args, err := r.Builder.
		Select("DISTINCT source").
		From("logs").
		OrderBy("source ASC").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return sources, nil
}

// TimestampRange returns the min and max timestamp over the whole table,
// nils when the table is empty.
func (r *LogRepo) TimestampRange(ctx context.Context) (*time.Time, *time.Time, error) {
	sql, args, err := r.Builder.
		Select("MIN(timestamp)", "MAX(timestamp)").
		From("logs").
		ToSql()
	if err != nil {
		return nil, nil, errorsUtils.WrapPathErr(err)
	}

	var earliest, latest *time.Time
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&earliest, &latest); err != nil {
		return nil, nil, errorsUtils.WrapPathErr(err)
	}

	return earliest, latest, nil
}
