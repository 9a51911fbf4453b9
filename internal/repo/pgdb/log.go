package pgdb

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/repo/repoerrs"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	errorsUtils "github.com/jtclarkjr/logboard/pkg/errors"
	"github.com/jtclarkjr/logboard/pkg/postgres"
)

var logColumns = []string{
	"id", "timestamp", "severity", "source", "message",
	"created_at", "updated_at", "created_by", "updated_by",
}

const returningLogColumns = "RETURNING id, timestamp, severity, source, message, created_at, updated_at, created_by, updated_by"

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

// ListLogs returns one page of matching rows plus the total match count
// under the same predicate. A page past the end yields an empty slice.
func (r *LogRepo) ListLogs(ctx context.Context, params repotypes.ListParams) ([]domain.LogEntry, int, error) {
	conds := BuildLogConds(params.Filter)

	total, err := r.CountLogs(ctx, params.Filter)
	if err != nil {
		return nil, 0, err
	}

	query := r.Builder.
		Select(logColumns...).
		From("logs").
		OrderBy(ResolveSort(params.SortBy, params.SortOrder)).
		Limit(params.Limit()).
		Offset(params.Offset())

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		return nil, 0, errorsUtils.WrapPathErr(err)
	}

	return logs, total, nil
}

func (r *LogRepo) GetLog(ctx context.Context, id string) (domain.LogEntry, error) {
	sql, args, err := r.Builder.
		Select(logColumns...).
		From("logs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LogEntry{}, repoerrs.ErrNotFound
		}
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return entry, nil
}

func (r *LogRepo) CreateLog(ctx context.Context, entry *domain.LogEntry) error {
	sql, args, err := r.Builder.
		Insert("logs").
		Columns(logColumns...).
		Values(
			entry.ID, entry.Timestamp, entry.Severity, entry.Source, entry.Message,
			entry.CreatedAt, entry.UpdatedAt, entry.CreatedBy, entry.UpdatedBy,
		).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

// UpdateLog applies a partial patch and always refreshes the audit stamps.
func (r *LogRepo) UpdateLog(ctx context.Context, id string, patch repotypes.UpdateLog, updatedAt time.Time, updatedBy *string) (domain.LogEntry, error) {
	query := r.Builder.
		Update("logs").
		Set("updated_at", updatedAt).
		Set("updated_by", updatedBy).
		Where(sq.Eq{"id": id}).
		Suffix(returningLogColumns)

	if patch.Timestamp != nil {
		query = query.Set("timestamp", *patch.Timestamp)
	}
	if patch.Severity != nil {
		query = query.Set("severity", *patch.Severity)
	}
	if patch.Source != nil {
		query = query.Set("source", *patch.Source)
	}
	if patch.Message != nil {
		query = query.Set("message", *patch.Message)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LogEntry{}, repoerrs.ErrNotFound
		}
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	return entry, nil
}

func (r *LogRepo) DeleteLog(ctx context.Context, id string) error {
	sql, args, err := r.Builder.
		Delete("logs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}

	return nil
}
