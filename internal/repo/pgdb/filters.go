package pgdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
)

// sortColumns is the whitelist of client-sortable columns. Anything else
// falls back to timestamp, including real columns like message.
var sortColumns = map[string]string{
	"timestamp": "timestamp",
	"severity":  "severity",
	"source":    "source",
}

// bucketUnits is the whitelist of date_trunc units for the chart query.
var bucketUnits = map[string]string{
	"hour":  "hour",
	"day":   "day",
	"week":  "week",
	"month": "month",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// BuildLogConds turns a filter into a list of independent AND conditions.
// An empty slice means match everything; callers only add a WHERE clause
// when the slice is non-empty.
func BuildLogConds(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Severity != "" {
		conds = append(conds, sq.Eq{"severity": filter.Severity})
	}
	if filter.Source != "" {
		conds = append(conds, sq.ILike{"source": "%" + escapeLike(filter.Source) + "%"})
	}
	if filter.Search != "" {
		conds = append(conds, sq.ILike{"message": "%" + escapeLike(filter.Search) + "%"})
	}
	if !filter.StartDate.IsZero() {
		conds = append(conds, sq.GtOrEq{"timestamp": filter.StartDate})
	}
	if !filter.EndDate.IsZero() {
		conds = append(conds, sq.LtOrEq{"timestamp": filter.EndDate})
	}
	if filter.CreatedBy != "" {
		conds = append(conds, sq.Eq{"created_by": filter.CreatedBy})
	}
	if filter.UpdatedBy != "" {
		conds = append(conds, sq.Eq{"updated_by": filter.UpdatedBy})
	}

	return conds
}

// ResolveSort maps a requested sort field and direction onto a safe ORDER BY
// clause. Unknown fields become timestamp, anything but "asc" becomes DESC.
func ResolveSort(field, order string) string {
	col, ok := sortColumns[field]
	if !ok {
		col = "timestamp"
	}

	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}

	return col + " " + dir
}

// ResolveBucket maps a groupBy value onto a date_trunc unit, defaulting to
// day for absent or unknown values.
func ResolveBucket(groupBy string) string {
	unit, ok := bucketUnits[groupBy]
	if !ok {
		return "day"
	}
	return unit
}
