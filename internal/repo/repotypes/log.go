package repotypes

import (
	"time"

	"github.com/jtclarkjr/logboard/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	ExportMaxRows   = 5000
)

// LogFilter carries the optional listing constraints. Zero values mean
// "not supplied" and produce no condition.
type LogFilter struct {
	Severity  string
	Source    string
	Search    string
	StartDate time.Time
	EndDate   time.Time
	CreatedBy string
	UpdatedBy string
}

type ListParams struct {
	Filter    LogFilter
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Normalize clamps page and page size in place. Out-of-range pages are kept
// as requested; they just produce an empty row set.
func (p *ListParams) Normalize(defaultSize, maxSize int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
}

func (p ListParams) Limit() uint64 {
	return uint64(p.PageSize)
}

func (p ListParams) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.PageSize)
}

// TotalPages is ceil(total/size) with 0 for an empty result set.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// UpdateLog is a partial patch: nil fields keep their prior values.
type UpdateLog struct {
	Timestamp *time.Time
	Severity  *domain.Severity
	Source    *string
	Message   *string
}

func (u UpdateLog) Empty() bool {
	return u.Timestamp == nil && u.Severity == nil && u.Source == nil && u.Message == nil
}

// BucketCount is one (time bucket, severity) group before pivoting.
type BucketCount struct {
	Bucket   time.Time
	Severity domain.Severity
	Count    int
}
