package domain

import "time"

const (
	MaxSourceLen  = 100
	MaxMessageLen = 1000
)

// LogEntry is the persisted record. CreatedBy/UpdatedBy stay nil while
// authentication is disabled.
type LogEntry struct {
	ID        string    `db:"id" json:"id"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	Severity  Severity  `db:"severity" json:"severity"`
	Source    string    `db:"source" json:"source"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy *string   `db:"created_by" json:"createdBy"`
	UpdatedBy *string   `db:"updated_by" json:"updatedBy"`
}

// LogPage is one page of the listing query.
type LogPage struct {
	Logs       []LogEntry `json:"logs"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

type SeverityCount struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LogSummary holds four parallel breakdowns of the same filtered set.
// Groups with zero matching rows are absent from their slice.
type LogSummary struct {
	TotalLogs      int             `json:"totalLogs"`
	DateRangeStart *time.Time      `json:"dateRangeStart"`
	DateRangeEnd   *time.Time      `json:"dateRangeEnd"`
	BySeverity     []SeverityCount `json:"bySeverity"`
	BySource       []SourceCount   `json:"bySource"`
	ByDate         []DateCount     `json:"byDate"`
}

// SeriesPoint is one time bucket with a count column per severity level.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Total     int       `json:"total"`
	Debug     int       `json:"DEBUG"`
	Info      int       `json:"INFO"`
	Warning   int       `json:"WARNING"`
	Error     int       `json:"ERROR"`
	Critical  int       `json:"CRITICAL"`
}

// Add bumps the column for sev and the running total. Unknown severities
// only count toward the total; the schema forbids them anyway.
func (p *SeriesPoint) Add(sev Severity, n int) {
	switch sev {
	case SeverityDebug:
		p.Debug += n
	case SeverityInfo:
		p.Info += n
	case SeverityWarning:
		p.Warning += n
	case SeverityError:
		p.Error += n
	case SeverityCritical:
		p.Critical += n
	}
	p.Total += n
}

type SeriesFilters struct {
	Severity string `json:"severity"`
	Source   string `json:"source"`
}

// LogSeries is a sparse series: buckets with no rows are omitted, not
// zero-filled.
type LogSeries struct {
	Data      []SeriesPoint `json:"data"`
	GroupBy   string        `json:"groupBy"`
	StartDate *time.Time    `json:"startDate"`
	EndDate   *time.Time    `json:"endDate"`
	Filters   SeriesFilters `json:"filters"`
}

type DateRange struct {
	Earliest *time.Time `json:"earliest"`
	Latest   *time.Time `json:"latest"`
}

type PaginationInfo struct {
	DefaultPageSize int `json:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize"`
}

// LogsMeta is computed over the whole table, ignoring any active filter.
type LogsMeta struct {
	SeverityLevels []SeverityLevel  `json:"severityLevels"`
	Sources        []string         `json:"sources"`
	DateRange      DateRange        `json:"dateRange"`
	SeverityStats  map[Severity]int `json:"severityStats"`
	TotalLogs      int              `json:"totalLogs"`
	SortFields     []string         `json:"sortFields"`
	Pagination     PaginationInfo   `json:"pagination"`
}
