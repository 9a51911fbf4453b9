package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	"github.com/labstack/echo/v4"
)

// Accepted timestamp shapes for date filters: full instants or bare dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDateParam(name, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s: expected RFC3339 or YYYY-MM-DD", name)
}

func filterFromQuery(c echo.Context) (repotypes.LogFilter, error) {
	filter := repotypes.LogFilter{
		Severity:  c.QueryParam("severity"),
		Source:    c.QueryParam("source"),
		Search:    c.QueryParam("search"),
		CreatedBy: c.QueryParam("createdBy"),
		UpdatedBy: c.QueryParam("updatedBy"),
	}

	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseDateParam("startDate", v)
		if err != nil {
			return repotypes.LogFilter{}, err
		}
		filter.StartDate = t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseDateParam("endDate", v)
		if err != nil {
			return repotypes.LogFilter{}, err
		}
		filter.EndDate = t
	}

	return filter, nil
}

// listParamsFromQuery tolerates malformed page numbers the same way the sort
// resolver tolerates unknown fields: fall back, never error.
func listParamsFromQuery(c echo.Context) (repotypes.ListParams, error) {
	filter, err := filterFromQuery(c)
	if err != nil {
		return repotypes.ListParams{}, err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	return repotypes.ListParams{
		Filter:    filter,
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
	}, nil
}
