package v1

import (
	"net/http"

	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/labstack/echo/v4"
)

type AnalyticsController struct {
	analytics service.Analytics
	counters  *metrics.Counters
}

func NewAnalyticsController(as service.Analytics, cnt *metrics.Counters) *AnalyticsController {
	return &AnalyticsController{
		analytics: as,
		counters:  cnt,
	}
}

func (ct *AnalyticsController) summary(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		ct.counters.APIRequests.Inc("summary", "failed")
		return writeBadRequest(c, err)
	}

	summary, err := ct.analytics.Summary(c.Request().Context(), filter)
	if err != nil {
		ct.counters.APIRequests.Inc("summary", "failed")
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("summary", "ok")
	return c.JSON(http.StatusOK, summary)
}

func (ct *AnalyticsController) chart(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		ct.counters.APIRequests.Inc("chart", "failed")
		return writeBadRequest(c, err)
	}

	series, err := ct.analytics.Series(c.Request().Context(), filter, c.QueryParam("groupBy"))
	if err != nil {
		ct.counters.APIRequests.Inc("chart", "failed")
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("chart", "ok")
	return c.JSON(http.StatusOK, series)
}

func (ct *AnalyticsController) meta(c echo.Context) error {
	meta, err := ct.analytics.Meta(c.Request().Context())
	if err != nil {
		ct.counters.APIRequests.Inc("meta", "failed")
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("meta", "ok")
	return c.JSON(http.StatusOK, meta)
}
