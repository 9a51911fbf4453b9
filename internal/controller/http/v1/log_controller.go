package v1

import (
	"net/http"
	"time"

	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/labstack/echo/v4"
)

type createLogRequest struct {
	Message   string     `json:"message"`
	Severity  string     `json:"severity"`
	Source    string     `json:"source"`
	Timestamp *time.Time `json:"timestamp"`
}

type updateLogRequest struct {
	Message   *string    `json:"message"`
	Severity  *string    `json:"severity"`
	Source    *string    `json:"source"`
	Timestamp *time.Time `json:"timestamp"`
}

type deleteLogResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LogController struct {
	logService service.Log
	counters   *metrics.Counters
}

func NewLogController(ls service.Log, cnt *metrics.Counters) *LogController {
	return &LogController{
		logService: ls,
		counters:   cnt,
	}
}

func (ct *LogController) list(c echo.Context) error {
	params, err := listParamsFromQuery(c)
	if err != nil {
		ct.counters.APIRequests.Inc("listLogs", "failed")
		return writeBadRequest(c, err)
	}

	page, err := ct.logService.ListLogs(c.Request().Context(), params)
	if err != nil {
		ct.counters.APIRequests.Inc("listLogs", "failed")
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("listLogs", "ok")
	return c.JSON(http.StatusOK, page)
}

func (ct *LogController) get(c echo.Context) error {
	entry, err := ct.logService.GetLog(c.Request().Context(), c.Param("id"))
	if err != nil {
		ct.counters.APIRequests.Inc("getLog", "failed")
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("getLog", "ok")
	return c.JSON(http.StatusOK, entry)
}

func (ct *LogController) create(c echo.Context) error {
	var req createLogRequest
	if err := c.Bind(&req); err != nil {
		ct.counters.APIRequests.Inc("createLog", "failed")
		return writeBadRequest(c, err)
	}

	entry, err := ct.logService.CreateLog(c.Request().Context(), service.CreateLogInput{
		Timestamp: req.Timestamp,
		Severity:  req.Severity,
		Source:    req.Source,
		Message:   req.Message,
	}, actorFrom(c))
	if err != nil {
		ct.counters.APIRequests.Inc("createLog", "failed")
		logMutationError("create", "", err)
		return writeError(c, err)
	}

	logCreated(entry)
	ct.counters.APIRequests.Inc("createLog", "ok")
	return c.JSON(http.StatusCreated, entry)
}

func (ct *LogController) update(c echo.Context) error {
	var req updateLogRequest
	if err := c.Bind(&req); err != nil {
		ct.counters.APIRequests.Inc("updateLog", "failed")
		return writeBadRequest(c, err)
	}

	id := c.Param("id")
	entry, err := ct.logService.UpdateLog(c.Request().Context(), id, service.UpdateLogInput{
		Timestamp: req.Timestamp,
		Severity:  req.Severity,
		Source:    req.Source,
		Message:   req.Message,
	}, actorFrom(c))
	if err != nil {
		ct.counters.APIRequests.Inc("updateLog", "failed")
		logMutationError("update", id, err)
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("updateLog", "ok")
	return c.JSON(http.StatusOK, entry)
}

func (ct *LogController) delete(c echo.Context) error {
	id := c.Param("id")
	if err := ct.logService.DeleteLog(c.Request().Context(), id, actorFrom(c)); err != nil {
		ct.counters.APIRequests.Inc("deleteLog", "failed")
		logMutationError("delete", id, err)
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("deleteLog", "ok")
	return c.JSON(http.StatusOK, deleteLogResponse{
		Success: true,
		Message: "log entry deleted",
	})
}
