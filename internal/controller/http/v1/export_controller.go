package v1

import (
	"fmt"
	"time"

	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type ExportController struct {
	export   service.Export
	counters *metrics.Counters
}

func NewExportController(es service.Export, cnt *metrics.Counters) *ExportController {
	return &ExportController{
		export:   es,
		counters: cnt,
	}
}

func (ct *ExportController) exportCSV(c echo.Context) error {
	params, err := listParamsFromQuery(c)
	if err != nil {
		ct.counters.APIRequests.Inc("exportCSV", "failed")
		return writeBadRequest(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", service.ExportFilename(time.Now())))

	// the status line goes out with the first CSV write; the query runs
	// before that, so query failures still produce a JSON error
	if err := ct.export.WriteCSV(c.Request().Context(), res, params); err != nil {
		ct.counters.APIRequests.Inc("exportCSV", "failed")
		if res.Committed {
			// the status line is already out; appending a JSON error would
			// corrupt the CSV body
			log.WithField("path", c.Path()).Errorf("export aborted mid-stream: %v", err)
			return nil
		}
		res.Header().Del(echo.HeaderContentDisposition)
		res.Header().Del(echo.HeaderContentType)
		return writeError(c, err)
	}

	ct.counters.APIRequests.Inc("exportCSV", "ok")
	return nil
}
