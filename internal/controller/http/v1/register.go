package v1

import (
	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	logCtrl := NewLogController(services.Log, counters)
	analyticsCtrl := NewAnalyticsController(services.Analytics, counters)
	exportCtrl := NewExportController(services.Export, counters)

	logs := handler.Group("/api/v1/logs", Identity())

	logs.GET("", logCtrl.list)
	logs.POST("", logCtrl.create)
	logs.GET("/summary", analyticsCtrl.summary)
	logs.GET("/chart", analyticsCtrl.chart)
	logs.GET("/meta", analyticsCtrl.meta)
	logs.GET("/export", exportCtrl.exportCSV)
	logs.GET("/:id", logCtrl.get)
	logs.PATCH("/:id", logCtrl.update)
	logs.DELETE("/:id", logCtrl.delete)
}
