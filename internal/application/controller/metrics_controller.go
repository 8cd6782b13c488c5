package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsController struct {
	api *echo.Group
}

func NewMetricsController(api *echo.Group) *MetricsController {
	return &MetricsController{api: api}
}

// InitMetricsRoutes exposes the default Prometheus registry
func (controller *MetricsController) InitMetricsRoutes() {
	controller.api.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
