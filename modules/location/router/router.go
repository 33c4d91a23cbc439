package router

import (
	"eventmap-api/modules/location/controller"

	"github.com/labstack/echo/v4"
)

type LocationRouter struct {
	controller *controller.LocationController
}

func NewLocationRouter(controller *controller.LocationController) *LocationRouter {
	return &LocationRouter{controller: controller}
}

func (r *LocationRouter) Register(e *echo.Echo) {
	e.GET("/locations", r.controller.List)
	e.POST("/locations", r.controller.Create)
	e.PUT("/locations/:id", r.controller.Update)
	e.DELETE("/locations/:id", r.controller.Delete)
}
