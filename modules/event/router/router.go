package router

import (
	"eventmap-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(e *echo.Echo) {
	e.GET("/events", r.controller.List)
	e.POST("/events", r.controller.Create)
	e.PUT("/events/:id", r.controller.Update)
	e.DELETE("/events/:id", r.controller.Delete)
}
