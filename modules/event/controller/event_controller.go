package controller

import (
	"net/http"

	"eventmap-api/core/constants"
	"eventmap-api/core/controller"
	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/modules/event/dto"
	"eventmap-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service service.EventServiceInterface
}

func NewEventController(service service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *EventController) List(ctx echo.Context) error {
	events, err := c.service.List(ctx.Request().Context())
	if err != nil {
		logger.Error("EventController:List:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set("Cache-Control", constants.PublicReadCacheControl)
	return ctx.JSON(http.StatusOK, events)
}

func (c *EventController) Create(ctx echo.Context) error {
	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	created, err := c.service.Create(ctx.Request().Context(), req)
	if err != nil {
		logger.Error("EventController:Create:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, created, "Event created")
}

func (c *EventController) Update(ctx echo.Context) error {
	id := ctx.Param("id")

	req := new(dto.UpdateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	if err := c.service.Update(ctx.Request().Context(), id, req); err != nil {
		logger.Error("EventController:Update:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Event updated")
}

func (c *EventController) Delete(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.service.Remove(ctx.Request().Context(), id); err != nil {
		logger.Error("EventController:Delete:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted")
}
