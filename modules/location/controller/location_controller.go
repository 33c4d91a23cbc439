package controller

import (
	"net/http"

	"eventmap-api/core/constants"
	"eventmap-api/core/controller"
	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/modules/location/dto"
	"eventmap-api/modules/location/service"

	"github.com/labstack/echo/v4"
)

type LocationController struct {
	controller.BaseController
	service service.LocationServiceInterface
}

func NewLocationController(service service.LocationServiceInterface) *LocationController {
	return &LocationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// List returns the bare array the map front end consumes. Failed reads
// degrade to an empty list with an error status handled upstream.
func (c *LocationController) List(ctx echo.Context) error {
	locations, err := c.service.List(ctx.Request().Context())
	if err != nil {
		logger.Error("LocationController:List:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set("Cache-Control", constants.PublicReadCacheControl)
	return ctx.JSON(http.StatusOK, locations)
}

func (c *LocationController) Create(ctx echo.Context) error {
	req := new(dto.CreateLocationRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	created, err := c.service.Create(ctx.Request().Context(), req)
	if err != nil {
		logger.Error("LocationController:Create:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, created, "Location created")
}

func (c *LocationController) Update(ctx echo.Context) error {
	id := ctx.Param("id")

	req := new(dto.UpdateLocationRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	if err := c.service.Update(ctx.Request().Context(), id, req); err != nil {
		logger.Error("LocationController:Update:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Location updated")
}

func (c *LocationController) Delete(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.service.Remove(ctx.Request().Context(), id); err != nil {
		logger.Error("LocationController:Delete:ServiceError", "error", err)
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, nil, "Location deleted")
}
