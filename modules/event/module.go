package event

import (
	"eventmap-api/core/cache"
	"eventmap-api/core/database"
	"eventmap-api/modules/event/controller"
	"eventmap-api/modules/event/repository"
	"eventmap-api/modules/event/router"
	"eventmap-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, cache)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(e)
}
