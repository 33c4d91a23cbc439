package location

import (
	"eventmap-api/core/cache"
	"eventmap-api/core/database"
	"eventmap-api/modules/location/controller"
	"eventmap-api/modules/location/repository"
	"eventmap-api/modules/location/router"
	"eventmap-api/modules/location/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache) {
	repo := repository.NewLocationRepository(db)
	svc := service.NewLocationService(repo, cache)
	ctrl := controller.NewLocationController(svc)

	router.NewLocationRouter(ctrl).Register(e)
}
