package routers

import (
	"github.com/go-chi/chi/v5"

	"lapswim-service/internal/app/delivery/http/controllers"
	"lapswim-service/internal/app/delivery/http/middlewares"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Get("/", scheduleController.FindAll)
	router.Post("/refresh", scheduleController.RefreshAll)
	router.Get("/{poolID}", scheduleController.FindByPoolID)
	router.Post("/{poolID}/refresh", scheduleController.RefreshOne)
}
