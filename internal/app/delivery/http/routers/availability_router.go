package routers

import (
	"github.com/go-chi/chi/v5"

	"lapswim-service/internal/app/delivery/http/controllers"
	"lapswim-service/internal/app/delivery/http/middlewares"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Get("/", availabilityController.CheckAvailability)
	router.Get("/window", availabilityController.CheckWindow)
}
