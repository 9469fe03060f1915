package routers

import (
	"github.com/go-chi/chi/v5"

	"lapswim-service/internal/app/delivery/http/controllers"
	"lapswim-service/internal/app/delivery/http/middlewares"
)

func attachHealthRoutes(router chi.Router, middlewares *middlewares.Middlewares, healthController *controllers.HealthController) {
	router.Get("/", healthController.Check)
}
