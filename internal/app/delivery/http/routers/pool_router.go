package routers

import (
	"github.com/go-chi/chi/v5"

	"lapswim-service/internal/app/delivery/http/controllers"
	"lapswim-service/internal/app/delivery/http/middlewares"
)

func attachPoolRoutes(router chi.Router, middlewares *middlewares.Middlewares, poolController *controllers.PoolController) {
	router.Get("/", poolController.FindAll)
	router.Get("/{poolID}", poolController.FindByID)
}
