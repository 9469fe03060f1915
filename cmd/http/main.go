package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/delivery/http/controllers"
	"lapswim-service/internal/app/delivery/http/middlewares"
	"lapswim-service/internal/app/delivery/http/routers"
	"lapswim-service/internal/app/drivers/database"
	"lapswim-service/internal/app/drivers/logger"
	"lapswim-service/internal/app/services/core/pools"
	"lapswim-service/internal/app/services/core/schedules"
	"lapswim-service/internal/app/services/shared/pdftext"
	"lapswim-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error during shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// PDF text collaborator
	pdfTextService := pdftext.NewPDFTextService(bootstrap.InternalConfig, redisRepository, bootstrap.Logger)

	// Pools
	poolRepository, err := pools.NewPoolFileRepository(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error loading pool registry: %v", err)
	}
	poolUsecase := pools.NewPoolUsecase(poolRepository, bootstrap.Logger)
	poolController := controllers.NewPoolController(bootstrap.Logger, poolUsecase)

	// Manual schedule overrides
	manualScheduleRepository, err := pools.NewManualScheduleFileRepository(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Error loading manual schedules: %v", err)
	}

	// Schedules
	scheduleUsecase := schedules.NewScheduleUsecase(
		poolRepository,
		manualScheduleRepository,
		pdfTextService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, scheduleUsecase)
	healthController := controllers.NewHealthController(bootstrap.Logger, scheduleUsecase)

	// Warm the schedule cache before serving so the first request does not
	// pay for every PDF fetch.
	go func() {
		if err := scheduleUsecase.RefreshAll(context.Background()); err != nil {
			bootstrap.Logger.Error("initial schedule refresh failed", zap.Error(err))
		}
	}()

	// Refresh worker
	refreshWorker := schedules.NewRefreshWorker(scheduleUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	if err := refreshWorker.Start(); err != nil {
		logrus.Fatalf("Error starting refresh worker: %v", err)
	}
	bootstrap.WorkerStop = refreshWorker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		poolController,
		scheduleController,
		availabilityController,
		healthController,
	)
}
