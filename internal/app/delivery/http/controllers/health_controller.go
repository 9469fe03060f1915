package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/pkg/constvars"
	"lapswim-service/internal/pkg/utils"
)

type HealthController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewHealthController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *HealthController {
	return &HealthController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.Stats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHealthSuccessMessage, result)
}
