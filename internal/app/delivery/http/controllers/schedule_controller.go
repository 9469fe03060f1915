package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/pkg/constvars"
	"lapswim-service/internal/pkg/exceptions"
	"lapswim-service/internal/pkg/utils"
)

// refreshTimeout allows for fetching and converting every pool's PDF; the
// 10s timeout used elsewhere is not enough when caches are cold.
const refreshTimeout = 120 * time.Second

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetAllSchedules(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, result)
}

func (ctrl *ScheduleController) FindByPoolID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()

	poolID := chi.URLParam(r, "poolID")

	result, err := ctrl.ScheduleUsecase.GetSchedule(ctx, poolID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, result)
}

func (ctrl *ScheduleController) RefreshAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()

	if err := ctrl.ScheduleUsecase.RefreshAll(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.ScheduleUsecase.GetAllSchedules(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshSchedulesSuccessMessage, result)
}

func (ctrl *ScheduleController) RefreshOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()

	poolID := chi.URLParam(r, "poolID")

	result, err := ctrl.ScheduleUsecase.RefreshOne(ctx, poolID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshScheduleSuccessMessage, result)
}
