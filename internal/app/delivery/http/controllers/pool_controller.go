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

type PoolController struct {
	Log         *zap.Logger
	PoolUsecase contracts.PoolUsecase
}

func NewPoolController(logger *zap.Logger, poolUsecase contracts.PoolUsecase) *PoolController {
	return &PoolController{
		Log:         logger,
		PoolUsecase: poolUsecase,
	}
}

func (ctrl *PoolController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PoolUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPoolsSuccessMessage, result)
}

func (ctrl *PoolController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	poolID := chi.URLParam(r, "poolID")

	result, err := ctrl.PoolUsecase.FindByID(ctx, poolID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPoolSuccessMessage, result)
}
