package schedules

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/contracts"
)

const defaultRefreshCronSpec = "0 6 * * *"

// RefreshWorker re-runs the full schedule refresh on a cron cadence so
// cached schedules track the published PDFs without restarts.
type RefreshWorker struct {
	ScheduleUsecase contracts.ScheduleUsecase
	CronSpec        string
	Log             *zap.Logger

	cron *cron.Cron
}

func NewRefreshWorker(
	scheduleUsecase contracts.ScheduleUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *RefreshWorker {
	cronSpec := internalConfig.Schedule.RefreshCronSpec
	if cronSpec == "" {
		cronSpec = defaultRefreshCronSpec
	}
	return &RefreshWorker{
		ScheduleUsecase: scheduleUsecase,
		CronSpec:        cronSpec,
		Log:             logger,
	}
}

func (w *RefreshWorker) Start() error {
	w.cron = cron.New()

	_, err := w.cron.AddFunc(w.CronSpec, func() {
		w.Log.Info("RefreshWorker running scheduled refresh",
			zap.String("cron_spec", w.CronSpec),
		)
		if err := w.ScheduleUsecase.RefreshAll(context.Background()); err != nil {
			w.Log.Error("RefreshWorker refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	w.Log.Info("RefreshWorker started", zap.String("cron_spec", w.CronSpec))
	return nil
}

// Stop halts the scheduler and waits for an in-flight refresh to finish.
func (w *RefreshWorker) Stop() {
	if w.cron == nil {
		return
	}
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.Log.Info("RefreshWorker stopped")
}
