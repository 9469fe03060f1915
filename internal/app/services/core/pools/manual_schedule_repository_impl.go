package pools

import (
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/app/models"
	"lapswim-service/internal/pkg/exceptions"
)

// manualScheduleFileRepository holds the hand-maintained schedule overrides,
// keyed by pool ID. The config file is optional: running without one just
// means every pool goes through automated extraction.
type manualScheduleFileRepository struct {
	overrides map[string]models.ManualSchedule
}

func NewManualScheduleFileRepository(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.ManualScheduleRepository, error) {
	path := internalConfig.Schedule.ManualSchedulesFile

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Info("manualScheduleFileRepository no manual schedules file, using automated parsing only",
			zap.String("path", path),
		)
		return &manualScheduleFileRepository{overrides: map[string]models.ManualSchedule{}}, nil
	}
	if err != nil {
		return nil, exceptions.ErrManualSchedulesLoad(err, path)
	}

	var overrides map[string]models.ManualSchedule
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, exceptions.ErrManualSchedulesLoad(err, path)
	}

	logger.Info("manualScheduleFileRepository loaded manual schedules",
		zap.String("path", path),
		zap.Int("override_count", len(overrides)),
	)

	return &manualScheduleFileRepository{overrides: overrides}, nil
}

func (r *manualScheduleFileRepository) FindByPoolID(poolID string) (*models.ManualSchedule, bool) {
	override, ok := r.overrides[poolID]
	if !ok {
		return nil, false
	}
	return &override, true
}
