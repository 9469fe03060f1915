package contracts

import (
	"context"

	"lapswim-service/internal/app/models"
	"lapswim-service/internal/pkg/dto/requests"
	"lapswim-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	GetAllSchedules(ctx context.Context) ([]responses.Schedule, error)
	GetSchedule(ctx context.Context, poolID string) (*responses.Schedule, error)
	RefreshAll(ctx context.Context) error
	RefreshOne(ctx context.Context, poolID string) (*responses.Schedule, error)
	CheckAvailability(ctx context.Context, request *requests.AvailabilityQuery) (*responses.Availability, error)
	CheckWindow(ctx context.Context, request *requests.AvailabilityWindowQuery) (*responses.WindowAvailability, error)
	Stats(ctx context.Context) (*responses.Health, error)
}

// ManualScheduleRepository resolves human-authored schedule overrides. An
// override, when present, always wins over automated extraction.
type ManualScheduleRepository interface {
	FindByPoolID(poolID string) (*models.ManualSchedule, bool)
}
