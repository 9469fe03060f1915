package schedules

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
	"lapswim-service/internal/app/contracts"
	"lapswim-service/internal/app/models"
	"lapswim-service/internal/pkg/constvars"
	"lapswim-service/internal/pkg/dto/requests"
	"lapswim-service/internal/pkg/dto/responses"
	"lapswim-service/internal/pkg/exceptions"
)

type scheduleUsecase struct {
	PoolRepository           contracts.PoolRepository
	ManualScheduleRepository contracts.ManualScheduleRepository
	PDFTextService           contracts.PDFTextService
	Extractor                *Extractor
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger

	mu        sync.RWMutex
	schedules map[string]*models.Schedule
}

func NewScheduleUsecase(
	poolRepository contracts.PoolRepository,
	manualScheduleRepository contracts.ManualScheduleRepository,
	pdfTextService contracts.PDFTextService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		PoolRepository:           poolRepository,
		ManualScheduleRepository: manualScheduleRepository,
		PDFTextService:           pdfTextService,
		Extractor:                NewExtractor(internalConfig.Schedule.ActivityLabel),
		InternalConfig:           internalConfig,
		Log:                      logger,
		schedules:                make(map[string]*models.Schedule),
	}
}

// GetAllSchedules returns every cached schedule in pool registry order,
// refreshing the whole set first if the cache is empty.
func (uc *scheduleUsecase) GetAllSchedules(ctx context.Context) ([]responses.Schedule, error) {
	if uc.cachedCount() == 0 {
		if err := uc.RefreshAll(ctx); err != nil {
			return nil, err
		}
	}

	pools, err := uc.PoolRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	result := make([]responses.Schedule, 0, len(pools))
	for _, pool := range pools {
		if schedule, ok := uc.schedules[pool.ID]; ok {
			result = append(result, schedule.ConvertIntoResponse())
		}
	}
	return result, nil
}

func (uc *scheduleUsecase) GetSchedule(ctx context.Context, poolID string) (*responses.Schedule, error) {
	pool, err := uc.PoolRepository.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	uc.mu.RLock()
	schedule, ok := uc.schedules[pool.ID]
	uc.mu.RUnlock()

	if !ok {
		return uc.RefreshOne(ctx, pool.ID)
	}

	response := schedule.ConvertIntoResponse()
	return &response, nil
}

// RefreshAll refreshes every registered pool concurrently. Each pool settles
// independently: one failed fetch never blocks or aborts the others, and a
// pool whose refresh fails keeps whatever schedule it had cached before.
func (uc *scheduleUsecase) RefreshAll(ctx context.Context) error {
	pools, err := uc.PoolRepository.FindAll(ctx)
	if err != nil {
		return err
	}

	uc.Log.Info("scheduleUsecase.RefreshAll refreshing schedules",
		zap.Int("pool_count", len(pools)),
	)

	var wg sync.WaitGroup
	for _, pool := range pools {
		wg.Add(1)
		go func(pool models.Pool) {
			defer wg.Done()
			uc.refreshPool(ctx, pool)
		}(pool)
	}
	wg.Wait()

	uc.Log.Info("scheduleUsecase.RefreshAll done",
		zap.Int("schedules_cached", uc.cachedCount()),
	)
	return nil
}

func (uc *scheduleUsecase) RefreshOne(ctx context.Context, poolID string) (*responses.Schedule, error) {
	pool, err := uc.PoolRepository.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}

	uc.refreshPool(ctx, *pool)

	uc.mu.RLock()
	schedule, ok := uc.schedules[pool.ID]
	uc.mu.RUnlock()

	if !ok {
		return nil, exceptions.ErrScheduleNotAvailable(fmt.Errorf("no schedule for pool %s", pool.ID))
	}

	response := schedule.ConvertIntoResponse()
	return &response, nil
}

// refreshPool resolves one pool's schedule. Resolution order: a manual
// override wins outright and skips fetching; a pool without a schedule URL is
// recorded as unavailable only if nothing is cached yet; an extraction
// attempt replaces the cache entry on success and leaves the stale entry in
// place on failure.
func (uc *scheduleUsecase) refreshPool(ctx context.Context, pool models.Pool) models.RefreshOutcome {
	if manual, ok := uc.ManualScheduleRepository.FindByPoolID(pool.ID); ok {
		schedule := &models.Schedule{
			PoolID:          pool.ID,
			PoolName:        pool.Name,
			LapSwimSessions: ConvertManualSessions(manual),
			RawText:         constvars.ManualScheduleRawText,
			ScheduleURL:     pool.ScheduleURL,
			LastUpdated:     time.Now(),
			IsManual:        true,
		}
		uc.storeSchedule(schedule)
		uc.logOutcome(pool, models.RefreshOutcomeManual, len(schedule.LapSwimSessions))
		return models.RefreshOutcomeManual
	}

	// No source configured is a terminal state, not an error. Nothing is
	// stored: an absent cache entry stays distinct from a fetched schedule
	// that happened to contain zero sessions.
	if pool.ScheduleURL == "" {
		uc.logOutcome(pool, models.RefreshOutcomeUnavailable, 0)
		return models.RefreshOutcomeUnavailable
	}

	rawText, err := uc.PDFTextService.FetchText(ctx, pool.ScheduleURL)
	if err != nil {
		uc.Log.Error("scheduleUsecase.refreshPool fetch failed, keeping cached schedule",
			zap.String(constvars.LoggingPoolIDKey, pool.ID),
			zap.String(constvars.LoggingScheduleURLKey, pool.ScheduleURL),
			zap.Error(err),
		)
		return models.RefreshOutcomeFailed
	}

	sessions := uc.Extractor.Extract(rawText)
	schedule := &models.Schedule{
		PoolID:          pool.ID,
		PoolName:        pool.Name,
		LapSwimSessions: sessions,
		RawText:         rawText,
		ScheduleURL:     pool.ScheduleURL,
		LastUpdated:     time.Now(),
	}
	uc.storeSchedule(schedule)
	uc.logOutcome(pool, models.RefreshOutcomeExtracted, len(sessions))
	return models.RefreshOutcomeExtracted
}

func (uc *scheduleUsecase) CheckAvailability(ctx context.Context, request *requests.AvailabilityQuery) (*responses.Availability, error) {
	location := uc.timezone()
	now := time.Now().In(location)

	day := now.Weekday().String()
	if request.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", request.Date, location)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		day = parsed.Weekday().String()
	}

	clock := models.ClockTime{Hour: now.Hour(), Minute: now.Minute()}
	if request.Time != "" {
		parsed, err := time.Parse("15:04", request.Time)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		clock = models.ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}
	}

	availablePools, err := uc.collectAvailability(ctx, func(sessions []models.Session) []models.Session {
		return SessionsAt(sessions, day, clock.MinuteOfDay())
	})
	if err != nil {
		return nil, err
	}

	return &responses.Availability{
		RequestedTime:  fmt.Sprintf("%s %s", day, clock.Format12Hour()),
		AvailablePools: availablePools,
	}, nil
}

func (uc *scheduleUsecase) CheckWindow(ctx context.Context, request *requests.AvailabilityWindowQuery) (*responses.WindowAvailability, error) {
	windowStart, err := parseMinuteOfDay(request.Start)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	windowEnd, err := parseMinuteOfDay(request.End)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	pools, err := uc.collectAvailability(ctx, func(sessions []models.Session) []models.Session {
		return SessionsOverlapping(sessions, request.Day, windowStart, windowEnd)
	})
	if err != nil {
		return nil, err
	}

	return &responses.WindowAvailability{
		Day:         request.Day,
		WindowStart: request.Start,
		WindowEnd:   request.End,
		Pools:       pools,
	}, nil
}

func (uc *scheduleUsecase) Stats(ctx context.Context) (*responses.Health, error) {
	pools, err := uc.PoolRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.Health{
		Status:          "ok",
		SchedulesLoaded: uc.cachedCount(),
		TotalPools:      len(pools),
	}, nil
}

// collectAvailability runs the given session filter against every cached
// schedule, in pool registry order, and keeps only pools with at least one
// matching session.
func (uc *scheduleUsecase) collectAvailability(ctx context.Context, filter func([]models.Session) []models.Session) ([]responses.PoolAvailability, error) {
	if uc.cachedCount() == 0 {
		if err := uc.RefreshAll(ctx); err != nil {
			return nil, err
		}
	}

	pools, err := uc.PoolRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	result := make([]responses.PoolAvailability, 0)
	for _, pool := range pools {
		schedule, ok := uc.schedules[pool.ID]
		if !ok {
			continue
		}
		matched := filter(schedule.LapSwimSessions)
		if len(matched) == 0 {
			continue
		}
		sessions := make([]responses.Session, 0, len(matched))
		for _, session := range matched {
			sessions = append(sessions, session.ConvertIntoResponse())
		}
		result = append(result, responses.PoolAvailability{
			Pool:     pool.ConvertIntoResponse(),
			Sessions: sessions,
		})
	}
	return result, nil
}

func (uc *scheduleUsecase) storeSchedule(schedule *models.Schedule) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.schedules[schedule.PoolID] = schedule
}

func (uc *scheduleUsecase) cachedCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.schedules)
}

func (uc *scheduleUsecase) timezone() *time.Location {
	location, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}

func (uc *scheduleUsecase) logOutcome(pool models.Pool, outcome models.RefreshOutcome, sessionCount int) {
	uc.Log.Info("scheduleUsecase.refreshPool resolved schedule",
		zap.String(constvars.LoggingPoolIDKey, pool.ID),
		zap.String(constvars.LoggingPoolNameKey, pool.Name),
		zap.String(constvars.LoggingOutcomeKey, string(outcome)),
		zap.Int(constvars.LoggingSessionsCountKey, sessionCount),
	)
}

func parseMinuteOfDay(value string) (int, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
