package config

import (
	"github.com/joho/godotenv"

	"lapswim-service/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":3001"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "America/Los_Angeles"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		PDF: PDF{
			TikaURL:              utils.GetEnvString("PDF_TIKA_URL", "http://localhost:9998"),
			FetchTimeoutInSecond: utils.GetEnvInt("PDF_FETCH_TIMEOUT_IN_SECOND", 30),
			CacheTTLInHour:       utils.GetEnvInt("PDF_CACHE_TTL_IN_HOUR", 168),
		},
		Schedule: Schedule{
			ActivityLabel:       utils.GetEnvString("SCHEDULE_ACTIVITY_LABEL", "lap swim"),
			RefreshCronSpec:     utils.GetEnvString("SCHEDULE_REFRESH_CRON", "0 6 * * *"),
			PoolsConfigFile:     utils.GetEnvString("POOLS_CONFIG_FILE", "configs/pools.json"),
			ManualSchedulesFile: utils.GetEnvString("MANUAL_SCHEDULES_FILE", "configs/manual_schedules.json"),
		},
	}
}
