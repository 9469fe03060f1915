package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingPoolIDKey        = "pool_id"
	LoggingPoolNameKey      = "pool_name"
	LoggingScheduleURLKey   = "schedule_url"
	LoggingSessionsCountKey = "sessions_count"
	LoggingOutcomeKey       = "outcome"
	LoggingCacheKeyKey      = "cache_key"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
