package constvars

// Client-facing error messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientPoolNotFound                  = "Pool not found"
	ErrClientScheduleNotAvailable          = "Schedule not available"
)

// Developer-facing error messages.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON      = "Failed to marshal value to JSON"
	ErrDevCannotParseDate        = "Failed to parse date or time value"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing request"

	ErrDevPoolNotFound          = "Pool with the given ID is not registered"
	ErrDevScheduleNotAvailable  = "No schedule could be resolved for this pool"
	ErrDevPoolsConfigLoad       = "Failed to load pools configuration file: %s"
	ErrDevManualSchedulesLoad   = "Failed to load manual schedules file: %s"
	ErrDevPDFFetch              = "Failed to fetch schedule PDF from %s"
	ErrDevPDFConvert            = "Failed to convert schedule PDF to text via %s"
	ErrDevRedisGetNoData        = "Failed to get data from redis with key: %s"
	ErrDevRedisSetData          = "Failed to set data to redis"
	ErrDevRedisDeleteData       = "Failed to delete data from redis"
)
