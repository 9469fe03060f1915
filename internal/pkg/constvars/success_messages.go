package constvars

const (
	GetPoolsSuccessMessage         = "Successfully retrieved pools"
	GetPoolSuccessMessage          = "Successfully retrieved pool"
	GetSchedulesSuccessMessage     = "Successfully retrieved schedules"
	GetScheduleSuccessMessage      = "Successfully retrieved schedule"
	RefreshSchedulesSuccessMessage = "Schedules refreshed successfully"
	RefreshScheduleSuccessMessage  = "Schedule refreshed successfully"
	GetAvailabilitySuccessMessage  = "Successfully checked availability"
	GetHealthSuccessMessage        = "Service is healthy"
)
