package responses

type Health struct {
	Status          string `json:"status"`
	SchedulesLoaded int    `json:"schedules_loaded"`
	TotalPools      int    `json:"total_pools"`
}
