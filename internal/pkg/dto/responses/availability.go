package responses

type PoolAvailability struct {
	Pool     Pool      `json:"pool"`
	Sessions []Session `json:"sessions"`
}

type Availability struct {
	RequestedTime  string             `json:"requested_time"`
	AvailablePools []PoolAvailability `json:"available_pools"`
}

type WindowAvailability struct {
	Day         string             `json:"day"`
	WindowStart string             `json:"window_start"`
	WindowEnd   string             `json:"window_end"`
	Pools       []PoolAvailability `json:"pools"`
}
