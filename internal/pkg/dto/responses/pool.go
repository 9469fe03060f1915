package responses

type Pool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	ScheduleURL string `json:"schedule_url,omitempty"`
	DetailsURL  string `json:"details_url,omitempty"`
}
