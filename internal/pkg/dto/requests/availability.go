package requests

type AvailabilityQuery struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time string `json:"time" validate:"omitempty,datetime=15:04"`
}

type AvailabilityWindowQuery struct {
	Day   string `json:"day" validate:"required,day_name"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}
