package models

import (
	"lapswim-service/internal/pkg/dto/responses"
)

type Pool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	ScheduleURL string `json:"scheduleUrl"`
	DetailsURL  string `json:"detailsUrl"`
}

func (p Pool) ConvertIntoResponse() responses.Pool {
	return responses.Pool{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Address:     p.Address,
		ScheduleURL: p.ScheduleURL,
		DetailsURL:  p.DetailsURL,
	}
}
