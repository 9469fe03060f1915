package utils

import (
	"net/http"

	"github.com/google/uuid"

	"lapswim-service/internal/pkg/constvars"
	"lapswim-service/internal/pkg/dto/requests"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func BuildAvailabilityQueryRequest(r *http.Request) *requests.AvailabilityQuery {
	query := r.URL.Query()
	return &requests.AvailabilityQuery{
		Date: query.Get("date"),
		Time: query.Get("time"),
	}
}

func BuildAvailabilityWindowRequest(r *http.Request) *requests.AvailabilityWindowQuery {
	query := r.URL.Query()
	return &requests.AvailabilityWindowQuery{
		Day:   query.Get("day"),
		Start: query.Get("start"),
		End:   query.Get("end"),
	}
}
