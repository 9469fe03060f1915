package schedules

import (
	"regexp"
	"strconv"

	"lapswim-service/internal/app/models"
)

// manualRangePattern matches the 24-hour "H:MM-H:MM" form manual schedule
// entries are written in.
var manualRangePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)

// ConvertManualSessions expands manual override entries into sessions. Each
// time range becomes its own session carrying the entry's full day group. An
// entry with no times at all still yields one session, so a pool that is
// known to be open without published hours stays visible.
func ConvertManualSessions(manual *models.ManualSchedule) []models.Session {
	sessions := make([]models.Session, 0)
	for _, entry := range manual.LapSwimSessions {
		if len(entry.Times) == 0 {
			sessions = append(sessions, models.Session{
				Days:  entry.Days,
				Notes: entry.Notes,
			})
			continue
		}
		for _, timeRange := range entry.Times {
			start, end, ok := parseManualRange(timeRange)
			if !ok {
				continue
			}
			sessions = append(sessions, models.Session{
				Days:  entry.Days,
				Start: &start,
				End:   &end,
				Notes: entry.Notes,
			})
		}
	}
	return sessions
}

func parseManualRange(timeRange string) (models.ClockTime, models.ClockTime, bool) {
	match := manualRangePattern.FindStringSubmatch(timeRange)
	if match == nil {
		return models.ClockTime{}, models.ClockTime{}, false
	}

	startHour, _ := strconv.Atoi(match[1])
	startMinute, _ := strconv.Atoi(match[2])
	endHour, _ := strconv.Atoi(match[3])
	endMinute, _ := strconv.Atoi(match[4])

	if startHour > 23 || endHour > 23 || startMinute > 59 || endMinute > 59 {
		return models.ClockTime{}, models.ClockTime{}, false
	}

	start := models.ClockTime{Hour: startHour, Minute: startMinute}
	end := models.ClockTime{Hour: endHour, Minute: endMinute}
	return start, end, true
}
