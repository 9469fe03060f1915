package schedules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lapswim-service/internal/app/models"
)

var clockTimePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)

// ParseClockTime parses a 12-hour clock string such as "7:00 am" or
// "12:15 PM" into a ClockTime. "12:MM am" is midnight, "12:MM pm" is noon.
func ParseClockTime(value string) (models.ClockTime, error) {
	match := clockTimePattern.FindStringSubmatch(value)
	if match == nil {
		return models.ClockTime{}, fmt.Errorf("invalid clock time %q", value)
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return models.ClockTime{}, fmt.Errorf("invalid clock time %q", value)
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return models.ClockTime{}, fmt.Errorf("invalid clock time %q", value)
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return models.ClockTime{}, fmt.Errorf("clock time out of range %q", value)
	}

	period := strings.ToLower(match[3])
	if period == "pm" && hour != 12 {
		hour += 12
	}
	if period == "am" && hour == 12 {
		hour = 0
	}

	return models.ClockTime{Hour: hour, Minute: minute}, nil
}
