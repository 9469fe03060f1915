package schedules

import (
	"strings"

	"lapswim-service/internal/app/models"
)

// dayMatches reports whether a session day label covers the queried day.
// Matching is on the first three letters of the query, so "MON", "Mon" and
// "Monday" all hit a session tagged "MONDAY", and a manual "Mon-Fri" style
// label still matches as long as it spells the day out.
func dayMatches(sessionDay, queryDay string) bool {
	if len(queryDay) < 3 {
		return false
	}
	prefix := strings.ToLower(queryDay)[:3]
	return strings.Contains(strings.ToLower(sessionDay), prefix)
}

func sessionCoversDay(session models.Session, day string) bool {
	for _, sessionDay := range session.Days {
		if dayMatches(sessionDay, day) {
			return true
		}
	}
	return false
}

// SessionsAt returns the sessions open at a single instant. The boundaries
// are inclusive on both ends: a swimmer arriving exactly at opening or
// closing time still counts as in-session.
func SessionsAt(sessions []models.Session, day string, minuteOfDay int) []models.Session {
	matched := make([]models.Session, 0)
	for _, session := range sessions {
		if !session.HasTimes() {
			continue
		}
		if !sessionCoversDay(session, day) {
			continue
		}
		if minuteOfDay >= session.Start.MinuteOfDay() && minuteOfDay <= session.End.MinuteOfDay() {
			matched = append(matched, session)
		}
	}
	return matched
}

// SessionsOverlapping returns the sessions sharing any time with the window.
// Overlap is strict: a session that only touches the window at a boundary
// (ends exactly when the window starts, or vice versa) does not count.
func SessionsOverlapping(sessions []models.Session, day string, windowStart, windowEnd int) []models.Session {
	matched := make([]models.Session, 0)
	for _, session := range sessions {
		if !session.HasTimes() {
			continue
		}
		if !sessionCoversDay(session, day) {
			continue
		}
		if session.Start.MinuteOfDay() < windowEnd && session.End.MinuteOfDay() > windowStart {
			matched = append(matched, session)
		}
	}
	return matched
}
