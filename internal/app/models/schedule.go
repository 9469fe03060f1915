package models

import (
	"fmt"
	"time"

	"lapswim-service/internal/pkg/dto/responses"
)

// ClockTime is a wall-clock time of day. Hour is on the 24-hour clock.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t ClockTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// Format12Hour renders the time the way schedule PDFs print it, e.g. "7:00 am".
// Hour 0 renders as "12:MM am" and hour 12 as "12:MM pm".
func (t ClockTime) Format12Hour() string {
	period := "am"
	if t.Hour >= 12 {
		period = "pm"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}

// Session is one recurring lap-swim time window. Extracted sessions carry a
// single day; manual override sessions may carry the whole day group. Start
// and End are nil for manual entries that are known to be open but publish no
// hours.
type Session struct {
	Days    []string
	Start   *ClockTime
	End     *ClockTime
	Context string
	Notes   string
}

func (s Session) HasTimes() bool {
	return s.Start != nil && s.End != nil
}

func (s Session) ConvertIntoResponse() responses.Session {
	response := responses.Session{
		Days:    s.Days,
		Times:   []string{},
		Context: s.Context,
		Notes:   s.Notes,
	}
	if s.HasTimes() {
		response.Times = []string{s.Start.Format12Hour(), s.End.Format12Hour()}
	}
	return response
}

// Schedule is the normalized lap-swim schedule for one pool. It is replaced
// wholesale on every refresh; sessions are never mutated in place.
type Schedule struct {
	PoolID          string
	PoolName        string
	LapSwimSessions []Session
	RawText         string
	ScheduleURL     string
	LastUpdated     time.Time
	IsManual        bool
}

func (s *Schedule) ConvertIntoResponse() responses.Schedule {
	sessions := make([]responses.Session, 0, len(s.LapSwimSessions))
	for _, session := range s.LapSwimSessions {
		sessions = append(sessions, session.ConvertIntoResponse())
	}
	return responses.Schedule{
		PoolID:          s.PoolID,
		PoolName:        s.PoolName,
		LapSwimSessions: sessions,
		RawText:         s.RawText,
		ScheduleURL:     s.ScheduleURL,
		LastUpdated:     s.LastUpdated.Format(time.RFC3339),
		IsManual:        s.IsManual,
	}
}

// RefreshOutcome tags which branch of the schedule resolution policy fired
// for a pool: manual override, automated extraction, no source configured,
// or a failed fetch.
type RefreshOutcome string

const (
	RefreshOutcomeManual      RefreshOutcome = "manual"
	RefreshOutcomeExtracted   RefreshOutcome = "extracted"
	RefreshOutcomeUnavailable RefreshOutcome = "unavailable"
	RefreshOutcomeFailed      RefreshOutcome = "failed"
)
