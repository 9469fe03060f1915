package responses

type Session struct {
	Days    []string `json:"days"`
	Times   []string `json:"times"`
	Context string   `json:"context,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

type Schedule struct {
	PoolID          string    `json:"pool_id"`
	PoolName        string    `json:"pool_name"`
	LapSwimSessions []Session `json:"lap_swim_sessions"`
	RawText         string    `json:"raw_text,omitempty"`
	ScheduleURL     string    `json:"schedule_url,omitempty"`
	LastUpdated     string    `json:"last_updated"`
	IsManual        bool      `json:"is_manual"`
}
