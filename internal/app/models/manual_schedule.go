package models

// ManualSchedule is a human-authored schedule override for one pool. Times
// use the compact 24-hour "H:MM-H:MM" range notation and are expanded into
// normalized sessions before they reach the cache.
type ManualSchedule struct {
	LapSwimSessions []ManualSession `json:"lapSwimSessions"`
}

type ManualSession struct {
	Days  []string `json:"days"`
	Times []string `json:"times"`
	Notes string   `json:"notes,omitempty"`
}
