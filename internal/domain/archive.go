package domain

import "time"

// ArchivedRun is a schedule run as kept in the run archive.
type ArchivedRun struct {
	ScheduleRun
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
