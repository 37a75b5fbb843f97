// Package interview holds the pure lifecycle logic: deriving a display
// status for a single interview and partitioning interviews into
// dashboard buckets. Everything here is a function of its inputs and the
// caller-supplied clock; nothing is cached or persisted.
package interview

import (
	"time"

	"github.com/intervueapp/intervue/internal/models"
)

// DerivedStatus is the presentation-only classification. It is computed
// on every request and never written back to storage.
type DerivedStatus string

const (
	DerivedUpcoming  DerivedStatus = "upcoming"
	DerivedLive      DerivedStatus = "live"
	DerivedCompleted DerivedStatus = "completed"
)

// CallWindow is the assumed call duration. There is no stored duration
// field; an interview counts as live for one hour from its start.
const CallWindow = time.Hour

// DeriveStatus classifies a single interview for display ("Join" vs
// "Waiting"). Terminal and completed stored statuses always display as
// completed, even when the start time is still in the future. Otherwise
// the live window [start, start+CallWindow] is inclusive on both ends,
// and anything past the window with a non-terminal status is treated as
// elapsed.
func DeriveStatus(iv models.Interview, now time.Time) DerivedStatus {
	switch iv.Status {
	case models.StatusCompleted, models.StatusFailed, models.StatusSucceeded:
		return DerivedCompleted
	}

	start := time.UnixMilli(iv.StartTime)
	end := start.Add(CallWindow)

	if !now.Before(start) && !now.After(end) {
		return DerivedLive
	}
	if now.Before(start) {
		return DerivedUpcoming
	}
	return DerivedCompleted
}

// Grouped is the dashboard partitioning. Buckets with no members are
// omitted from the JSON encoding; callers treat a missing key as zero
// items.
type Grouped struct {
	Succeeded []models.Interview `json:"succeeded,omitempty"`
	Failed    []models.Interview `json:"failed,omitempty"`
	Completed []models.Interview `json:"completed,omitempty"`
	Upcoming  []models.Interview `json:"upcoming,omitempty"`
}

// Group partitions interviews for operator triage. Unlike DeriveStatus
// there is no live bucket: the time-based buckets compare the start time
// against now directly. Priority per interview: stored succeeded, stored
// failed, started strictly before now, starting strictly after now.
// Input order is preserved within each bucket; the input is not mutated.
func Group(list []models.Interview, now time.Time) Grouped {
	var g Grouped
	for _, iv := range list {
		start := time.UnixMilli(iv.StartTime)
		// start == now to the millisecond matches no case and lands in
		// no bucket; known gap, kept as-is.
		switch {
		case iv.Status == models.StatusSucceeded:
			g.Succeeded = append(g.Succeeded, iv)
		case iv.Status == models.StatusFailed:
			g.Failed = append(g.Failed, iv)
		case start.Before(now):
			g.Completed = append(g.Completed, iv)
		case start.After(now):
			g.Upcoming = append(g.Upcoming, iv)
		}
	}
	return g
}

// Total counts interviews across all buckets.
func (g Grouped) Total() int {
	return len(g.Succeeded) + len(g.Failed) + len(g.Completed) + len(g.Upcoming)
}
