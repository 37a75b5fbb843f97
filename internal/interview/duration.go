package interview

import (
	"fmt"
	"time"
)

// FormatRecordingDuration renders a recording length the way the meeting
// cards display it: "h:mm:ss" above an hour, "m:ss" above a minute,
// otherwise "N seconds".
func FormatRecordingDuration(start, end time.Time) string {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d seconds", s)
}
