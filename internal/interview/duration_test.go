package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRecordingDuration(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds only", 42 * time.Second, "42 seconds"},
		{"zero", 0, "0 seconds"},
		{"minutes", 5*time.Minute + 7*time.Second, "5:07"},
		{"hours", time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{"negative clamps to zero", -time.Minute, "0 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatRecordingDuration(base, base.Add(tt.d)))
		})
	}
}
