package authz

import (
	"testing"

	"github.com/intervueapp/intervue/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		role        models.Role
		schedule    bool
		seeAll      bool
		setStatus   bool
		comment     bool
	}{
		{models.RoleCandidate, false, false, false, false},
		{models.RoleInterviewer, true, true, true, true},
		{models.RoleAdmin, true, true, true, true},
		{models.Role(""), false, false, false, false},
		{models.Role("superuser"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			require.Equal(t, tt.schedule, CanScheduleInterviews(tt.role))
			require.Equal(t, tt.seeAll, CanSeeAllInterviews(tt.role))
			require.Equal(t, tt.setStatus, CanUpdateInterviewStatus(tt.role))
			require.Equal(t, tt.comment, CanComment(tt.role))
		})
	}
}

func TestFlagsFor_MutuallyExclusive(t *testing.T) {
	for _, r := range []models.Role{models.RoleCandidate, models.RoleInterviewer, models.RoleAdmin} {
		f := FlagsFor(r)
		count := 0
		for _, set := range []bool{f.IsCandidate, f.IsInterviewer, f.IsAdmin} {
			if set {
				count++
			}
		}
		require.Equal(t, 1, count, "role %s", r)
	}

	f := FlagsFor(models.Role(""))
	require.False(t, f.IsCandidate)
	require.False(t, f.IsInterviewer)
	require.False(t, f.IsAdmin)
}
