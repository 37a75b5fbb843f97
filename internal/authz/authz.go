// Package authz decides what a resolved role may do. The role always
// arrives as an explicit parameter (resolved from the session by the
// auth middleware), never from ambient state.
package authz

import "github.com/intervueapp/intervue/internal/models"

// Admin is granted every interviewer capability. The navigation gates of
// the previous UI treated the two roles asymmetrically in places; that
// was an inconsistency, not a policy.

// CanScheduleInterviews reports whether r may create interviews.
func CanScheduleInterviews(r models.Role) bool {
	return r == models.RoleInterviewer || r == models.RoleAdmin
}

// CanSeeAllInterviews reports whether r sees every interview. Candidates
// only see interviews where they are the candidate.
func CanSeeAllInterviews(r models.Role) bool {
	return r == models.RoleInterviewer || r == models.RoleAdmin
}

// CanUpdateInterviewStatus reports whether r may complete, pass or fail
// an interview.
func CanUpdateInterviewStatus(r models.Role) bool {
	return r == models.RoleInterviewer || r == models.RoleAdmin
}

// CanComment reports whether r may leave ratings and notes.
func CanComment(r models.Role) bool {
	return r == models.RoleInterviewer || r == models.RoleAdmin
}

// Flags are the role booleans the frontend keys its affordances on.
// Mutually exclusive by construction.
type Flags struct {
	IsCandidate   bool `json:"isCandidate"`
	IsInterviewer bool `json:"isInterviewer"`
	IsAdmin       bool `json:"isAdmin"`
}

func FlagsFor(r models.Role) Flags {
	return Flags{
		IsCandidate:   r == models.RoleCandidate,
		IsInterviewer: r == models.RoleInterviewer,
		IsAdmin:       r == models.RoleAdmin,
	}
}
