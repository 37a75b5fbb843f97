package interview

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/intervueapp/intervue/internal/models"
)

// ParticipantInfo is a presentation-ready view of an interview
// participant. Always fully populated, even when the id matches no user.
type ParticipantInfo struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Initials string `json:"initials"`
}

// CandidateInfo joins a candidate id against the user collection.
// Matching is exact string equality on the user id; a miss yields the
// placeholder record, never an error.
func CandidateInfo(users []models.User, candidateID string) ParticipantInfo {
	return participantInfo(users, candidateID, "Unknown Candidate", "UC")
}

// InterviewerInfo is the interviewer counterpart of CandidateInfo.
func InterviewerInfo(users []models.User, interviewerID string) ParticipantInfo {
	return participantInfo(users, interviewerID, "Unknown Interviewer", "UI")
}

func participantInfo(users []models.User, id, placeholderName, placeholderInitials string) ParticipantInfo {
	for _, u := range users {
		if u.ID.Hex() != id {
			continue
		}
		return ParticipantInfo{
			Name:     u.Name,
			Image:    u.Image,
			Initials: initials(u.Name, placeholderInitials),
		}
	}
	return ParticipantInfo{
		Name:     placeholderName,
		Initials: placeholderInitials,
	}
}

// initials concatenates the upper-cased first rune of each
// whitespace-separated token of name.
func initials(name, fallback string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return fallback
	}
	var b strings.Builder
	for _, f := range fields {
		r, _ := utf8.DecodeRuneInString(f)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
