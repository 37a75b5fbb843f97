package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InterviewStatus is the persisted lifecycle field. UI badges and
// filtering depend on these exact string values.
type InterviewStatus string

const (
	StatusPending   InterviewStatus = "pending" // legacy fallback value
	StatusUpcoming  InterviewStatus = "upcoming"
	StatusCompleted InterviewStatus = "completed"
	StatusSucceeded InterviewStatus = "succeeded"
	StatusFailed    InterviewStatus = "failed"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUpcoming, StatusCompleted, StatusSucceeded, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition may occur.
func (s InterviewStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

type Interview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// StartTime and EndTime are epoch milliseconds. EndTime is set only
	// when the interview transitions to completed.
	StartTime int64 `bson:"start_time" json:"startTime"`
	EndTime   int64 `bson:"end_time,omitempty" json:"endTime,omitempty"`

	Status InterviewStatus `bson:"status" json:"status"`

	// StreamCallID correlates this record to the video-provider call. Unique.
	StreamCallID string `bson:"stream_call_id" json:"streamCallId"`

	CandidateID    string   `bson:"candidate_id" json:"candidateId"`
	InterviewerIDs []string `bson:"interviewer_ids" json:"interviewerIds"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
