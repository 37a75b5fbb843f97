package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an interviewer's rating and note on an interview.
// Append-only: never updated or deleted.
type Comment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	InterviewID   primitive.ObjectID `bson:"interview_id" json:"interviewId"`
	InterviewerID string             `bson:"interviewer_id" json:"interviewerId"`
	Content       string             `bson:"content" json:"content"`
	Rating        int                `bson:"rating" json:"rating"` // 1..5

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
