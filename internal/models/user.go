package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCandidate   Role = "candidate"
	RoleInterviewer Role = "interviewer"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleInterviewer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Role  Role               `bson:"role" json:"role"`

	// Password holds a bcrypt hash. Empty for OAuth-only accounts.
	Password string `bson:"password,omitempty" json:"-"`

	// ExternalID is the identity-provider user id, set by the webhook sync path.
	ExternalID string `bson:"external_id,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
