package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a drilling rig or support vehicle. Requests reference
// vehicles by display name, not by id.
type Vehicle struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	RegistrationNo string             `bson:"registration_no" json:"registration_no"`
	Type           string             `bson:"type" json:"type"` // "rig", "compressor", "support"
	Status         string             `bson:"status" json:"status"` // "active" or "inactive"
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
