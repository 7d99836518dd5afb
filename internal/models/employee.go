package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee represents a field worker or operator. Requests reference
// employees by display name (created_by / last_edited_by).
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"` // "driller", "operator", "supervisor"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
